package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"telco-enable-ai-api/internal/config"
	"telco-enable-ai-api/internal/domain/entity"
	apperrors "telco-enable-ai-api/pkg/errors"
	"telco-enable-ai-api/pkg/logger"
)

const (
	defaultCanvasWidth  = 800
	defaultCanvasHeight = 600
)

// Compositor renders assets locally as layered vector scenes: gradient
// background, brand header bar, content panel, icon tile row, and
// footer credit, encoded as a PNG data URI.
type Compositor struct {
	width    int
	height   int
	wordmark string
	credit   string

	// parsed once; faces buffer glyph rasterization internally and are
	// not safe to share, so they are built per render
	font *truetype.Font
}

// NewCompositor builds a compositor from renderer and brand settings.
// A missing or unreadable font file is not fatal; drawing falls back
// to the built-in bitmap face.
func NewCompositor(cfg config.RendererConfig, brand config.BrandConfig) *Compositor {
	c := &Compositor{
		width:    cfg.CanvasWidth,
		height:   cfg.CanvasHeight,
		wordmark: brand.Wordmark,
		credit:   fmt.Sprintf("Generated by %s Sales Enablement", brand.Name),
	}
	if c.width <= 0 {
		c.width = defaultCanvasWidth
	}
	if c.height <= 0 {
		c.height = defaultCanvasHeight
	}
	if c.wordmark == "" {
		c.wordmark = strings.ToUpper(brand.Name)
	}

	if cfg.FontPath != "" {
		if fnt, err := loadTrueType(cfg.FontPath); err != nil {
			logger.Warn(context.Background(), "font file unavailable, using built-in face",
				"path", cfg.FontPath, "error", err.Error())
		} else {
			c.font = fnt
		}
	}
	return c
}

// Name identifies the strategy in logs and metrics.
func (c *Compositor) Name() string { return "compositor" }

// Render draws the request onto a fresh canvas styled by the pattern
// and returns the PNG as a base64 data URI.
func (c *Compositor) Render(ctx context.Context, req entity.RenderRequest, style *entity.StylePattern) (string, error) {
	w := float64(c.width)
	h := float64(c.height)
	dc := gg.NewContext(c.width, c.height)
	heading, body, small := c.faces()

	primary := parseHexColor(style.Colors.Primary, color.NRGBA{R: 0x1B, G: 0x36, B: 0x5D, A: 0xFF})
	secondary := parseHexColor(style.Colors.Secondary, color.NRGBA{R: 0x4A, G: 0x90, B: 0xD9, A: 0xFF})
	accent := parseHexColor(style.Colors.Accent, color.NRGBA{R: 0xFF, G: 0x6B, B: 0x35, A: 0xFF})
	background := parseHexColor(style.Colors.Background, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	text := parseHexColor(style.Colors.Text, color.NRGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF})

	// gradient background, brand background fading into the secondary tone
	grad := gg.NewLinearGradient(0, 0, 0, h)
	grad.AddColorStop(0, background)
	grad.AddColorStop(1, tint(secondary, 0.75))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	// header bar with wordmark and category label
	headerH := h * 0.12
	dc.SetColor(primary)
	dc.DrawRectangle(0, 0, w, headerH)
	dc.Fill()

	setFace(dc, body)
	dc.SetColor(background)
	dc.DrawStringAnchored(c.wordmark, 28, headerH/2, 0, 0.35)
	if req.Industry != "" {
		label := strings.ToUpper(req.Industry)
		dc.DrawStringAnchored(label, w-28, headerH/2, 1, 0.35)
	}
	dc.SetColor(accent)
	dc.DrawRectangle(0, headerH-4, w, 4)
	dc.Fill()

	// content panel
	radius := cornerRadiusPx(style.Layout.CornerRadius)
	panelX := w * 0.06
	panelY := headerH + h*0.06
	panelW := w - 2*panelX
	panelH := h * 0.32
	dc.SetColor(background)
	dc.DrawRoundedRectangle(panelX, panelY, panelW, panelH, radius)
	dc.Fill()
	dc.SetColor(secondary)
	dc.SetLineWidth(2)
	dc.DrawRoundedRectangle(panelX, panelY, panelW, panelH, radius)
	dc.Stroke()

	setFace(dc, heading)
	dc.SetColor(text)
	dc.DrawStringWrapped(req.Title, panelX+panelW/2, panelY+panelH*0.38, 0.5, 0.5, panelW-60, 1.4, gg.AlignCenter)

	setFace(dc, body)
	dc.SetColor(secondary)
	subtitle := fmt.Sprintf("Connectivity solutions for %s", orDefault(req.Industry, "your business"))
	dc.DrawStringAnchored(subtitle, panelX+panelW/2, panelY+panelH*0.78, 0.5, 0.5)

	// icon tile row, one tile per element, evenly spaced and centered
	if len(req.Elements) > 0 {
		setFace(dc, small)
		c.drawTileRow(dc, req.Elements, w, panelY+panelH+h*0.06, iconPalette{
			Primary: primary,
			Accent:  accent,
			Line:    secondary,
		}, background, radius)
	}

	// footer credit bar
	footerH := h * 0.07
	dc.SetColor(primary)
	dc.DrawRectangle(0, h-footerH, w, footerH)
	dc.Fill()
	setFace(dc, small)
	dc.SetColor(background)
	dc.DrawStringAnchored(c.credit, w/2, h-footerH/2, 0.5, 0.35)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeRenderFailed, "failed to encode canvas")
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// drawTileRow lays out one icon tile per element, centered as a group.
func (c *Compositor) drawTileRow(dc *gg.Context, elements []string, w, top float64, pal iconPalette, tileBg color.Color, radius float64) {
	tile := 96.0
	gap := 28.0
	if n := float64(len(elements)); n*tile+(n-1)*gap > w*0.9 {
		tile = (w*0.9 - (n-1)*gap) / n
	}

	total := float64(len(elements))*tile + float64(len(elements)-1)*gap
	x := (w - total) / 2
	for _, tag := range elements {
		dc.SetColor(tileBg)
		dc.DrawRoundedRectangle(x, top, tile, tile, radius)
		dc.Fill()
		dc.SetColor(pal.Line)
		dc.SetLineWidth(1.5)
		dc.DrawRoundedRectangle(x, top, tile, tile, radius)
		dc.Stroke()

		drawIcon(dc, tag, x+tile/2, top+tile/2, tile*0.32, pal)

		dc.SetColor(pal.Primary)
		caption := strings.ReplaceAll(strings.ToLower(tag), "_", " ")
		dc.DrawStringAnchored(caption, x+tile/2, top+tile+14, 0.5, 0.5)

		x += tile + gap
	}
}

// faces builds the font faces for one render.
func (c *Compositor) faces() (heading, body, small font.Face) {
	if c.font == nil {
		return nil, nil, nil
	}
	return truetype.NewFace(c.font, &truetype.Options{Size: 30}),
		truetype.NewFace(c.font, &truetype.Options{Size: 18}),
		truetype.NewFace(c.font, &truetype.Options{Size: 13})
}

// setFace switches the active font face, keeping the built-in face
// when no truetype font was loaded.
func setFace(dc *gg.Context, face font.Face) {
	if face != nil {
		dc.SetFontFace(face)
	}
}

// loadTrueType parses a TTF file from disk.
func loadTrueType(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return truetype.Parse(data)
}

// cornerRadiusPx maps the descriptor's named radius onto pixels.
func cornerRadiusPx(named string) float64 {
	switch named {
	case "none":
		return 0
	case "small":
		return 4
	case "large":
		return 16
	default:
		return 8
	}
}

// parseHexColor parses #RGB or #RRGGBB, falling back on bad input.
func parseHexColor(s string, fallback color.NRGBA) color.NRGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint8
	switch len(s) {
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return fallback
		}
		return color.NRGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xFF}
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return fallback
		}
		return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
	default:
		return fallback
	}
}

// tint blends a color toward white by the given amount in [0,1].
func tint(c color.NRGBA, amount float64) color.NRGBA {
	blend := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*amount)
	}
	return color.NRGBA{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: c.A}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
