package render

import (
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
)

// iconPalette carries the colors an icon drawing may use.
type iconPalette struct {
	Primary color.Color
	Accent  color.Color
	Line    color.Color
}

// drawIcon draws the vector icon for an element tag centered at
// (cx, cy) within radius r. Unrecognized tags fall back to a generic
// labeled circle.
func drawIcon(dc *gg.Context, tag string, cx, cy, r float64, pal iconPalette) {
	switch canonicalTag(tag) {
	case "building":
		drawBuilding(dc, cx, cy, r, pal)
	case "network":
		drawNetwork(dc, cx, cy, r, pal)
	case "router":
		drawRouter(dc, cx, cy, r, pal)
	case "signal":
		drawSignal(dc, cx, cy, r, pal)
	case "server":
		drawServer(dc, cx, cy, r, pal)
	default:
		drawGeneric(dc, tag, cx, cy, r, pal)
	}
}

// canonicalTag folds tag aliases onto the fixed icon vocabulary.
func canonicalTag(tag string) string {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "building", "office", "branch":
		return "building"
	case "network", "network_graph", "mesh":
		return "network"
	case "router", "gateway":
		return "router"
	case "signal", "wifi", "wifi_signal", "antenna":
		return "signal"
	case "server", "server_rack", "datacenter":
		return "server"
	default:
		return ""
	}
}

// drawBuilding draws an office block with a window grid.
func drawBuilding(dc *gg.Context, cx, cy, r float64, pal iconPalette) {
	w := r * 1.2
	h := r * 1.6
	x := cx - w/2
	y := cy - h/2

	dc.SetColor(pal.Primary)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	// window grid, 3x4
	dc.SetColor(pal.Accent)
	winW := w / 5
	winH := h / 7
	for row := 0; row < 4; row++ {
		for col := 0; col < 3; col++ {
			wx := x + winW*(float64(col)*1.5+0.5)
			wy := y + winH*(float64(row)*1.5+0.5)
			dc.DrawRectangle(wx, wy, winW, winH)
			dc.Fill()
		}
	}
}

// drawNetwork draws a small node graph.
func drawNetwork(dc *gg.Context, cx, cy, r float64, pal iconPalette) {
	nodes := [][2]float64{
		{cx, cy - r*0.8},
		{cx - r*0.8, cy + r*0.5},
		{cx + r*0.8, cy + r*0.5},
		{cx, cy},
	}

	dc.SetColor(pal.Line)
	dc.SetLineWidth(2)
	for _, n := range nodes[:3] {
		dc.DrawLine(nodes[3][0], nodes[3][1], n[0], n[1])
		dc.Stroke()
	}
	dc.DrawLine(nodes[0][0], nodes[0][1], nodes[1][0], nodes[1][1])
	dc.Stroke()
	dc.DrawLine(nodes[0][0], nodes[0][1], nodes[2][0], nodes[2][1])
	dc.Stroke()

	for i, n := range nodes {
		if i == 3 {
			dc.SetColor(pal.Accent)
		} else {
			dc.SetColor(pal.Primary)
		}
		dc.DrawCircle(n[0], n[1], r*0.18)
		dc.Fill()
	}
}

// drawRouter draws a flat router body with two antennas and LEDs.
func drawRouter(dc *gg.Context, cx, cy, r float64, pal iconPalette) {
	w := r * 1.7
	h := r * 0.6
	x := cx - w/2
	y := cy + r*0.1

	// antennas
	dc.SetColor(pal.Line)
	dc.SetLineWidth(3)
	dc.DrawLine(x+w*0.25, y, x+w*0.15, y-r*0.9)
	dc.Stroke()
	dc.DrawLine(x+w*0.75, y, x+w*0.85, y-r*0.9)
	dc.Stroke()

	dc.SetColor(pal.Primary)
	dc.DrawRoundedRectangle(x, y, w, h, h/3)
	dc.Fill()

	// status LEDs
	dc.SetColor(pal.Accent)
	for i := 0; i < 3; i++ {
		dc.DrawCircle(x+w*0.2+float64(i)*w*0.18, y+h/2, r*0.07)
		dc.Fill()
	}
}

// drawSignal draws broadcast arcs above a source dot.
func drawSignal(dc *gg.Context, cx, cy, r float64, pal iconPalette) {
	baseY := cy + r*0.6

	dc.SetColor(pal.Primary)
	dc.DrawCircle(cx, baseY, r*0.15)
	dc.Fill()

	dc.SetLineWidth(3)
	for i := 1; i <= 3; i++ {
		if i == 3 {
			dc.SetColor(pal.Accent)
		} else {
			dc.SetColor(pal.Line)
		}
		dc.DrawArc(cx, baseY, r*0.4*float64(i), -3*math.Pi/4, -math.Pi/4)
		dc.Stroke()
	}
}

// drawServer draws a three-unit rack with activity LEDs.
func drawServer(dc *gg.Context, cx, cy, r float64, pal iconPalette) {
	w := r * 1.3
	h := r * 0.45
	x := cx - w/2

	for i := 0; i < 3; i++ {
		y := cy - r*0.8 + float64(i)*(h+r*0.12)
		dc.SetColor(pal.Primary)
		dc.DrawRoundedRectangle(x, y, w, h, 3)
		dc.Fill()

		dc.SetColor(pal.Accent)
		dc.DrawCircle(x+w-r*0.2, y+h/2, r*0.07)
		dc.Fill()

		dc.SetColor(pal.Line)
		dc.SetLineWidth(1.5)
		dc.DrawLine(x+r*0.12, y+h/2, x+w*0.55, y+h/2)
		dc.Stroke()
	}
}

// drawGeneric draws the fallback labeled circle for unknown tags.
func drawGeneric(dc *gg.Context, tag string, cx, cy, r float64, pal iconPalette) {
	dc.SetColor(pal.Primary)
	dc.DrawCircle(cx, cy, r*0.85)
	dc.Fill()

	label := genericLabel(tag)
	dc.SetColor(pal.Accent)
	tw, th := dc.MeasureString(label)
	dc.DrawString(label, cx-tw/2, cy+th/2)
}

// genericLabel abbreviates an unknown tag to its first three
// characters, uppercased. Slices runes so multibyte tags stay valid.
func genericLabel(tag string) string {
	label := strings.ToUpper(tag)
	if runes := []rune(label); len(runes) > 3 {
		label = string(runes[:3])
	}
	return label
}
