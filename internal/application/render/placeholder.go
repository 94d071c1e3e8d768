package render

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"telco-enable-ai-api/internal/config"
	"telco-enable-ai-api/internal/domain/entity"
	apperrors "telco-enable-ai-api/pkg/errors"
	"telco-enable-ai-api/pkg/logger"
)

// placeholderColors maps industries onto background colors for the
// remote placeholder service. Separate from the style accent table:
// these are flat fill colors legible at thumbnail size.
var placeholderColors = map[string]string{
	"retail":      "E74C3C",
	"healthcare":  "27AE60",
	"finance":     "2C3E50",
	"education":   "9B59B6",
	"hospitality": "E67E22",
	"logistics":   "3498DB",
}

const placeholderDefaultColor = "1B365D"

// Placeholder delegates rendering to a remote stand-in image service.
// It constructs a URL keyed by industry and title instead of
// rasterizing locally; when a probe client is configured the URL is
// verified with a HEAD request before being returned.
type Placeholder struct {
	endpoint string
	width    int
	height   int
	client   *http.Client
}

// NewPlaceholder builds the delegate from placeholder settings.
// A nil client skips the availability probe.
func NewPlaceholder(cfg config.PlaceholderConfig, client *http.Client) *Placeholder {
	p := &Placeholder{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		width:    cfg.Width,
		height:   cfg.Height,
		client:   client,
	}
	if p.width <= 0 {
		p.width = defaultCanvasWidth
	}
	if p.height <= 0 {
		p.height = defaultCanvasHeight
	}
	return p
}

// Name identifies the strategy in logs and metrics.
func (p *Placeholder) Name() string { return "placeholder" }

// Render returns the placeholder image URL for the request.
func (p *Placeholder) Render(ctx context.Context, req entity.RenderRequest, _ *entity.StylePattern) (string, error) {
	bg, ok := placeholderColors[strings.ToLower(req.Industry)]
	if !ok {
		bg = placeholderDefaultColor
	}

	label := req.Title
	if req.Industry != "" {
		label = fmt.Sprintf("%s | %s", req.Title, req.Industry)
	}

	ref := fmt.Sprintf("%s/%dx%d/%s/FFFFFF?text=%s",
		p.endpoint, p.width, p.height, bg, url.QueryEscape(label))

	if p.client != nil {
		if err := p.probe(ctx, ref); err != nil {
			return "", apperrors.Wrap(err, apperrors.CodePlaceholderError, "placeholder service unavailable")
		}
	}
	return ref, nil
}

// probe checks that the placeholder service answers for the URL.
func (p *Placeholder) probe(ctx context.Context, ref string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodHead, ref, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Warn(ctx, "placeholder probe rejected", "status", resp.StatusCode)
		return fmt.Errorf("placeholder service returned status %d", resp.StatusCode)
	}
	return nil
}
