package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"golang.org/x/image/font/gofont/goregular"

	"telco-enable-ai-api/internal/config"
	"telco-enable-ai-api/internal/domain/entity"
)

var testBrand = config.BrandConfig{
	Name:            "TelcoConnect",
	Wordmark:        "TELCOCONNECT",
	PrimaryColor:    "#1B365D",
	SecondaryColor:  "#4A90D9",
	AccentColor:     "#FF6B35",
	BackgroundColor: "#FFFFFF",
	TextColor:       "#2C3E50",
}

func testStyle() *entity.StylePattern {
	return &entity.StylePattern{
		ID:   "test-style",
		Name: "test style",
		Colors: entity.ColorPalette{
			Primary:    "#1B365D",
			Secondary:  "#4A90D9",
			Accent:     "#FF6B35",
			Background: "#FFFFFF",
			Text:       "#2C3E50",
		},
		Layout: entity.Layout{CornerRadius: "medium"},
	}
}

func decodePNGDataURI(t *testing.T, ref string) {
	t.Helper()
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(ref, prefix) {
		t.Fatalf("artifact ref missing png data-uri prefix: %.40s", ref)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(ref, prefix))
	if err != nil {
		t.Fatalf("artifact ref is not valid base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(raw)); err != nil {
		t.Fatalf("artifact ref is not a valid png: %v", err)
	}
}

func TestCompositorRendersScene(t *testing.T) {
	c := NewCompositor(config.RendererConfig{CanvasWidth: 400, CanvasHeight: 300}, testBrand)

	ref, err := c.Render(context.Background(), entity.RenderRequest{
		Title:    "Retail Connectivity Bundle",
		Industry: "retail",
		Elements: []string{"building", "network", "router", "signal", "server"},
	}, testStyle())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	decodePNGDataURI(t, ref)
}

func TestCompositorUnknownTagStillRenders(t *testing.T) {
	c := NewCompositor(config.RendererConfig{}, testBrand)

	ref, err := c.Render(context.Background(), entity.RenderRequest{
		Title:    "Future Lab",
		Elements: []string{"holograph"},
	}, testStyle())
	if err != nil {
		t.Fatalf("unknown tags must not fail the render: %v", err)
	}
	decodePNGDataURI(t, ref)
}

func TestCompositorConcurrentRenders(t *testing.T) {
	fontPath := filepath.Join(t.TempDir(), "go-regular.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	c := NewCompositor(config.RendererConfig{
		CanvasWidth:  320,
		CanvasHeight: 240,
		FontPath:     fontPath,
	}, testBrand)

	refs := make([]string, 8)
	errs := make([]error, 8)
	var wg sync.WaitGroup
	for i := range refs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			refs[i], errs[i] = c.Render(context.Background(), entity.RenderRequest{
				Title:    fmt.Sprintf("Offer %d", i),
				Industry: "retail",
				Elements: []string{"signal", "router"},
			}, testStyle())
		}(i)
	}
	wg.Wait()

	for i := range refs {
		if errs[i] != nil {
			t.Fatalf("render %d: %v", i, errs[i])
		}
		decodePNGDataURI(t, refs[i])
	}
}

func TestGenericLabel(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"holograph", "HOL"},
		{"ab", "AB"},
		{"émission", "ÉMI"},
		{"", ""},
	}
	for _, tt := range tests {
		got := genericLabel(tt.tag)
		if got != tt.want {
			t.Errorf("genericLabel(%q) = %q, want %q", tt.tag, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("genericLabel(%q) produced invalid utf-8", tt.tag)
		}
	}
}

func TestCanonicalTag(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"building", "building"},
		{"Office", "building"},
		{"network_graph", "network"},
		{"router", "router"},
		{"WiFi_Signal", "signal"},
		{"server_rack", "server"},
		{"holograph", ""},
		{"  signal  ", "signal"},
	}
	for _, tt := range tests {
		if got := canonicalTag(tt.tag); got != tt.want {
			t.Errorf("canonicalTag(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	fallback := color.NRGBA{R: 1, G: 2, B: 3, A: 0xFF}

	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#1B365D", color.NRGBA{R: 0x1B, G: 0x36, B: 0x5D, A: 0xFF}},
		{"4A90D9", color.NRGBA{R: 0x4A, G: 0x90, B: 0xD9, A: 0xFF}},
		{"#FFF", color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{"", fallback},
		{"not-a-color", fallback},
	}
	for _, tt := range tests {
		if got := parseHexColor(tt.in, fallback); got != tt.want {
			t.Errorf("parseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
