package render

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"telco-enable-ai-api/internal/config"
	"telco-enable-ai-api/internal/domain/entity"
)

func TestPlaceholderBuildsURL(t *testing.T) {
	p := NewPlaceholder(config.PlaceholderConfig{
		Endpoint: "https://placeholder.example.com",
		Width:    640,
		Height:   480,
	}, nil)

	ref, err := p.Render(context.Background(), entity.RenderRequest{
		Title:    "Retail Bundle",
		Industry: "retail",
	}, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"https://placeholder.example.com/640x480/",
		"E74C3C",
		"text=Retail+Bundle+%7C+retail",
	} {
		if !strings.Contains(ref, want) {
			t.Errorf("ref %q missing %q", ref, want)
		}
	}
}

func TestPlaceholderUnknownIndustryColor(t *testing.T) {
	p := NewPlaceholder(config.PlaceholderConfig{Endpoint: "https://placeholder.example.com"}, nil)

	ref, err := p.Render(context.Background(), entity.RenderRequest{
		Title:    "General Offer",
		Industry: "aerospace",
	}, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(ref, placeholderDefaultColor) {
		t.Errorf("ref %q missing default color %s", ref, placeholderDefaultColor)
	}
}

func TestPlaceholderProbe(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewPlaceholder(config.PlaceholderConfig{
		Endpoint: srv.URL,
		Width:    100,
		Height:   80,
	}, &http.Client{Timeout: time.Second})

	ref, err := p.Render(context.Background(), entity.RenderRequest{Title: "X"}, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(ref, srv.URL) {
		t.Errorf("ref = %q, want prefix %q", ref, srv.URL)
	}
	if !strings.Contains(gotPath, "100x80") {
		t.Errorf("probe path = %q, want size segment", gotPath)
	}
}

func TestPlaceholderProbeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewPlaceholder(config.PlaceholderConfig{Endpoint: srv.URL},
		&http.Client{Timeout: time.Second})

	if _, err := p.Render(context.Background(), entity.RenderRequest{Title: "X"}, nil); err == nil {
		t.Fatal("expected error when the placeholder service rejects the probe")
	}
}
