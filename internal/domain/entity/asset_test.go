package entity

import (
	"testing"
)

func TestParseMediaKind(t *testing.T) {
	tests := []struct {
		contentType string
		filename    string
		want        MediaKind
	}{
		{"image/png", "whatever.bin", MediaKindImage},
		{"application/pdf", "doc.txt", MediaKindPDF},
		{"text/plain", "notes.png", MediaKindDocument},
		{"", "deck.PNG", MediaKindImage},
		{"", "guidelines.pdf", MediaKindPDF},
		{"", "notes.docx", MediaKindDocument},
		{"", "no-extension", MediaKindDocument},
	}

	for _, tt := range tests {
		if got := ParseMediaKind(tt.contentType, tt.filename); got != tt.want {
			t.Errorf("ParseMediaKind(%q, %q) = %s, want %s",
				tt.contentType, tt.filename, got, tt.want)
		}
	}
}

func TestGeneratedAssetIsFailure(t *testing.T) {
	ok := GeneratedAsset{ArtifactRef: "data:image/png;base64,AAAA"}
	if ok.IsFailure() {
		t.Error("asset with artifact flagged as failure")
	}

	degraded := GeneratedAsset{Description: "asset could not be rendered: boom"}
	if !degraded.IsFailure() {
		t.Error("asset without artifact not flagged as failure")
	}
}
