package entity

import (
	"path/filepath"
	"strings"
	"time"
)

// MediaKind is the declared kind of an uploaded reference file.
type MediaKind string

const (
	MediaKindImage    MediaKind = "image"
	MediaKindPDF      MediaKind = "pdf"
	MediaKindDocument MediaKind = "document"
)

// ParseMediaKind resolves a declared content type or filename to a MediaKind.
func ParseMediaKind(contentType, filename string) MediaKind {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case strings.HasPrefix(ct, "image/"):
		return MediaKindImage
	case ct == "application/pdf":
		return MediaKindPDF
	case ct != "":
		return MediaKindDocument
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp":
		return MediaKindImage
	case ".pdf":
		return MediaKindPDF
	default:
		return MediaKindDocument
	}
}

// ReferenceUpload describes an uploaded brand-reference file.
// Only the declared kind and filename are consumed; file bytes stay
// with the upload collaborator.
type ReferenceUpload struct {
	Filename string    `json:"filename"`
	Kind     MediaKind `json:"kind"`
	Industry string    `json:"industry,omitempty"`
}

// AssetKind is the kind of a generated asset.
type AssetKind string

const (
	AssetKindImage AssetKind = "image"
)

// RenderRequest describes one asset to render.
type RenderRequest struct {
	Title    string   `json:"title"`
	Industry string   `json:"industry"`
	Elements []string `json:"elements"`
	Branding string   `json:"branding,omitempty"`
	Style    string   `json:"style,omitempty"`
}

// GeneratedAsset is the output of a render.
type GeneratedAsset struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Kind        AssetKind `json:"kind"`
	Industry    string    `json:"industry"`
	ArtifactRef string    `json:"artifact_ref"`
	Description string    `json:"description"`
	GeneratedAt time.Time `json:"generated_at"`
	StyleUsed   string    `json:"style_used"`
}

// IsFailure reports whether the asset is a degraded failure result.
func (a *GeneratedAsset) IsFailure() bool {
	return a.ArtifactRef == ""
}
