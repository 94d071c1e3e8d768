package style

import (
	"fmt"
	"time"

	"telco-enable-ai-api/internal/domain/entity"
)

// Extraction confidence per upload kind. Image references carry the
// most visual signal, generic documents the least.
const (
	confidenceImage    = 0.85
	confidencePDF      = 0.80
	confidenceDocument = 0.75
)

// extractionConfidence maps an upload kind to its extraction confidence.
func extractionConfidence(kind entity.MediaKind) float64 {
	switch kind {
	case entity.MediaKindImage:
		return confidenceImage
	case entity.MediaKindPDF:
		return confidencePDF
	default:
		return confidenceDocument
	}
}

// extract synthesizes a style pattern for an upload by overlaying the
// brand defaults with a kind-specific confidence. The upload's bytes
// never reach the store; only the declared kind and filename do.
func (s *Store) extract(upload entity.ReferenceUpload) *entity.StylePattern {
	colors, typography, layout, elements := brandDefaults(s.brand)

	if acc, ok := industryAccents[upload.Industry]; ok {
		colors.Accent = acc.Accent
		elements.Patterns = append(elements.Patterns, acc.Patterns...)
	}

	now := time.Now()
	return &entity.StylePattern{
		ID:          s.newID(),
		Name:        fmt.Sprintf("%s %s style from %s", s.brand.Name, upload.Kind, upload.Filename),
		Source:      upload.Filename,
		Type:        entity.PatternTypeExtracted,
		Confidence:  extractionConfidence(upload.Kind),
		Colors:      colors,
		Typography:  typography,
		Layout:      layout,
		Brand:       elements,
		SuccessRate: 0.5,
		CreatedAt:   now,
		LastUsed:    now,
	}
}

// insightsFor derives human-readable insight strings from the updated
// learning progress after an upload.
func insightsFor(progress entity.LearningProgress, pattern *entity.StylePattern) []string {
	insights := []string{
		fmt.Sprintf("learned %q with %.0f%% confidence", pattern.Name, pattern.Confidence*100),
	}

	switch {
	case progress.TotalUploads == 1:
		insights = append(insights, "first brand reference processed; style learning has started")
	case progress.TotalUploads == 5:
		insights = append(insights, "five references processed; the style library is maturing")
	case progress.TotalUploads%10 == 0:
		insights = append(insights, fmt.Sprintf("%d references processed", progress.TotalUploads))
	}

	if progress.StyleConfidence >= 0.8 {
		insights = append(insights, "style confidence is high; generated assets will closely match the brand")
	}

	return insights
}
