package dto

import (
	"telco-enable-ai-api/internal/application/style"
	"telco-enable-ai-api/internal/domain/entity"
)

// UploadRequest is the body of POST /v1/styles/uploads.
type UploadRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
	Industry    string `json:"industry"`
}

// ToUpload converts the request to a reference upload.
func (r *UploadRequest) ToUpload() entity.ReferenceUpload {
	return entity.ReferenceUpload{
		Filename: r.Filename,
		Kind:     entity.ParseMediaKind(r.ContentType, r.Filename),
		Industry: r.Industry,
	}
}

// UploadResponse is the result of processing a reference upload.
type UploadResponse struct {
	Patterns []*entity.StylePattern `json:"patterns"`
	Insights []string               `json:"insights"`
}

// SynthesizeRequest is the body of POST /v1/styles/synthesize.
type SynthesizeRequest struct {
	ContentType string `json:"content_type" binding:"required"`
	Industry    string `json:"industry"`
}

// AdjustRequest is the body of PATCH /v1/styles/:id.
type AdjustRequest struct {
	Name       string                `json:"name"`
	Confidence *float64              `json:"confidence" binding:"omitempty,gte=0,lte=1"`
	Colors     *entity.ColorPalette  `json:"colors"`
	Typography *entity.Typography    `json:"typography"`
	Layout     *entity.Layout        `json:"layout"`
	Brand      *entity.BrandElements `json:"brand"`
}

// ToAdjustment converts the request to a style adjustment.
func (r *AdjustRequest) ToAdjustment() style.Adjustment {
	return style.Adjustment{
		Name:       r.Name,
		Confidence: r.Confidence,
		Colors:     r.Colors,
		Typography: r.Typography,
		Layout:     r.Layout,
		Brand:      r.Brand,
	}
}

// CombineRequest is the body of POST /v1/styles/combine.
type CombineRequest struct {
	PatternIDs []string `json:"pattern_ids" binding:"required,min=1"`
}

// OutcomeRequest is the body of POST /v1/styles/:id/outcomes.
type OutcomeRequest struct {
	Success *bool `json:"success" binding:"required"`
}
