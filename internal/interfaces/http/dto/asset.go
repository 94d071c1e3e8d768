package dto

import (
	"telco-enable-ai-api/internal/domain/entity"
)

// RenderRequest is the body of POST /v1/assets/render.
type RenderRequest struct {
	Title    string   `json:"title" binding:"required"`
	Industry string   `json:"industry"`
	Elements []string `json:"elements"`
	Branding string   `json:"branding"`
	Style    string   `json:"style"`
}

// ToEntity converts the request to a render request.
func (r *RenderRequest) ToEntity() entity.RenderRequest {
	return entity.RenderRequest{
		Title:    r.Title,
		Industry: r.Industry,
		Elements: r.Elements,
		Branding: r.Branding,
		Style:    r.Style,
	}
}

// ListAssetsQuery holds the query parameters of GET /v1/assets.
type ListAssetsQuery struct {
	Industry string `form:"industry"`
	Page     int    `form:"page,default=1" binding:"omitempty,gte=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,gte=1,lte=100"`
}
