package handler

import (
	"github.com/gin-gonic/gin"

	"telco-enable-ai-api/internal/application/style"
	"telco-enable-ai-api/internal/domain/entity"
	"telco-enable-ai-api/internal/interfaces/http/dto"
	apperrors "telco-enable-ai-api/pkg/errors"
)

// StyleHandler serves the style catalog endpoints.
type StyleHandler struct {
	store *style.Store
}

// NewStyleHandler creates a style handler.
func NewStyleHandler(store *style.Store) *StyleHandler {
	return &StyleHandler{store: store}
}

// Upload handles POST /v1/styles/uploads.
func (h *StyleHandler) Upload(c *gin.Context) {
	var req dto.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	patterns, insights, err := h.store.ProcessUpload(c.Request.Context(), req.ToUpload())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	dto.Created(c, dto.UploadResponse{
		Patterns: patterns,
		Insights: insights,
	})
}

// List handles GET /v1/styles.
func (h *StyleHandler) List(c *gin.Context) {
	dto.Success(c, h.store.Patterns())
}

// Recommendations handles GET /v1/styles/recommendations.
func (h *StyleHandler) Recommendations(c *gin.Context) {
	contentType := c.Query("content_type")
	industry := c.Query("industry")

	recs := h.store.RecommendationsFor(c.Request.Context(), contentType, industry)
	dto.Success(c, recs)
}

// Synthesize handles POST /v1/styles/synthesize.
func (h *StyleHandler) Synthesize(c *gin.Context) {
	var req dto.SynthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	pattern := h.store.StyleFor(c.Request.Context(), req.ContentType, req.Industry)
	dto.Success(c, pattern)
}

// Adjust handles PATCH /v1/styles/:id.
func (h *StyleHandler) Adjust(c *gin.Context) {
	var req dto.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	pattern, err := h.store.Adjust(c.Request.Context(), c.Param("id"), req.ToAdjustment())
	if err != nil {
		dto.HandleError(c, err)
		return
	}
	dto.Success(c, pattern)
}

// Combine handles POST /v1/styles/combine.
func (h *StyleHandler) Combine(c *gin.Context) {
	var req dto.CombineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	catalog := h.store.Patterns()
	byID := make(map[string]*entity.StylePattern, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	selected := make([]*entity.StylePattern, 0, len(req.PatternIDs))
	for _, id := range req.PatternIDs {
		p, ok := byID[id]
		if !ok {
			dto.HandleError(c, apperrors.ErrPatternNotFound.WithDetail(id))
			return
		}
		selected = append(selected, p)
	}

	combined, err := h.store.Combine(selected)
	if err != nil {
		dto.HandleError(c, err)
		return
	}
	dto.Success(c, combined)
}

// Outcome handles POST /v1/styles/:id/outcomes.
func (h *StyleHandler) Outcome(c *gin.Context) {
	var req dto.OutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	if err := h.store.RecordOutcome(c.Request.Context(), c.Param("id"), *req.Success); err != nil {
		dto.HandleError(c, err)
		return
	}
	dto.Success(c, gin.H{"recorded": true})
}

// Progress handles GET /v1/styles/progress.
func (h *StyleHandler) Progress(c *gin.Context) {
	dto.Success(c, h.store.Progress())
}

// Insights handles GET /v1/styles/insights.
func (h *StyleHandler) Insights(c *gin.Context) {
	dto.Success(c, h.store.Insights())
}
