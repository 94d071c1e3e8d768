package handler

import (
	"github.com/gin-gonic/gin"

	"telco-enable-ai-api/internal/application/render"
	"telco-enable-ai-api/internal/interfaces/http/dto"
)

// AssetHandler serves asset generation and history endpoints.
type AssetHandler struct {
	renderer *render.Service
}

// NewAssetHandler creates an asset handler.
func NewAssetHandler(renderer *render.Service) *AssetHandler {
	return &AssetHandler{renderer: renderer}
}

// Render handles POST /v1/assets/render.
func (h *AssetHandler) Render(c *gin.Context) {
	var req dto.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	asset, err := h.renderer.Render(c.Request.Context(), req.ToEntity())
	if err != nil {
		dto.HandleError(c, err)
		return
	}
	dto.Created(c, asset)
}

// Get handles GET /v1/assets/:id.
func (h *AssetHandler) Get(c *gin.Context) {
	asset, err := h.renderer.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}
	dto.Success(c, asset)
}

// List handles GET /v1/assets.
func (h *AssetHandler) List(c *gin.Context) {
	var query dto.ListAssetsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	assets, total, err := h.renderer.List(c.Request.Context(), query.Industry, query.Page, query.PageSize)
	if err != nil {
		dto.HandleError(c, err)
		return
	}
	dto.SuccessWithPage(c, assets, dto.NewPageMeta(query.Page, query.PageSize, int(total)))
}
