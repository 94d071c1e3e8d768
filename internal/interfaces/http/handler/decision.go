package handler

import (
	"github.com/gin-gonic/gin"

	"telco-enable-ai-api/internal/application/decision"
	"telco-enable-ai-api/internal/interfaces/http/dto"
)

// DecisionHandler serves the decision endpoint.
type DecisionHandler struct {
	engine *decision.Engine
}

// NewDecisionHandler creates a decision handler.
func NewDecisionHandler(engine *decision.Engine) *DecisionHandler {
	return &DecisionHandler{engine: engine}
}

// Decide handles POST /v1/decisions.
func (h *DecisionHandler) Decide(c *gin.Context) {
	var req dto.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	result := h.engine.Decide(c.Request.Context(), req.ToContext())
	dto.Success(c, dto.FromDecision(result))
}
