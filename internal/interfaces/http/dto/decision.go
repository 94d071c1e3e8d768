package dto

import (
	"telco-enable-ai-api/internal/domain/entity"
)

// DecideRequest is the body of POST /v1/decisions.
type DecideRequest struct {
	Query            string            `json:"query" binding:"required"`
	Industry         string            `json:"industry"`
	ContentType      string            `json:"content_type"`
	Urgency          string            `json:"urgency" binding:"omitempty,oneof=low medium high"`
	Complexity       string            `json:"complexity" binding:"omitempty,oneof=simple moderate complex"`
	Confidence       float64           `json:"confidence"`
	RelevantProducts []string          `json:"relevant_products"`
	Preferences      map[string]string `json:"preferences"`
	History          []string          `json:"history"`
}

// ToContext converts the request to the decision input.
func (r *DecideRequest) ToContext() entity.DecisionContext {
	return entity.DecisionContext{
		Query:       r.Query,
		Industry:    r.Industry,
		ContentType: r.ContentType,
		Urgency:     entity.Urgency(r.Urgency),
		Complexity:  entity.Complexity(r.Complexity),
		Knowledge: entity.KnowledgeResult{
			Confidence:       r.Confidence,
			RelevantProducts: r.RelevantProducts,
		},
		Preferences: r.Preferences,
		History:     r.History,
	}
}

// DecideResponse is the body of a decision result.
type DecideResponse struct {
	Action        string   `json:"action"`
	Priority      string   `json:"priority"`
	Reasoning     string   `json:"reasoning"`
	MediaTypes    []string `json:"media_types"`
	ContentFocus  string   `json:"content_focus,omitempty"`
	IndustryFocus string   `json:"industry_focus,omitempty"`
	EstimatedTime string   `json:"estimated_time"`
}

// FromDecision converts a decision to its response body.
func FromDecision(d entity.Decision) DecideResponse {
	return DecideResponse{
		Action:        string(d.Action),
		Priority:      string(d.Priority),
		Reasoning:     d.Reasoning,
		MediaTypes:    d.MediaTypes,
		ContentFocus:  d.ContentFocus,
		IndustryFocus: d.IndustryFocus,
		EstimatedTime: d.EstimatedTime,
	}
}
