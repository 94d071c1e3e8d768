// Package entity defines the domain model.
package entity

// Urgency is the caller-reported urgency of a request.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Complexity is the caller-reported complexity of a request.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// Action is the generation action selected by the decision engine.
type Action string

const (
	ActionGenerateImage    Action = "generate_image"
	ActionGenerateContent  Action = "generate_content"
	ActionGenerateBoth     Action = "generate_both"
	ActionAskClarification Action = "ask_clarification"
	ActionProvideInsights  Action = "provide_insights"
)

// Priority is the execution priority of a decision.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Media type tags attached to decisions.
const (
	MediaImage    = "image"
	MediaBrochure = "brochure"
	MediaOnePager = "one_pager"
	MediaSlide    = "slide"
)

// KnowledgeResult is the already-computed output of the external
// product-knowledge lookup.
type KnowledgeResult struct {
	Confidence       float64  `json:"confidence"`
	RelevantProducts []string `json:"relevant_products"`
}

// DecisionContext is the immutable input of a single Decide call.
type DecisionContext struct {
	Query       string            `json:"query"`
	Industry    string            `json:"industry"`
	ContentType string            `json:"content_type"`
	Urgency     Urgency           `json:"urgency"`
	Complexity  Complexity        `json:"complexity"`
	Knowledge   KnowledgeResult   `json:"knowledge"`
	Preferences map[string]string `json:"preferences,omitempty"`
	// History holds prior conversation topics, most recent last.
	History []string `json:"history,omitempty"`
}

// Decision is the structured output of the decision engine.
type Decision struct {
	Action        Action   `json:"action"`
	Priority      Priority `json:"priority"`
	Reasoning     string   `json:"reasoning"`
	MediaTypes    []string `json:"media_types"`
	ContentFocus  string   `json:"content_focus,omitempty"`
	IndustryFocus string   `json:"industry_focus,omitempty"`
	EstimatedTime string   `json:"estimated_time"`
}

// HasMedia reports whether the decision carries the given media tag.
func (d *Decision) HasMedia(media string) bool {
	for _, m := range d.MediaTypes {
		if m == media {
			return true
		}
	}
	return false
}
