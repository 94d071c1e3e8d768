// Package decision implements the request-routing rule cascade.
package decision

import (
	"context"
	"fmt"
	"strings"
	"time"

	"telco-enable-ai-api/internal/domain/entity"
	"telco-enable-ai-api/pkg/logger"
	"telco-enable-ai-api/pkg/metrics"
	"telco-enable-ai-api/pkg/tracer"
)

// Engine classifies a request context into a single generation decision.
//
// The cascade is total: every context yields exactly one decision, and
// internal failures resolve to a fixed fallback instead of an error.
type Engine struct{}

// NewEngine creates a decision engine.
func NewEngine() *Engine {
	return &Engine{}
}

// baseRule selects an initial decision; the first rule that fires wins.
type baseRule func(a queryAnalysis, dctx entity.DecisionContext, p IndustryProfile) *entity.Decision

// optimizer refines the selected decision; later steps may only
// narrow or override, never invalidate, earlier choices.
type optimizer func(d *entity.Decision, dctx entity.DecisionContext)

// The ordering of both slices is the contract: base rules are strict
// priority (first match wins), optimizers always all run, in order.
var (
	baseRules = []baseRule{
		ruleUrgent,
		ruleInsights,
		ruleImage,
		ruleContent,
	}

	optimizers = []optimizer{
		applyPreferredMedia,
		applyHistoryImageBias,
		applyComplexityEscalation,
		applyClarificationGuard,
	}
)

// Decide runs the cascade. It never returns an error: any internal
// failure resolves to the fixed fallback decision.
func (e *Engine) Decide(ctx context.Context, dctx entity.DecisionContext) (out entity.Decision) {
	ctx, span := tracer.Start(ctx, "decision.Decide")
	defer span.End()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "decision cascade panicked", fmt.Errorf("%v", r),
				"query", dctx.Query)
			out = fallbackDecision()
			metrics.DecisionFallbackTotal.Inc()
		}
		metrics.DecisionDuration.Observe(time.Since(start).Seconds())
		metrics.DecisionTotal.WithLabelValues(string(out.Action), string(out.Priority)).Inc()
	}()

	analysis := analyzeQuery(dctx.Query)
	profile := profileFor(dctx.Industry)

	d := selectBase(analysis, dctx, profile)
	for _, opt := range optimizers {
		opt(d, dctx)
	}

	logger.Debug(ctx, "decision made",
		"action", d.Action,
		"priority", d.Priority,
		"media", d.MediaTypes,
	)
	return *d
}

// fallbackDecision is the fixed decision returned on internal failure.
func fallbackDecision() entity.Decision {
	return entity.Decision{
		Action:        entity.ActionGenerateContent,
		Priority:      entity.PriorityMedium,
		Reasoning:     "fallback due to processing error",
		MediaTypes:    []string{entity.MediaBrochure},
		EstimatedTime: "2-3 minutes",
	}
}

// selectBase runs the base rules in strict priority order.
func selectBase(a queryAnalysis, dctx entity.DecisionContext, p IndustryProfile) *entity.Decision {
	for _, rule := range baseRules {
		if d := rule(a, dctx, p); d != nil {
			return d
		}
	}
	return ruleDefault(dctx, p)
}

// ruleUrgent: urgency phrase or high reported urgency forces a full
// generation at top priority.
func ruleUrgent(a queryAnalysis, dctx entity.DecisionContext, p IndustryProfile) *entity.Decision {
	if !a.urgent && dctx.Urgency != entity.UrgencyHigh {
		return nil
	}
	return &entity.Decision{
		Action:        entity.ActionGenerateBoth,
		Priority:      entity.PriorityHigh,
		Reasoning:     "urgent request detected; generating image and content together",
		MediaTypes:    []string{entity.MediaImage, entity.MediaBrochure},
		ContentFocus:  p.Focus,
		IndustryFocus: dctx.Industry,
		EstimatedTime: "immediate",
	}
}

// ruleInsights: an explanation request or low knowledge confidence
// routes to insights instead of generation.
func ruleInsights(a queryAnalysis, dctx entity.DecisionContext, p IndustryProfile) *entity.Decision {
	if !a.wantsInsight && dctx.Knowledge.Confidence >= 0.5 {
		return nil
	}
	return &entity.Decision{
		Action:        entity.ActionProvideInsights,
		Priority:      entity.PriorityHigh,
		Reasoning:     "request calls for explanation or the knowledge match is weak; providing insights first",
		ContentFocus:  "educational",
		IndustryFocus: dctx.Industry,
		EstimatedTime: "1-2 minutes",
	}
}

// ruleImage: explicit image intent in the query or content type.
func ruleImage(a queryAnalysis, dctx entity.DecisionContext, p IndustryProfile) *entity.Decision {
	if !a.wantsImage && dctx.ContentType != "image" {
		return nil
	}
	return &entity.Decision{
		Action:        entity.ActionGenerateImage,
		Priority:      entity.PriorityHigh,
		Reasoning:     "image intent detected in the request",
		MediaTypes:    []string{entity.MediaImage},
		IndustryFocus: dctx.Industry,
		EstimatedTime: "1-2 minutes",
	}
}

// ruleContent: explicit content intent in the query.
func ruleContent(a queryAnalysis, dctx entity.DecisionContext, p IndustryProfile) *entity.Decision {
	if !a.wantsContent {
		return nil
	}
	return &entity.Decision{
		Action:        entity.ActionGenerateContent,
		Priority:      entity.PriorityMedium,
		Reasoning:     "content intent detected in the request",
		MediaTypes:    p.Media,
		ContentFocus:  p.Focus,
		IndustryFocus: dctx.Industry,
		EstimatedTime: "2-3 minutes",
	}
}

// ruleDefault: no explicit intent; follow the industry profile.
func ruleDefault(dctx entity.DecisionContext, p IndustryProfile) *entity.Decision {
	estimated := "3-5 minutes"
	if p.Urgency == entity.PriorityHigh {
		estimated = "1-2 minutes"
	}
	return &entity.Decision{
		Action:        entity.ActionGenerateBoth,
		Priority:      p.Urgency,
		Reasoning:     "no explicit intent; generating the industry's preferred assets",
		MediaTypes:    p.Media,
		ContentFocus:  p.Focus,
		IndustryFocus: dctx.Industry,
		EstimatedTime: estimated,
	}
}

// applyPreferredMedia replaces the media list verbatim when the caller
// declared a preference.
func applyPreferredMedia(d *entity.Decision, dctx entity.DecisionContext) {
	pref, ok := dctx.Preferences["preferredMedia"]
	if !ok || strings.TrimSpace(pref) == "" {
		return
	}
	parts := strings.Split(pref, ",")
	media := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			media = append(media, t)
		}
	}
	if len(media) > 0 {
		d.MediaTypes = media
	}
}

// applyHistoryImageBias forces image generation when the most recent
// conversation topic was about images.
func applyHistoryImageBias(d *entity.Decision, dctx entity.DecisionContext) {
	if len(dctx.History) == 0 {
		return
	}
	last := strings.ToLower(dctx.History[len(dctx.History)-1])
	if strings.Contains(last, "image") {
		d.MediaTypes = []string{entity.MediaImage}
		d.Action = entity.ActionGenerateImage
	}
}

// applyComplexityEscalation escalates complex requests to a full,
// high-priority generation with a longer estimate.
func applyComplexityEscalation(d *entity.Decision, dctx entity.DecisionContext) {
	if dctx.Complexity != entity.ComplexityComplex {
		return
	}
	d.Action = entity.ActionGenerateBoth
	d.Priority = entity.PriorityHigh
	d.EstimatedTime = "5-10 minutes"
}

// applyClarificationGuard asks the user to clarify when the knowledge
// lookup matched no products at all.
func applyClarificationGuard(d *entity.Decision, dctx entity.DecisionContext) {
	if len(dctx.Knowledge.RelevantProducts) > 0 {
		return
	}
	d.Action = entity.ActionAskClarification
	d.Reasoning += "; no matching products found, asking for clarification"
}
