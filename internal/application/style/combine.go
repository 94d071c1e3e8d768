package style

import (
	"context"
	"fmt"
	"time"

	"telco-enable-ai-api/internal/domain/entity"
	apperrors "telco-enable-ai-api/pkg/errors"
	"telco-enable-ai-api/pkg/tracer"
)

// emaAlpha is the smoothing factor for success-rate updates.
const emaAlpha = 0.1

// Combine merges multiple style patterns into one descriptor.
// Per axis it picks from the strongest source: colors and layout come
// from the pattern with the best success rate, typography and brand
// elements from the pattern with the highest confidence.
//
// Combining an empty set is an error; a single pattern is returned
// unchanged.
func (s *Store) Combine(styles []*entity.StylePattern) (*entity.StylePattern, error) {
	if len(styles) == 0 {
		return nil, apperrors.ErrEmptyStyleSet
	}
	if len(styles) == 1 {
		return styles[0], nil
	}

	bySuccess := styles[0]
	byConfidence := styles[0]
	var confidenceSum float64
	for _, p := range styles {
		if p.SuccessRate > bySuccess.SuccessRate {
			bySuccess = p
		}
		if p.Confidence > byConfidence.Confidence {
			byConfidence = p
		}
		confidenceSum += p.Confidence
	}

	now := time.Now()
	return &entity.StylePattern{
		ID:          s.newID(),
		Name:        fmt.Sprintf("combined style (%d sources)", len(styles)),
		Source:      "combination",
		Type:        entity.PatternTypeSynthesized,
		Confidence:  confidenceSum / float64(len(styles)),
		Colors:      bySuccess.Colors,
		Typography:  byConfidence.Typography,
		Layout:      bySuccess.Layout,
		Brand:       byConfidence.Brand,
		SuccessRate: bySuccess.SuccessRate,
		CreatedAt:   now,
		LastUsed:    now,
	}, nil
}

// RecordOutcome folds a render outcome into the pattern's success rate
// using an exponential moving average, then persists the catalog.
func (s *Store) RecordOutcome(ctx context.Context, patternID string, success bool) error {
	ctx, span := tracer.Start(ctx, "style.RecordOutcome")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	pattern := s.findLocked(patternID)
	if pattern == nil {
		return apperrors.ErrPatternNotFound
	}

	outcome := 0.0
	if success {
		outcome = 1.0
	}
	pattern.SuccessRate = (1-emaAlpha)*pattern.SuccessRate + emaAlpha*outcome
	pattern.Touch()

	s.persistLocked(ctx)
	return nil
}
