package style

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"telco-enable-ai-api/internal/config"
	"telco-enable-ai-api/internal/domain/entity"
	"telco-enable-ai-api/internal/domain/repository"
	apperrors "telco-enable-ai-api/pkg/errors"
	"telco-enable-ai-api/pkg/logger"
	"telco-enable-ai-api/pkg/metrics"
	"telco-enable-ai-api/pkg/tracer"
)

// Fixed persistence namespaces.
const (
	nsPatterns = "style:patterns"
	nsProgress = "style:progress"
)

// Store owns the style pattern catalog and the learning-progress
// aggregate. The catalog is append/update-only: patterns are created
// by extraction or synthesis, mutated in place by Adjust and usage
// tracking, and never deleted within a process lifetime.
//
// All mutations are serialized under one lock so that "append pattern"
// and "persist catalog" form a single atomic unit; readers work
// against snapshots.
type Store struct {
	mu    sync.RWMutex
	kv    repository.KVStore
	brand config.BrandConfig
	newID repository.IDGenerator

	patterns []*entity.StylePattern
	progress entity.LearningProgress
}

// NewStore creates a store and loads persisted state. Storage read
// failures are logged and absorbed; the store starts empty in that case.
func NewStore(ctx context.Context, kv repository.KVStore, brand config.BrandConfig, newID repository.IDGenerator) *Store {
	s := &Store{
		kv:    kv,
		brand: brand,
		newID: newID,
	}
	s.load(ctx)
	metrics.StylePatterns.Set(float64(len(s.patterns)))
	return s
}

// load restores the catalog and progress from the KV store.
func (s *Store) load(ctx context.Context) {
	if s.kv == nil {
		return
	}

	if data, ok, err := s.kv.Get(ctx, nsPatterns); err != nil {
		logger.Warn(ctx, "failed to load style catalog, starting empty", "error", err.Error())
	} else if ok {
		if err := json.Unmarshal(data, &s.patterns); err != nil {
			logger.Warn(ctx, "corrupt style catalog, starting empty", "error", err.Error())
			s.patterns = nil
		}
	}

	if data, ok, err := s.kv.Get(ctx, nsProgress); err != nil {
		logger.Warn(ctx, "failed to load learning progress, starting empty", "error", err.Error())
	} else if ok {
		if err := json.Unmarshal(data, &s.progress); err != nil {
			logger.Warn(ctx, "corrupt learning progress, starting empty", "error", err.Error())
			s.progress = entity.LearningProgress{}
		}
	}
}

// persistLocked writes catalog and progress back to the KV store.
// Write failures are logged and absorbed; the in-memory state stays
// authoritative. Callers must hold the write lock.
func (s *Store) persistLocked(ctx context.Context) {
	if s.kv == nil {
		return
	}

	if data, err := json.Marshal(s.patterns); err == nil {
		if err := s.kv.Set(ctx, nsPatterns, data); err != nil {
			metrics.StoreWriteErrors.WithLabelValues(nsPatterns).Inc()
			logger.Error(ctx, "failed to persist style catalog", err)
		}
	}

	if data, err := json.Marshal(s.progress); err == nil {
		if err := s.kv.Set(ctx, nsProgress, data); err != nil {
			metrics.StoreWriteErrors.WithLabelValues(nsProgress).Inc()
			logger.Error(ctx, "failed to persist learning progress", err)
		}
	}
}

// ProcessUpload extracts style patterns from an uploaded reference
// file, appends them to the catalog, and updates learning progress.
// It returns the new patterns plus insight strings for the caller.
func (s *Store) ProcessUpload(ctx context.Context, upload entity.ReferenceUpload) ([]*entity.StylePattern, []string, error) {
	ctx, span := tracer.Start(ctx, "style.ProcessUpload")
	defer span.End()

	if strings.TrimSpace(upload.Filename) == "" {
		metrics.StyleUploadsTotal.WithLabelValues(string(upload.Kind), "rejected").Inc()
		return nil, nil, apperrors.ErrInvalidParam.WithDetail("filename is required")
	}
	if upload.Kind == "" {
		upload.Kind = entity.ParseMediaKind("", upload.Filename)
	}

	pattern := s.extract(upload)

	s.mu.Lock()
	s.patterns = append(s.patterns, pattern)
	s.progress.RecordExtraction(1, pattern.Confidence)
	s.progress.AddImprovement(fmt.Sprintf("learned %s style from %s", upload.Kind, upload.Filename))
	if upload.Industry != "" {
		s.progress.SetIndustryStyle(upload.Industry, pattern.Name)
	}
	insights := insightsFor(s.progress, pattern)
	s.persistLocked(ctx)
	catalogSize := len(s.patterns)
	confidence := s.progress.StyleConfidence
	s.mu.Unlock()

	metrics.StyleUploadsTotal.WithLabelValues(string(upload.Kind), "ok").Inc()
	metrics.StylePatterns.Set(float64(catalogSize))
	metrics.StyleConfidence.Set(confidence)

	logger.Info(ctx, "reference upload processed",
		"filename", upload.Filename,
		"kind", upload.Kind,
		"catalog_size", catalogSize,
	)
	return []*entity.StylePattern{pattern}, insights, nil
}

// StyleFor synthesizes a style for the given content type and industry
// by overlaying the industry accent onto the brand defaults. It always
// succeeds and never consults external state.
func (s *Store) StyleFor(ctx context.Context, contentType, industry string) *entity.StylePattern {
	_, span := tracer.Start(ctx, "style.StyleFor")
	defer span.End()

	colors, typography, layout, elements := brandDefaults(s.brand)
	if acc, ok := industryAccents[industry]; ok {
		colors.Accent = acc.Accent
		elements.Patterns = append(elements.Patterns, acc.Patterns...)
	}

	name := fmt.Sprintf("%s %s style", s.brand.Name, contentType)
	if industry != "" {
		name = fmt.Sprintf("%s %s style for %s", s.brand.Name, contentType, industry)
	}

	now := time.Now()
	return &entity.StylePattern{
		ID:          s.newID(),
		Name:        name,
		Source:      "brand guidelines",
		Type:        entity.PatternTypeSynthesized,
		Confidence:  0.9,
		Colors:      colors,
		Typography:  typography,
		Layout:      layout,
		Brand:       elements,
		SuccessRate: 0.5,
		CreatedAt:   now,
		LastUsed:    now,
	}
}

// RecommendationsFor returns catalog patterns with confidence above
// 0.7 whose name mentions the content type or industry. When nothing
// matches it falls back to a fresh synthesized style.
func (s *Store) RecommendationsFor(ctx context.Context, contentType, industry string) []*entity.StylePattern {
	_, span := tracer.Start(ctx, "style.RecommendationsFor")
	defer span.End()

	ct := strings.ToLower(contentType)
	ind := strings.ToLower(industry)

	s.mu.RLock()
	var matched []*entity.StylePattern
	for _, p := range s.patterns {
		if p.Confidence <= 0.7 {
			continue
		}
		name := strings.ToLower(p.Name)
		if (ct != "" && strings.Contains(name, ct)) || (ind != "" && strings.Contains(name, ind)) {
			matched = append(matched, p)
		}
	}
	s.mu.RUnlock()

	if len(matched) == 0 {
		return []*entity.StylePattern{s.StyleFor(ctx, contentType, industry)}
	}
	return matched
}

// Adjustment is a partial overlay applied to a catalog pattern.
type Adjustment struct {
	Name       string                `json:"name,omitempty"`
	Confidence *float64              `json:"confidence,omitempty"`
	Colors     *entity.ColorPalette  `json:"colors,omitempty"`
	Typography *entity.Typography    `json:"typography,omitempty"`
	Layout     *entity.Layout        `json:"layout,omitempty"`
	Brand      *entity.BrandElements `json:"brand,omitempty"`
}

// Adjust overlays fields onto the matching catalog entry in place,
// marks it adjusted, and persists the catalog.
func (s *Store) Adjust(ctx context.Context, patternID string, adj Adjustment) (*entity.StylePattern, error) {
	ctx, span := tracer.Start(ctx, "style.Adjust")
	defer span.End()

	if strings.TrimSpace(patternID) == "" {
		return nil, apperrors.ErrInvalidParam.WithDetail("pattern id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pattern := s.findLocked(patternID)
	if pattern == nil {
		return nil, apperrors.ErrPatternNotFound
	}

	if adj.Name != "" {
		pattern.Name = adj.Name
	}
	if adj.Confidence != nil {
		pattern.Confidence = clamp01(*adj.Confidence)
	}
	if adj.Colors != nil {
		pattern.Colors = *adj.Colors
	}
	if adj.Typography != nil {
		pattern.Typography = *adj.Typography
	}
	if adj.Layout != nil {
		pattern.Layout = *adj.Layout
	}
	if adj.Brand != nil {
		pattern.Brand = *adj.Brand
	}
	pattern.MarkAdjusted()

	s.progress.AddImprovement(fmt.Sprintf("adjusted style %q", pattern.Name))
	s.persistLocked(ctx)

	copied := *pattern
	return &copied, nil
}

// MarkUsed bumps usage tracking for a catalog pattern, if present.
func (s *Store) MarkUsed(ctx context.Context, patternID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pattern := s.findLocked(patternID); pattern != nil {
		pattern.Touch()
		s.persistLocked(ctx)
	}
}

// Progress returns a snapshot of the learning-progress aggregate.
func (s *Store) Progress() entity.LearningProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.progress
	snapshot.Improvements = append([]string(nil), s.progress.Improvements...)
	if s.progress.IndustryStyles != nil {
		snapshot.IndustryStyles = make(map[string]string, len(s.progress.IndustryStyles))
		for k, v := range s.progress.IndustryStyles {
			snapshot.IndustryStyles[k] = v
		}
	}
	return snapshot
}

// Insights returns the accumulated improvement notes.
func (s *Store) Insights() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.progress.Improvements...)
}

// Patterns returns a snapshot of the catalog.
func (s *Store) Patterns() []*entity.StylePattern {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.StylePattern, len(s.patterns))
	for i, p := range s.patterns {
		copied := *p
		out[i] = &copied
	}
	return out
}

// findLocked locates a pattern by id. Callers must hold a lock.
func (s *Store) findLocked(id string) *entity.StylePattern {
	for _, p := range s.patterns {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
