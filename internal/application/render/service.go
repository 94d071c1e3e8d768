// Package render implements asset generation: a local vector
// compositor, a remote placeholder delegate, and the service that
// selects between them and records results.
package render

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"telco-enable-ai-api/internal/application/style"
	"telco-enable-ai-api/internal/domain/entity"
	"telco-enable-ai-api/internal/domain/repository"
	apperrors "telco-enable-ai-api/pkg/errors"
	"telco-enable-ai-api/pkg/logger"
	"telco-enable-ai-api/pkg/metrics"
	"telco-enable-ai-api/pkg/tracer"
)

// Strategy is a rendering backend.
type Strategy interface {
	Name() string
	Render(ctx context.Context, req entity.RenderRequest, style *entity.StylePattern) (artifactRef string, err error)
}

// Service renders assets. Once a request passes validation the render
// cannot fail: internal errors and panics degrade into an asset with
// an empty artifact reference and a description of what went wrong.
type Service struct {
	strategy Strategy
	styles   *style.Store
	assets   repository.AssetRepository
	newID    repository.IDGenerator

	// identical concurrent renders collapse to one canvas pass
	group singleflight.Group
}

// NewService wires a renderer service.
func NewService(strategy Strategy, styles *style.Store, assets repository.AssetRepository, newID repository.IDGenerator) *Service {
	return &Service{
		strategy: strategy,
		styles:   styles,
		assets:   assets,
		newID:    newID,
	}
}

// Render produces an asset for the request. Only validation errors are
// returned; rendering failures come back as a degraded asset.
func (s *Service) Render(ctx context.Context, req entity.RenderRequest) (asset *entity.GeneratedAsset, err error) {
	ctx, span := tracer.Start(ctx, "render.Render")
	defer span.End()

	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.ErrInvalidParam.WithDetail("title is required")
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "render panicked", fmt.Errorf("%v", r), "title", req.Title)
			asset = s.failureAsset(req, fmt.Sprintf("internal error: %v", r))
			err = nil
			s.persist(ctx, asset)
		}
		status := "ok"
		if asset.IsFailure() {
			status = "degraded"
		}
		metrics.RenderTotal.WithLabelValues(s.strategy.Name(), status).Inc()
		metrics.RenderDuration.WithLabelValues(s.strategy.Name()).Observe(time.Since(start).Seconds())
	}()

	pattern := s.resolveStyle(ctx, req)

	result, renderErr, _ := s.group.Do(renderKey(req, pattern), func() (interface{}, error) {
		return s.strategy.Render(ctx, req, pattern)
	})
	ref, _ := result.(string)
	if renderErr != nil {
		logger.Error(ctx, "render failed, returning degraded asset", renderErr,
			"strategy", s.strategy.Name(), "title", req.Title)
		asset = s.failureAsset(req, renderErr.Error())
		s.persist(ctx, asset)
		return asset, nil
	}

	asset = &entity.GeneratedAsset{
		ID:          s.newID(),
		Title:       req.Title,
		Kind:        entity.AssetKindImage,
		Industry:    req.Industry,
		ArtifactRef: ref,
		Description: s.describe(req, pattern),
		GeneratedAt: time.Now(),
		StyleUsed:   pattern.Name,
	}
	s.persist(ctx, asset)

	logger.Info(ctx, "asset rendered",
		"asset_id", asset.ID,
		"strategy", s.strategy.Name(),
		"style", pattern.Name,
	)
	return asset, nil
}

// renderKey identifies a render for deduplication.
func renderKey(req entity.RenderRequest, pattern *entity.StylePattern) string {
	return strings.Join([]string{
		req.Title,
		req.Industry,
		strings.Join(req.Elements, ","),
		pattern.ID,
	}, "|")
}

// resolveStyle picks the style descriptor for a request: a named
// catalog pattern when the request asks for one, otherwise the best
// recommendation for the industry.
func (s *Service) resolveStyle(ctx context.Context, req entity.RenderRequest) *entity.StylePattern {
	if req.Style != "" {
		want := strings.ToLower(req.Style)
		for _, p := range s.styles.Patterns() {
			if p.ID == req.Style || strings.Contains(strings.ToLower(p.Name), want) {
				s.styles.MarkUsed(ctx, p.ID)
				return p
			}
		}
	}

	recs := s.styles.RecommendationsFor(ctx, string(entity.AssetKindImage), req.Industry)
	pattern := recs[0]
	s.styles.MarkUsed(ctx, pattern.ID)
	return pattern
}

// failureAsset builds the degraded result for a failed render.
func (s *Service) failureAsset(req entity.RenderRequest, reason string) *entity.GeneratedAsset {
	return &entity.GeneratedAsset{
		ID:          s.newID(),
		Title:       fmt.Sprintf("%s (rendering unavailable)", req.Title),
		Kind:        entity.AssetKindImage,
		Industry:    req.Industry,
		ArtifactRef: "",
		Description: fmt.Sprintf("asset could not be rendered: %s", reason),
		GeneratedAt: time.Now(),
	}
}

// describe summarizes what was rendered for the asset record.
func (s *Service) describe(req entity.RenderRequest, pattern *entity.StylePattern) string {
	desc := fmt.Sprintf("%s asset styled as %q", orDefault(req.Industry, "general"), pattern.Name)
	if len(req.Elements) > 0 {
		desc += fmt.Sprintf(" featuring %s", strings.Join(req.Elements, ", "))
	}
	return desc
}

// persist records the asset in history. Storage failures are logged
// and absorbed; the rendered asset is still returned to the caller.
func (s *Service) persist(ctx context.Context, asset *entity.GeneratedAsset) {
	if s.assets == nil {
		return
	}
	if err := s.assets.Create(ctx, asset); err != nil {
		logger.Error(ctx, "failed to persist asset history", err, "asset_id", asset.ID)
	}
}

// Get returns one asset from history.
func (s *Service) Get(ctx context.Context, id string) (*entity.GeneratedAsset, error) {
	ctx, span := tracer.Start(ctx, "render.Get")
	defer span.End()

	if strings.TrimSpace(id) == "" {
		return nil, apperrors.ErrInvalidParam.WithDetail("asset id is required")
	}
	return s.assets.GetByID(ctx, id)
}

// List returns asset history filtered by industry.
func (s *Service) List(ctx context.Context, industry string, page, pageSize int) ([]*entity.GeneratedAsset, int64, error) {
	ctx, span := tracer.Start(ctx, "render.List")
	defer span.End()

	return s.assets.List(ctx, industry, repository.NewPagination(page, pageSize))
}
