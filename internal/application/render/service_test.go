package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"telco-enable-ai-api/internal/application/style"
	"telco-enable-ai-api/internal/domain/entity"
	"telco-enable-ai-api/internal/domain/repository"
)

// stubStrategy returns a fixed result, error, or panic.
type stubStrategy struct {
	ref      string
	err      error
	panicMsg string
}

func (s *stubStrategy) Name() string { return "stub" }

func (s *stubStrategy) Render(context.Context, entity.RenderRequest, *entity.StylePattern) (string, error) {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.ref, s.err
}

// memAssetRepo is an in-memory asset history.
type memAssetRepo struct {
	mu       sync.Mutex
	assets   []*entity.GeneratedAsset
	failAll  bool
	lastByID map[string]*entity.GeneratedAsset
}

func newMemAssetRepo() *memAssetRepo {
	return &memAssetRepo{lastByID: make(map[string]*entity.GeneratedAsset)}
}

func (m *memAssetRepo) Create(_ context.Context, asset *entity.GeneratedAsset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errors.New("db down")
	}
	m.assets = append(m.assets, asset)
	m.lastByID[asset.ID] = asset
	return nil
}

func (m *memAssetRepo) GetByID(_ context.Context, id string) (*entity.GeneratedAsset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.lastByID[id]; ok {
		return a, nil
	}
	return nil, errors.New("not found")
}

func (m *memAssetRepo) List(_ context.Context, industry string, _ repository.Pagination) ([]*entity.GeneratedAsset, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.GeneratedAsset
	for _, a := range m.assets {
		if industry == "" || a.Industry == industry {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func newTestService(strategy Strategy, repo repository.AssetRepository) *Service {
	var seq int
	newID := func() string {
		seq++
		return fmt.Sprintf("asset-%d", seq)
	}
	styles := style.NewStore(context.Background(), nil, testBrand, newID)
	return NewService(strategy, styles, repo, newID)
}

func TestRenderSuccess(t *testing.T) {
	repo := newMemAssetRepo()
	svc := newTestService(&stubStrategy{ref: "data:image/png;base64,AAAA"}, repo)

	asset, err := svc.Render(context.Background(), entity.RenderRequest{
		Title:    "Retail Bundle",
		Industry: "retail",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if asset.IsFailure() {
		t.Fatal("successful render flagged as failure")
	}
	if asset.StyleUsed == "" {
		t.Error("asset missing style attribution")
	}
	if len(repo.assets) != 1 {
		t.Errorf("history size = %d, want 1", len(repo.assets))
	}
}

func TestRenderStrategyErrorDegrades(t *testing.T) {
	svc := newTestService(&stubStrategy{err: errors.New("canvas exploded")}, newMemAssetRepo())

	asset, err := svc.Render(context.Background(), entity.RenderRequest{Title: "Broken"})
	if err != nil {
		t.Fatalf("render failures must not surface as errors, got %v", err)
	}
	if !asset.IsFailure() {
		t.Fatal("expected a degraded asset")
	}
	if !strings.Contains(asset.Description, "canvas exploded") {
		t.Errorf("description = %q, want failure reason", asset.Description)
	}
}

func TestRenderPanicDegrades(t *testing.T) {
	repo := newMemAssetRepo()
	svc := newTestService(&stubStrategy{panicMsg: "boom"}, repo)

	asset, err := svc.Render(context.Background(), entity.RenderRequest{Title: "Panicky"})
	if err != nil {
		t.Fatalf("panics must not surface as errors, got %v", err)
	}
	if !asset.IsFailure() {
		t.Fatal("expected a degraded asset after panic")
	}
	if len(repo.assets) != 1 {
		t.Fatalf("history size = %d, want the degraded asset recorded", len(repo.assets))
	}
	if !repo.assets[0].IsFailure() {
		t.Error("recorded asset not flagged as failure")
	}
}

func TestRenderRejectsMissingTitle(t *testing.T) {
	svc := newTestService(&stubStrategy{ref: "x"}, newMemAssetRepo())

	if _, err := svc.Render(context.Background(), entity.RenderRequest{Title: "  "}); err == nil {
		t.Fatal("expected validation error for missing title")
	}
}

func TestRenderSurvivesHistoryOutage(t *testing.T) {
	repo := newMemAssetRepo()
	repo.failAll = true
	svc := newTestService(&stubStrategy{ref: "data:image/png;base64,AAAA"}, repo)

	asset, err := svc.Render(context.Background(), entity.RenderRequest{Title: "Resilient"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if asset.IsFailure() {
		t.Fatal("history outage must not degrade the render")
	}
}

func TestRenderUsesRequestedStyle(t *testing.T) {
	repo := newMemAssetRepo()
	svc := newTestService(&stubStrategy{ref: "data:image/png;base64,AAAA"}, repo)

	if _, _, err := svc.styles.ProcessUpload(context.Background(), entity.ReferenceUpload{
		Filename: "flagship.png",
	}); err != nil {
		t.Fatalf("ProcessUpload: %v", err)
	}

	asset, err := svc.Render(context.Background(), entity.RenderRequest{
		Title: "Styled",
		Style: "flagship",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(asset.StyleUsed, "flagship.png") {
		t.Errorf("style used = %q, want the named catalog pattern", asset.StyleUsed)
	}
}
