package style

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"telco-enable-ai-api/internal/config"
	"telco-enable-ai-api/internal/domain/entity"
	apperrors "telco-enable-ai-api/pkg/errors"
)

// fakeKV is an in-memory KV store; failWrites simulates a storage outage.
type fakeKV struct {
	mu         sync.Mutex
	data       map[string][]byte
	failReads  bool
	failWrites bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, ns string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return nil, false, errors.New("kv read failed")
	}
	data, ok := f.data[ns]
	return data, ok, nil
}

func (f *fakeKV) Set(_ context.Context, ns string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errors.New("kv write failed")
	}
	f.data[ns] = data
	return nil
}

var testBrand = config.BrandConfig{
	Name:            "TelcoConnect",
	Wordmark:        "TELCOCONNECT",
	PrimaryColor:    "#1B365D",
	SecondaryColor:  "#4A90D9",
	AccentColor:     "#FF6B35",
	BackgroundColor: "#FFFFFF",
	TextColor:       "#2C3E50",
	PrimaryFont:     "Helvetica Neue",
	HeadingFont:     "Helvetica Neue Bold",
	LogoRef:         "telco-connect-logo",
}

func newTestStore(kv *fakeKV) *Store {
	var seq int
	return NewStore(context.Background(), kv, testBrand, func() string {
		seq++
		return fmt.Sprintf("pattern-%d", seq)
	})
}

func TestProcessUploadImage(t *testing.T) {
	store := newTestStore(newFakeKV())

	patterns, insights, err := store.ProcessUpload(context.Background(), entity.ReferenceUpload{
		Filename: "storefront-hero.png",
		Industry: "retail",
	})
	if err != nil {
		t.Fatalf("ProcessUpload: %v", err)
	}
	if len(patterns) != 1 {
		t.Fatalf("got %d patterns, want 1", len(patterns))
	}

	p := patterns[0]
	if p.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", p.Confidence)
	}
	if p.Type != entity.PatternTypeExtracted {
		t.Errorf("type = %s, want extracted", p.Type)
	}
	want := "TelcoConnect image style from storefront-hero.png"
	if p.Name != want {
		t.Errorf("name = %q, want %q", p.Name, want)
	}
	if len(insights) == 0 {
		t.Error("expected insights for first upload")
	}

	progress := store.Progress()
	if progress.TotalUploads != 1 || progress.LearnedPatterns != 1 {
		t.Errorf("progress = %d uploads / %d patterns, want 1/1",
			progress.TotalUploads, progress.LearnedPatterns)
	}
	if progress.IndustryStyles["retail"] != p.Name {
		t.Errorf("industry style = %q, want pattern name", progress.IndustryStyles["retail"])
	}
}

func TestUploadConfidencePerKind(t *testing.T) {
	tests := []struct {
		filename string
		want     float64
	}{
		{"deck.png", 0.85},
		{"guidelines.pdf", 0.80},
		{"notes.docx", 0.75},
	}

	store := newTestStore(newFakeKV())
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			patterns, _, err := store.ProcessUpload(context.Background(), entity.ReferenceUpload{
				Filename: tt.filename,
			})
			if err != nil {
				t.Fatalf("ProcessUpload: %v", err)
			}
			if patterns[0].Confidence != tt.want {
				t.Errorf("confidence = %v, want %v", patterns[0].Confidence, tt.want)
			}
		})
	}
}

func TestCatalogAppendOnly(t *testing.T) {
	store := newTestStore(newFakeKV())

	const n = 7
	for i := 0; i < n; i++ {
		_, _, err := store.ProcessUpload(context.Background(), entity.ReferenceUpload{
			Filename: fmt.Sprintf("ref-%d.png", i),
		})
		if err != nil {
			t.Fatalf("upload %d: %v", i, err)
		}
	}

	patterns := store.Patterns()
	if len(patterns) != n {
		t.Fatalf("catalog size = %d, want %d", len(patterns), n)
	}

	seen := make(map[string]bool)
	for _, p := range patterns {
		if seen[p.ID] {
			t.Errorf("duplicate pattern id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestProcessUploadRejectsEmptyFilename(t *testing.T) {
	store := newTestStore(newFakeKV())

	_, _, err := store.ProcessUpload(context.Background(), entity.ReferenceUpload{Filename: "  "})
	if err == nil {
		t.Fatal("expected validation error for empty filename")
	}
	if len(store.Patterns()) != 0 {
		t.Error("rejected upload must not mutate the catalog")
	}
}

func TestStorageFailuresAbsorbed(t *testing.T) {
	kv := newFakeKV()
	kv.failReads = true
	kv.failWrites = true

	store := newTestStore(kv)
	patterns, _, err := store.ProcessUpload(context.Background(), entity.ReferenceUpload{
		Filename: "deck.png",
	})
	if err != nil {
		t.Fatalf("upload must succeed despite storage outage, got %v", err)
	}
	if len(patterns) != 1 || len(store.Patterns()) != 1 {
		t.Error("in-memory catalog must stay authoritative during outage")
	}
}

func TestPersistAndReload(t *testing.T) {
	kv := newFakeKV()

	first := newTestStore(kv)
	if _, _, err := first.ProcessUpload(context.Background(), entity.ReferenceUpload{
		Filename: "deck.png",
		Industry: "finance",
	}); err != nil {
		t.Fatalf("ProcessUpload: %v", err)
	}

	second := newTestStore(kv)
	patterns := second.Patterns()
	if len(patterns) != 1 {
		t.Fatalf("reloaded catalog size = %d, want 1", len(patterns))
	}
	if second.Progress().TotalUploads != 1 {
		t.Errorf("reloaded progress uploads = %d, want 1", second.Progress().TotalUploads)
	}
}

func TestStyleForAppliesIndustryAccent(t *testing.T) {
	store := newTestStore(newFakeKV())

	p := store.StyleFor(context.Background(), "image", "retail")
	if p.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", p.Confidence)
	}
	if p.Source != "brand guidelines" {
		t.Errorf("source = %q, want brand guidelines", p.Source)
	}
	if p.Type != entity.PatternTypeSynthesized {
		t.Errorf("type = %s, want synthesized", p.Type)
	}
	if p.Colors.Accent != industryAccents["retail"].Accent {
		t.Errorf("accent = %q, want retail accent", p.Colors.Accent)
	}
	if p.Colors.Primary != testBrand.PrimaryColor {
		t.Errorf("primary = %q, want brand primary", p.Colors.Primary)
	}
}

func TestRecommendations(t *testing.T) {
	store := newTestStore(newFakeKV())

	if _, _, err := store.ProcessUpload(context.Background(), entity.ReferenceUpload{
		Filename: "shop-front.png",
	}); err != nil {
		t.Fatalf("ProcessUpload: %v", err)
	}

	recs := store.RecommendationsFor(context.Background(), "image", "")
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if !strings.Contains(recs[0].Name, "shop-front.png") {
		t.Errorf("recommended %q, want the learned pattern", recs[0].Name)
	}

	// nothing learned for this pairing: fall back to one synthesized style
	fallback := store.RecommendationsFor(context.Background(), "video", "aerospace")
	if len(fallback) != 1 {
		t.Fatalf("got %d fallback recommendations, want 1", len(fallback))
	}
	if fallback[0].Type != entity.PatternTypeSynthesized {
		t.Errorf("fallback type = %s, want synthesized", fallback[0].Type)
	}
}

func TestRecommendationsFilterLowConfidence(t *testing.T) {
	store := newTestStore(newFakeKV())

	patterns, _, err := store.ProcessUpload(context.Background(), entity.ReferenceUpload{
		Filename: "shop-front.png",
	})
	if err != nil {
		t.Fatalf("ProcessUpload: %v", err)
	}

	low := 0.5
	if _, err := store.Adjust(context.Background(), patterns[0].ID, Adjustment{Confidence: &low}); err != nil {
		t.Fatalf("Adjust: %v", err)
	}

	recs := store.RecommendationsFor(context.Background(), "image", "")
	if len(recs) != 1 || recs[0].Type != entity.PatternTypeSynthesized {
		t.Fatalf("low-confidence pattern must be skipped, got %+v", recs)
	}
}

func TestAdjust(t *testing.T) {
	store := newTestStore(newFakeKV())

	var ids []string
	for _, f := range []string{"a.png", "b.png"} {
		patterns, _, err := store.ProcessUpload(context.Background(), entity.ReferenceUpload{Filename: f})
		if err != nil {
			t.Fatalf("ProcessUpload: %v", err)
		}
		ids = append(ids, patterns[0].ID)
	}

	adjusted, err := store.Adjust(context.Background(), ids[0], Adjustment{Name: "flagship look"})
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if adjusted.Name != "flagship look" {
		t.Errorf("name = %q, want flagship look", adjusted.Name)
	}
	if adjusted.Type != entity.PatternTypeAdjusted {
		t.Errorf("type = %s, want adjusted", adjusted.Type)
	}

	for _, p := range store.Patterns() {
		if p.ID == ids[1] && p.Type != entity.PatternTypeExtracted {
			t.Errorf("untouched pattern changed type to %s", p.Type)
		}
	}
}

func TestAdjustUnknownPattern(t *testing.T) {
	store := newTestStore(newFakeKV())

	_, err := store.Adjust(context.Background(), "missing", Adjustment{Name: "x"})
	if err != apperrors.ErrPatternNotFound {
		t.Fatalf("err = %v, want ErrPatternNotFound", err)
	}
}
