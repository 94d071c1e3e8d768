package decision

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"telco-enable-ai-api/internal/domain/entity"
)

// knownContext builds a context with a confident knowledge match so
// the insight and clarification rules stay quiet unless a test wants them.
func knownContext(query string) entity.DecisionContext {
	return entity.DecisionContext{
		Query: query,
		Knowledge: entity.KnowledgeResult{
			Confidence:       0.9,
			RelevantProducts: []string{"business-fiber"},
		},
	}
}

func TestDecideUrgentQuery(t *testing.T) {
	engine := NewEngine()

	d := engine.Decide(context.Background(), knownContext("need this done urgent for a client meeting"))

	if d.Action != entity.ActionGenerateBoth {
		t.Fatalf("action = %s, want %s", d.Action, entity.ActionGenerateBoth)
	}
	if d.Priority != entity.PriorityHigh {
		t.Errorf("priority = %s, want high", d.Priority)
	}
	if !d.HasMedia(entity.MediaImage) || !d.HasMedia(entity.MediaBrochure) {
		t.Errorf("media = %v, want image and brochure", d.MediaTypes)
	}
	if d.EstimatedTime != "immediate" {
		t.Errorf("estimated_time = %q, want immediate", d.EstimatedTime)
	}
}

func TestDecideHighUrgencyField(t *testing.T) {
	engine := NewEngine()

	dctx := knownContext("something for my customers")
	dctx.Urgency = entity.UrgencyHigh

	d := engine.Decide(context.Background(), dctx)
	if d.Action != entity.ActionGenerateBoth || d.Priority != entity.PriorityHigh {
		t.Fatalf("got %s/%s, want generate_both/high", d.Action, d.Priority)
	}
}

func TestDecideInsights(t *testing.T) {
	tests := []struct {
		name string
		dctx entity.DecisionContext
	}{
		{
			name: "explanation request",
			dctx: knownContext("explain how sd-wan works for branches"),
		},
		{
			name: "weak knowledge match",
			dctx: entity.DecisionContext{
				Query: "something for my shop",
				Knowledge: entity.KnowledgeResult{
					Confidence:       0.3,
					RelevantProducts: []string{"business-fiber"},
				},
			},
		},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := engine.Decide(context.Background(), tt.dctx)
			if d.Action != entity.ActionProvideInsights {
				t.Fatalf("action = %s, want provide_insights", d.Action)
			}
			if d.Priority != entity.PriorityHigh {
				t.Errorf("priority = %s, want high", d.Priority)
			}
			if d.ContentFocus != "educational" {
				t.Errorf("content_focus = %q, want educational", d.ContentFocus)
			}
		})
	}
}

func TestDecideImageIntent(t *testing.T) {
	engine := NewEngine()

	d := engine.Decide(context.Background(), knownContext("make a banner for our fiber launch"))
	if d.Action != entity.ActionGenerateImage {
		t.Fatalf("action = %s, want generate_image", d.Action)
	}
	if !reflect.DeepEqual(d.MediaTypes, []string{entity.MediaImage}) {
		t.Errorf("media = %v, want [image]", d.MediaTypes)
	}
}

func TestDecideContentIntentUsesIndustryProfile(t *testing.T) {
	engine := NewEngine()

	dctx := knownContext("write a brochure about our offering")
	dctx.Industry = "retail"

	d := engine.Decide(context.Background(), dctx)
	if d.Action != entity.ActionGenerateContent {
		t.Fatalf("action = %s, want generate_content", d.Action)
	}
	if d.Priority != entity.PriorityMedium {
		t.Errorf("priority = %s, want medium", d.Priority)
	}
	if !reflect.DeepEqual(d.MediaTypes, industryProfiles["retail"].Media) {
		t.Errorf("media = %v, want retail profile media", d.MediaTypes)
	}
	if d.ContentFocus != industryProfiles["retail"].Focus {
		t.Errorf("content_focus = %q, want retail profile focus", d.ContentFocus)
	}
}

func TestDecideDefaultUnknownIndustry(t *testing.T) {
	engine := NewEngine()

	dctx := knownContext("help us reach more customers")
	dctx.Industry = "agriculture"

	d := engine.Decide(context.Background(), dctx)
	if d.Action != entity.ActionGenerateBoth {
		t.Fatalf("action = %s, want generate_both", d.Action)
	}
	if !reflect.DeepEqual(d.MediaTypes, defaultProfile.Media) {
		t.Errorf("media = %v, want default profile media", d.MediaTypes)
	}
	if d.EstimatedTime != "3-5 minutes" {
		t.Errorf("estimated_time = %q, want 3-5 minutes", d.EstimatedTime)
	}
}

func TestPreferredMediaOverridesVerbatim(t *testing.T) {
	engine := NewEngine()

	dctx := knownContext("write a brochure about our offering")
	dctx.Industry = "retail"
	dctx.Preferences = map[string]string{"preferredMedia": "slide, one_pager"}

	d := engine.Decide(context.Background(), dctx)
	want := []string{"slide", "one_pager"}
	if !reflect.DeepEqual(d.MediaTypes, want) {
		t.Fatalf("media = %v, want %v", d.MediaTypes, want)
	}
}

func TestHistoryImageBias(t *testing.T) {
	engine := NewEngine()

	dctx := knownContext("write a brochure about our offering")
	dctx.History = []string{"pricing questions", "we compared image options"}

	d := engine.Decide(context.Background(), dctx)
	if d.Action != entity.ActionGenerateImage {
		t.Fatalf("action = %s, want generate_image after image history", d.Action)
	}
	if !reflect.DeepEqual(d.MediaTypes, []string{entity.MediaImage}) {
		t.Errorf("media = %v, want [image]", d.MediaTypes)
	}
}

func TestComplexityEscalation(t *testing.T) {
	engine := NewEngine()

	dctx := knownContext("write a brochure about our offering")
	dctx.Complexity = entity.ComplexityComplex

	d := engine.Decide(context.Background(), dctx)
	if d.Action != entity.ActionGenerateBoth || d.Priority != entity.PriorityHigh {
		t.Fatalf("got %s/%s, want generate_both/high", d.Action, d.Priority)
	}
	if d.EstimatedTime != "5-10 minutes" {
		t.Errorf("estimated_time = %q, want 5-10 minutes", d.EstimatedTime)
	}
}

func TestClarificationWhenNoProducts(t *testing.T) {
	engine := NewEngine()

	dctx := entity.DecisionContext{
		Query: "make a banner for our launch",
		Knowledge: entity.KnowledgeResult{
			Confidence:       0.9,
			RelevantProducts: nil,
		},
	}

	d := engine.Decide(context.Background(), dctx)
	if d.Action != entity.ActionAskClarification {
		t.Fatalf("action = %s, want ask_clarification", d.Action)
	}
	if !strings.Contains(d.Reasoning, "asking for clarification") {
		t.Errorf("reasoning = %q, missing clarification note", d.Reasoning)
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	engine := NewEngine()
	dctx := knownContext("urgent banner for the retail launch today")
	dctx.Industry = "retail"

	first := engine.Decide(context.Background(), dctx)
	second := engine.Decide(context.Background(), dctx)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same context produced different decisions:\n%+v\n%+v", first, second)
	}
}

func TestFallbackDecision(t *testing.T) {
	d := fallbackDecision()

	if d.Action != entity.ActionGenerateContent {
		t.Errorf("action = %s, want generate_content", d.Action)
	}
	if d.Priority != entity.PriorityMedium {
		t.Errorf("priority = %s, want medium", d.Priority)
	}
	if !reflect.DeepEqual(d.MediaTypes, []string{entity.MediaBrochure}) {
		t.Errorf("media = %v, want [brochure]", d.MediaTypes)
	}
	if d.Reasoning != "fallback due to processing error" {
		t.Errorf("reasoning = %q", d.Reasoning)
	}
}
