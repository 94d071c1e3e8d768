package entity

import (
	"time"
)

// PatternType records how a style pattern entered the catalog.
type PatternType string

const (
	PatternTypeExtracted   PatternType = "extracted"
	PatternTypeSynthesized PatternType = "synthesized"
	PatternTypeAdjusted    PatternType = "adjusted"
)

// ColorPalette is the color portion of a style descriptor.
type ColorPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Typography is the type portion of a style descriptor.
type Typography struct {
	PrimaryFont string `json:"primary_font"`
	HeadingFont string `json:"heading_font"`
	SizeScale   string `json:"size_scale"`
	WeightScale string `json:"weight_scale"`
}

// Layout is the layout portion of a style descriptor.
type Layout struct {
	Spacing      string `json:"spacing"`
	CornerRadius string `json:"corner_radius"`
	MaxWidth     int    `json:"max_width,omitempty"`
}

// BrandElements is the brand portion of a style descriptor.
type BrandElements struct {
	LogoRef  string   `json:"logo_ref"`
	Patterns []string `json:"patterns,omitempty"`
}

// StylePattern is a learned visual-identity descriptor.
type StylePattern struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Source     string        `json:"source"`
	Type       PatternType   `json:"type"`
	Confidence float64       `json:"confidence"`
	Colors     ColorPalette  `json:"colors"`
	Typography Typography    `json:"typography"`
	Layout     Layout        `json:"layout"`
	Brand      BrandElements `json:"brand"`
	// SuccessRate is updated from render outcomes via exponential moving average.
	SuccessRate float64   `json:"success_rate"`
	CreatedAt   time.Time `json:"created_at"`
	LastUsed    time.Time `json:"last_used"`
	UsageCount  int       `json:"usage_count"`
}

// Touch records a use of the pattern.
func (p *StylePattern) Touch() {
	p.LastUsed = time.Now()
	p.UsageCount++
}

// MarkAdjusted flags the pattern as manually adjusted.
func (p *StylePattern) MarkAdjusted() {
	p.Type = PatternTypeAdjusted
	p.LastUsed = time.Now()
}

// LearningProgress aggregates style learning over the process lifetime.
type LearningProgress struct {
	TotalUploads    int               `json:"total_uploads"`
	LearnedPatterns int               `json:"learned_patterns"`
	StyleConfidence float64           `json:"style_confidence"`
	LastLearning    time.Time         `json:"last_learning"`
	Improvements    []string          `json:"improvements,omitempty"`
	IndustryStyles  map[string]string `json:"industry_styles,omitempty"`
}

// RecordExtraction accounts for one processed upload that produced
// count new patterns with the given confidence.
func (lp *LearningProgress) RecordExtraction(count int, confidence float64) {
	lp.TotalUploads++
	lp.LearnedPatterns += count
	// running average over all learned patterns
	if lp.LearnedPatterns > 0 {
		total := lp.StyleConfidence*float64(lp.LearnedPatterns-count) + confidence*float64(count)
		lp.StyleConfidence = total / float64(lp.LearnedPatterns)
	}
	lp.LastLearning = time.Now()
}

// AddImprovement appends a human-readable improvement note.
func (lp *LearningProgress) AddImprovement(note string) {
	lp.Improvements = append(lp.Improvements, note)
}

// SetIndustryStyle records the style summary for an industry.
func (lp *LearningProgress) SetIndustryStyle(industry, summary string) {
	if lp.IndustryStyles == nil {
		lp.IndustryStyles = make(map[string]string)
	}
	lp.IndustryStyles[industry] = summary
}
