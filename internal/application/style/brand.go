// Package style implements the style pattern store and its
// extraction, combination, and recommendation rules.
package style

import (
	"telco-enable-ai-api/internal/config"
	"telco-enable-ai-api/internal/domain/entity"
)

// industryAccent carries the per-industry overlay applied on top of
// the brand defaults by StyleFor. Hand-maintained, versioned with the
// code; industries absent from the table get brand defaults only.
type industryAccent struct {
	Accent   string
	Patterns []string
}

var industryAccents = map[string]industryAccent{
	"retail":      {Accent: "#E74C3C", Patterns: []string{"storefront_grid", "price_tag"}},
	"healthcare":  {Accent: "#2ECC71", Patterns: []string{"cross_grid", "pulse_line"}},
	"finance":     {Accent: "#16A085", Patterns: []string{"ledger_lines", "pillar"}},
	"education":   {Accent: "#8E44AD", Patterns: []string{"notebook_rule", "mortarboard"}},
	"hospitality": {Accent: "#F39C12", Patterns: []string{"key_card", "concierge_bell"}},
	"logistics":   {Accent: "#2980B9", Patterns: []string{"route_dots", "container_grid"}},
}

// brandDefaults builds the base style descriptor from the brand
// guideline configuration.
func brandDefaults(brand config.BrandConfig) (entity.ColorPalette, entity.Typography, entity.Layout, entity.BrandElements) {
	colors := entity.ColorPalette{
		Primary:    brand.PrimaryColor,
		Secondary:  brand.SecondaryColor,
		Accent:     brand.AccentColor,
		Background: brand.BackgroundColor,
		Text:       brand.TextColor,
	}
	typography := entity.Typography{
		PrimaryFont: brand.PrimaryFont,
		HeadingFont: brand.HeadingFont,
		SizeScale:   "regular",
		WeightScale: "regular",
	}
	layout := entity.Layout{
		Spacing:      "comfortable",
		CornerRadius: "medium",
	}
	elements := entity.BrandElements{
		LogoRef:  brand.LogoRef,
		Patterns: []string{"wave_band", "signal_dots"},
	}
	return colors, typography, layout, elements
}
