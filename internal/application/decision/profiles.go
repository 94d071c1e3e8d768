package decision

import (
	"telco-enable-ai-api/internal/domain/entity"
)

// IndustryProfile is the hand-maintained per-industry configuration
// consulted by the base rules. The table is versioned with the code;
// unknown industries fall back to defaultProfile.
type IndustryProfile struct {
	Media   []string
	Focus   string
	Urgency entity.Priority
}

var industryProfiles = map[string]IndustryProfile{
	"retail": {
		Media:   []string{entity.MediaImage, entity.MediaBrochure},
		Focus:   "in-store connectivity and customer experience",
		Urgency: entity.PriorityMedium,
	},
	"healthcare": {
		Media:   []string{entity.MediaBrochure},
		Focus:   "secure, compliant clinical connectivity",
		Urgency: entity.PriorityHigh,
	},
	"finance": {
		Media:   []string{entity.MediaBrochure, entity.MediaOnePager},
		Focus:   "low-latency, resilient branch networking",
		Urgency: entity.PriorityHigh,
	},
	"education": {
		Media:   []string{entity.MediaSlide, entity.MediaBrochure},
		Focus:   "campus-wide connectivity and e-learning",
		Urgency: entity.PriorityMedium,
	},
	"hospitality": {
		Media:   []string{entity.MediaImage, entity.MediaBrochure},
		Focus:   "guest wifi and smart-building services",
		Urgency: entity.PriorityLow,
	},
	"logistics": {
		Media:   []string{entity.MediaBrochure},
		Focus:   "fleet tracking and IoT connectivity",
		Urgency: entity.PriorityMedium,
	},
}

var defaultProfile = IndustryProfile{
	Media:   []string{entity.MediaBrochure},
	Focus:   "general business solutions",
	Urgency: entity.PriorityMedium,
}

// profileFor looks up the industry profile, defaulting when unknown.
func profileFor(industry string) IndustryProfile {
	if p, ok := industryProfiles[industry]; ok {
		return p
	}
	return defaultProfile
}
