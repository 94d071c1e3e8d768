package decision

import (
	"strings"
)

// Fixed phrase sets tested against the query. Matching is
// case-insensitive substring membership; no NLU beyond that.
var (
	imagePhrases = []string{
		"image", "picture", "visual", "graphic", "banner",
		"illustration", "photo", "logo", "poster",
	}

	contentPhrases = []string{
		"brochure", "content", "copy", "write", "description",
		"one-pager", "flyer", "datasheet", "proposal", "pitch",
	}

	urgencyPhrases = []string{
		"urgent", "asap", "immediately", "right away", "right now", "today",
	}

	learningPhrases = []string{
		"explain", "what is", "what are", "how does", "how do",
		"teach", "learn", "insight", "why",
	}
)

// queryAnalysis holds the boolean signals derived from the query text.
type queryAnalysis struct {
	wantsImage   bool
	wantsContent bool
	urgent       bool
	wantsInsight bool
}

// analyzeQuery tests the query against the fixed phrase sets.
func analyzeQuery(query string) queryAnalysis {
	q := strings.ToLower(query)
	return queryAnalysis{
		wantsImage:   containsAny(q, imagePhrases),
		wantsContent: containsAny(q, contentPhrases),
		urgent:       containsAny(q, urgencyPhrases),
		wantsInsight: containsAny(q, learningPhrases),
	}
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
