// Package textcat assigns category labels to free-text task descriptions.
// A pretrained statistical model is used when its artifacts are loadable;
// the ordered keyword rules below are the authoritative fallback and are
// always available.
package textcat

import "strings"

// FallbackCategory is returned when no rule matches.
const FallbackCategory = "personal"

// Categories is the closed label set, in rule order.
var Categories = []string{
	"shopping", "work", "office", "interview", "personal",
	"health", "finance", "learning", "travel", "home",
}

// keywordRules is an ordered (category, keywords) sequence. Iteration order
// is significant: the first category with any substring match wins.
var keywordRules = []struct {
	category string
	keywords []string
}{
	{"shopping", []string{"buy", "purchase", "order", "groceries", "shop"}},
	{"work", []string{"report", "meeting", "project", "email"}},
	{"office", []string{"submit", "follow-up", "document"}},
	{"interview", []string{"interview", "resume", "job"}},
	{"personal", []string{"call", "movie", "relax"}},
	{"health", []string{"doctor", "medicine", "gym"}},
	{"finance", []string{"bill", "pay", "salary"}},
	{"learning", []string{"study", "learn", "course"}},
	{"travel", []string{"travel", "trip", "ticket"}},
	{"home", []string{"clean", "repair", "cook"}},
}

// Classifier maps free text to a category label. The optional model is an
// opaque primary capability; any failure on its path silently degrades to
// the keyword rules.
type Classifier struct {
	model *Model
}

// NewClassifier creates a Classifier, attempting to load model artifacts
// from the given paths. Empty paths or load failures leave the classifier
// on the keyword-only path.
func NewClassifier(modelPath, vocabPath string) *Classifier {
	c := &Classifier{}
	if modelPath != "" && vocabPath != "" {
		if m, err := LoadModel(modelPath, vocabPath); err == nil {
			c.model = m
		}
	}
	return c
}

// Classify returns one of the known category labels, or FallbackCategory.
func (c *Classifier) Classify(text string) string {
	if c.model != nil {
		if label, err := c.model.Predict(text); err == nil && knownCategory(label) {
			return label
		}
	}
	return classifyByKeywords(text)
}

// ModelLoaded reports whether the statistical model path is active.
func (c *Classifier) ModelLoaded() bool {
	return c.model != nil
}

func classifyByKeywords(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return FallbackCategory
}

func knownCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}
