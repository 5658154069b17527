// Package nlp wraps the prose toolkit for named-entity recognition and
// keyword tagging. The toolkit is treated as an optional capability: every
// failure degrades to empty results, never to an error.
package nlp

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	prose "github.com/jdkato/prose/v2"
)

var entityLabels = map[string]bool{
	"PERSON": true,
	"ORG":    true,
	"GPE":    true,
	"DATE":   true,
	"TIME":   true,
}

var hashtagRe = regexp.MustCompile(`#\w+`)

// Extractor pulls entities and hashtag-like tags out of free text.
type Extractor struct {
	available bool
}

// NewExtractor probes the toolkit once at startup. When the probe fails the
// extractor stays constructed but returns empty results.
func NewExtractor() *Extractor {
	_, err := prose.NewDocument("probe", prose.WithSegmentation(false))
	return &Extractor{available: err == nil}
}

// Available reports whether the language toolkit loaded.
func (e *Extractor) Available() bool {
	return e.available
}

// Entities returns person, organization, place, date and time mentions.
// Unavailable toolkit or any parse failure yields an empty slice.
func (e *Extractor) Entities(text string) []string {
	if !e.available {
		return nil
	}
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil
	}
	var out []string
	for _, ent := range doc.Entities() {
		if entityLabels[ent.Label] {
			out = append(out, ent.Text)
		}
	}
	return out
}

// Tags derives a space-joined set of hashtag tokens: the first three salient
// keywords prefixed with '#', unioned with literal #word tokens already in
// the text. Duplicates collapse; order is not guaranteed beyond sorting for
// determinism. Empty string on any failure.
func (e *Extractor) Tags(text string) string {
	if !e.available {
		return ""
	}
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return ""
	}

	var keywords []string
	for _, tok := range doc.Tokens() {
		word := strings.ToLower(tok.Text)
		if len(word) <= 2 || !alphabetic(word) || stopwords[word] {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == 3 {
			break
		}
	}

	set := make(map[string]bool)
	for _, tag := range hashtagRe.FindAllString(text, -1) {
		set[tag] = true
	}
	for _, kw := range keywords {
		set["#"+kw] = true
	}
	if len(set) == 0 {
		return ""
	}

	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return strings.Join(tags, " ")
}

func alphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
