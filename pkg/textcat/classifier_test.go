package textcat_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"smart-task-manager/pkg/textcat"
)

func TestClassifyKeywordFallback(t *testing.T) {
	c := textcat.NewClassifier("", "")
	if c.ModelLoaded() {
		t.Fatalf("expected no model with empty paths")
	}

	tests := []struct {
		text string
		want string
	}{
		{"buy groceries", "shopping"},
		{"finish the quarterly report", "work"},
		{"submit the visa document", "office"},
		{"prepare resume for the interview", "interview"},
		{"call mom tonight", "personal"},
		{"doctor appointment at 2pm", "health"},
		{"pay electricity bill", "finance"},
		{"study for final exam", "learning"},
		{"book trip tickets", "travel"},
		{"clean the garage", "home"},
		{"something entirely unrelated", "personal"},
	}

	for _, tt := range tests {
		if got := c.Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

// Rule order is significant: "order groceries for the meeting" contains both
// shopping and work keywords, and shopping is checked first.
func TestClassifyFirstMatchWins(t *testing.T) {
	c := textcat.NewClassifier("", "")
	if got := c.Classify("order groceries for the meeting"); got != "shopping" {
		t.Errorf("expected shopping to win, got %q", got)
	}
}

func TestClassifierMissingArtifacts(t *testing.T) {
	c := textcat.NewClassifier("/nonexistent/model.json", "/nonexistent/vocab.json")
	if c.ModelLoaded() {
		t.Fatalf("expected load failure to degrade to keyword path")
	}
	if got := c.Classify("buy groceries"); got != "shopping" {
		t.Errorf("fallback path broken: got %q", got)
	}
}

func TestModelPredict(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	vocabPath := filepath.Join(dir, "vocab.json")

	model := map[string]any{
		"class_priors": map[string]float64{"health": -1.0, "work": -1.0},
		"token_weights": map[string]map[string]float64{
			"health": {"checkup": -0.5, "medical": -0.7},
			"work":   {"deadline": -0.5, "presentation": -0.6},
		},
		"default_weights": map[string]float64{"health": -5.0, "work": -5.0},
	}
	vocab := map[string]any{
		"tokens": map[string]int{"checkup": 0, "medical": 1, "deadline": 2, "presentation": 3},
	}
	writeJSON(t, modelPath, model)
	writeJSON(t, vocabPath, vocab)

	c := textcat.NewClassifier(modelPath, vocabPath)
	if !c.ModelLoaded() {
		t.Fatalf("expected model to load")
	}

	if got := c.Classify("medical checkup tomorrow"); got != "health" {
		t.Errorf("model path: got %q, want health", got)
	}

	// No known tokens: the model path errors and the keyword rules decide.
	if got := c.Classify("buy groceries"); got != "shopping" {
		t.Errorf("expected keyword fallback for unknown tokens, got %q", got)
	}
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
