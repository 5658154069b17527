package textcat

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
)

// Model is a multinomial naive-bayes text classifier trained offline. Two
// artifacts are loaded from fixed paths: the model weights and the fitted
// vocabulary. The training pipeline is out of scope; this only scores.
type Model struct {
	ClassPriors   map[string]float64            `json:"class_priors"`    // log P(class)
	TokenWeights  map[string]map[string]float64 `json:"token_weights"`   // class -> token -> log P(token|class)
	DefaultWeight map[string]float64            `json:"default_weights"` // class -> log prob for unseen tokens

	vocab map[string]int
}

type vocabulary struct {
	Tokens map[string]int `json:"tokens"`
}

var nonAlphaRe = regexp.MustCompile(`[^a-zA-Z\s]`)

// LoadModel reads the model and vocabulary artifacts.
func LoadModel(modelPath, vocabPath string) (*Model, error) {
	raw, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	raw, err = os.ReadFile(vocabPath)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary artifact: %w", err)
	}
	var v vocabulary
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode vocabulary artifact: %w", err)
	}

	if len(m.ClassPriors) == 0 || len(v.Tokens) == 0 {
		return nil, fmt.Errorf("model artifacts are empty")
	}

	m.vocab = v.Tokens
	return &m, nil
}

// Predict scores the normalized text against every class and returns the
// highest-scoring label.
func (m *Model) Predict(text string) (string, error) {
	tokens := m.vectorize(text)
	if len(tokens) == 0 {
		return "", fmt.Errorf("no known tokens in input")
	}

	best := ""
	bestScore := math.Inf(-1)
	for class, prior := range m.ClassPriors {
		score := prior
		weights := m.TokenWeights[class]
		for token, count := range tokens {
			w, ok := weights[token]
			if !ok {
				w = m.DefaultWeight[class]
			}
			score += w * float64(count)
		}
		if score > bestScore {
			bestScore = score
			best = class
		}
	}

	if best == "" {
		return "", fmt.Errorf("model produced no prediction")
	}
	return best, nil
}

// vectorize normalizes (lowercase, strip non-letters) and counts tokens that
// exist in the fitted vocabulary.
func (m *Model) vectorize(text string) map[string]int {
	clean := nonAlphaRe.ReplaceAllString(strings.ToLower(text), "")
	counts := make(map[string]int)
	for _, tok := range strings.Fields(clean) {
		if _, ok := m.vocab[tok]; ok {
			counts[tok]++
		}
	}
	return counts
}
