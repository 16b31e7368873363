package sentiment

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"
	"unicode"
)

const (
	// maxAnalyzedChars caps the text considered by a single analysis. Longer
	// text adds latency without improving the lexicon signal.
	maxAnalyzedChars = 2000

	// polarityScale is the lexicon value range bound used to map raw sums
	// into [-1, 1].
	polarityScale = 5.0

	negativeThreshold = -0.2
	positiveThreshold = 0.2
)

// Result is the outcome of a single sentiment analysis.
type Result struct {
	Score     float64 // [-1, 1]
	Magnitude float64 // >= 0, unbounded
	Label     string  // negative | neutral | positive
}

// Analyzer scores text against a polarity lexicon. It is safe for concurrent
// use; the lexicon can be swapped at runtime via LoadLexiconFile.
type Analyzer struct {
	mu      sync.RWMutex
	lexicon map[string]float64
}

// NewAnalyzer returns an analyzer backed by the built-in lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{lexicon: defaultLexicon}
}

// Analyze scores the given text. Returns nil when the text is empty after
// trimming — callers treat that as "nothing to analyze", not an error.
func (a *Analyzer) Analyze(text string) *Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	trimmed = truncate(trimmed, maxAnalyzedChars)

	tokens := tokenize(trimmed)

	a.mu.RLock()
	lexicon := a.lexicon
	a.mu.RUnlock()

	var sum, sumAbs float64
	matched := 0
	for i, tok := range tokens {
		polarity, ok := lexicon[tok]
		if !ok {
			continue
		}
		if i > 0 && negators[tokens[i-1]] {
			polarity = -polarity
		}
		sum += polarity
		sumAbs += math.Abs(polarity)
		matched++
	}

	score := 0.0
	if matched > 0 {
		// Mean polarity of sentiment-bearing tokens, scaled into [-1, 1].
		score = clamp(sum / (polarityScale * float64(matched)))
	}

	return &Result{
		Score:     score,
		Magnitude: sumAbs / polarityScale,
		Label:     labelFor(score),
	}
}

// LoadLexiconFile merges a JSON lexicon file (word -> polarity) over the
// built-in lexicon. Used for deployment-specific vocabulary.
func (a *Analyzer) LoadLexiconFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read lexicon file: %w", err)
	}

	var overrides map[string]float64
	if err := json.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse lexicon JSON: %w", err)
	}
	if len(overrides) == 0 {
		return fmt.Errorf("lexicon file %s contains no entries", path)
	}

	merged := make(map[string]float64, len(defaultLexicon)+len(overrides))
	for word, polarity := range defaultLexicon {
		merged[word] = polarity
	}
	for word, polarity := range overrides {
		merged[strings.ToLower(strings.TrimSpace(word))] = clampPolarity(polarity)
	}

	a.mu.Lock()
	a.lexicon = merged
	a.mu.Unlock()

	return nil
}

// LexiconSize returns the number of entries in the active lexicon.
func (a *Analyzer) LexiconSize() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.lexicon)
}

func labelFor(score float64) string {
	switch {
	case score <= negativeThreshold:
		return "negative"
	case score >= positiveThreshold:
		return "positive"
	default:
		return "neutral"
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func clampPolarity(v float64) float64 {
	if v > polarityScale {
		return polarityScale
	}
	if v < -polarityScale {
		return -polarityScale
	}
	return v
}
