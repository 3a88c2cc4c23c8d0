// Package suggest ranks near-miss candidates for identifiers that did
// not resolve, so diagnostics can offer "did you mean" hints.
package suggest

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// Suggestion pairs a candidate name with its similarity score.
type Suggestion struct {
	Name  string
	Score float64
}

// Suggester scores candidate names against a missing identifier using
// Jaro-Winkler similarity.
type Suggester struct {
	threshold  float64
	maxResults int
}

// New creates a suggester. Out-of-range thresholds fall back to 0.80;
// maxResults <= 0 falls back to 3.
func New(threshold float64, maxResults int) *Suggester {
	if threshold <= 0 || threshold > 1 {
		threshold = 0.80
	}
	if maxResults <= 0 {
		maxResults = 3
	}
	return &Suggester{threshold: threshold, maxResults: maxResults}
}

// Rank returns the candidates similar enough to name, best first. Ties
// break lexicographically for stable output.
func (s *Suggester) Rank(name string, candidates []string) []Suggestion {
	var out []Suggestion
	seen := make(map[string]bool, len(candidates))
	for _, cand := range candidates {
		if cand == "" || cand == name || seen[cand] {
			continue
		}
		seen[cand] = true
		score := similarity(name, cand)
		if score >= s.threshold {
			out = append(out, Suggestion{Name: cand, Score: score})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > s.maxResults {
		out = out[:s.maxResults]
	}
	return out
}

func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	score, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0.0
	}
	return float64(score)
}
