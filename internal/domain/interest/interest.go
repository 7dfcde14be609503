// Package interest scores hobby-tag affinity between two users.
package interest

import (
	"math"
)

// defaultKeywordWeight scales exact keyword dimensions relative to
// category dimensions: matching the same tag counts more than merely
// liking the same kind of thing.
const defaultKeywordWeight = 2.0

const maxScore = 100

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithKeywordWeight overrides the keyword dimension weight.
func WithKeywordWeight(w float64) Option {
	return func(s *Scorer) {
		if w > 0 {
			s.keywordWeight = w
		}
	}
}

// Scorer computes hobby affinity via weighted cosine similarity over a
// keyword-presence vector concatenated with a category-presence vector.
type Scorer struct {
	keywordWeight float64
}

// NewScorer creates an interest scorer with configuration options.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{keywordWeight: defaultKeywordWeight}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score returns a 0-100 affinity score for two canonical tag lists.
// Nil or empty input on either side scores 0. Symmetric in its inputs.
func (s *Scorer) Score(tagsA, tagsB []string) int {
	if len(tagsA) == 0 || len(tagsB) == 0 {
		return 0
	}

	// Dimensions absent from both sides contribute nothing to a cosine,
	// so the keyword axis only needs the union of the two tag sets.
	dims := make(map[string]int)
	for _, t := range tagsA {
		if _, ok := dims[t]; !ok {
			dims[t] = len(dims)
		}
	}
	for _, t := range tagsB {
		if _, ok := dims[t]; !ok {
			dims[t] = len(dims)
		}
	}

	vecA := s.vector(tagsA, dims)
	vecB := s.vector(tagsB, dims)

	cos := cosine(vecA, vecB)
	return int(math.Round(cos * maxScore))
}

// vector builds the weighted keyword vector concatenated with the
// 4-element category vector.
func (s *Scorer) vector(tags []string, dims map[string]int) []float64 {
	v := make([]float64, len(dims)+len(categories))
	for _, t := range tags {
		v[dims[t]] = s.keywordWeight
		if cat := CategoryOf(t); cat != "" {
			for i, c := range categories {
				if c == cat {
					v[len(dims)+i] = 1
					break
				}
			}
		}
	}
	return v
}

// cosine returns the cosine similarity of two equal-length vectors, or
// 0 when either has zero norm.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
