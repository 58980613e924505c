// Package embedding turns free text into dense vectors for semantic
// similarity scoring. The Gemini provider is the real implementation; a
// Redis decorator caches vectors so repeated matching runs do not
// re-embed unchanged job text.
package embedding

import (
	"context"
	"math"
)

// Provider produces an embedding vector for a piece of text.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// CosineSimilarity returns the cosine of the angle between two vectors.
// Mismatched lengths and zero vectors score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
