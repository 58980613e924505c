package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"scaled copies match", []float32{1, 2}, []float32{2, 4}, 1.0},
		{"length mismatch", []float32{1, 2}, []float32{1, 2, 3}, 0},
		{"empty", nil, nil, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCacheKey(t *testing.T) {
	a := CacheKey("Senior Frontend Engineer")
	b := CacheKey("Senior Frontend Engineer")
	c := CacheKey("Senior Backend Engineer")

	assert.Equal(t, a, b, "same text hashes to the same key")
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "embedding:")
	assert.Len(t, a, len("embedding:")+64)
}
