package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{"identical", "coolant pump failure", "coolant pump failure", 1.0, 1.0},
		{"near match", "blockage", "blocked", 0.5, 0.99},
		{"unrelated", "coolant pump failure", "xyz", 0.0, 0.3},
		{"both empty", "", "", 1.0, 1.0},
		{"one empty", "coolant", "", 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textSimilarity(tt.a, tt.b)
			require.GreaterOrEqual(t, got, tt.min)
			require.LessOrEqual(t, got, tt.max)
		})
	}
}

func TestTextSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"vacuum leak", "vacuum seal leak"},
		{"filter", "filler"},
		{"pump", "chamber"},
	}
	for _, p := range pairs {
		assert.Equal(t, textSimilarity(p[0], p[1]), textSimilarity(p[1], p[0]), "similarity(%q, %q)", p[0], p[1])
	}
}
