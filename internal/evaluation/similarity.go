package evaluation

import "github.com/agext/levenshtein"

// textSimilarity returns a normalized edit-distance similarity in [0, 1].
func textSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0
	}
	return levenshtein.Similarity(a, b, levenshtein.NewParams())
}
