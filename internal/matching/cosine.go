// Package matching scores job postings against a candidate profile and
// produces a ranked, explained result set.
package matching

import (
	"fmt"
	"math"
)

// CosineSimilarity computes the cosine of the angle between two vectors,
// bounded to [-1, 1]. A zero-magnitude vector on either side yields exactly
// 0.0 rather than NaN. Mismatched lengths are an error; vectors are never
// silently truncated.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector length mismatch: %d vs %d", len(a), len(b))
	}

	var dot, magA, magB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		magA += x * x
		magB += y * y
	}

	if magA == 0 || magB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB)), nil
}
