package topology

import (
	"math"

	"github.com/ggs-net/ggsnode/internal/ggstypes"
)

// cosineSimilarity computes the dot-product cosine over the first
// min(len(a), len(b)) dimensions, returning 0 if either truncated vector
// has zero norm.
func cosineSimilarity(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		ai, bi := float64(a[i]), float64(b[i])
		dot += ai * bi
		normA += ai * ai
		normB += bi * bi
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// geoAffinity is a bounded [0,1] closeness score derived from great-circle
// distance: geoScale / (geoScale + distance_km).
func geoAffinity(self, peer ggstypes.GeoPoint, geoScaleKm float64) float32 {
	d := ggstypes.DistanceKm(self, peer)
	v := geoScaleKm / (geoScaleKm + d)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return float32(v)
}
