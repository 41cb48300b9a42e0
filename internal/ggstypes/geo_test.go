package ggstypes_test

import (
	"math"
	"testing"

	"github.com/ggs-net/ggsnode/internal/ggstypes"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	p := ggstypes.GeoPoint{Lat: 40.7, Lon: -74.0}
	if d := ggstypes.DistanceKm(p, p); math.Abs(d) > 1e-9 {
		t.Fatalf("expected 0 distance, got %f", d)
	}
}

func TestDistanceKm_KnownPair(t *testing.T) {
	// New York to London, approximately 5570 km great-circle.
	nyc := ggstypes.GeoPoint{Lat: 40.7128, Lon: -74.0060}
	lon := ggstypes.GeoPoint{Lat: 51.5074, Lon: -0.1278}
	d := ggstypes.DistanceKm(nyc, lon)
	if d < 5500 || d > 5650 {
		t.Fatalf("expected ~5570km, got %f", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := ggstypes.GeoPoint{Lat: 10, Lon: 20}
	b := ggstypes.GeoPoint{Lat: -5, Lon: 100}
	if d1, d2 := ggstypes.DistanceKm(a, b), ggstypes.DistanceKm(b, a); math.Abs(d1-d2) > 1e-6 {
		t.Fatalf("expected symmetric distance, got %f vs %f", d1, d2)
	}
}
