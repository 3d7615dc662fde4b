package utils

import (
	"math"
	"testing"

	"routescout/internal/models/domain_models"
)

func TestHaversineKm(t *testing.T) {
	cases := []struct {
		name string
		a, b domain_models.Coordinate
		want float64
	}{
		{
			name: "one degree of longitude at the equator",
			a:    domain_models.Coordinate{Latitude: 0, Longitude: 0},
			b:    domain_models.Coordinate{Latitude: 0, Longitude: 1},
			want: 111.19,
		},
		{
			name: "one degree of latitude",
			a:    domain_models.Coordinate{Latitude: 10, Longitude: 105},
			b:    domain_models.Coordinate{Latitude: 11, Longitude: 105},
			want: 111.19,
		},
		{
			name: "same point",
			a:    domain_models.Coordinate{Latitude: 21.0285, Longitude: 105.8542},
			b:    domain_models.Coordinate{Latitude: 21.0285, Longitude: 105.8542},
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HaversineKm(tc.a, tc.b)
			if math.Abs(got-tc.want) > 0.05 {
				t.Fatalf("HaversineKm = %v, want about %v", got, tc.want)
			}
		})
	}
}

func TestHaversineKmSymmetric(t *testing.T) {
	a := domain_models.Coordinate{Latitude: 21.03, Longitude: 105.85}
	b := domain_models.Coordinate{Latitude: 10.77, Longitude: 106.70}
	if HaversineKm(a, b) != HaversineKm(b, a) {
		t.Fatal("distance is not symmetric")
	}
}

func TestNormalizeNameKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Central Museum", "centralmuseum"},
		{"central-museum", "centralmuseum"},
		{"The Central Museum!", "thecentralmuseum"},
		{"Km 42 Rest Stop", "km42reststop"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeNameKey(tc.in); got != tc.want {
			t.Errorf("NormalizeNameKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestProximityBucket(t *testing.T) {
	a := domain_models.Coordinate{Latitude: 21.0312, Longitude: 105.8527}
	b := domain_models.Coordinate{Latitude: 21.0287, Longitude: 105.8461}
	if ProximityBucket(a) != "21.03:105.85" {
		t.Fatalf("bucket = %q", ProximityBucket(a))
	}
	if ProximityBucket(a) != ProximityBucket(b) {
		t.Fatal("nearby points fell into different buckets")
	}

	far := domain_models.Coordinate{Latitude: 21.05, Longitude: 105.85}
	if ProximityBucket(a) == ProximityBucket(far) {
		t.Fatal("distant points share a bucket")
	}
}

func TestNormalizeLocationKey(t *testing.T) {
	c := domain_models.Coordinate{Latitude: 21.0312, Longitude: 105.8527}
	if got := NormalizeLocationKey(c); got != "loc:21.03:105.85" {
		t.Fatalf("NormalizeLocationKey = %q", got)
	}
}
