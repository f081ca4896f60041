package sim

import (
	"math/rand"
	"testing"
	"time"

	"motor-twin/internal/model"
)

func TestSeriesLengthAndSpacing(t *testing.T) {
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	readings := Series(rand.New(rand.NewSource(1)), 50, end)
	if len(readings) != 50 {
		t.Fatalf("expected 50 readings, got %d", len(readings))
	}
	if got := readings[49].Timestamp; got != end.Format(model.TimeLayout) {
		t.Fatalf("series should end at %s, got %s", end.Format(model.TimeLayout), got)
	}
	for i := 1; i < len(readings); i++ {
		prev, err := time.ParseInLocation(model.TimeLayout, readings[i-1].Timestamp, time.UTC)
		if err != nil {
			t.Fatalf("bad timestamp %q: %v", readings[i-1].Timestamp, err)
		}
		cur, err := time.ParseInLocation(model.TimeLayout, readings[i].Timestamp, time.UTC)
		if err != nil {
			t.Fatalf("bad timestamp %q: %v", readings[i].Timestamp, err)
		}
		if cur.Sub(prev) != 10*time.Second {
			t.Fatalf("samples %d and %d are %v apart, want 10s", i-1, i, cur.Sub(prev))
		}
	}
}

func TestSeriesPhysicalBands(t *testing.T) {
	readings := Series(rand.New(rand.NewSource(2)), 500, time.Now())
	for i, r := range readings {
		if r.PF < 0.75 || r.PF > 0.98 {
			t.Fatalf("sample %d: pf %v outside [0.75, 0.98]", i, r.PF)
		}
		if r.Vibration < 0 {
			t.Fatalf("sample %d: negative vibration %v", i, r.Vibration)
		}
		if r.Frequency < 49.0 || r.Frequency > 51.0 {
			t.Fatalf("sample %d: frequency %v implausibly far from 50", i, r.Frequency)
		}
		if r.I1 <= 0 || r.V1 <= 0 {
			t.Fatalf("sample %d: non-positive current/voltage (%v, %v)", i, r.I1, r.V1)
		}
	}
}

func TestSeriesWarmupRaisesTemperature(t *testing.T) {
	readings := Series(rand.New(rand.NewSource(3)), 500, time.Now())
	cold := readings[0].T1  // warmup ~0
	hot := readings[199].T1 // warmup saturated at 1
	if hot-cold < 20 {
		t.Fatalf("expected warm-up to raise T1 well above start: cold %v, hot %v", cold, hot)
	}
}

func TestBearingSpikeOnlyLate(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	n := 500
	for i := 1; i <= n*7/10; i++ {
		if s := bearingSpike(rng, i, n); s != 0 {
			t.Fatalf("spike %v injected at early index %d", s, i)
		}
	}
	seen := 0
	for i := n*7/10 + 1; i <= n; i++ {
		for trial := 0; trial < 20; trial++ {
			s := bearingSpike(rng, i, n)
			if s == 0 {
				continue
			}
			seen++
			if s < 1.0 || s > 2.5 {
				t.Fatalf("spike magnitude %v outside [1.0, 2.5]", s)
			}
		}
	}
	if seen == 0 {
		t.Fatal("expected at least one spike past 70% of the series")
	}
}
