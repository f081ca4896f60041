package rtdb

import (
	"testing"

	"motor-twin/internal/model"
)

func TestLogCollectionKeys(t *testing.T) {
	readings := []model.MotorReading{
		{I1: 70.0, Timestamp: "2026-01-01 00:00:00"},
		{I1: 71.0, Timestamp: "2026-01-01 00:00:10"},
		{I1: 72.0, Timestamp: "2026-01-01 00:00:20"},
	}
	logs := LogCollection(readings)
	if len(logs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(logs))
	}
	for i, want := range []string{"entry_001", "entry_002", "entry_003"} {
		got, ok := logs[want]
		if !ok {
			t.Fatalf("missing key %s", want)
		}
		if got.I1 != readings[i].I1 {
			t.Fatalf("%s holds wrong reading: %v", want, got.I1)
		}
	}
}

func TestLogCollectionEmpty(t *testing.T) {
	if logs := LogCollection(nil); len(logs) != 0 {
		t.Fatalf("expected empty collection, got %d entries", len(logs))
	}
}
