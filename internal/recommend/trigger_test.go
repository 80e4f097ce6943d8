package recommend

import (
	"testing"

	"github.com/yclin/fabtrainer/internal/store"
)

func boolPtr(b bool) *bool { return &b }

func TestShouldTriggerRecommendation(t *testing.T) {
	tests := []struct {
		failures  int
		threshold int
		want      bool
	}{
		{3, 3, true},
		{2, 3, false},
		{0, 3, false},
		{5, 3, true},
		{3, 0, true}, // non-positive threshold uses the default of 3
		{2, -1, false},
	}
	for _, tt := range tests {
		if got := ShouldTriggerRecommendation(tt.failures, tt.threshold); got != tt.want {
			t.Errorf("trigger(%d, %d) = %v, want %v", tt.failures, tt.threshold, got, tt.want)
		}
	}
}

func TestCountFailures(t *testing.T) {
	records := []store.InteractionRecord{
		{Success: boolPtr(false)},
		{Success: boolPtr(true)},
		{Success: boolPtr(false)},
		{Success: nil}, // no outcome recorded, neutral
		{Success: boolPtr(false)},
	}
	if got := CountFailures(records); got != 3 {
		t.Errorf("failures = %d, want 3", got)
	}
}

func TestFailuresFromRecords(t *testing.T) {
	records := []store.InteractionRecord{
		{
			Success: boolPtr(false),
			Payload: map[string]any{
				"operation":  "check coolant flow",
				"topic":      "cooling-principles",
				"error_type": "wrong-order",
			},
		},
		{Success: boolPtr(true), Payload: map[string]any{"operation": "succeeded"}},
		{Success: boolPtr(false), Payload: nil},
	}

	ops := FailuresFromRecords(records)
	if len(ops) != 2 {
		t.Fatalf("expected 2 failed operations, got %+v", ops)
	}
	if ops[0].Operation != "check coolant flow" || ops[0].Topic != "cooling-principles" || ops[0].ErrorType != "wrong-order" {
		t.Errorf("first = %+v", ops[0])
	}
	if ops[1].Operation != "" {
		t.Errorf("nil payload should yield empty fields, got %+v", ops[1])
	}
}
