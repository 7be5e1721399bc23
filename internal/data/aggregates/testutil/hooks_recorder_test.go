package testutil

import (
	"testing"
	"time"
)

func TestHooksRecorder_CapturesSignals(t *testing.T) {
	h := &HooksRecorder{}
	h.ObserveOperation("Restaurants.Add", "success", 10*time.Millisecond)
	h.IncConflict("Restaurants.Add")
	h.IncRetry("Restaurants.Add")

	if len(h.Operations) != 1 {
		t.Fatalf("expected 1 op event, got %d", len(h.Operations))
	}
	if h.Operations[0].Name != "Restaurants.Add" || h.Operations[0].Status != "success" {
		t.Fatalf("unexpected op event: %+v", h.Operations[0])
	}
	if len(h.Conflicts) != 1 || h.Conflicts[0] != "Restaurants.Add" {
		t.Fatalf("unexpected conflicts: %+v", h.Conflicts)
	}
	if got := h.StatusesFor("Restaurants.Add"); len(got) != 1 || got[0] != "success" {
		t.Fatalf("unexpected statuses: %+v", got)
	}
	if got := h.StatusesFor("Restaurants.Delete"); len(got) != 0 {
		t.Fatalf("expected no statuses for other op, got %+v", got)
	}
	if len(h.Retries) != 1 || h.Retries[0] != "Restaurants.Add" {
		t.Fatalf("unexpected retries: %+v", h.Retries)
	}
}
