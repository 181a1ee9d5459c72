package appointment

import (
	"testing"

	entappt "github.com/medera/medera_backend/internal/repo/appointment"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from entappt.Status
		to   entappt.Status
		want bool
	}{
		{"pending to confirmed", entappt.StatusPending, entappt.StatusConfirmed, true},
		{"pending to cancelled", entappt.StatusPending, entappt.StatusCancelled, true},
		{"pending to completed skips confirmation", entappt.StatusPending, entappt.StatusCompleted, false},
		{"confirmed to completed", entappt.StatusConfirmed, entappt.StatusCompleted, true},
		{"confirmed to cancelled", entappt.StatusConfirmed, entappt.StatusCancelled, true},
		{"confirmed back to pending", entappt.StatusConfirmed, entappt.StatusPending, false},
		{"completed is terminal", entappt.StatusCompleted, entappt.StatusCancelled, false},
		{"completed cannot reopen", entappt.StatusCompleted, entappt.StatusConfirmed, false},
		{"cancelled is terminal", entappt.StatusCancelled, entappt.StatusConfirmed, false},
		{"cancelled cannot complete", entappt.StatusCancelled, entappt.StatusCompleted, false},
		{"no self transition", entappt.StatusPending, entappt.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
