package appointment

import (
	entappt "github.com/medera/medera_backend/internal/repo/appointment"
)

// transitions enumerates the allowed status moves. Completed and cancelled
// are terminal; completion requires a prior staff confirmation.
var transitions = map[entappt.Status][]entappt.Status{
	entappt.StatusPending:   {entappt.StatusConfirmed, entappt.StatusCancelled},
	entappt.StatusConfirmed: {entappt.StatusCompleted, entappt.StatusCancelled},
}

// CanTransition reports whether an appointment may move from one status
// to another.
func CanTransition(from, to entappt.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
