package loan

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrGuardRejected     = errors.New("transition rejected by guard")
	ErrStorage           = errors.New("storage failure")
)

// InvalidTransitionError reports a transition the lifecycle graph does not
// permit. Valid carries the statuses actually reachable from From so callers
// can surface them.
type InvalidTransitionError struct {
	From  Status
	To    Status
	Valid []Status
}

func (e *InvalidTransitionError) Error() string {
	if len(e.Valid) == 0 {
		return fmt.Sprintf("cannot transition from %s to %s: %s is a terminal state", e.From, e.To, e.From)
	}
	names := make([]string, len(e.Valid))
	for i, s := range e.Valid {
		names[i] = string(s)
	}
	return fmt.Sprintf("cannot transition from %s to %s: valid next statuses are %s",
		e.From, e.To, strings.Join(names, ", "))
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// GuardRejectedError reports a structurally valid transition that a business
// guard refused. Reason is the guard's human-readable explanation, surfaced
// verbatim to callers.
type GuardRejectedError struct {
	From   Status
	To     Status
	Reason string
}

func (e *GuardRejectedError) Error() string {
	return fmt.Sprintf("transition %s -> %s rejected: %s", e.From, e.To, e.Reason)
}

func (e *GuardRejectedError) Is(target error) bool { return target == ErrGuardRejected }
