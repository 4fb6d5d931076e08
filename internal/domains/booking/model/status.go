package model

import "fmt"

// Status represents the current state of a booking in its lifecycle.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// validTransitions defines the state machine for booking status transitions.
// completed and cancelled are schema members with no inbound transition.
// TODO: wire completion/cancellation transitions once their product rules land.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusAccepted},
	StatusAccepted:  {},
	StatusCompleted: {},
	StatusCancelled: {},
}

// IsValid returns true if the status is a recognized booking status.
func (s Status) IsValid() bool {
	_, exists := validTransitions[s]

	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}

	for _, t := range allowed {
		if t == target {
			return true
		}
	}

	return false
}

// IsTerminal returns true if the status has no outgoing transitions wired.
// accepted reports terminal today only because completion and cancellation are
// not wired yet; once they land it becomes an intermediate state.
func (s Status) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}

	return len(allowed) == 0
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a string to a Status, returning an error if invalid.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}

	return status, nil
}
