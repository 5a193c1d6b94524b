package application

import "errors"

var (
	ErrNotFound           = errors.New("application not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrTerminalState      = errors.New("application is in a terminal state")
	ErrEmptyJustification = errors.New("decision justification must not be empty")
	// ErrVideoKycIncomplete is a policy violation, distinct from invalid
	// input: approval requires a completed face-to-face verification.
	ErrVideoKycIncomplete = errors.New("video KYC must be completed before approval")
)

var transitions = map[Status][]Status{
	StatusDraft:     {StatusSubmitted},
	StatusSubmitted: {StatusApproved, StatusRejected},
	// APPROVED and REJECTED are terminal.
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further lifecycle transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Transition validates and applies a lifecycle change. It returns
// ErrTerminalState or ErrInvalidTransition without mutating the receiver
// when the move is not allowed.
func (a *Application) Transition(next Status) error {
	if a.Status.Terminal() {
		return ErrTerminalState
	}
	if !a.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.Status = next
	return nil
}
