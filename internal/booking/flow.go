package booking

// FlowState is the lifecycle of a single booking (or cancellation) attempt.
type FlowState int

const (
	FlowViewing FlowState = iota
	FlowPendingConfirmation
	FlowSubmitting
	FlowSucceeded
	FlowFailed
)

// Flow tracks one space-booking attempt from the confirmation prompt
// through submission. Failures are terminal for the attempt; a fresh click
// starts a new cycle after dismissal. Cancellation runs the same machine.
type Flow struct {
	state    FlowState
	failKind ErrorKind
}

func (f *Flow) State() FlowState {
	return f.state
}

// FailureKind returns the classified failure after Fail. Only meaningful
// while the flow is in FlowFailed.
func (f *Flow) FailureKind() ErrorKind {
	return f.failKind
}

// RequestConfirmation moves Viewing to PendingConfirmation. Returns false
// if an attempt is already underway.
func (f *Flow) RequestConfirmation() bool {
	if f.state != FlowViewing {
		return false
	}
	f.state = FlowPendingConfirmation
	return true
}

// Confirm moves PendingConfirmation to Submitting. A confirm click while
// already Submitting returns false, so the caller issues no second request.
func (f *Flow) Confirm() bool {
	if f.state != FlowPendingConfirmation {
		return false
	}
	f.state = FlowSubmitting
	return true
}

// Succeed records server acceptance. The caller must reload profile and
// event state before the next render.
func (f *Flow) Succeed() bool {
	if f.state != FlowSubmitting {
		return false
	}
	f.state = FlowSucceeded
	return true
}

// Fail records server rejection with the classified kind driving which
// modal is shown.
func (f *Flow) Fail(kind ErrorKind) bool {
	if f.state != FlowSubmitting {
		return false
	}
	f.state = FlowFailed
	f.failKind = kind
	return true
}

// Dismiss returns a finished flow to Viewing. No automatic retry happens;
// the next attempt needs a fresh user-initiated click.
func (f *Flow) Dismiss() {
	if f.state == FlowFailed || f.state == FlowSucceeded {
		f.state = FlowViewing
		f.failKind = ErrorGeneric
	}
}

// Abort cancels a not-yet-submitted attempt (the user closed the
// confirmation prompt).
func (f *Flow) Abort() {
	if f.state == FlowPendingConfirmation {
		f.state = FlowViewing
	}
}
