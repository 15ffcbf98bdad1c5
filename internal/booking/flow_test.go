package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlow_HappyPath(t *testing.T) {
	var f Flow
	assert.Equal(t, FlowViewing, f.State())

	assert.True(t, f.RequestConfirmation())
	assert.Equal(t, FlowPendingConfirmation, f.State())

	assert.True(t, f.Confirm())
	assert.Equal(t, FlowSubmitting, f.State())

	assert.True(t, f.Succeed())
	assert.Equal(t, FlowSucceeded, f.State())

	f.Dismiss()
	assert.Equal(t, FlowViewing, f.State())
}

func TestFlow_DoubleConfirmIsNoOp(t *testing.T) {
	var f Flow
	f.RequestConfirmation()

	assert.True(t, f.Confirm())
	// Second rapid confirm click while Submitting: no second request.
	assert.False(t, f.Confirm())
	assert.Equal(t, FlowSubmitting, f.State())
}

func TestFlow_FailureReturnsToViewingOnDismiss(t *testing.T) {
	var f Flow
	f.RequestConfirmation()
	f.Confirm()

	assert.True(t, f.Fail(ErrorSpaceAlreadyBooked))
	assert.Equal(t, FlowFailed, f.State())
	assert.Equal(t, ErrorSpaceAlreadyBooked, f.FailureKind())

	f.Dismiss()
	assert.Equal(t, FlowViewing, f.State())
}

func TestFlow_NoRetryWithoutFreshClick(t *testing.T) {
	var f Flow
	f.RequestConfirmation()
	f.Confirm()
	f.Fail(ErrorGeneric)
	f.Dismiss()

	// Failure is terminal for the attempt: the machine will not re-submit.
	assert.False(t, f.Confirm())
	assert.True(t, f.RequestConfirmation())
}

func TestFlow_InvalidTransitions(t *testing.T) {
	var f Flow
	assert.False(t, f.Confirm())
	assert.False(t, f.Succeed())
	assert.False(t, f.Fail(ErrorGeneric))

	f.RequestConfirmation()
	assert.False(t, f.RequestConfirmation())
	assert.False(t, f.Succeed())
}

func TestFlow_AbortFromConfirmationPrompt(t *testing.T) {
	var f Flow
	f.RequestConfirmation()
	f.Abort()
	assert.Equal(t, FlowViewing, f.State())

	// Abort does nothing once submitting.
	f.RequestConfirmation()
	f.Confirm()
	f.Abort()
	assert.Equal(t, FlowSubmitting, f.State())
}
