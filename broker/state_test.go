package broker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		description string
		from        State
		to          State
		expect      bool
	}{
		{description: "idle to starting", from: Idle, to: Starting, expect: true},
		{description: "idle to listening", from: Idle, to: Listening, expect: false},
		{description: "starting to listening", from: Starting, to: Listening, expect: true},
		{description: "starting to resolved", from: Starting, to: Resolved, expect: true},
		{description: "starting to cancelled", from: Starting, to: Cancelled, expect: true},
		{description: "listening stays listening", from: Listening, to: Listening, expect: true},
		{description: "listening to resolved", from: Listening, to: Resolved, expect: true},
		{description: "listening to starting", from: Listening, to: Starting, expect: false},
		{description: "resolved is final", from: Resolved, to: Listening, expect: false},
		{description: "cancelled is final", from: Cancelled, to: Resolved, expect: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, CanTransition(testCase.from, testCase.to), testCase.description)
	}
}

func TestState_IsTerminal(t *testing.T) {
	assert.True(t, Resolved.IsTerminal())
	assert.True(t, Cancelled.IsTerminal())
	assert.False(t, Idle.IsTerminal())
	assert.False(t, Listening.IsTerminal())
	assert.False(t, State(42).IsTerminal())
	assert.Equal(t, "state(42)", State(42).String())
}

func TestTransition(t *testing.T) {
	request := &Request{}
	assert.NoError(t, transition(request, Starting))
	assert.Error(t, transition(request, Starting))
	assert.NoError(t, transition(request, Cancelled))
	assert.Error(t, transition(request, Resolved))
	assert.Equal(t, Cancelled, request.State)
}
