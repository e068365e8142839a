package broker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/otp/platform/mock"
)

func TestCoordinator_Dispatch(t *testing.T) {
	testCases := []struct {
		description string
		call        Call
		attachUI    bool
		expectErr   error
		expectMode  Mode
		expectSig   string
		expectStop  bool
	}{
		{description: "user consent", call: Call{Op: OpStartUserConsent, Sender: "+15551234567"}, attachUI: true, expectMode: UserConsent},
		{description: "retriever", call: Call{Op: OpStartRetriever}, attachUI: true, expectMode: Retriever},
		{description: "phone hint", call: Call{Op: OpGetPhoneHint}, attachUI: true, expectMode: PhoneHint},
		{description: "phone hint without ui", call: Call{Op: OpGetPhoneHint}, expectErr: ErrNoUIContext},
		{description: "retriever without ui", call: Call{Op: OpStartRetriever}, expectErr: ErrNoUIContext},
		{description: "stop", call: Call{Op: OpStopListening}, expectStop: true},
		{description: "app signature", call: Call{Op: OpGetAppSignature}, attachUI: true, expectSig: "hash"},
		{description: "app signature without ui", call: Call{Op: OpGetAppSignature}, expectErr: ErrNoUIContext},
	}
	for _, testCase := range testCases {
		coordinator, err := New(context.Background(), &mock.Platform{})
		require.NoError(t, err, testCase.description)
		if testCase.attachUI {
			coordinator.AttachUI(mock.NewUI("hash"))
		}
		reply, err := coordinator.Dispatch(testCase.call)
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			assert.Nil(t, reply, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectSig, reply.Signature, testCase.description)
		assert.Equal(t, testCase.expectStop, reply.Stopped, testCase.description)
		if testCase.expectMode != 0 {
			require.NotNil(t, reply.Ticket, testCase.description)
			assert.Equal(t, testCase.expectMode, reply.Ticket.Mode, testCase.description)
			assert.Equal(t, testCase.expectMode, coordinator.Snapshot().Mode, testCase.description)
		}
	}
}

func TestCoordinator_Dispatch_Unsupported(t *testing.T) {
	coordinator, err := New(context.Background(), &mock.Platform{})
	require.NoError(t, err)
	_, err = coordinator.Dispatch(Call{Op: Operation(99)})
	assert.EqualError(t, err, "unsupported operation: operation(99)")
}
