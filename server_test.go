package otp

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/otp/broker"
	"github.com/viant/otp/platform/mock"
)

func TestNewBroker(t *testing.T) {
	testCases := []struct {
		description string
		options     *Options
		expectErr   bool
		expectBusy  bool
	}{
		{description: "defaults", options: nil, expectBusy: true},
		{description: "reject", options: &Options{Policy: "reject", ListenTimeout: "5m"}, expectBusy: true},
		{description: "supersede", options: &Options{Policy: "supersede"}},
		{description: "invalid policy", options: &Options{Policy: "queue"}, expectErr: true},
		{description: "invalid timeout", options: &Options{ListenTimeout: "soon"}, expectErr: true},
		{description: "negative timeout", options: &Options{ListenTimeout: "-1s"}, expectErr: true},
	}
	for _, testCase := range testCases {
		coordinator, err := NewBroker(context.Background(), &mock.Platform{}, testCase.options, zerolog.Nop())
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		coordinator.AttachUI(mock.NewUI())
		_, err = coordinator.StartRetriever()
		require.NoError(t, err, testCase.description)
		_, err = coordinator.StartRetriever()
		assert.Equal(t, testCase.expectBusy, errors.Is(err, broker.ErrBusy), testCase.description)
	}
}

func TestNewServer(t *testing.T) {
	srv, err := NewServer(&Options{LoggerName: "otp-test", ResultTTL: "10m", EventBuffer: 8}, zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, srv)

	_, err = NewServer(&Options{ResultTTL: "later"}, zerolog.Nop())
	assert.Error(t, err)
	_, err = NewServer(&Options{EventBuffer: -1}, zerolog.Nop())
	assert.Error(t, err)
}

func TestOptions_Merge(t *testing.T) {
	options := &Options{Policy: "reject", LogLevel: "info"}
	options.Merge(&Options{Policy: "supersede", ListenTimeout: "1m"})
	assert.Equal(t, &Options{Policy: "supersede", LogLevel: "info", ListenTimeout: "1m"}, options)
	options.Merge(nil)
	assert.Equal(t, "supersede", options.Policy)
}
