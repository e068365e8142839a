package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/otp/platform"
	"github.com/viant/otp/schema"
)

// errSignaturesUnavailable reports app signatures requested before the host supplied them.
var errSignaturesUnavailable = errors.New("app signatures not received from host")

// Host implements platform.Platform and platform.UI by sending platform/* requests to the
// peer over the transport on which caller requests arrive.
//
// The stdio transport reads host replies on the goroutine that serves caller requests, so
// nothing reachable from a caller request waits for a host reply. AppSignatures answers from
// signatures cached when the UI attached.
type Host struct {
	transport.Transport
	transport.Sequencer
	logger     zerolog.Logger
	mu         sync.RWMutex
	signatures []string
}

// StartConsentListen sends platform/startConsentListen and settles done with the host outcome.
func (h *Host) StartConsentListen(ctx context.Context, sender string, done platform.Completion) {
	go func() {
		done(h.call(ctx, schema.MethodStartConsentListen, &schema.StartConsentListenParams{Sender: sender}, nil))
	}()
}

// StartRetrieverListen sends platform/startRetrieverListen and settles done with the host outcome.
func (h *Host) StartRetrieverListen(ctx context.Context, done platform.Completion) {
	go func() {
		done(h.call(ctx, schema.MethodStartRetrieverListen, nil, nil))
	}()
}

// RequestPhoneNumberHint sends platform/requestPhoneNumberHint and settles done with the picker intent.
func (h *Host) RequestPhoneNumberHint(ctx context.Context, done platform.IntentCompletion) {
	go func() {
		result := &schema.PhoneNumberHintResult{}
		if err := h.call(ctx, schema.MethodRequestPhoneNumberHint, nil, result); err != nil {
			done(nil, err)
			return
		}
		done(result.Intent, nil)
	}()
}

func (h *Host) Register(ctx context.Context, kind platform.BroadcastKind, handle platform.Handle) error {
	return h.call(ctx, schema.MethodRegisterReceiver, &schema.RegisterReceiverParams{Kind: kind, Handle: handle}, nil)
}

// Unregister sends platform/unregisterReceiver without waiting for the host acknowledgement;
// failures are logged.
func (h *Host) Unregister(ctx context.Context, handle platform.Handle) error {
	go func() {
		if err := h.call(ctx, schema.MethodUnregisterReceiver, &schema.UnregisterReceiverParams{Handle: handle}, nil); err != nil {
			h.logger.Warn().Err(err).Str("handle", string(handle)).Msg("failed to unregister receiver")
		}
	}()
	return nil
}

func (h *Host) Launch(ctx context.Context, intent *platform.Intent, requestCode int) error {
	return h.call(ctx, schema.MethodLaunch, &schema.LaunchParams{Intent: intent, RequestCode: requestCode}, nil)
}

// AppSignatures returns the cached app signatures.
func (h *Host) AppSignatures(_ context.Context) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.signatures == nil {
		return nil, errSignaturesUnavailable
	}
	return append([]string{}, h.signatures...), nil
}

// setSignatures replaces the cached app signatures.
func (h *Host) setSignatures(signatures []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.signatures = append([]string{}, signatures...)
}

// loadSignatures caches app signatures read with platform/getAppSignatures; it blocks on the
// host reply and must not run on the goroutine serving caller requests.
func (h *Host) loadSignatures(ctx context.Context) error {
	result := &schema.AppSignaturesResult{}
	if err := h.call(ctx, schema.MethodGetAppSignatures, nil, result); err != nil {
		return err
	}
	h.setSignatures(result.Signatures)
	return nil
}

// call marshals parameters, sends the request and unmarshals the result.
func (h *Host) call(ctx context.Context, method string, parameters interface{}, result interface{}) error {
	if parameters == nil {
		parameters = map[string]interface{}{}
	}
	request, err := jsonrpc.NewRequest(method, parameters)
	if err != nil {
		return fmt.Errorf("failed to create %v request: %w", method, err)
	}
	if h.Sequencer != nil {
		request.Id = h.NextRequestID()
	}
	response, err := h.Send(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to send %v: %w", method, err)
	}
	if response == nil {
		return errors.New(method + ": empty response")
	}
	if response.Error != nil {
		return fmt.Errorf("%v: %v (%v)", method, response.Error.Message, response.Error.Code)
	}
	if result == nil || len(response.Result) == 0 {
		return nil
	}
	if err = json.Unmarshal(response.Result, result); err != nil {
		return fmt.Errorf("failed to decode %v result: %w", method, err)
	}
	return nil
}

// NewHost creates a host over aTransport
func NewHost(aTransport transport.Transport, logger zerolog.Logger) *Host {
	seq, _ := aTransport.(transport.Sequencer)
	return &Host{Transport: aTransport, Sequencer: seq, logger: logger}
}

var _ platform.Platform = (*Host)(nil)
var _ platform.UI = (*Host)(nil)
