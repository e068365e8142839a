package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/viant/otp/channel"
	"github.com/viant/otp/platform"
)

// ErrClosed is returned by start operations after Close.
var ErrClosed = errors.New("broker: coordinator closed")

// Coordinator tracks at most one outstanding request, routes platform events to the
// matching channel, enforces a single resolution per request and tears down subscriptions.
// The mutex guards the request slot, subscription set and UI reference; it is never held
// across a platform call.
type Coordinator struct {
	ctx       context.Context
	platform  platform.Platform
	consent   channel.Consent
	retriever channel.Retriever
	hint      channel.Hint

	store         Store[*Request]
	policy        Policy
	listenTimeout time.Duration
	newID         func() string
	now           func() time.Time
	logger        zerolog.Logger

	mu            sync.Mutex
	ui            platform.UI
	current       *Request
	subscriptions map[platform.Handle]*subscription
	sequence      int
	closed        bool
}

// Status represents a point in time view of the coordinator.
type Status struct {
	RequestID     string
	Mode          Mode
	State         State
	Subscriptions int
	UIAttached    bool
}

// New creates a coordinator; ctx bounds every platform call issued on behalf of requests.
func New(ctx context.Context, aPlatform platform.Platform, options ...Option) (*Coordinator, error) {
	if aPlatform == nil {
		return nil, errors.New("platform was nil")
	}
	c := &Coordinator{
		ctx:           ctx,
		platform:      aPlatform,
		newID:         uuid.NewString,
		now:           time.Now,
		logger:        zerolog.Nop(),
		subscriptions: make(map[platform.Handle]*subscription),
	}
	for _, option := range options {
		option(c)
	}
	if c.store == nil {
		c.store = NewMemoryStore[*Request]()
	}
	c.logger = c.logger.With().Str("component", "otp.broker").Logger()
	return c, nil
}

// AttachUI attaches the UI surface required to register receivers and launch pickers.
func (c *Coordinator) AttachUI(ui platform.UI) {
	c.mu.Lock()
	c.ui = ui
	c.mu.Unlock()
	c.logger.Debug().Msg("ui attached")
}

// OnUIContextDetached releases every subscription and cancels the outstanding request
// without writing its response slot.
func (c *Coordinator) OnUIContextDetached() {
	c.mu.Lock()
	c.ui = nil
	subs := c.cancelLocked("ui detached")
	c.mu.Unlock()
	c.release(subs)
}

// StopListening releases every subscription and discards the outstanding request without
// writing its response slot. It is safe to call with no outstanding request.
func (c *Coordinator) StopListening() {
	c.mu.Lock()
	subs := c.cancelLocked("stopped")
	c.mu.Unlock()
	c.release(subs)
}

// Close stops listening and rejects further start operations.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.closed = true
	subs := c.cancelLocked("closed")
	c.mu.Unlock()
	c.release(subs)
	if ids, err := c.store.Clear(c.ctx); err != nil || len(ids) > 0 {
		c.logger.Warn().Err(err).Strs("requests", ids).Msg("pending requests cleared on close")
	}
}

// StartUserConsent starts user-consent listening; an empty sender accepts any sender.
func (c *Coordinator) StartUserConsent(sender string) (*Ticket, error) {
	request, superseded, err := c.begin(UserConsent, sender)
	if err != nil {
		return nil, err
	}
	c.release(superseded)
	id := request.ID
	c.platform.StartConsentListen(c.ctx, sender, func(err error) {
		c.onListenStarted(id, err)
	})
	return request.Ticket(), nil
}

// StartRetriever starts automatic retriever listening.
func (c *Coordinator) StartRetriever() (*Ticket, error) {
	request, superseded, err := c.begin(Retriever, "")
	if err != nil {
		return nil, err
	}
	c.release(superseded)
	id := request.ID
	c.platform.StartRetrieverListen(c.ctx, func(err error) {
		c.onListenStarted(id, err)
	})
	return request.Ticket(), nil
}

// StartPhoneHint requests the phone number picker; it fails with ErrNoUIContext when no UI is attached.
func (c *Coordinator) StartPhoneHint() (*Ticket, error) {
	request, superseded, err := c.begin(PhoneHint, "")
	if err != nil {
		return nil, err
	}
	c.release(superseded)
	id := request.ID
	c.platform.RequestPhoneNumberHint(c.ctx, func(intent *platform.Intent, err error) {
		c.onHintIntent(id, intent, err)
	})
	return request.Ticket(), nil
}

// AppSignature returns the first app signature; it does not occupy the request slot.
func (c *Coordinator) AppSignature() (string, error) {
	c.mu.Lock()
	ui := c.ui
	c.mu.Unlock()
	if ui == nil {
		return "", ErrNoUIContext
	}
	signatures, err := ui.AppSignatures(c.ctx)
	if err != nil {
		return "", newError(KindPlatformError, "failed to read app signatures", err)
	}
	if len(signatures) == 0 {
		return "", newError(KindPlatformError, "no app signature", nil)
	}
	return signatures[0], nil
}

// HandleBroadcast routes a broadcast to the live request; it returns false when the event was discarded.
func (c *Coordinator) HandleBroadcast(event platform.Broadcast) bool {
	c.mu.Lock()
	request := c.current
	if request == nil || request.State != Listening {
		c.mu.Unlock()
		c.discard("broadcast", "no listening request")
		return false
	}
	sub, ok := c.subscriptions[event.Handle]
	if !ok || sub.requestID != request.ID || sub.kind != event.Kind {
		c.mu.Unlock()
		c.discard("broadcast", "unknown subscription")
		return false
	}
	var outcome channel.Outcome
	switch request.Mode {
	case UserConsent:
		outcome = c.consent.Interpret(event)
	case Retriever:
		outcome = c.retriever.Interpret(event)
	default:
		c.mu.Unlock()
		c.discard("broadcast", "mode without broadcast")
		return false
	}
	c.logger.Debug().Str("request", request.ID).Str("mode", request.Mode.String()).Str("outcome", outcome.Kind.String()).Msg("broadcast interpreted")

	switch outcome.Kind {
	case channel.ShowConsent:
		request.ConsentShown = true
		_ = transition(request, Listening)
		ui, id, code := sub.ui, request.ID, request.Discriminator
		c.mu.Unlock()
		if err := ui.Launch(c.ctx, outcome.Intent, code); err != nil {
			c.fail(id, KindPlatformError, "failed to launch consent UI", err)
		}
		return true
	case channel.Declined:
		_ = transition(request, Listening)
		c.mu.Unlock()
		return true
	}
	subs := c.resolveLocked(request, c.result(outcome))
	c.mu.Unlock()
	c.release(subs)
	return true
}

// HandlePickerResult routes a consent confirmation or phone hint picker result to the live
// request; it returns false when the event was discarded.
func (c *Coordinator) HandlePickerResult(result platform.PickerResult) bool {
	c.mu.Lock()
	request := c.current
	if request == nil || request.State != Listening || request.Discriminator != result.RequestCode {
		c.mu.Unlock()
		c.discard("picker", "no matching request")
		return false
	}
	var outcome channel.Outcome
	switch {
	case request.Mode == UserConsent && request.ConsentShown:
		outcome = c.consent.Confirm(result)
	case request.Mode == PhoneHint:
		outcome = c.hint.Interpret(result)
	default:
		c.mu.Unlock()
		c.discard("picker", "no picker launched")
		return false
	}
	c.logger.Debug().Str("request", request.ID).Str("mode", request.Mode.String()).Str("outcome", outcome.Kind.String()).Msg("picker result interpreted")
	if !outcome.Terminal() {
		_ = transition(request, Listening)
		c.mu.Unlock()
		return true
	}
	subs := c.resolveLocked(request, c.result(outcome))
	c.mu.Unlock()
	c.release(subs)
	return true
}

// Snapshot returns the current coordinator status.
func (c *Coordinator) Snapshot() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	ret := Status{Subscriptions: len(c.subscriptions), UIAttached: c.ui != nil}
	if c.current != nil {
		ret.RequestID = c.current.ID
		ret.Mode = c.current.Mode
		ret.State = c.current.State
	}
	return ret
}

func (c *Coordinator) begin(mode Mode, sender string) (*Request, []*subscription, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, nil, ErrClosed
	}
	if c.ui == nil {
		return nil, nil, ErrNoUIContext
	}
	var superseded []*subscription
	if outstanding := c.current; outstanding != nil {
		if c.policy != Supersede {
			return nil, nil, newError(KindBusy, fmt.Sprintf("%s request %s is outstanding", outstanding.Mode, outstanding.ID), nil)
		}
		superseded = c.cancelLocked("superseded")
	}
	c.sequence = c.sequence%maxRequestCode + 1
	request := &Request{
		ID:            c.newID(),
		Discriminator: c.sequence,
		Mode:          mode,
		Sender:        sender,
		CreatedAt:     c.now(),
		slot:          newSlot(),
	}
	if err := transition(request, Starting); err != nil {
		return nil, nil, err
	}
	if c.listenTimeout > 0 {
		request.ExpiresAt = request.CreatedAt.Add(c.listenTimeout)
		id := request.ID
		request.timer = time.AfterFunc(c.listenTimeout, func() {
			c.fail(id, KindTimeout, fmt.Sprintf("no result within %s", c.listenTimeout), nil)
		})
	}
	pending := Pending[*Request]{ID: request.ID, Mode: mode, CreatedAt: request.CreatedAt, ExpiresAt: request.ExpiresAt, Data: request}
	if err := c.store.Put(c.ctx, pending); err != nil {
		request.stopTimer()
		return nil, nil, fmt.Errorf("failed to store request: %w", err)
	}
	c.current = request
	c.logger.Debug().Str("request", request.ID).Str("mode", mode.String()).Int("discriminator", request.Discriminator).Msg("request started")
	return request, superseded, nil
}

func (c *Coordinator) onListenStarted(id string, err error) {
	c.mu.Lock()
	request := c.lookupLocked(id, Starting)
	if request == nil {
		c.mu.Unlock()
		c.discard("start acknowledgement", "request no longer starting")
		return
	}
	if err != nil {
		subs := c.resolveLocked(request, Result{Err: newError(KindStartFailed, "platform failed to start listening", err)})
		c.mu.Unlock()
		c.release(subs)
		return
	}
	_ = transition(request, Listening)
	kind, _ := request.Mode.broadcastKind()
	sub := &subscription{
		handle:    platform.Handle(c.newID()),
		kind:      kind,
		requestID: request.ID,
		ui:        c.ui,
	}
	c.subscriptions[sub.handle] = sub
	c.mu.Unlock()

	if err = sub.ui.Register(c.ctx, sub.kind, sub.handle); err != nil {
		c.fail(id, KindStartFailed, "failed to register receiver", err)
		return
	}
	if !sub.markRegistered() {
		c.unregister(sub)
		return
	}
	c.logger.Debug().Str("request", id).Str("handle", string(sub.handle)).Msg("receiver registered")
}

func (c *Coordinator) onHintIntent(id string, intent *platform.Intent, err error) {
	c.mu.Lock()
	request := c.lookupLocked(id, Starting)
	if request == nil {
		c.mu.Unlock()
		c.discard("hint intent", "request no longer starting")
		return
	}
	if err == nil && intent == nil {
		err = errors.New("empty phone number hint intent")
	}
	if err != nil {
		subs := c.resolveLocked(request, Result{Err: newError(KindStartFailed, "platform failed to build phone number hint", err)})
		c.mu.Unlock()
		c.release(subs)
		return
	}
	_ = transition(request, Listening)
	ui, code := c.ui, request.Discriminator
	c.mu.Unlock()
	if err = ui.Launch(c.ctx, intent, code); err != nil {
		c.fail(id, KindStartFailed, "failed to launch phone number hint", err)
	}
}

// fail resolves the request with id if it is still live.
func (c *Coordinator) fail(id string, kind Kind, message string, err error) {
	c.mu.Lock()
	request := c.current
	if request == nil || request.ID != id || request.State.IsTerminal() {
		c.mu.Unlock()
		return
	}
	subs := c.resolveLocked(request, Result{Err: newError(kind, message, err)})
	c.mu.Unlock()
	c.release(subs)
}

func (c *Coordinator) lookupLocked(id string, state State) *Request {
	request := c.current
	if request == nil || request.ID != id || request.State != state {
		return nil
	}
	return request
}

func (c *Coordinator) result(outcome channel.Outcome) Result {
	switch outcome.Kind {
	case channel.Message, channel.Number:
		return Result{Value: outcome.Value}
	case channel.Timeout:
		return Result{Err: newError(KindTimeout, outcome.Reason, nil)}
	}
	return Result{Err: newError(KindPlatformError, outcome.Reason, nil)}
}

// resolveLocked writes the response slot once and returns subscriptions to release.
func (c *Coordinator) resolveLocked(request *Request, result Result) []*subscription {
	if err := transition(request, Resolved); err != nil {
		c.logger.Warn().Err(err).Str("request", request.ID).Msg("resolution rejected")
		return nil
	}
	request.stopTimer()
	if _, ok, err := c.store.Complete(c.ctx, request.ID); err != nil || !ok {
		c.logger.Warn().Err(err).Str("request", request.ID).Msg("pending request missing")
	}
	if c.current == request {
		c.current = nil
	}
	result.RequestID, result.Mode = request.ID, request.Mode
	request.slot.write(result)
	event := c.logger.Info().Str("request", request.ID).Str("mode", request.Mode.String())
	if result.Err != nil {
		event = event.Str("error", string(KindOf(result.Err)))
	}
	event.Msg("request resolved")
	return c.drainLocked()
}

// cancelLocked cancels the outstanding request without writing its slot and returns subscriptions to release.
func (c *Coordinator) cancelLocked(reason string) []*subscription {
	if request := c.current; request != nil {
		if err := transition(request, Cancelled); err != nil {
			c.logger.Warn().Err(err).Str("request", request.ID).Msg("cancellation rejected")
		}
		request.stopTimer()
		_, _, _ = c.store.Cancel(c.ctx, request.ID)
		c.current = nil
		c.logger.Info().Str("request", request.ID).Str("mode", request.Mode.String()).Str("reason", reason).Msg("request cancelled")
	}
	return c.drainLocked()
}

func (c *Coordinator) drainLocked() []*subscription {
	if len(c.subscriptions) == 0 {
		return nil
	}
	subs := make([]*subscription, 0, len(c.subscriptions))
	for handle, sub := range c.subscriptions {
		subs = append(subs, sub)
		delete(c.subscriptions, handle)
	}
	return subs
}

func (c *Coordinator) release(subs []*subscription) {
	for _, sub := range subs {
		if sub.release() {
			c.unregister(sub)
		}
	}
}

func (c *Coordinator) unregister(sub *subscription) {
	if err := sub.ui.Unregister(c.ctx, sub.handle); err != nil {
		c.logger.Warn().Err(err).Str("handle", string(sub.handle)).Msg("failed to unregister receiver")
	}
}

func (c *Coordinator) discard(event, reason string) {
	c.logger.Debug().Str("event", event).Str("reason", reason).Msg("event discarded")
}
