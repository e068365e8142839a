package mock

import (
	"context"
	"sync"

	"github.com/viant/otp/platform"
)

// Call represents a recorded start operation.
type Call struct {
	Method string
	Sender string
	done   platform.Completion
	hint   platform.IntentCompletion
}

// Platform is a scriptable platform.Platform.
type Platform struct {
	mu    sync.Mutex
	calls []*Call
	open  []*Call
	// Immediate settles start operations synchronously with StartErr / HintIntent.
	Immediate  bool
	StartErr   error
	HintIntent *platform.Intent
}

// StartConsentListen records a consent start.
func (p *Platform) StartConsentListen(_ context.Context, sender string, done platform.Completion) {
	p.record(&Call{Method: "startConsentListen", Sender: sender, done: done})
}

// StartRetrieverListen records a retriever start.
func (p *Platform) StartRetrieverListen(_ context.Context, done platform.Completion) {
	p.record(&Call{Method: "startRetrieverListen", done: done})
}

// RequestPhoneNumberHint records a hint request.
func (p *Platform) RequestPhoneNumberHint(_ context.Context, done platform.IntentCompletion) {
	p.record(&Call{Method: "requestPhoneNumberHint", hint: done})
}

func (p *Platform) record(call *Call) {
	p.mu.Lock()
	p.calls = append(p.calls, call)
	immediate := p.Immediate
	if !immediate {
		p.open = append(p.open, call)
	}
	err, intent := p.StartErr, p.HintIntent
	p.mu.Unlock()
	if immediate {
		call.settle(intent, err)
	}
}

// Calls returns recorded calls.
func (p *Platform) Calls() []*Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Call{}, p.calls...)
}

// Pending returns the number of unsettled start operations.
func (p *Platform) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.open)
}

// Settle settles the oldest unsettled start operation with err, it returns false if none is open.
func (p *Platform) Settle(err error) bool {
	return p.SettleHint(nil, err)
}

// SettleHint settles the oldest unsettled start operation with intent and err.
func (p *Platform) SettleHint(intent *platform.Intent, err error) bool {
	p.mu.Lock()
	if len(p.open) == 0 {
		p.mu.Unlock()
		return false
	}
	call := p.open[0]
	p.open = p.open[1:]
	p.mu.Unlock()
	call.settle(intent, err)
	return true
}

func (c *Call) settle(intent *platform.Intent, err error) {
	if c.hint != nil {
		if err != nil {
			intent = nil
		}
		c.hint(intent, err)
		return
	}
	c.done(err)
}

var _ platform.Platform = (*Platform)(nil)
