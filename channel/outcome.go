// Package channel interprets inbound platform events for each listening mode.
//
// Interpreters are stateless: they never touch the broker's request slot, they only map
// an event to an Outcome that the coordinator acts upon.
package channel

import (
	"fmt"

	"github.com/viant/otp/platform"
)

// Kind represents an interpretation outcome kind.
type Kind int

const (
	// Message carries the SMS message text.
	Message Kind = iota + 1
	// Number carries the picked phone number.
	Number
	// ShowConsent asks the coordinator to launch the consent UI.
	ShowConsent
	// Declined is a recoverable user dismissal.
	Declined
	// Timeout is a platform side listen expiry.
	Timeout
	// PlatformError is a malformed or unexpected event.
	PlatformError
)

func (k Kind) String() string {
	switch k {
	case Message:
		return "message"
	case Number:
		return "number"
	case ShowConsent:
		return "showConsent"
	case Declined:
		return "declined"
	case Timeout:
		return "timeout"
	case PlatformError:
		return "platformError"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Outcome represents an interpreted event.
type Outcome struct {
	Kind   Kind
	Value  string
	Intent *platform.Intent
	Reason string
}

// Terminal returns true if the outcome resolves the request.
func (o Outcome) Terminal() bool {
	switch o.Kind {
	case Message, Number, Timeout, PlatformError:
		return true
	}
	return false
}

func platformError(format string, args ...interface{}) Outcome {
	return Outcome{Kind: PlatformError, Reason: fmt.Sprintf(format, args...)}
}

// broadcastStatus maps EXTRA_STATUS to a non terminal-success outcome, ok is true on success.
func broadcastStatus(event platform.Broadcast) (Outcome, bool) {
	status, ok := event.Extras.Int(platform.ExtraStatus)
	if !ok {
		return platformError("missing %s", platform.ExtraStatus), false
	}
	switch status {
	case platform.StatusSuccess:
		return Outcome{}, true
	case platform.StatusTimeout:
		return Outcome{Kind: Timeout, Reason: "sms listen timed out"}, false
	}
	return platformError("unexpected status: %d", status), false
}
