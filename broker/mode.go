package broker

import (
	"fmt"

	"github.com/viant/otp/platform"
)

// Mode represents a listening mode.
type Mode int

const (
	UserConsent Mode = iota + 1
	Retriever
	PhoneHint
	AppSignature
)

func (m Mode) String() string {
	switch m {
	case UserConsent:
		return "userConsent"
	case Retriever:
		return "retriever"
	case PhoneHint:
		return "phoneHint"
	case AppSignature:
		return "appSignature"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// broadcastKind returns the broadcast kind a mode subscribes to.
func (m Mode) broadcastKind() (platform.BroadcastKind, bool) {
	switch m {
	case UserConsent, Retriever:
		return platform.SMSRetrieved, true
	}
	return "", false
}
