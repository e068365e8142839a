package platform

import (
	"fmt"

	"github.com/viant/otp/internal/conv"
)

// Intent extras and codes used by the SMS retriever and identity APIs.
const (
	ExtraStatus        = "com.google.android.gms.auth.api.phone.EXTRA_STATUS"
	ExtraSMSMessage    = "com.google.android.gms.auth.api.phone.EXTRA_SMS_MESSAGE"
	ExtraConsentIntent = "com.google.android.gms.auth.api.phone.EXTRA_CONSENT_INTENT"
	ExtraPhoneNumber   = "phoneNumber"

	StatusSuccess = 0
	StatusTimeout = 15

	ResultOK       = -1
	ResultCanceled = 0
)

// BroadcastKind identifies the class of broadcast a receiver is registered for.
type BroadcastKind string

const (
	// SMSRetrieved is the SMS_RETRIEVED_ACTION broadcast used by both consent and retriever listeners.
	SMSRetrieved BroadcastKind = "sms_retrieved"
)

// Handle identifies a registered receiver. Handles are minted by the broker.
type Handle string

// Extras represents an opaque intent payload.
type Extras map[string]interface{}

// Text returns a string extra.
func (e Extras) Text(key string) (string, bool) {
	value, ok := e[key]
	if !ok || value == nil {
		return "", false
	}
	text, ok := value.(string)
	return text, ok
}

// Int returns an integer extra, accepting JSON numbers and numeric strings.
func (e Extras) Int(key string) (int, bool) {
	value, ok := e[key]
	if !ok || value == nil {
		return 0, false
	}
	return conv.AsInt(value)
}

// Intent returns an intent extra.
func (e Extras) Intent(key string) (*Intent, bool) {
	value, ok := e[key]
	if !ok || value == nil {
		return nil, false
	}
	return AsIntent(value)
}

// Intent represents an opaque launchable intent handed out by the host.
type Intent struct {
	Action string `json:"action,omitempty"`
	Token  string `json:"token,omitempty"`
	Extras Extras `json:"extras,omitempty"`
}

func (i *Intent) String() string {
	if i == nil {
		return "<nil>"
	}
	return fmt.Sprintf("intent(%s/%s)", i.Action, i.Token)
}

// AsIntent converts a decoded payload value into an Intent.
func AsIntent(value interface{}) (*Intent, bool) {
	switch actual := value.(type) {
	case *Intent:
		return actual, actual != nil
	case Intent:
		return &actual, true
	case string:
		if actual == "" {
			return nil, false
		}
		return &Intent{Token: actual}, true
	case map[string]interface{}:
		ret := &Intent{}
		ret.Action, _ = actual["action"].(string)
		ret.Token, _ = actual["token"].(string)
		if extras, ok := actual["extras"].(map[string]interface{}); ok {
			ret.Extras = extras
		}
		if ret.Action == "" && ret.Token == "" {
			return nil, false
		}
		return ret, true
	}
	return nil, false
}

// Broadcast represents an inbound broadcast delivered to a registered receiver.
type Broadcast struct {
	Kind   BroadcastKind `json:"kind"`
	Handle Handle        `json:"handle"`
	Extras Extras        `json:"extras,omitempty"`
}

// PickerResult represents the result of an intent launched for result.
type PickerResult struct {
	RequestCode int    `json:"requestCode"`
	ResultCode  int    `json:"resultCode"`
	Extras      Extras `json:"extras,omitempty"`
}
