package schema

import "github.com/viant/otp/platform"

// StartListenUserConsentParams represents startListenUserConsent parameters.
type StartListenUserConsentParams struct {
	// SenderTelephoneNumber restricts consent to messages from this sender; nil or empty accepts any sender.
	SenderTelephoneNumber *string `json:"senderTelephoneNumber,omitempty"`
}

// StartListenResult identifies the request whose outcome is delivered with otp/result.
type StartListenResult struct {
	RequestID string `json:"requestId"`
}

// StatusResult represents getStatus result.
type StatusResult struct {
	RequestID     string `json:"requestId,omitempty"`
	Mode          string `json:"mode,omitempty"`
	State         string `json:"state"`
	Subscriptions int    `json:"subscriptions"`
	UIAttached    bool   `json:"uiAttached"`
}

// ResultError represents a failed request outcome.
type ResultError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResultNotificationParams represents otp/result parameters; exactly one of Value or Error is set.
type ResultNotificationParams struct {
	RequestID string       `json:"requestId"`
	Mode      string       `json:"mode"`
	Value     *string      `json:"value,omitempty"`
	Error     *ResultError `json:"error,omitempty"`
}

// UIAttachedParams represents platform/uiAttached parameters.
type UIAttachedParams struct {
	Surface string `json:"surface,omitempty"`
	// Signatures carries the app signatures up front; when empty the broker asks for them with platform/getAppSignatures.
	Signatures []string `json:"signatures,omitempty"`
}

// StartConsentListenParams represents platform/startConsentListen parameters.
type StartConsentListenParams struct {
	Sender string `json:"sender,omitempty"`
}

// PhoneNumberHintResult represents platform/requestPhoneNumberHint result.
type PhoneNumberHintResult struct {
	Intent *platform.Intent `json:"intent"`
}

// RegisterReceiverParams represents platform/registerReceiver parameters.
type RegisterReceiverParams struct {
	Kind   platform.BroadcastKind `json:"kind"`
	Handle platform.Handle        `json:"handle"`
}

// UnregisterReceiverParams represents platform/unregisterReceiver parameters.
type UnregisterReceiverParams struct {
	Handle platform.Handle `json:"handle"`
}

// LaunchParams represents platform/launch parameters.
type LaunchParams struct {
	Intent      *platform.Intent `json:"intent"`
	RequestCode int              `json:"requestCode"`
}

// AppSignaturesResult represents platform/getAppSignatures result.
type AppSignaturesResult struct {
	Signatures []string `json:"signatures"`
}

// Acknowledgement is the result of host requests without a payload.
type Acknowledgement struct {
	OK bool `json:"ok,omitempty"`
}
