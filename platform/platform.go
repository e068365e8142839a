package platform

import "context"

// Completion is invoked once when an asynchronous platform start operation settles.
type Completion func(err error)

// IntentCompletion is invoked once with the intent produced by an asynchronous platform operation.
type IntentCompletion func(intent *Intent, err error)

// Platform represents application scoped SMS/identity capabilities.
// Implementations must return promptly and settle the completion later, on any goroutine.
type Platform interface {
	// StartConsentListen begins SMS user-consent listening; sender may be empty to accept any sender.
	StartConsentListen(ctx context.Context, sender string, done Completion)

	// StartRetrieverListen begins automatic SMS retriever listening.
	StartRetrieverListen(ctx context.Context, done Completion)

	// RequestPhoneNumberHint builds the intent that shows the phone number picker.
	RequestPhoneNumberHint(ctx context.Context, done IntentCompletion)
}

// UI represents operations that require an attached UI surface.
type UI interface {
	// Register registers a broadcast receiver of the given kind; events it receives carry handle.
	Register(ctx context.Context, kind BroadcastKind, handle Handle) error

	// Unregister removes a receiver previously registered with handle.
	Unregister(ctx context.Context, handle Handle) error

	// Launch starts the intent for result; the result is reported with requestCode.
	Launch(ctx context.Context, intent *Intent, requestCode int) error

	// AppSignatures returns the app hash strings used in retriever SMS messages.
	AppSignatures(ctx context.Context) ([]string, error)
}
