package mock

import (
	"context"
	"sync"

	"github.com/viant/otp/platform"
)

// Launch represents a recorded launch for result.
type Launch struct {
	Intent      *platform.Intent
	RequestCode int
}

// UI is a scriptable platform.UI.
type UI struct {
	mu              sync.Mutex
	receivers       map[platform.Handle]platform.BroadcastKind
	registrations   []platform.Handle
	unregistrations []platform.Handle
	launches        []Launch

	Signatures   []string
	RegisterErr  error
	LaunchErr    error
	SignatureErr error
}

// NewUI creates a UI with the supplied app signatures.
func NewUI(signatures ...string) *UI {
	return &UI{receivers: map[platform.Handle]platform.BroadcastKind{}, Signatures: signatures}
}

// Register records a receiver registration.
func (u *UI) Register(_ context.Context, kind platform.BroadcastKind, handle platform.Handle) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.RegisterErr != nil {
		return u.RegisterErr
	}
	if u.receivers == nil {
		u.receivers = map[platform.Handle]platform.BroadcastKind{}
	}
	u.receivers[handle] = kind
	u.registrations = append(u.registrations, handle)
	return nil
}

// Unregister records a receiver removal.
func (u *UI) Unregister(_ context.Context, handle platform.Handle) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.receivers, handle)
	u.unregistrations = append(u.unregistrations, handle)
	return nil
}

// Launch records a launch for result.
func (u *UI) Launch(_ context.Context, intent *platform.Intent, requestCode int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.LaunchErr != nil {
		return u.LaunchErr
	}
	u.launches = append(u.launches, Launch{Intent: intent, RequestCode: requestCode})
	return nil
}

// AppSignatures returns preset signatures.
func (u *UI) AppSignatures(_ context.Context) ([]string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.Signatures, u.SignatureErr
}

// Receivers returns currently registered receivers.
func (u *UI) Receivers() map[platform.Handle]platform.BroadcastKind {
	u.mu.Lock()
	defer u.mu.Unlock()
	ret := make(map[platform.Handle]platform.BroadcastKind, len(u.receivers))
	for k, v := range u.receivers {
		ret[k] = v
	}
	return ret
}

// Registrations returns every handle ever registered.
func (u *UI) Registrations() []platform.Handle {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]platform.Handle{}, u.registrations...)
}

// Unregistrations returns every handle ever unregistered.
func (u *UI) Unregistrations() []platform.Handle {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]platform.Handle{}, u.unregistrations...)
}

// Launches returns recorded launches.
func (u *UI) Launches() []Launch {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]Launch{}, u.launches...)
}

var _ platform.UI = (*UI)(nil)
