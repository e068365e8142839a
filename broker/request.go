package broker

import (
	"time"
)

// maxRequestCode bounds picker discriminators to the 16 bits hosts accept as request codes.
const maxRequestCode = 0xFFFF

// Request represents the unit of correlation between a caller and asynchronous platform events.
type Request struct {
	ID            string
	Discriminator int
	Mode          Mode
	Sender        string
	State         State
	CreatedAt     time.Time
	ExpiresAt     time.Time
	// ConsentShown is set once the consent UI was launched for this request.
	ConsentShown bool

	slot  *slot
	timer *time.Timer
}

// Ticket returns the caller side of the request response slot.
func (r *Request) Ticket() *Ticket {
	return &Ticket{ID: r.ID, Mode: r.Mode, slot: r.slot}
}

func (r *Request) stopTimer() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
