package broker

import "fmt"

// Operation represents a caller operation.
type Operation int

const (
	OpStartUserConsent Operation = iota + 1
	OpStartRetriever
	OpGetPhoneHint
	OpStopListening
	OpGetAppSignature
)

func (o Operation) String() string {
	switch o {
	case OpStartUserConsent:
		return "startUserConsent"
	case OpStartRetriever:
		return "startRetriever"
	case OpGetPhoneHint:
		return "getPhoneHint"
	case OpStopListening:
		return "stopListening"
	case OpGetAppSignature:
		return "getAppSignature"
	}
	return fmt.Sprintf("operation(%d)", int(o))
}

// Call represents a caller operation with its arguments.
type Call struct {
	Op     Operation
	Sender string
}

// Reply represents the synchronous part of an operation outcome.
type Reply struct {
	// Ticket is set for operations that resolve asynchronously.
	Ticket *Ticket
	// Signature is set by OpGetAppSignature.
	Signature string
	// Stopped acknowledges OpStopListening.
	Stopped bool
}

// Dispatch executes call.
func (c *Coordinator) Dispatch(call Call) (*Reply, error) {
	switch call.Op {
	case OpStartUserConsent:
		ticket, err := c.StartUserConsent(call.Sender)
		if err != nil {
			return nil, err
		}
		return &Reply{Ticket: ticket}, nil
	case OpStartRetriever:
		ticket, err := c.StartRetriever()
		if err != nil {
			return nil, err
		}
		return &Reply{Ticket: ticket}, nil
	case OpGetPhoneHint:
		ticket, err := c.StartPhoneHint()
		if err != nil {
			return nil, err
		}
		return &Reply{Ticket: ticket}, nil
	case OpStopListening:
		c.StopListening()
		return &Reply{Stopped: true}, nil
	case OpGetAppSignature:
		signature, err := c.AppSignature()
		if err != nil {
			return nil, err
		}
		return &Reply{Signature: signature}, nil
	}
	return nil, fmt.Errorf("unsupported operation: %v", call.Op)
}
