// Package broker provides the request-correlation and lifecycle state machine of the OTP
// broker.
//
// A Coordinator owns at most one outstanding Request. Starting a listening mode creates
// the Request, asks the platform collaborator to begin listening and, once acknowledged,
// registers the broadcast subscription the mode needs. Inbound broadcasts and picker
// results are validated against the live Request (state, subscription handle, picker
// discriminator) before a channel interpreter is consulted, so stale or duplicate events
// are silently discarded. Every Request is resolved at most once through its Ticket;
// explicit stop and UI detachment cancel it without writing a result.
package broker
