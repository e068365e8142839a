// Package platform defines the collaborator surface the OTP broker consumes.
//
// The broker never talks to an operating system directly. Everything it needs from the
// host is expressed by two interfaces:
//   - Platform – application-scoped operations that start the SMS consent and retriever
//     listeners and build the phone-number hint intent
//   - UI – operations bound to the currently attached UI surface: registering broadcast
//     receivers, launching pickers and reading the app signature
//
// Inbound signals are delivered back to the broker as Broadcast and PickerResult values.
// Their payloads are opaque Extras maps keyed the same way the Android SMS retriever API
// keys its intent extras.
package platform
