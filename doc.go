// Package otp provides high-level helpers for running the one-time-passcode retrieval broker.
//
// The broker listens for a verification code delivered out-of-band (SMS user consent, SMS
// retriever, phone number hint picker), correlates each asynchronous platform event with the
// request that started listening and delivers exactly one result to that caller.
//
// The package is an umbrella over the broker and rpc packages exposing two entry-points:
//  1. NewBroker – returns a coordinator bound to a platform implementation and
//  2. NewServer – returns a JSON-RPC server that owns one coordinator per connection.
//
// Both constructors accept an Options structure that can be populated from CLI flags or
// configuration files.
//
// Example:
//
//	srv, _ := otp.NewServer(&otp.Options{Policy: "supersede"}, logger)
//	_ = srv.Stdio(ctx).ListenAndServe()
package otp
