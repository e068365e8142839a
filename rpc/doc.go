// Package rpc exposes the OTP broker over JSON-RPC 2.0.
//
// The caller starts and stops listen operations with requests and receives final results as
// otp/result notifications. The host platform delivers broadcasts, activity results and UI
// lifecycle events as notifications and serves platform/* requests the broker sends back over
// the same transport.
package rpc
