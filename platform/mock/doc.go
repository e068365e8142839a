// Package mock provides scriptable in-memory implementations of platform.Platform and
// platform.UI.
//
// Start operations are recorded and settled either immediately (when a settle error or
// intent is preset) or later by the test via Settle / SettleHint, which lets tests drive
// the broker through every asynchronous ordering.
package mock
