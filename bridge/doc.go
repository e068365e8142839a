// Package bridge runs the OTP broker as a standalone JSON-RPC process over stdio.
//
// Options come from command line flags and an optional YAML or JSON configuration file
// that can be loaded from any location supported by github.com/viant/afs. Flags override
// configuration file values. Diagnostic logs go to stderr; stdout carries JSON-RPC.
package bridge
