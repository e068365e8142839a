// Package schema defines the JSON-RPC wire surface of the OTP broker: method names,
// parameter and result types, error codes and JSON schemas used to validate parameters.
package schema
