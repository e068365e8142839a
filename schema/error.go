package schema

import (
	"github.com/viant/jsonrpc"
	"github.com/viant/otp/broker"
)

// Broker error codes, in the JSON-RPC implementation defined range.
const (
	StartFailed   = -32010
	NoUIContext   = -32011
	Declined      = -32012
	Timeout       = -32013
	PlatformError = -32014
	Busy          = -32015
)

var errorCodes = map[broker.Kind]int{
	broker.KindStartFailed:   StartFailed,
	broker.KindNoUIContext:   NoUIContext,
	broker.KindDeclined:      Declined,
	broker.KindTimeout:       Timeout,
	broker.KindPlatformError: PlatformError,
	broker.KindBusy:          Busy,
}

// NewError converts a broker failure into a JSON-RPC error carrying the wire code in data.
func NewError(err error) *jsonrpc.Error {
	kind := broker.KindOf(err)
	code, ok := errorCodes[kind]
	if !ok {
		return jsonrpc.NewInternalError(err.Error(), nil)
	}
	return jsonrpc.NewError(code, err.Error(), map[string]interface{}{"code": string(kind)})
}

// NewResultError converts a request failure into an otp/result error.
func NewResultError(err error) *ResultError {
	if err == nil {
		return nil
	}
	kind := broker.KindOf(err)
	if kind == "" {
		kind = broker.KindPlatformError
	}
	return &ResultError{Code: string(kind), Message: err.Error()}
}

// NewResultNotificationParams converts a request resolution into otp/result parameters.
func NewResultNotificationParams(result broker.Result) *ResultNotificationParams {
	ret := &ResultNotificationParams{RequestID: result.RequestID, Mode: result.Mode.String()}
	if result.Err != nil {
		ret.Error = NewResultError(result.Err)
		return ret
	}
	value := result.Value
	ret.Value = &value
	return ret
}

// NewUnknownMethod creates a method not found error.
func NewUnknownMethod(method string) *jsonrpc.Error {
	return jsonrpc.NewMethodNotFound("method: "+method+" not found", nil)
}
