package rpc

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/otp/broker"
	"github.com/viant/otp/internal/collection"
	"github.com/viant/otp/schema"
)

// Handler represents a per-connection handler owning one coordinator
type Handler struct {
	transport.Notifier
	*Logger
	*Server
	ctx          context.Context
	host         *Host
	coordinator  *broker.Coordinator
	waiters      *collection.SyncMap[string, context.CancelFunc]
	events       chan *event
	loggingLevel atomic.Pointer[mcpschema.LoggingLevel]
	log          zerolog.Logger
	err          error
}

// Serve handles incoming JSON-RPC requests. Every method answers without waiting for the host,
// whose replies arrive on the goroutine running Serve.
func (h *Handler) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	if jsonrpc.Version != request.Jsonrpc {
		response.Error = jsonrpc.NewInvalidRequest("invalid JSON-RPC version", nil)
		return
	}
	if h.err != nil {
		response.Error = jsonrpc.NewInternalError(h.err.Error(), nil)
		return
	}
	if err := h.validator.Validate(request.Method, request.Params); err != nil {
		response.Error = jsonrpc.NewInvalidParamsError(err.Error(), request.Params)
		return
	}

	switch request.Method {
	case schema.MethodStartListenUserConsent:
		result, err := h.StartListenUserConsent(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodStartListenRetriever:
		result, err := h.StartListenRetriever(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodGetTelephoneHint:
		result, err := h.GetTelephoneHint(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodStopListenForCode:
		result, err := h.StopListenForCode(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodGetAppSignature:
		result, err := h.GetAppSignature(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodGetStatus:
		result, err := h.GetStatus(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodLoggingSetLevel:
		result, err := h.SetLevel(ctx, request)
		h.setResponse(response, result, err)
	default:
		response.Error = schema.NewUnknownMethod(request.Method)
	}
}

func (h *Handler) setResponse(response *jsonrpc.Response, result interface{}, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	var err error
	response.Result, err = json.Marshal(result)
	if err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), []byte{})
	}
}

// OnNotification handles incoming JSON-RPC notifications
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	switch notification.Method {
	case schema.MethodNotificationCancel:
		// caller requests are answered before the next message is read, nothing is left to cancel
		h.log.Debug().Str("params", string(notification.Params)).Msg("cancellation ignored")
	case schema.MethodNotificationBroadcast, schema.MethodNotificationActivityResult,
		schema.MethodNotificationUIAttached, schema.MethodNotificationUIDetached:
		h.enqueue(ctx, notification)
	default:
		h.log.Debug().Str("method", notification.Method).Msg("notification ignored")
	}
}
