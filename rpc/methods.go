package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/otp/broker"
	"github.com/viant/otp/schema"
)

// StartListenUserConsent handles the startListenUserConsent method
func (h *Handler) StartListenUserConsent(_ context.Context, request *jsonrpc.Request) (*schema.StartListenResult, *jsonrpc.Error) {
	params := &schema.StartListenUserConsentParams{}
	if len(request.Params) > 0 && string(request.Params) != "null" {
		if err := json.Unmarshal(request.Params, params); err != nil {
			return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
		}
	}
	call := broker.Call{Op: broker.OpStartUserConsent}
	if params.SenderTelephoneNumber != nil {
		call.Sender = *params.SenderTelephoneNumber
	}
	return h.start(call)
}

// StartListenRetriever handles the startListenRetriever method
func (h *Handler) StartListenRetriever(_ context.Context, _ *jsonrpc.Request) (*schema.StartListenResult, *jsonrpc.Error) {
	return h.start(broker.Call{Op: broker.OpStartRetriever})
}

// GetTelephoneHint handles the getTelephoneHint method; without an attached UI the result is null.
func (h *Handler) GetTelephoneHint(_ context.Context, _ *jsonrpc.Request) (*schema.StartListenResult, *jsonrpc.Error) {
	result, rpcErr := h.start(broker.Call{Op: broker.OpGetPhoneHint})
	if rpcErr != nil && rpcErr.Code == schema.NoUIContext {
		return nil, nil
	}
	return result, rpcErr
}

// StopListenForCode handles the stopListenForCode method
func (h *Handler) StopListenForCode(_ context.Context, _ *jsonrpc.Request) (bool, *jsonrpc.Error) {
	reply, err := h.coordinator.Dispatch(broker.Call{Op: broker.OpStopListening})
	if err != nil {
		return false, schema.NewError(err)
	}
	h.cancelWaiters()
	return reply.Stopped, nil
}

// GetAppSignature handles the getAppSignature method; without an attached UI the result is null.
func (h *Handler) GetAppSignature(_ context.Context, _ *jsonrpc.Request) (*string, *jsonrpc.Error) {
	reply, err := h.coordinator.Dispatch(broker.Call{Op: broker.OpGetAppSignature})
	if errors.Is(err, broker.ErrNoUIContext) {
		return nil, nil
	}
	if err != nil {
		return nil, schema.NewError(err)
	}
	return &reply.Signature, nil
}

// GetStatus handles the getStatus method
func (h *Handler) GetStatus(_ context.Context, _ *jsonrpc.Request) (*schema.StatusResult, *jsonrpc.Error) {
	status := h.coordinator.Snapshot()
	ret := &schema.StatusResult{
		RequestID:     status.RequestID,
		State:         status.State.String(),
		Subscriptions: status.Subscriptions,
		UIAttached:    status.UIAttached,
	}
	if status.RequestID != "" {
		ret.Mode = status.Mode.String()
	}
	return ret, nil
}

func (h *Handler) start(call broker.Call) (*schema.StartListenResult, *jsonrpc.Error) {
	reply, err := h.coordinator.Dispatch(call)
	if err != nil {
		h.log.Debug().Str("operation", call.Op.String()).Err(err).Msg("start rejected")
		return nil, schema.NewError(err)
	}
	h.watch(reply.Ticket)
	return &schema.StartListenResult{RequestID: reply.Ticket.ID}, nil
}
