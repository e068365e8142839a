package rpc

import (
	"context"
	"encoding/json"

	"github.com/viant/jsonrpc"
	"github.com/viant/otp/broker"
	"github.com/viant/otp/schema"
)

// watch delivers the ticket result as otp/result. Earlier waiters are cancelled: their
// requests were either resolved or superseded, and a cancelled request never delivers.
func (h *Handler) watch(ticket *broker.Ticket) {
	h.cancelWaiters()
	var ctx context.Context
	var cancel context.CancelFunc
	if h.resultTTL > 0 {
		ctx, cancel = context.WithTimeout(h.ctx, h.resultTTL)
	} else {
		ctx, cancel = context.WithCancel(h.ctx)
	}
	h.waiters.Put(ticket.ID, cancel)
	go func() {
		defer h.waiters.Delete(ticket.ID)
		defer cancel()
		result, err := ticket.Wait(ctx)
		if err != nil {
			select {
			case result = <-ticket.C():
			default:
				h.log.Debug().Str("request", ticket.ID).Err(err).Msg("result wait ended")
				return
			}
		}
		h.notifyResult(result)
	}()
}

func (h *Handler) cancelWaiters() {
	for _, cancel := range h.waiters.Drain() {
		cancel()
	}
}

func (h *Handler) notifyResult(result broker.Result) {
	notification := &jsonrpc.Notification{Method: schema.MethodNotificationResult}
	var err error
	if notification.Params, err = json.Marshal(schema.NewResultNotificationParams(result)); err != nil {
		h.log.Error().Err(err).Str("request", result.RequestID).Msg("failed to encode result")
		return
	}
	if err = h.Notify(h.ctx, notification); err != nil {
		h.log.Error().Err(err).Str("request", result.RequestID).Msg("failed to deliver result")
		return
	}
	if result.Err != nil {
		_ = h.Logger.Info(h.ctx, map[string]interface{}{"requestId": result.RequestID, "error": string(broker.KindOf(result.Err))})
	}
}
