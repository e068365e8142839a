package rpc

import (
	"context"
	"encoding/json"

	"github.com/viant/jsonrpc"
	"github.com/viant/otp/platform"
	"github.com/viant/otp/schema"
)

// event represents a queued host notification.
type event struct {
	method string
	params json.RawMessage
}

// enqueue validates a host notification and queues it for the event loop, which keeps
// host events ordered while platform calls they trigger wait for the transport. It never
// blocks, since its goroutine also reads host replies; an event arriving at a full queue is dropped.
func (h *Handler) enqueue(ctx context.Context, notification *jsonrpc.Notification) {
	if err := h.validator.Validate(notification.Method, notification.Params); err != nil {
		h.log.Warn().Err(err).Str("method", notification.Method).Msg("invalid host event")
		_ = h.Logger.Warning(ctx, err.Error())
		return
	}
	select {
	case h.events <- &event{method: notification.Method, params: notification.Params}:
	default:
		h.log.Warn().Str("method", notification.Method).Int("buffer", cap(h.events)).Msg("host event dropped: queue full")
		_ = h.Logger.Warning(ctx, map[string]interface{}{"dropped": notification.Method, "reason": "event queue full"})
	}
}

func (h *Handler) processEvents() {
	for {
		select {
		case <-h.ctx.Done():
			h.coordinator.Close()
			h.cancelWaiters()
			return
		case anEvent := <-h.events:
			h.handleEvent(anEvent)
		}
	}
}

func (h *Handler) handleEvent(anEvent *event) {
	switch anEvent.method {
	case schema.MethodNotificationUIAttached:
		params := schema.UIAttachedParams{}
		if len(anEvent.params) > 0 {
			if err := json.Unmarshal(anEvent.params, &params); err != nil {
				h.log.Warn().Err(err).Msg("failed to decode ui attachment")
				return
			}
		}
		if len(params.Signatures) > 0 {
			h.host.setSignatures(params.Signatures)
		} else if err := h.host.loadSignatures(h.ctx); err != nil {
			h.log.Warn().Err(err).Msg("failed to load app signatures")
		}
		h.coordinator.AttachUI(h.host)
	case schema.MethodNotificationUIDetached:
		h.coordinator.OnUIContextDetached()
		h.cancelWaiters()
	case schema.MethodNotificationBroadcast:
		broadcast := platform.Broadcast{}
		if err := json.Unmarshal(anEvent.params, &broadcast); err != nil {
			h.log.Warn().Err(err).Msg("failed to decode broadcast")
			return
		}
		if !h.coordinator.HandleBroadcast(broadcast) {
			h.log.Debug().Str("handle", string(broadcast.Handle)).Msg("broadcast discarded")
		}
	case schema.MethodNotificationActivityResult:
		result := platform.PickerResult{}
		if err := json.Unmarshal(anEvent.params, &result); err != nil {
			h.log.Warn().Err(err).Msg("failed to decode activity result")
			return
		}
		if !h.coordinator.HandlePickerResult(result) {
			h.log.Debug().Int("requestCode", result.RequestCode).Msg("activity result discarded")
		}
	}
}
