package rpc

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/otp/schema"
)

// Logger sends log messages to the caller as notifications/message, gated by logging/setLevel.
type Logger struct {
	name     string
	level    *atomic.Pointer[mcpschema.LoggingLevel]
	notifier transport.Notifier
}

func (l *Logger) log(ctx context.Context, level mcpschema.LoggingLevel, data any) error {
	threshold := l.level.Load()
	if threshold == nil || *threshold == "" || threshold.Ordinal() > level.Ordinal() {
		return nil
	}
	notification := &jsonrpc.Notification{Method: schema.MethodNotificationMessage}
	params := mcpschema.LoggingMessageNotificationParams{
		Level:  level,
		Logger: &l.name,
		Data:   data,
	}
	var err error
	notification.Params, err = json.Marshal(params)
	if err != nil {
		return err
	}
	return l.notifier.Notify(ctx, notification)
}

func (l *Logger) Debug(ctx context.Context, data interface{}) error {
	return l.log(ctx, mcpschema.LoggingLevelDebug, data)
}

func (l *Logger) Info(ctx context.Context, data interface{}) error {
	return l.log(ctx, mcpschema.Info, data)
}

func (l *Logger) Warning(ctx context.Context, data interface{}) error {
	return l.log(ctx, mcpschema.Warning, data)
}

func (l *Logger) Error(ctx context.Context, data interface{}) error {
	return l.log(ctx, mcpschema.Err, data)
}

// NewLogger creates a logger reading its threshold from level, which may be updated concurrently.
func NewLogger(name string, level *atomic.Pointer[mcpschema.LoggingLevel], notifier transport.Notifier) *Logger {
	return &Logger{
		name:     name,
		level:    level,
		notifier: notifier,
	}
}
