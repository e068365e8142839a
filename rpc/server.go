package rpc

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/otp/broker"
	"github.com/viant/otp/internal/collection"
	"github.com/viant/otp/schema"
)

// Server represents the OTP broker JSON-RPC protocol handler factory
type Server struct {
	validator     *schema.Validator
	brokerOptions []broker.Option
	logger        zerolog.Logger
	loggerName    string
	resultTTL     time.Duration
	eventBuffer   int

	stdioServer
}

// NewHandler creates a new handler instance
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	handler := s.newHandler(ctx, transport)
	return handler
}

func (s *Server) newHandler(ctx context.Context, transport transport.Transport) *Handler {
	ret := &Handler{
		Server:   s,
		Notifier: transport,
		ctx:      ctx,
		waiters:  collection.NewSyncMap[string, context.CancelFunc](),
		events:   make(chan *event, s.eventBuffer),
		log:      s.logger.With().Str("component", "otp.rpc").Logger(),
	}
	ret.host = NewHost(transport, ret.log)
	ret.Logger = NewLogger(s.loggerName, &ret.loggingLevel, ret.Notifier)
	options := append([]broker.Option{broker.WithLogger(s.logger)}, s.brokerOptions...)
	ret.coordinator, ret.err = broker.New(ctx, ret.host, options...)
	if ret.err == nil {
		go ret.processEvents()
	}
	return ret
}

// New creates a new Server instance
func New(options ...Option) (*Server, error) {
	s := &Server{
		logger:      zerolog.Nop(),
		loggerName:  "otp",
		eventBuffer: 64,
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	var err error
	if s.validator, err = schema.NewValidator(schema.Params); err != nil {
		return nil, fmt.Errorf("failed to compile params schemas: %w", err)
	}
	return s, nil
}
