package otp

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/viant/otp/broker"
	"github.com/viant/otp/platform"
	"github.com/viant/otp/rpc"
)

// NewBroker creates a coordinator bound to aPlatform with the given options.
func NewBroker(ctx context.Context, aPlatform platform.Platform, options *Options, logger zerolog.Logger) (*broker.Coordinator, error) {
	brokerOptions, err := options.BrokerOptions()
	if err != nil {
		return nil, err
	}
	brokerOptions = append([]broker.Option{broker.WithLogger(logger)}, brokerOptions...)
	return broker.New(ctx, aPlatform, brokerOptions...)
}

// NewServer creates a JSON-RPC server with the given options.
func NewServer(options *Options, logger zerolog.Logger) (*rpc.Server, error) {
	brokerOptions, err := options.BrokerOptions()
	if err != nil {
		return nil, err
	}
	serverOptions := []rpc.Option{rpc.WithLogger(logger), rpc.WithBrokerOptions(brokerOptions...)}
	if options != nil {
		if options.LoggerName != "" {
			serverOptions = append(serverOptions, rpc.WithLoggerName(options.LoggerName))
		}
		ttl, err := parseDuration("resultTTL", options.ResultTTL)
		if err != nil {
			return nil, err
		}
		if ttl > 0 {
			serverOptions = append(serverOptions, rpc.WithResultTTL(ttl))
		}
		if options.EventBuffer < 0 {
			return nil, fmt.Errorf("invalid eventBuffer: %v", options.EventBuffer)
		}
		if options.EventBuffer > 0 {
			serverOptions = append(serverOptions, rpc.WithEventBuffer(options.EventBuffer))
		}
	}
	return rpc.New(serverOptions...)
}
