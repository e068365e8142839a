package rpc

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/jsonrpc/transport/server/stdio"
	"github.com/viant/otp/broker"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithBrokerOptions sets options applied to every coordinator the server creates.
func WithBrokerOptions(options ...broker.Option) Option {
	return func(s *Server) error {
		s.brokerOptions = append(s.brokerOptions, options...)
		return nil
	}
}

// WithLogger sets the process logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}

// WithLoggerName sets the logger name used in client log notifications.
func WithLoggerName(name string) Option {
	return func(s *Server) error {
		s.loggerName = name
		return nil
	}
}

// WithResultTTL bounds how long a result is awaited before the waiter gives up; zero waits indefinitely.
func WithResultTTL(ttl time.Duration) Option {
	return func(s *Server) error {
		if ttl < 0 {
			return fmt.Errorf("invalid result ttl: %v", ttl)
		}
		s.resultTTL = ttl
		return nil
	}
}

// WithEventBuffer sets the host event queue size.
func WithEventBuffer(size int) Option {
	return func(s *Server) error {
		if size < 1 {
			return fmt.Errorf("invalid event buffer size: %v", size)
		}
		s.eventBuffer = size
		return nil
	}
}

// WithStdioOptions sets stdio server options.
func WithStdioOptions(options ...stdio.Option) Option {
	return func(s *Server) error {
		s.stdioServerOption = append(s.stdioServerOption, options...)
		return nil
	}
}
