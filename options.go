package otp

import (
	"fmt"
	"time"

	"github.com/viant/otp/broker"
)

// Options defines options for configuring the broker and its JSON-RPC server.
type Options struct {
	LoggerName    string `yaml:"loggerName" json:"loggerName" long:"logger-name" description:"logger name used in client log notifications"`
	LogLevel      string `yaml:"logLevel" json:"logLevel" short:"l" long:"log-level" description:"process log level" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"disabled"`
	Policy        string `yaml:"policy" json:"policy" short:"p" long:"policy" description:"policy for a start while a request is outstanding" choice:"reject" choice:"supersede"`
	ListenTimeout string `yaml:"listenTimeout" json:"listenTimeout" short:"t" long:"listen-timeout" description:"backstop listen timeout, e.g. 5m; empty disables it"`
	ResultTTL     string `yaml:"resultTTL" json:"resultTTL" long:"result-ttl" description:"how long a result is awaited before it is dropped; empty waits indefinitely"`
	EventBuffer   int    `yaml:"eventBuffer" json:"eventBuffer" long:"event-buffer" description:"host event queue size"`
}

// Merge overrides o with the non-zero fields of other.
func (o *Options) Merge(other *Options) {
	if other == nil {
		return
	}
	if other.LoggerName != "" {
		o.LoggerName = other.LoggerName
	}
	if other.LogLevel != "" {
		o.LogLevel = other.LogLevel
	}
	if other.Policy != "" {
		o.Policy = other.Policy
	}
	if other.ListenTimeout != "" {
		o.ListenTimeout = other.ListenTimeout
	}
	if other.ResultTTL != "" {
		o.ResultTTL = other.ResultTTL
	}
	if other.EventBuffer > 0 {
		o.EventBuffer = other.EventBuffer
	}
}

// BrokerOptions converts o into coordinator options.
func (o *Options) BrokerOptions() ([]broker.Option, error) {
	var ret []broker.Option
	if o == nil {
		return ret, nil
	}
	switch o.Policy {
	case "", "reject":
	case "supersede":
		ret = append(ret, broker.WithPolicy(broker.Supersede))
	default:
		return nil, fmt.Errorf("unsupported policy: %v", o.Policy)
	}
	timeout, err := parseDuration("listenTimeout", o.ListenTimeout)
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		ret = append(ret, broker.WithListenTimeout(timeout))
	}
	return ret, nil
}

func parseDuration(name, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	ret, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %w", name, err)
	}
	if ret < 0 {
		return 0, fmt.Errorf("invalid %v: %v", name, value)
	}
	return ret, nil
}
