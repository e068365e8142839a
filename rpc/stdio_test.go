package rpc

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport/server/stdio"
	"github.com/viant/otp/broker"
	"github.com/viant/otp/platform"
	"github.com/viant/otp/schema"
)

// stdioMessage is any line written by the stdio server.
type stdioMessage struct {
	Id     interface{}     `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  json.RawMessage `json:"error,omitempty"`
}

// stdioPeer plays both the caller and the host on the other end of a stdio server.
type stdioPeer struct {
	in        *io.PipeWriter
	responses chan *stdioMessage
	mu        sync.Mutex
	requests  map[string]int
}

func (p *stdioPeer) write(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	_, err = p.in.Write(append(data, '\n'))
	return err
}

// roundTrip sends a caller request and waits for its response; it returns nil when none arrives in time.
func (p *stdioPeer) roundTrip(id int, method string, params interface{}) *stdioMessage {
	request := map[string]interface{}{"jsonrpc": jsonrpc.Version, "id": id, "method": method}
	if params != nil {
		request["params"] = params
	}
	if err := p.write(request); err != nil {
		return nil
	}
	timeout := time.After(3 * time.Second)
	for {
		select {
		case response := <-p.responses:
			if got, _ := jsonrpc.AsRequestIntId(response.Id); got == id {
				return response
			}
		case <-timeout:
			return nil
		}
	}
}

func (p *stdioPeer) call(t *testing.T, id int, method string, params interface{}) *stdioMessage {
	t.Helper()
	response := p.roundTrip(id, method, params)
	require.NotNilf(t, response, "%v (id %v) was not answered", method, id)
	return response
}

func (p *stdioPeer) notify(t *testing.T, method string, params interface{}) {
	t.Helper()
	require.NoError(t, p.write(map[string]interface{}{"jsonrpc": jsonrpc.Version, "method": method, "params": params}))
}

func (p *stdioPeer) attached() bool {
	response := p.roundTrip(100, schema.MethodGetStatus, nil)
	status := &schema.StatusResult{}
	return response != nil && json.Unmarshal(response.Result, status) == nil && status.UIAttached
}

func (p *stdioPeer) requested(method string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests[method]
}

// answer replies to a platform/* request the way a host would.
func (p *stdioPeer) answer(request *stdioMessage) {
	p.mu.Lock()
	p.requests[request.Method]++
	p.mu.Unlock()
	var result interface{} = &schema.Acknowledgement{OK: true}
	switch request.Method {
	case schema.MethodRequestPhoneNumberHint:
		result = &schema.PhoneNumberHintResult{Intent: &platform.Intent{Action: "hint", Token: "h-1"}}
	case schema.MethodGetAppSignatures:
		result = &schema.AppSignaturesResult{Signatures: []string{"app-hash"}}
	}
	data, _ := json.Marshal(result)
	// the transport records a round trip after writing the request
	time.Sleep(10 * time.Millisecond)
	_ = p.write(map[string]interface{}{"jsonrpc": jsonrpc.Version, "id": request.Id, "result": json.RawMessage(data)})
}

func (p *stdioPeer) read(out io.Reader) {
	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		message := &stdioMessage{}
		if err := json.Unmarshal(scanner.Bytes(), message); err != nil {
			continue
		}
		switch {
		case message.Method != "" && message.Id != nil:
			go p.answer(message)
		case message.Method == "" && message.Id != nil:
			p.responses <- message
		}
	}
}

func newStdioPeer(t *testing.T, options ...Option) *stdioPeer {
	t.Helper()
	inReader, inWriter := io.Pipe()
	outReader, outWriter, err := os.Pipe()
	require.NoError(t, err)
	options = append(options, WithStdioOptions(stdio.WithReader(inReader), stdio.WithErrorWriter(io.Discard)))
	srv, err := New(options...)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	stdout := os.Stdout
	os.Stdout = outWriter
	server := srv.Stdio(ctx)
	os.Stdout = stdout

	peer := &stdioPeer{in: inWriter, responses: make(chan *stdioMessage, 16), requests: map[string]int{}}
	go peer.read(outReader)
	go func() { _ = server.ListenAndServe() }()
	t.Cleanup(func() {
		cancel()
		_ = inWriter.Close()
		_ = outWriter.Close()
	})
	return peer
}

func TestServer_Stdio(t *testing.T) {
	t.Run("app signature after ui attached", func(t *testing.T) {
		peer := newStdioPeer(t)
		peer.notify(t, schema.MethodNotificationUIAttached, map[string]interface{}{"surface": "activity"})
		require.Eventually(t, func() bool { return peer.requested(schema.MethodGetAppSignatures) == 1 }, waitFor, tick)

		assert.Eventually(t, func() bool {
			response := peer.roundTrip(102, schema.MethodGetAppSignature, nil)
			return response != nil && len(response.Error) == 0 && string(response.Result) == `"app-hash"`
		}, 5*time.Second, 20*time.Millisecond)
		response := peer.call(t, 103, schema.MethodGetAppSignature, nil)
		assert.JSONEq(t, `"app-hash"`, string(response.Result))
	})

	t.Run("stop after retriever started", func(t *testing.T) {
		peer := newStdioPeer(t)
		peer.notify(t, schema.MethodNotificationUIAttached, map[string]interface{}{"signatures": []string{"app-hash"}})
		require.Eventually(t, peer.attached, 5*time.Second, 20*time.Millisecond)

		response := peer.call(t, 101, schema.MethodStartListenRetriever, nil)
		require.Empty(t, response.Error)
		require.Eventually(t, func() bool { return peer.requested(schema.MethodRegisterReceiver) == 1 }, waitFor, tick)

		response = peer.call(t, 102, schema.MethodStopListenForCode, nil)
		require.Empty(t, response.Error)
		assert.JSONEq(t, "true", string(response.Result))
		assert.Eventually(t, func() bool { return peer.requested(schema.MethodUnregisterReceiver) == 1 }, waitFor, tick)
	})

	t.Run("superseded start", func(t *testing.T) {
		peer := newStdioPeer(t, WithBrokerOptions(broker.WithPolicy(broker.Supersede)))
		peer.notify(t, schema.MethodNotificationUIAttached, map[string]interface{}{"signatures": []string{"app-hash"}})
		require.Eventually(t, peer.attached, 5*time.Second, 20*time.Millisecond)

		require.Empty(t, peer.call(t, 101, schema.MethodStartListenRetriever, nil).Error)
		require.Eventually(t, func() bool { return peer.requested(schema.MethodRegisterReceiver) == 1 }, waitFor, tick)

		response := peer.call(t, 102, schema.MethodStartListenUserConsent, map[string]interface{}{"senderTelephoneNumber": nil})
		require.Empty(t, response.Error)
		assert.Eventually(t, func() bool { return peer.requested(schema.MethodUnregisterReceiver) == 1 }, waitFor, tick)
		assert.Eventually(t, func() bool { return peer.requested(schema.MethodStartConsentListen) == 1 }, waitFor, tick)
	})
}
