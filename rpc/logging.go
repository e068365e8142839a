package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// SetLevel handles the logging/setLevel method
func (h *Handler) SetLevel(_ context.Context, request *jsonrpc.Request) (*mcpschema.SetLevelResult, *jsonrpc.Error) {
	setLevelRequest := &mcpschema.SetLevelRequest{Method: request.Method}
	if err := json.Unmarshal(request.Params, &setLevelRequest.Params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	level := setLevelRequest.Params.Level
	h.loggingLevel.Store(&level)
	return &mcpschema.SetLevelResult{}, nil
}
