package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/viant/otp/platform"
)

// Params maps methods and notifications to the type their parameters decode into.
var Params = map[string]interface{}{
	MethodStartListenUserConsent:     &StartListenUserConsentParams{},
	MethodNotificationBroadcast:      &platform.Broadcast{},
	MethodNotificationActivityResult: &platform.PickerResult{},
	MethodNotificationUIAttached:     &UIAttachedParams{},
}

// Validator validates JSON-RPC parameters against compiled schemas.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// Validate validates params of method; methods without a schema accept anything.
func (v *Validator) Validate(method string, params json.RawMessage) error {
	compiled, ok := v.schemas[method]
	if !ok {
		return nil
	}
	if len(bytes.TrimSpace(params)) == 0 || string(bytes.TrimSpace(params)) == "null" {
		params = json.RawMessage("{}")
	}
	decoder := json.NewDecoder(bytes.NewReader(params))
	decoder.UseNumber()
	var payload interface{}
	if err := decoder.Decode(&payload); err != nil {
		return fmt.Errorf("invalid %s params: %w", method, err)
	}
	if err := compiled.Validate(payload); err != nil {
		return fmt.Errorf("invalid %s params: %w", method, err)
	}
	return nil
}

// NewValidator compiles a schema for every entry of params.
func NewValidator(params map[string]interface{}) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	ret := &Validator{schemas: make(map[string]*jsonschema.Schema, len(params))}
	for method, prototype := range params {
		data, err := json.Marshal(NewDocument(prototype))
		if err != nil {
			return nil, fmt.Errorf("marshal %s schema: %w", method, err)
		}
		url := "otp://schema/" + method + ".json"
		if err = compiler.AddResource(url, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("add %s schema resource: %w", method, err)
		}
		if ret.schemas[method], err = compiler.Compile(url); err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", method, err)
		}
	}
	return ret, nil
}
