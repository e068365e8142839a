package schema

import (
	"reflect"
	"strings"
	"time"
)

// Document represents a JSON schema document.
type Document map[string]interface{}

// schemaForTypeInternal returns a JSON schema representation for a given reflect.Type.
// The inSlice flag is used to determine if we are processing an element inside a slice.
func schemaForTypeInternal(t reflect.Type, inSlice bool) Document {
	schema := make(Document)

	// Special handling for time.Time: treat as ISO 8601 string.
	if t == reflect.TypeOf(time.Time{}) {
		schema["type"] = "string"
		schema["format"] = "date-time"
		return schema
	}

	if t.Kind() == reflect.Ptr {
		return schemaForTypeInternal(t.Elem(), inSlice)
	}

	switch t.Kind() {
	case reflect.Bool:
		schema["type"] = "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		schema["type"] = "integer"
	case reflect.Float32, reflect.Float64:
		schema["type"] = "number"
	case reflect.String:
		schema["type"] = "string"
	case reflect.Slice, reflect.Array:
		schema["type"] = "array"
		schema["items"] = schemaForTypeInternal(t.Elem(), true)
	case reflect.Map:
		schema["type"] = "object"
		if t.Elem().Kind() != reflect.Interface {
			schema["additionalProperties"] = schemaForTypeInternal(t.Elem(), false)
		}
	case reflect.Struct:
		schema["type"] = "object"
		properties, required := structToProperties(t)
		schema["properties"] = properties
		if len(required) > 0 {
			schema["required"] = required
		}
	case reflect.Interface:
		// any value
	default:
		schema["type"] = "string"
	}
	return schema
}

func schemaForType(t reflect.Type) Document {
	return schemaForTypeInternal(t, false)
}

// structToProperties converts a struct type into schema properties and required fields.
// Pointer and omitempty fields are optional, pointer, slice and map fields also accept null.
func structToProperties(t reflect.Type) (map[string]Document, []string) {
	properties := make(map[string]Document)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldName, omitempty, ignore := jsonTag(field)
		if ignore {
			continue
		}
		property := schemaForType(field.Type)
		if nullable(field.Type) {
			if typeName, ok := property["type"].(string); ok {
				property["type"] = []string{typeName, "null"}
			}
		}
		properties[fieldName] = property
		if field.Type.Kind() != reflect.Ptr && !omitempty {
			required = append(required, fieldName)
		}
	}
	return properties, required
}

func nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map:
		return true
	}
	return false
}

func jsonTag(field reflect.StructField) (name string, omitempty bool, ignore bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name = field.Name
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, option := range parts[1:] {
		if option == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}

// NewDocument returns the JSON schema of v, a struct or pointer to struct.
func NewDocument(v interface{}) Document {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return schemaForType(t)
}
