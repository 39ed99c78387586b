package util

import (
	"reflect"
	"strconv"
	"strings"
)

// CreateSchema creates a JSON schema from a Go struct using reflection.
//
// Field names come from json tags, human-readable descriptions from the
// `description` tag, and numeric / length constraints and enumerations are
// derived from the `validate` tag (min, max, oneof) so the schema shown to
// the model matches the invariants enforced after decoding.
func CreateSchema(structType any) map[string]any {
	t := reflect.TypeOf(structType)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		}
	}

	properties := make(map[string]any)
	required := make([]string, 0)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		fieldName := field.Name
		if jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" {
				fieldName = parts[0]
			}
		}

		fieldSchema := map[string]any{
			"type": jsonType(field.Type),
		}

		if description := field.Tag.Get("description"); description != "" {
			fieldSchema["description"] = description
		}

		if isSliceKind(field.Type) {
			fieldSchema["items"] = map[string]any{"type": jsonType(field.Type.Elem())}
		}

		applyConstraints(fieldSchema, field.Type, field.Tag.Get("validate"))

		properties[fieldName] = fieldSchema

		if !hasOmitEmpty(jsonTag) && field.Type.Kind() != reflect.Ptr {
			required = append(required, fieldName)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}

	if len(required) > 0 {
		schema["required"] = required
	}

	return schema
}

// applyConstraints translates the subset of validate tag rules that have a
// JSON Schema equivalent onto the field schema.
func applyConstraints(fieldSchema map[string]any, t reflect.Type, validateTag string) {
	if validateTag == "" {
		return
	}
	for _, rule := range strings.Split(validateTag, ",") {
		name, param, _ := strings.Cut(rule, "=")
		switch name {
		case "min":
			if n, err := strconv.Atoi(param); err == nil {
				if isSliceKind(t) {
					fieldSchema["minItems"] = n
				} else if isNumericKind(t) {
					fieldSchema["minimum"] = n
				}
			}
		case "max":
			if n, err := strconv.Atoi(param); err == nil {
				if isSliceKind(t) {
					fieldSchema["maxItems"] = n
				} else if isNumericKind(t) {
					fieldSchema["maximum"] = n
				}
			}
		case "oneof":
			values := strings.Fields(param)
			enum := make([]any, len(values))
			for i, v := range values {
				enum[i] = v
			}
			fieldSchema["enum"] = enum
		}
	}
}

// jsonType returns the JSON schema type for a given Go type.
func jsonType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Ptr:
		return jsonType(t.Elem())
	default:
		return "string"
	}
}

func isSliceKind(t reflect.Type) bool {
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}

func isNumericKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// hasOmitEmpty checks if a JSON tag has the "omitempty" option.
func hasOmitEmpty(tag string) bool {
	parts := strings.Split(tag, ",")
	for _, part := range parts[1:] {
		if strings.TrimSpace(part) == "omitempty" {
			return true
		}
	}
	return false
}
