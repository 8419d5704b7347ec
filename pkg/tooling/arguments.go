package tooling

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sealor/searchbot/pkg/chat"
)

type Arguments map[string]any

func (a Arguments) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// ParseArguments decodes the raw argument text of a tool call and checks it
// against the definition: required fields must be present and known fields
// must have the declared primitive type.
func ParseArguments(raw string, def chat.ToolDefinition) (Arguments, error) {
	args := Arguments{}
	if strings.TrimSpace(raw) != "" {
		decoder := json.NewDecoder(bytes.NewReader([]byte(raw)))
		decoder.UseNumber()
		if err := decoder.Decode(&args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
		if err := decoder.Decode(&json.RawMessage{}); err != io.EOF {
			return nil, fmt.Errorf("invalid arguments: unexpected data after the JSON object")
		}
		if args == nil {
			args = Arguments{}
		}
	}

	for _, name := range def.Required {
		value, ok := args[name]
		if !ok || value == nil {
			return nil, fmt.Errorf("missing required argument %s", name)
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("argument %s is empty", name)
		}
	}

	for name, value := range args {
		param, ok := def.Parameter(name)
		if !ok {
			continue
		}
		if err := checkType(value, param.Type); err != nil {
			return nil, fmt.Errorf("argument %s: %w", name, err)
		}
	}
	return args, nil
}

func checkType(value any, expected string) error {
	switch expected {
	case "", "any":
		return nil
	case "string":
		if _, ok := value.(string); ok {
			return nil
		}
	case "number":
		if n, ok := value.(json.Number); ok {
			if _, err := n.Float64(); err == nil {
				return nil
			}
		}
	case "integer":
		if n, ok := value.(json.Number); ok {
			if f, err := n.Float64(); err == nil && math.Trunc(f) == f {
				return nil
			}
		}
	case "boolean":
		if _, ok := value.(bool); ok {
			return nil
		}
	case "object":
		if _, ok := value.(map[string]any); ok {
			return nil
		}
	case "array":
		if _, ok := value.([]any); ok {
			return nil
		}
	default:
		return fmt.Errorf("unsupported type %q", expected)
	}
	return fmt.Errorf("expected %s but got %s", expected, jsonKind(value))
}

func jsonKind(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	return fmt.Sprintf("%T", value)
}
