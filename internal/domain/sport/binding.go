package sport

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// BindMode controls what happens to submitted keys the schema does not
// declare.
type BindMode string

const (
	// BindStrict rejects documents carrying undeclared keys.
	BindStrict BindMode = "strict"
	// BindLenient persists undeclared keys as submitted.
	BindLenient BindMode = "lenient"
	// BindStrip silently drops undeclared keys.
	BindStrip BindMode = "strip"
)

func ParseBindMode(value string) (BindMode, error) {
	switch BindMode(strings.ToLower(strings.TrimSpace(value))) {
	case BindStrict:
		return BindStrict, nil
	case BindLenient:
		return BindLenient, nil
	case BindStrip:
		return BindStrip, nil
	case "":
		return BindStrict, nil
	default:
		return "", fmt.Errorf("bind mode %q is not one of strict, lenient, strip", value)
	}
}

// BindError reports which submitted keys could not be bound to the schema.
type BindError struct {
	UnknownKeys []string
	BadValues   map[string]string
}

func (e *BindError) Error() string {
	var parts []string
	if len(e.UnknownKeys) > 0 {
		parts = append(parts, "unknown keys: "+strings.Join(e.UnknownKeys, ", "))
	}
	for _, key := range sortedKeys(e.BadValues) {
		parts = append(parts, fmt.Sprintf("%s: %s", key, e.BadValues[key]))
	}
	return "document does not match sport schema (" + strings.Join(parts, "; ") + ")"
}

// Bind normalizes a submitted free-form document against the schema's
// declared key set. Declared stat fields are coerced to numbers; other
// declared keys pass through. Undeclared keys are handled per mode.
func (s ConfigSchema) Bind(submitted map[string]any, mode BindMode) (map[string]any, error) {
	if len(submitted) == 0 {
		return map[string]any{}, nil
	}

	allowed := s.AllowedKeys()
	out := make(map[string]any, len(submitted))
	bindErr := &BindError{BadValues: map[string]string{}}

	for key, value := range submitted {
		if _, ok := allowed[key]; !ok {
			switch mode {
			case BindLenient:
				out[key] = value
			case BindStrip:
				// dropped
			default:
				bindErr.UnknownKeys = append(bindErr.UnknownKeys, key)
			}
			continue
		}

		if s.IsStatField(key) {
			coerced, err := coerceNumber(value)
			if err != nil {
				bindErr.BadValues[key] = err.Error()
				continue
			}
			out[key] = coerced
			continue
		}

		out[key] = value
	}

	if len(bindErr.UnknownKeys) > 0 || len(bindErr.BadValues) > 0 {
		sort.Strings(bindErr.UnknownKeys)
		return nil, bindErr
	}

	return out, nil
}

// coerceNumber accepts native JSON numbers and numeric strings. Whole values
// come back as int64 so "45" and 45 store identically.
func coerceNumber(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v == float64(int64(v)) {
			return int64(v), nil
		}
		return v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return f, nil
		}
		return nil, fmt.Errorf("value %q is not numeric", v)
	default:
		return nil, fmt.Errorf("value of type %T is not numeric", value)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
