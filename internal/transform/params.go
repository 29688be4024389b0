package transform

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ParamType tells a UI which input to build for a parameter.
type ParamType string

const (
	ParamInt   ParamType = "int"
	ParamEnum  ParamType = "enum"
	ParamColor ParamType = "color"
)

// ParameterInfo describes a parameter for dialog generation and validation.
// Min and Max apply to ParamInt only.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Label       string      `json:"label"`
	Type        ParamType   `json:"type"`
	Min         int         `json:"min,omitempty"`
	Max         int         `json:"max,omitempty"`
	Default     interface{} `json:"default"`
	Options     []string    `json:"options,omitempty"`
	Description string      `json:"description"`
}

// Check validates a raw textual value against the descriptor.
func (p ParameterInfo) Check(raw string) error {
	switch p.Type {
	case ParamInt:
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s must be a whole number", p.Label)
		}
		if v < p.Min || v > p.Max {
			return fmt.Errorf("%s must be between %d and %d", p.Label, p.Min, p.Max)
		}
	case ParamEnum:
		for _, opt := range p.Options {
			if strings.EqualFold(opt, strings.TrimSpace(raw)) {
				return nil
			}
		}
		return fmt.Errorf("%s must be one of %s", p.Label, strings.Join(p.Options, ", "))
	case ParamColor:
		if _, err := ParseColor(raw); err != nil {
			return fmt.Errorf("%s: unknown color %q", p.Label, raw)
		}
	}
	return nil
}

// Params carries operation arguments. Values may be int, float64 or string.
type Params map[string]interface{}

// Int reads name as an integer, falling back to def when absent.
func (p Params) Int(name string, def int) (int, error) {
	val, ok := p[name]
	if !ok {
		return def, nil
	}
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, invalidf("%s must be a whole number, got %v", name, v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, invalidf("%s must be a whole number, got %q", name, v)
		}
		return n, nil
	}
	return 0, invalidf("%s has unsupported type %T", name, val)
}

// RequireInt reads name as an integer and fails when it is absent.
func (p Params) RequireInt(name string) (int, error) {
	if _, ok := p[name]; !ok {
		return 0, invalidf("missing parameter %s", name)
	}
	return p.Int(name, 0)
}

// String reads name as a string, falling back to def when absent.
func (p Params) String(name, def string) (string, error) {
	val, ok := p[name]
	if !ok {
		return def, nil
	}
	if s, ok := val.(string); ok {
		return s, nil
	}
	return "", invalidf("%s must be text, got %T", name, val)
}

// ParseSpec parses "name:key=value,key=value" into an operation name and Params.
// Values are kept as strings; operations convert them on use.
func ParseSpec(spec string) (string, Params, error) {
	name, args, _ := strings.Cut(strings.TrimSpace(spec), ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, invalidf("empty operation in %q", spec)
	}

	params := Params{}
	if strings.TrimSpace(args) == "" {
		return name, params, nil
	}
	for _, pair := range strings.Split(args, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return "", nil, invalidf("malformed argument %q in %q", pair, spec)
		}
		params[key] = strings.TrimSpace(value)
	}
	return name, params, nil
}

// FormatSpec renders params back into the textual form ParseSpec accepts.
func FormatSpec(name string, params Params) string {
	if len(params) == 0 {
		return name
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, params[k])
	}
	return name + ":" + strings.Join(parts, ",")
}
