package command

import (
	"encoding/json"
	"fmt"
)

// Fields holds the kind-specific payload of a successful result.
type Fields map[string]any

// Result is the outcome envelope every command returns. On the wire it is a
// flat object: {"success": true, ...fields} or
// {"success": false, "error": "...", "code": "..."}.
type Result struct {
	Success bool
	Error   string
	Code    Code
	Fields  Fields
}

// OK wraps fields in a successful result.
func OK(fields Fields) Result {
	if fields == nil {
		fields = Fields{}
	}
	return Result{Success: true, Fields: fields}
}

// Fail converts err into a failed result.
func Fail(err error) Result {
	if err == nil {
		err = Errorf(HostError, "unknown failure")
	}
	return Result{Success: false, Error: err.Error(), Code: CodeOf(err)}
}

// Get returns a payload field.
func (r Result) Get(key string) (any, bool) {
	v, ok := r.Fields[key]
	return v, ok
}

// Map returns the flat wire form of the result.
func (r Result) Map() map[string]any {
	m := make(map[string]any, len(r.Fields)+3)
	for k, v := range r.Fields {
		m[k] = v
	}
	m["success"] = r.Success
	if !r.Success {
		m["error"] = r.Error
		if r.Code != "" {
			m["code"] = string(r.Code)
		}
	}
	return m
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

// MarshalYAML renders the same flat form for CLI output.
func (r Result) MarshalYAML() (interface{}, error) {
	return r.Map(), nil
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	success, ok := m["success"].(bool)
	if !ok {
		return fmt.Errorf("result is missing boolean \"success\" field")
	}
	*r = Result{Success: success, Fields: Fields{}}
	for k, v := range m {
		switch k {
		case "success":
		case "error":
			if !success {
				r.Error, _ = v.(string)
				continue
			}
			r.Fields[k] = v
		case "code":
			if !success {
				s, _ := v.(string)
				r.Code = Code(s)
				continue
			}
			r.Fields[k] = v
		default:
			r.Fields[k] = v
		}
	}
	return nil
}

// Handler is the signature every command implementation satisfies.
type Handler func(p Params) (Fields, error)

// Handle runs h and converts its outcome into a Result.
func Handle(h Handler, p Params) Result {
	fields, err := h(p)
	if err != nil {
		return Fail(err)
	}
	return OK(fields)
}
