package command

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Params is the flat key-value bag a command is invoked with.
type Params map[string]any

func (p Params) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// Require fails with MissingParameter naming the first absent key.
func (p Params) Require(keys ...string) error {
	for _, k := range keys {
		if !p.Has(k) {
			return Missing(k)
		}
	}
	return nil
}

func (p Params) String(key, defaultVal string) string {
	if v, ok := p[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		// Numbers arrive as float64 from JSON and int from YAML.
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func (p Params) Int(key string, defaultVal int) int {
	if v, ok := p[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		case string:
			if i, err := strconv.Atoi(n); err == nil {
				return i
			}
		}
	}
	return defaultVal
}

func (p Params) Float(key string, defaultVal float64) float64 {
	if v, ok := p[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return f
			}
		}
	}
	return defaultVal
}

func (p Params) Bool(key string, defaultVal bool) bool {
	if v, ok := p[key]; ok {
		switch b := v.(type) {
		case bool:
			return b
		case string:
			if parsed, err := strconv.ParseBool(b); err == nil {
				return parsed
			}
		}
	}
	return defaultVal
}

// Seconds reads a number of seconds as a duration.
func (p Params) Seconds(key string, defaultVal time.Duration) time.Duration {
	if !p.Has(key) {
		return defaultVal
	}
	return time.Duration(p.Float(key, defaultVal.Seconds()) * float64(time.Second))
}

// Decode copies the bag into a struct tagged with `mapstructure`. Values are
// weakly typed so "5", 5 and 5.0 all decode into an int field.
func (p Params) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(map[string]any(p)); err != nil {
		return &Error{Code: InvalidParameter, Message: "invalid parameters", Err: err}
	}
	return nil
}
