package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Export converts the slots into plain Go values keyed by the flag letter.
// List payloads are never nil in the result.
func (s Slots) Export() map[string]any {
	out := make(map[string]any, len(s))
	for id, v := range s {
		out[string(id)] = exportValue(v)
	}
	return out
}

func exportValue(v Value) any {
	switch tv := v.(type) {
	case Bool:
		return bool(tv)
	case Int:
		return int64(tv)
	case Float:
		return float64(tv)
	case String:
		return string(tv)
	case IntList:
		return append([]int64{}, tv...)
	case FloatList:
		return append([]float64{}, tv...)
	case StringList:
		return append([]string{}, tv...)
	default:
		return nil
	}
}

// MarshalJSON serializes the slots as an object of flag letter to payload.
func (s Slots) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	out := make(map[string]any, len(s))
	for id, v := range s {
		if v == nil {
			return nil, fmt.Errorf("flag %s: value is nil", string(id))
		}
		out[string(id)] = jsonValue(v)
	}
	return json.Marshal(out)
}

// jsonValue renders non-finite floats as strings, since JSON has no
// literal for them.
func jsonValue(v Value) any {
	switch tv := v.(type) {
	case Float:
		if !isFinite(float64(tv)) {
			return formatNonFinite(float64(tv))
		}
	case FloatList:
		if !slices.ContainsFunc(tv, func(f float64) bool { return !isFinite(f) }) {
			break
		}
		items := make([]any, len(tv))
		for i, f := range tv {
			if isFinite(f) {
				items[i] = f
			} else {
				items[i] = formatNonFinite(f)
			}
		}
		return items
	}
	return exportValue(v)
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// formatNonFinite yields "+Inf", "-Inf" or "NaN".
func formatNonFinite(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (s Slots) MarshalYAML() (any, error) {
	if s == nil {
		return nil, nil
	}
	return s.Export(), nil
}
