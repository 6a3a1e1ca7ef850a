package usecase

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Upstream bodies are loosely shaped: the same field can arrive under any of
// several names depending on the endpoint. These helpers resolve a value by
// trying an explicit ordered list of candidate names and returning the first
// present, non-null one. All record decoding goes through them instead of
// ad hoc per-call-site lookups.

func rawField(m map[string]json.RawMessage, names ...string) (json.RawMessage, bool) {
	for _, name := range names {
		v, ok := m[name]
		if !ok {
			continue
		}
		s := strings.TrimSpace(string(v))
		if s == "" || s == "null" {
			continue
		}
		return v, true
	}
	return nil, false
}

func stringField(m map[string]json.RawMessage, names ...string) (string, bool) {
	raw, ok := rawField(m, names...)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s != "" {
			return s, true
		}
		return "", false
	}
	// Some endpoints send numbers where others send strings.
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

func intField(m map[string]json.RawMessage, names ...string) (int, bool) {
	raw, ok := rawField(m, names...)
	if !ok {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func objectField(m map[string]json.RawMessage, names ...string) (map[string]json.RawMessage, bool) {
	raw, ok := rawField(m, names...)
	if !ok {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func arrayField(m map[string]json.RawMessage, names ...string) ([]json.RawMessage, bool) {
	raw, ok := rawField(m, names...)
	if !ok {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, false
	}
	return arr, true
}

func stringSliceField(m map[string]json.RawMessage, names ...string) []string {
	arr, ok := arrayField(m, names...)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, raw := range arr {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// parseAmount parses a money-ish string ("$1,500.00", "20", "") into a
// float, defaulting to 0 when absent or non-numeric.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
