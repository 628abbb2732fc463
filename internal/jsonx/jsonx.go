// Package jsonx wraps encoding/json with a date-aware decoding mode: strings
// that look like strict ISO-8601 UTC timestamps are revived into time.Time
// values when decoding into generic trees. Stored records keep their
// timestamps in UTC so a round trip yields a date value, not a string.
package jsonx

import (
	"encoding/json"
	"regexp"
	"time"
)

// timestampPattern matches ISO-8601 UTC timestamps with optional fractional
// seconds: 2024-03-01T10:00:00Z or 2024-03-01T10:00:00.000Z.
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{1,9})?Z$`)

// Marshal encodes v as JSON. time.Time fields must be in UTC so their
// serialized form stays revivable by DecodeAny.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes data into a typed destination. Typed time.Time fields
// are handled by encoding/json itself; no revival pass is needed.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// DecodeAny decodes data into a generic value tree (maps, slices, scalars)
// and revives every string matching the timestamp pattern into a time.Time.
func DecodeAny(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return ReviveValue(v), nil
}

// ReviveValue walks a decoded JSON tree and replaces timestamp strings with
// time.Time values. Non-matching values are returned unchanged.
func ReviveValue(v any) any {
	switch value := v.(type) {
	case string:
		if timestampPattern.MatchString(value) {
			if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
				return ts
			}
		}
		return value
	case map[string]any:
		for k, item := range value {
			value[k] = ReviveValue(item)
		}
		return value
	case []any:
		for i, item := range value {
			value[i] = ReviveValue(item)
		}
		return value
	default:
		return v
	}
}
