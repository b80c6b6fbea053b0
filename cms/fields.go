package cms

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Fields returns the field bag of a record. The CMS nests fields under
// "attributes" (v4) or places them at the top level (v5); both are accepted.
func Fields(record gjson.Result) gjson.Result {
	if attrs := record.Get("attributes"); attrs.IsObject() {
		return attrs
	}
	return record
}

// ID reads the top-level record id
func ID(record gjson.Result) int64 {
	return record.Get("id").Int()
}

// String reads a text field; anything that is not a string or number is "".
func String(fields gjson.Result, key string) string {
	v := fields.Get(key)
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.String()
	default:
		return ""
	}
}

// StringOr reads a text field, substituting def when it is empty
func StringOr(fields gjson.Result, key, def string) string {
	if s := String(fields, key); s != "" {
		return s
	}
	return def
}

// Float reads a numeric field. Numeric strings are accepted; anything else is 0.
func Float(fields gjson.Result, key string) float64 {
	if f := OptionalFloat(fields, key); f != nil {
		return *f
	}
	return 0
}

// OptionalFloat is Float returning nil when the field is absent or not numeric
func OptionalFloat(fields gjson.Result, key string) *float64 {
	v := fields.Get(key)
	switch v.Type {
	case gjson.Number:
		f := v.Num
		return &f
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// Int reads an integer field, truncating fractional values
func Int(fields gjson.Result, key string) int {
	if i := OptionalInt(fields, key); i != nil {
		return *i
	}
	return 0
}

// OptionalInt is Int returning nil when the field is absent or not numeric
func OptionalInt(fields gjson.Result, key string) *int {
	f := OptionalFloat(fields, key)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}

// Bool reads a flag; only true, "true" and non-zero numbers are true
func Bool(fields gjson.Result, key string) bool {
	v := fields.Get(key)
	switch v.Type {
	case gjson.True:
		return true
	case gjson.String:
		b, _ := strconv.ParseBool(strings.TrimSpace(v.Str))
		return b
	case gjson.Number:
		return v.Num != 0
	default:
		return false
	}
}

// Strings reads a list of strings. A single non-empty string becomes a
// one-element list. The result is never nil.
func Strings(fields gjson.Result, key string) []string {
	v := fields.Get(key)
	out := []string{}

	switch {
	case v.IsArray():
		for _, item := range v.Array() {
			if item.Type == gjson.String && item.Str != "" {
				out = append(out, item.Str)
			}
		}
	case v.Type == gjson.String && v.Str != "":
		out = append(out, v.Str)
	}

	return out
}

// StringMap reads an object of string values. The result is never nil.
func StringMap(fields gjson.Result, key string) map[string]string {
	out := map[string]string{}

	v := fields.Get(key)
	if !v.IsObject() {
		return out
	}

	v.ForEach(func(k, value gjson.Result) bool {
		if value.Type == gjson.String && value.Str != "" {
			out[k.String()] = value.Str
		}
		return true
	})

	return out
}

// Relation unwraps a related record. Accepted shapes are {data:{...}} and
// a bare record carrying an id. ok is false for null, missing or empty data.
func Relation(raw gjson.Result) (record gjson.Result, ok bool) {
	if !raw.IsObject() {
		return gjson.Result{}, false
	}

	if data := raw.Get("data"); data.Exists() {
		if data.IsArray() {
			data = data.Get("0")
		}
		if !data.IsObject() {
			return gjson.Result{}, false
		}
		return data, true
	}

	if !raw.Get("id").Exists() {
		return gjson.Result{}, false
	}

	return raw, true
}
