package doc

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Meta is the document metadata decoded from the YAML front matter.
type Meta map[string]any

// Lookup follows path through nested maps.
func (m Meta) Lookup(path ...string) (any, bool) {
	var current any = map[string]any(m)

	for _, key := range path {
		dict, ok := asMap(current)
		if !ok {
			return nil, false
		}

		if current, ok = dict[key]; !ok {
			return nil, false
		}
	}

	return current, true
}

// Text returns the stringified value of a top-level key. Null values count
// as absent.
func (m Meta) Text(key string) (string, bool) {
	value, ok := m[key]
	if !ok || value == nil {
		return "", false
	}

	return Stringify(value), true
}

// Stringify flattens a metadata value to text. Lists are joined with ", ",
// maps contribute their sorted keys.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.DateOnly)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, Stringify(item))
		}

		return strings.Join(parts, ", ")
	}

	if dict, ok := asMap(value); ok {
		keys := make([]string, 0, len(dict))
		for k := range dict {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		return strings.Join(keys, ", ")
	}

	return fmt.Sprint(value)
}

func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case Meta:
		return v, true
	case map[string]any:
		return v, true
	case map[any]any:
		dict := make(map[string]any, len(v))
		for k, item := range v {
			dict[fmt.Sprint(k)] = item
		}

		return dict, true
	}

	return nil, false
}
