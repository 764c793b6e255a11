package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SanitizeList turns a comma separated string or a list into trimmed, non-empty,
// de-duplicated strings in first-seen order. Unsupported input yields an empty list.
func SanitizeList(value any) []string {
	var raw []string

	switch v := value.(type) {
	case nil:
	case string:
		raw = strings.Split(v, ",")
	case []string:
		raw = v
	case StringList:
		raw = v
	case []any:
		for _, item := range v {
			switch s := item.(type) {
			case nil:
			case string:
				raw = append(raw, s)
			default:
				raw = append(raw, fmt.Sprint(s))
			}
		}
	}

	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// StringList accepts either "a, b" or ["a", "b"] in request bodies.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = SanitizeList(v)
	return nil
}
