package parsing

import (
	"fmt"
	"maps"
	"strings"
)

// ParseKwargString parses "key=value;key=value" into a map.
//
// Empty segments are skipped. Values keep any '=' after the first one.
func ParseKwargString(s string) (map[string]any, error) {
	out := make(map[string]any)
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, ok := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid kwarg %q, expected key=value", part)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("kwarg %q given more than once", key)
		}
		out[key] = strings.TrimSpace(val)
	}
	return out, nil
}

// MergeKwargs overlays override onto base.
//
// Keys are compared after canonicalization so "-t" in override replaces
// "target_level" in base instead of clashing with it. Keys canon can't map are
// kept as given for the resolver to reject.
func MergeKwargs(base, override map[string]any, canon func(string) (string, bool)) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	maps.Copy(out, base)

	index := make(map[string]string, len(out))
	for k := range out {
		if c, ok := canon(k); ok {
			index[c] = k
		}
	}

	for k, v := range override {
		if c, ok := canon(k); ok {
			if prev, exists := index[c]; exists {
				delete(out, prev)
			}
			index[c] = k
		}
		out[k] = v
	}
	return out
}
