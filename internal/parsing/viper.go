package parsing

import (
	"fmt"
	"strings"
)

// ConfigGetter is the subset of *viper.Viper the config helpers need.
type ConfigGetter interface {
	IsSet(string) bool
	Get(string) any
}

// GetConfigValue normalizes and retrieves values from the config.
//
// Supports both kebab-case and snake_case keys.
func GetConfigValue[T any](v ConfigGetter, key string) (T, bool) {
	var zero T

	for _, k := range keyVariants(key) {
		if v.IsSet(k) {
			if val, ok := convertConfigValue[T](v.Get(k)); ok {
				return val, true
			}
		}
	}
	return zero, false
}

func keyVariants(key string) []string {
	keys := []string{key}
	if snake := strings.ReplaceAll(key, "-", "_"); snake != key {
		keys = append(keys, snake)
	}
	if kebab := strings.ReplaceAll(key, "_", "-"); kebab != key {
		keys = append(keys, kebab)
	}
	return keys
}

// convertConfigValue handles config entry conversions safely.
func convertConfigValue[T any](v any) (T, bool) {
	var zero T

	// Direct type match
	if val, ok := v.(T); ok {
		return val, true
	}

	switch any(zero).(type) {
	case string:
		return any(fmt.Sprintf("%v", v)).(T), true

	case int:
		switch n := v.(type) {
		case int64:
			return any(int(n)).(T), true
		case float64:
			return any(int(n)).(T), true
		}

	case bool:
		if s, ok := v.(string); ok {
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "true", "1", "yes":
				return any(true).(T), true
			case "false", "0", "no":
				return any(false).(T), true
			}
		}

	case map[string]any:
		// YAML decoders may hand back map[any]any for nested maps
		if m, ok := v.(map[any]any); ok {
			out := make(map[string]any, len(m))
			for k, val := range m {
				out[fmt.Sprint(k)] = val
			}
			return any(out).(T), true
		}
	}

	return zero, false
}
