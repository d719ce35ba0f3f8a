package memory

import (
	"sync"

	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map. Save and Load do nothing, so a
// session built on it forgets its settings on exit.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates an empty in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// typed reads key and converts it, returning the zero value when the key
// is missing or has another type.
func typed[T any](s *ConfigStore, key string, convert func(any) (T, bool)) T {
	var zero T
	val, ok := s.Get(key)
	if !ok {
		return zero
	}
	if v, ok := convert(val); ok {
		return v
	}
	return zero
}

// GetString retrieves a string value.
func (s *ConfigStore) GetString(key string) string {
	return typed(s, key, func(v any) (string, bool) {
		str, ok := v.(string)
		return str, ok
	})
}

// GetInt retrieves an integer value. Floats are truncated.
func (s *ConfigStore) GetInt(key string) int {
	return typed(s, key, func(v any) (int, bool) {
		f, ok := number(v)
		return int(f), ok
	})
}

// GetFloat retrieves a numeric value.
func (s *ConfigStore) GetFloat(key string) float64 {
	return typed(s, key, number)
}

// GetBool retrieves a boolean value.
func (s *ConfigStore) GetBool(key string) bool {
	return typed(s, key, func(v any) (bool, bool) {
		b, ok := v.(bool)
		return b, ok
	})
}

// GetStringSlice retrieves the string elements of a slice value.
func (s *ConfigStore) GetStringSlice(key string) []string {
	return typed(s, key, func(v any) ([]string, bool) {
		switch list := v.(type) {
		case []string:
			return append([]string(nil), list...), true
		case []any:
			out := make([]string, 0, len(list))
			for _, item := range list {
				if str, ok := item.(string); ok {
					out = append(out, str)
				}
			}
			return out, true
		}
		return nil, false
	})
}

// number widens the numeric types a caller might Set.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

// Set stores a configuration value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Save is a no-op.
func (s *ConfigStore) Save() error {
	return nil
}

// Load is a no-op.
func (s *ConfigStore) Load() error {
	return nil
}

// Path returns ":memory:".
func (s *ConfigStore) Path() string {
	return ":memory:"
}
