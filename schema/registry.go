package schema

import (
	"fmt"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]*Schema)
)

// Register registers a schema under name in the global registry.
func Register(name string, s *Schema) error {
	if s == nil {
		return fmt.Errorf("cannot register nil schema")
	}
	if name == "" {
		return fmt.Errorf("schema must have a name")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("schema %q already registered", name)
	}

	registry[name] = s
	return nil
}

// Replace registers s under name, replacing any schema already there.
func Replace(name string, s *Schema) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = s
}

// Unregister removes the schema registered under name.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	delete(registry, name)
}

// Lookup looks up a schema by name
func Lookup(name string) *Schema {
	mu.RLock()
	defer mu.RUnlock()
	s := registry[name]
	return s
}

// All returns all registered schemas
func All() map[string]*Schema {
	mu.RLock()
	defer mu.RUnlock()

	result := make(map[string]*Schema, len(registry))
	for k, v := range registry {
		result[k] = v
	}
	return result
}

// LoadCached returns the schema registered under path, loading it with
// LoadFile and registering it on first use.
func LoadCached(path string) (*Schema, error) {
	if s := Lookup(path); s != nil {
		return s, nil
	}
	s, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	Replace(path, s)
	return s, nil
}
