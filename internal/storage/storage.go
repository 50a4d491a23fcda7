// Package storage keeps small preference flags and documents across runs.
//
// Values live in the per-user data directory through gdata. When that is not
// available the Store degrades to an in-memory map so callers never need a
// separate code path.
package storage

import (
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const flagsObject = "flags"

var ErrEmptyKey = errors.New("storage: empty key")

// Store is a string key/value store. A nil manager means memory only.
type Store struct {
	manager *gdata.Manager
	mem     map[string][]byte
}

// Open creates the gdata manager for appName. Failure is logged and yields a
// memory-only store.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Storage] Warning: persistent storage unavailable: %v (memory only)", err)
		m = nil
	}
	return New(m)
}

func New(m *gdata.Manager) *Store {
	return &Store{manager: m, mem: make(map[string][]byte)}
}

// Persistent reports whether values survive a restart.
func (s *Store) Persistent() bool { return s.manager != nil }

func (s *Store) load(key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	if s.manager == nil {
		data, ok := s.mem[key]
		return data, ok, nil
	}
	if !s.manager.ObjectPropExists(flagsObject, key) {
		return nil, false, nil
	}
	data, err := s.manager.LoadObjectProp(flagsObject, key)
	if err != nil {
		return nil, false, fmt.Errorf("load %q: %w", key, err)
	}
	return data, true, nil
}

func (s *Store) save(key string, data []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if s.manager == nil {
		s.mem[key] = append([]byte(nil), data...)
		return nil
	}
	if err := s.manager.SaveObjectProp(flagsObject, key, data); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

// Get returns the stored string. Read errors are logged and reported as absent.
func (s *Store) Get(key string) (string, bool) {
	data, ok, err := s.load(key)
	if err != nil {
		log.Printf("[Storage] Warning: %v", err)
		return "", false
	}
	return string(data), ok
}

func (s *Store) Set(key, value string) error {
	return s.save(key, []byte(value))
}

// Bool reads a "true"/"false" flag. Anything else yields def.
func (s *Store) Bool(key string, def bool) bool {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	return def
}

func (s *Store) SetBool(key string, v bool) error {
	if v {
		return s.Set(key, "true")
	}
	return s.Set(key, "false")
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if s.manager == nil {
		delete(s.mem, key)
		return nil
	}
	if !s.manager.ObjectPropExists(flagsObject, key) {
		return nil
	}
	if err := s.manager.DeleteObjectProp(flagsObject, key); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// LoadYAML decodes the document under key into v. It reports false when the
// key is absent, leaving v untouched.
func (s *Store) LoadYAML(key string, v any) (bool, error) {
	data, ok, err := s.load(key)
	if err != nil || !ok {
		return false, err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func (s *Store) SaveYAML(key string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.save(key, data)
}
