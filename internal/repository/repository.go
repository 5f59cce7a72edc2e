package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// KVStore is the durable key-value storage the session is persisted in
type KVStore interface {
	Get(key string) (string, bool, error)
	SetMany(entries map[string]string) error
	Remove(keys ...string) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of KVStore
type MemoryRepo struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		entries: make(map[string]string),
	}
}

// Get returns the value stored under key
func (r *MemoryRepo) Get(key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[key]
	return v, ok, nil
}

// SetMany writes all entries in one step
func (r *MemoryRepo) SetMany(entries map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k, v := range entries {
		if k == "" {
			return fmt.Errorf("set entries: %w", ErrEmptyKey)
		}
		r.entries[k] = v
	}
	return nil
}

// Remove deletes the given keys. Missing keys are ignored.
func (r *MemoryRepo) Remove(keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, k := range keys {
		delete(r.entries, k)
	}
	return nil
}

// Len returns the number of stored entries
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// ErrEmptyKey is returned when writing an entry without a key
var ErrEmptyKey = errors.New("empty storage key")

// FileRepo is a KVStore persisted as a single JSON object on disk.
// Every write rewrites the file through a temp file and rename.
type FileRepo struct {
	mu   sync.Mutex
	path string
}

// NewFileRepo creates a file-backed repository. The file is created on first write.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{path: path}
}

// Path returns the backing file location
func (r *FileRepo) Path() string { return r.path }

// Get returns the value stored under key
func (r *FileRepo) Get(key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return "", false, err
	}
	v, ok := entries[key]
	return v, ok, nil
}

// SetMany writes all entries in one file rewrite
func (r *FileRepo) SetMany(entries map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.load()
	if err != nil {
		// an unreadable file is replaced rather than blocking new sessions
		current = make(map[string]string)
	}
	for k, v := range entries {
		if k == "" {
			return fmt.Errorf("set entries: %w", ErrEmptyKey)
		}
		current[k] = v
	}
	return r.store(current)
}

// Remove deletes the given keys
func (r *FileRepo) Remove(keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.load()
	if err != nil {
		current = make(map[string]string)
	}
	for _, k := range keys {
		delete(current, k)
	}
	return r.store(current)
}

func (r *FileRepo) load() (map[string]string, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage %s: %w", r.path, err)
	}
	entries := make(map[string]string)
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode storage %s: %w", r.path, err)
	}
	return entries, nil
}

func (r *FileRepo) store(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp storage: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp storage: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace storage %s: %w", r.path, err)
	}
	return nil
}
