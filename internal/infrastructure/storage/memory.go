// Package storage provides object storage implementations for file uploads.
package storage

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/acme/dashboard/internal/application/files"
)

// MemoryObjectStorage holds uploaded objects in process memory.
// Use this for development and tests until a real storage backend is wired.
type MemoryObjectStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryObjectStorage creates a new MemoryObjectStorage
func NewMemoryObjectStorage() *MemoryObjectStorage {
	return &MemoryObjectStorage{
		objects: make(map[string][]byte),
	}
}

// Ensure MemoryObjectStorage implements ObjectStorage
var _ files.ObjectStorage = (*MemoryObjectStorage)(nil)

// Put stores an object in memory
func (s *MemoryObjectStorage) Put(_ context.Context, key, _ string, body io.Reader, _ int64) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

// Get returns a stored object, or false when the key is absent
func (s *MemoryObjectStorage) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}

// Delete removes a stored object. Deleting an absent key is not an error.
func (s *MemoryObjectStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// Len returns the number of stored objects
func (s *MemoryObjectStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
