package store

import (
	"errors"
	"hash/fnv"
	"os"
	"path/filepath"
	"sync"
)

const lockStripes = 64

// FileStore keeps one file per key under a root directory. Writes land in
// a temp file and rename into place, so a concurrent Get of the same key
// sees either the old or the new content, never a torn value. Per-key
// striped locks serialize same-key writers.
type FileStore struct {
	root  string
	locks [lockStripes]sync.RWMutex
}

func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) Put(key string, value []byte) error {
	mu := s.lock(key)
	mu.Lock()
	defer mu.Unlock()

	// ".tmp" cannot collide with a live key: keys never contain dots.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *FileStore) Get(key string) ([]byte, error) {
	mu := s.lock(key)
	mu.RLock()
	defer mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *FileStore) Del(key string) error {
	mu := s.lock(key)
	mu.Lock()
	defer mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(key string) string {
	return filepath.Join(s.root, key)
}

func (s *FileStore) lock(key string) *sync.RWMutex {
	h := fnv.New32a()
	h.Write([]byte(key))
	return &s.locks[h.Sum32()%lockStripes]
}
