package rentals

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// SlotKey is the fixed key under which the collection is stored in key-value
// slots.
const SlotKey = "ufmg-imoveis-data"

// Slot is a single named location holding the whole encoded collection.
type Slot interface {
	// Read returns the slot content. An empty slot returns an error wrapping
	// fs.ErrNotExist.
	Read(ctx context.Context) ([]byte, error)
	// Write overwrites the slot content.
	Write(ctx context.Context, data []byte) error
}

// FileSlot stores the collection in a single file.
type FileSlot struct {
	Path string
}

// NewFileSlot returns a slot backed by the file at path.
func NewFileSlot(path string) *FileSlot { return &FileSlot{Path: path} }

func (s *FileSlot) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", s.Path, err)
	}
	return data, nil
}

// Write replaces the file atomically: the content is written to a temporary
// file in the same folder and renamed over the target.
func (s *FileSlot) Write(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("cannot write %q: %w", s.Path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", s.Path, err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("cannot write %q: %w", s.Path, err)
	}
	return nil
}

func (s *FileSlot) String() string { return s.Path }

// MemSlot keeps the collection in memory. Its zero value is an empty slot.
type MemSlot struct {
	mu   sync.Mutex
	data []byte
	// Err, when set, is returned by every Write.
	Err error
}

func (s *MemSlot) Read(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, fmt.Errorf("memory slot: %w", fs.ErrNotExist)
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemSlot) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.data = append([]byte(nil), data...)
	return nil
}

// Set replaces the slot content directly.
func (s *MemSlot) Set(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
}
