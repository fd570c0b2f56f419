package rentals

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Store owns the ordered collection of properties for the lifetime of the
// process.
//
// The collection is loaded in full once and written back in full after every
// mutation. All mutations go through Upsert and Remove.
type Store struct {
	mu    sync.Mutex
	slot  Slot
	log   *slog.Logger
	props []Property
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Open creates a store on slot and loads it.
//
// The store is always usable: a non nil error is a *PersistenceError warning
// and the store then starts with an empty collection.
func Open(ctx context.Context, slot Slot, opts ...Option) (*Store, error) {
	s := &Store{slot: slot, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, s.Load(ctx)
}

// Load reads the slot and replaces the in-memory collection.
//
// A missing slot is an empty collection. Unreadable or malformed data also
// yields an empty collection, and a *PersistenceError is returned.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.props = nil
	data, err := s.slot.Read(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("collection slot is empty, starting with an empty collection")
		return nil
	}
	if err != nil {
		return s.warn("load", err)
	}
	props, err := DecodeCollection(data)
	if err != nil {
		return s.warn("load", err)
	}
	s.props = props
	s.log.Debug("collection loaded", "count", len(props))
	return nil
}

// Save writes the whole collection to the slot.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

func (s *Store) save(ctx context.Context) error {
	data, err := EncodeCollection(s.props)
	if err != nil {
		return s.warn("save", err)
	}
	if err := s.slot.Write(ctx, data); err != nil {
		return s.warn("save", err)
	}
	return nil
}

func (s *Store) warn(op string, err error) error {
	perr := &PersistenceError{Op: op, Err: err}
	s.log.Warn("persistence failure, continuing with the in-memory collection", "op", op, "err", err)
	return perr
}

// Upsert replaces the property with the same ID, keeping its position, or
// appends it. The collection is saved afterwards.
//
// An invalid property returns a *ValidationError and nothing changes. A save
// failure returns a *PersistenceError but the mutation is kept in memory.
func (s *Store) Upsert(ctx context.Context, p Property) ([]Property, error) {
	if err := p.Validate(); err != nil {
		return s.All(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(p.ID); i >= 0 {
		s.props[i] = p
	} else {
		s.props = append(s.props, p)
	}
	return slices.Clone(s.props), s.save(ctx)
}

// Remove deletes the property with this ID. Removing an unknown ID is a no-op.
func (s *Store) Remove(ctx context.Context, id string) ([]Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return slices.Clone(s.props), nil
	}
	s.props = slices.Delete(s.props, i, i+1)
	return slices.Clone(s.props), s.save(ctx)
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.props, func(p Property) bool { return p.ID == id })
}

// All returns a copy of the collection in order.
func (s *Store) All() []Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.props)
}

// Len returns the collection size.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.props)
}

// Get returns the property with this exact ID.
func (s *Store) Get(id string) (Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		return s.props[i], true
	}
	return Property{}, false
}

// Find returns the unique property whose ID starts with prefix.
func (s *Store) Find(prefix string) (Property, error) {
	if prefix == "" {
		return Property{}, fmt.Errorf("empty property id")
	}
	if p, ok := s.Get(prefix); ok {
		return p, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var found []Property
	for _, p := range s.props {
		if strings.HasPrefix(p.ID, prefix) {
			found = append(found, p)
		}
	}
	switch len(found) {
	case 0:
		return Property{}, fmt.Errorf("%w: %q", ErrNotFound, prefix)
	case 1:
		return found[0], nil
	default:
		return Property{}, fmt.Errorf("ambiguous property id %q matches %d properties", prefix, len(found))
	}
}
