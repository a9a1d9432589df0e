package profile

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"
)

// MemoryStore implements Service in process memory. Reads share a read lock and
// mutations take the write lock, so concurrent requests never interleave.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles []Profile
	lastID   int64
	now      func() time.Time
}

// Option customizes a MemoryStore.
type Option func(*MemoryStore)

// WithClock replaces time.Now for ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *MemoryStore) {
		m.now = now
	}
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	m := &MemoryStore{
		profiles: []Profile{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MemoryStore) List(ctx context.Context) ([]Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Profile, len(m.profiles))
	for i, p := range m.profiles {
		out[i] = p.clone()
	}
	return out, nil
}

func (m *MemoryStore) Create(ctx context.Context, params CreateParams) (*Profile, error) {
	if err := ValidateCreate(params); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	p := Profile{
		ID:        m.nextID(now),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Instagram: params.Instagram,
		YouTube:   params.YouTube,
		CreatedAt: now,
	}
	m.profiles = append(m.profiles, p)

	out := p.clone()
	return &out, nil
}

func (m *MemoryStore) Update(ctx context.Context, id string, params UpdateParams) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("update %s: %w", id, ErrNotFound)
	}

	p := &m.profiles[i]
	p.Name = mergeNonEmpty(p.Name, params.Name)
	p.Email = mergeNonEmpty(p.Email, params.Email)
	p.Phone = mergeNonEmpty(p.Phone, params.Phone)
	p.Instagram = mergeNonEmpty(p.Instagram, params.Instagram)
	p.YouTube = mergeNonEmpty(p.YouTube, params.YouTube)
	now := m.now().UTC()
	p.UpdatedAt = &now

	out := p.clone()
	return &out, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	m.profiles = slices.Delete(m.profiles, i, i+1)
	return nil
}

// Len reports how many profiles are stored.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.profiles)
}

// nextID derives the id from the creation time in Unix milliseconds, bumped past the
// previous id when two creates share a millisecond. Caller holds the write lock.
func (m *MemoryStore) nextID(now time.Time) string {
	id := now.UnixMilli()
	if id <= m.lastID {
		id = m.lastID + 1
	}
	m.lastID = id
	return strconv.FormatInt(id, 10)
}

func (m *MemoryStore) indexOf(id string) int {
	return slices.IndexFunc(m.profiles, func(p Profile) bool { return p.ID == id })
}

// mergeNonEmpty keeps current unless incoming carries a value.
func mergeNonEmpty(current, incoming string) string {
	if incoming == "" {
		return current
	}
	return incoming
}

// Compile-time interface check
var _ Service = (*MemoryStore)(nil)
