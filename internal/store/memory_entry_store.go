package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"entry-tracker/internal/domain/entries"
)

// MemoryEntryStore keeps entries in a mutex-guarded map. It backs the
// handler and client tests, matching GormEntryStore's ordering and
// not-found behavior.
type MemoryEntryStore struct {
	mu     sync.RWMutex
	nextID uint
	items  map[uint]*entries.Entry
}

func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{items: make(map[uint]*entries.Entry)}
}

func (s *MemoryEntryStore) Create(_ context.Context, entry *entries.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := time.Now().UTC()
	entry.ID = s.nextID
	entry.CreatedAt = now
	entry.UpdatedAt = now

	stored := *entry
	s.items[entry.ID] = &stored
	return nil
}

func (s *MemoryEntryStore) GetByID(_ context.Context, id uint) (*entries.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.items[id]
	if !ok {
		return nil, ErrEntryNotFound
	}
	out := *entry
	return &out, nil
}

func (s *MemoryEntryStore) FindByTitleYear(_ context.Context, title string, year int) (*entries.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.items {
		if entry.Title == title && entry.Year == year {
			out := *entry
			return &out, nil
		}
	}
	return nil, nil
}

func (s *MemoryEntryStore) List(_ context.Context, offset, limit int) ([]entries.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]entries.Entry, 0, len(s.items))
	for _, entry := range s.items {
		all = append(all, *entry)
	}
	// created_at DESC with id as tie-break, same as the SQL ordering
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []entries.Entry{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *MemoryEntryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}

func (s *MemoryEntryStore) CountByType(_ context.Context, t entries.EntryType) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, entry := range s.items {
		if entry.Type == t {
			n++
		}
	}
	return n, nil
}

func (s *MemoryEntryStore) Update(_ context.Context, id uint, fields map[string]interface{}) (*entries.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.items[id]
	if !ok {
		return nil, ErrEntryNotFound
	}

	for column, value := range fields {
		switch column {
		case "title":
			entry.Title = value.(string)
		case "type":
			entry.Type = value.(entries.EntryType)
		case "year":
			entry.Year = value.(int)
		case "director":
			v := value.(string)
			entry.Director = &v
		case "budget":
			v := value.(string)
			entry.Budget = &v
		case "location":
			v := value.(string)
			entry.Location = &v
		case "duration":
			v := value.(int)
			entry.Duration = &v
		}
	}
	entry.UpdatedAt = time.Now().UTC()

	out := *entry
	return &out, nil
}

func (s *MemoryEntryStore) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrEntryNotFound
	}
	delete(s.items, id)
	return nil
}
