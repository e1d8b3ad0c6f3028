package store

import (
	"context"
	"errors"

	"entry-tracker/internal/domain/entries"
)

// ErrEntryNotFound is returned when an id does not match any entry.
var ErrEntryNotFound = errors.New("entry not found")

// EntryStore is the persistence boundary for entries. List is ordered
// by creation time, newest first. FindByTitleYear returns (nil, nil)
// when no entry matches.
type EntryStore interface {
	Create(ctx context.Context, entry *entries.Entry) error
	GetByID(ctx context.Context, id uint) (*entries.Entry, error)
	FindByTitleYear(ctx context.Context, title string, year int) (*entries.Entry, error)
	List(ctx context.Context, offset, limit int) ([]entries.Entry, error)
	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, t entries.EntryType) (int64, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*entries.Entry, error)
	Delete(ctx context.Context, id uint) error
}
