package store

import (
	"context"
	"errors"
	"time"

	"entry-tracker/internal/domain/entries"

	"gorm.io/gorm"
)

// GormEntryStore is the Postgres-backed EntryStore.
type GormEntryStore struct {
	db *gorm.DB
}

func NewGormEntryStore(db *gorm.DB) *GormEntryStore {
	return &GormEntryStore{db: db}
}

func (s *GormEntryStore) Create(ctx context.Context, entry *entries.Entry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *GormEntryStore) GetByID(ctx context.Context, id uint) (*entries.Entry, error) {
	var entry entries.Entry
	err := s.db.WithContext(ctx).First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *GormEntryStore) FindByTitleYear(ctx context.Context, title string, year int) (*entries.Entry, error) {
	var entry entries.Entry
	err := s.db.WithContext(ctx).First(&entry, "title = ? AND year = ?", title, year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *GormEntryStore) List(ctx context.Context, offset, limit int) ([]entries.Entry, error) {
	out := make([]entries.Entry, 0, limit)
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormEntryStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&entries.Entry{}).Count(&n).Error
	return n, err
}

func (s *GormEntryStore) CountByType(ctx context.Context, t entries.EntryType) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&entries.Entry{}).
		Where("type = ?", t).
		Count(&n).Error
	return n, err
}

// Update applies only the supplied columns. An empty field map still
// refreshes updated_at, so a no-op update is observable.
func (s *GormEntryStore) Update(ctx context.Context, id uint, fields map[string]interface{}) (*entries.Entry, error) {
	var entry entries.Entry
	if err := s.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if len(fields) == 0 {
		fields = map[string]interface{}{"updated_at": time.Now().UTC()}
	}
	if err := s.db.WithContext(ctx).Model(&entry).Updates(fields).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *GormEntryStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&entries.Entry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
