package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"entry-tracker/internal/domain/entries"
)

func seedStore(t *testing.T, s *MemoryEntryStore, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		e := entries.Entry{Type: entries.TypeMovie, Title: fmt.Sprintf("Movie %d", i+1), Year: 1990 + i}
		if err := s.Create(context.Background(), &e); err != nil {
			t.Fatalf("create %d: %v", i+1, err)
		}
	}
}

func TestMemoryStoreCreateAssignsIdentity(t *testing.T) {
	s := NewMemoryEntryStore()
	ctx := context.Background()

	a := entries.Entry{Type: entries.TypeMovie, Title: "Dune", Year: 2021}
	b := entries.Entry{Type: entries.TypeTVShow, Title: "Severance", Year: 2022}
	if err := s.Create(ctx, &a); err != nil {
		t.Fatal(err)
	}
	if err := s.Create(ctx, &b); err != nil {
		t.Fatal(err)
	}

	if a.ID != 1 || b.ID != 2 {
		t.Errorf("ids = %d, %d; want 1, 2", a.ID, b.ID)
	}
	if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
		t.Error("timestamps not set on create")
	}
}

func TestMemoryStoreGetByID(t *testing.T) {
	s := NewMemoryEntryStore()
	ctx := context.Background()
	seedStore(t, s, 1)

	got, err := s.GetByID(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Movie 1" {
		t.Errorf("title = %q", got.Title)
	}

	if _, err := s.GetByID(ctx, 42); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("missing id: err = %v, want ErrEntryNotFound", err)
	}
}

func TestMemoryStoreFindByTitleYear(t *testing.T) {
	s := NewMemoryEntryStore()
	ctx := context.Background()
	seedStore(t, s, 2)

	got, err := s.FindByTitleYear(ctx, "Movie 2", 1991)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != 2 {
		t.Errorf("got %+v, want entry 2", got)
	}

	// same title, other year: no match
	got, err = s.FindByTitleYear(ctx, "Movie 2", 2005)
	if err != nil || got != nil {
		t.Errorf("got %+v, %v; want nil, nil", got, err)
	}
}

func TestMemoryStoreListOrderAndWindow(t *testing.T) {
	s := NewMemoryEntryStore()
	ctx := context.Background()
	seedStore(t, s, 7)

	first, err := s.List(ctx, 0, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 5 {
		t.Fatalf("len = %d, want 5", len(first))
	}
	if first[0].ID != 7 {
		t.Errorf("first id = %d, newest entry should lead", first[0].ID)
	}
	for i := 1; i < len(first); i++ {
		if first[i].ID >= first[i-1].ID {
			t.Fatalf("ordering broken: %d after %d", first[i].ID, first[i-1].ID)
		}
	}

	second, err := s.List(ctx, 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 2 {
		t.Errorf("second page len = %d, want 2", len(second))
	}

	empty, err := s.List(ctx, 20, 5)
	if err != nil || len(empty) != 0 {
		t.Errorf("past-the-end page: %v, %v", empty, err)
	}
}

func TestMemoryStoreCounts(t *testing.T) {
	s := NewMemoryEntryStore()
	ctx := context.Background()
	seedStore(t, s, 3)
	show := entries.Entry{Type: entries.TypeTVShow, Title: "Severance", Year: 2022}
	if err := s.Create(ctx, &show); err != nil {
		t.Fatal(err)
	}

	total, _ := s.Count(ctx)
	movies, _ := s.CountByType(ctx, entries.TypeMovie)
	shows, _ := s.CountByType(ctx, entries.TypeTVShow)
	if total != 4 || movies != 3 || shows != 1 {
		t.Errorf("counts = %d/%d/%d", total, movies, shows)
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := NewMemoryEntryStore()
	ctx := context.Background()
	seedStore(t, s, 1)

	before, _ := s.GetByID(ctx, 1)
	time.Sleep(5 * time.Millisecond)

	updated, err := s.Update(ctx, 1, map[string]interface{}{
		"budget":   "5000000",
		"duration": 120,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Budget == nil || *updated.Budget != "5000000" {
		t.Errorf("budget = %v", updated.Budget)
	}
	if updated.Duration == nil || *updated.Duration != 120 {
		t.Errorf("duration = %v", updated.Duration)
	}
	if updated.Title != before.Title || updated.Year != before.Year {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(before.UpdatedAt) {
		t.Error("updatedAt not refreshed")
	}
	if !updated.CreatedAt.Equal(before.CreatedAt) {
		t.Error("createdAt must not change on update")
	}

	if _, err := s.Update(ctx, 42, nil); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("missing id: err = %v, want ErrEntryNotFound", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryEntryStore()
	ctx := context.Background()
	seedStore(t, s, 1)

	if err := s.Delete(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, 1); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("second delete: err = %v, want ErrEntryNotFound", err)
	}
	if n, _ := s.Count(ctx); n != 0 {
		t.Errorf("count = %d after delete", n)
	}
}
