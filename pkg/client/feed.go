package client

import (
	"context"
	"sync"
)

const feedPageSize = 5

// EntryFeed accumulates list pages the way the frontend's
// infinite-scroll table does: a fixed page size, at most one request in
// flight, and a full reset whenever a mutation goes through. Pages are
// appended in arrival order; server-side ordering is trusted as-is.
type EntryFeed struct {
	client   *Client
	pageSize int

	mu         sync.Mutex
	fetching   bool
	loaded     bool
	entries    []Entry
	page       int
	totalPages int
	total      int64
}

func NewEntryFeed(c *Client) *EntryFeed {
	return &EntryFeed{client: c, pageSize: feedPageSize}
}

// HasMore reports whether another page exists. Before the first load it
// is true so callers always fetch page one.
func (f *EntryFeed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.loaded || f.page < f.totalPages
}

// LoadMore fetches the next page when one exists and no fetch is
// already in flight. It reports whether a page was actually fetched, so
// a second trigger during a fetch is a quiet no-op.
func (f *EntryFeed) LoadMore(ctx context.Context) (bool, error) {
	f.mu.Lock()
	if f.fetching || (f.loaded && f.page >= f.totalPages) {
		f.mu.Unlock()
		return false, nil
	}
	f.fetching = true
	next := f.page + 1
	f.mu.Unlock()

	resp, err := f.client.ListEntries(ctx, next, f.pageSize)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetching = false
	if err != nil {
		return false, err
	}

	f.entries = append(f.entries, resp.Data...)
	f.page = resp.Meta.Page
	f.totalPages = resp.Meta.TotalPages
	f.total = resp.Meta.Total
	f.loaded = true
	return true, nil
}

// Entries returns a copy of everything fetched so far, in arrival
// order.
func (f *EntryFeed) Entries() []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Total is the record count across all pages, from the last envelope.
func (f *EntryFeed) Total() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}

// Invalidate drops everything fetched so far; the next LoadMore starts
// over from page one.
func (f *EntryFeed) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = false
	f.entries = nil
	f.page = 0
	f.totalPages = 0
	f.total = 0
}

// Mutations go through the feed so its cached pages are invalidated on
// success, like the frontend's query invalidation after each mutation.

func (f *EntryFeed) CreateEntry(ctx context.Context, form EntryForm) (*Entry, error) {
	entry, err := f.client.CreateEntry(ctx, form)
	if err != nil {
		return nil, err
	}
	f.Invalidate()
	return entry, nil
}

func (f *EntryFeed) UpdateEntry(ctx context.Context, id uint, form EntryForm) (*Entry, error) {
	entry, err := f.client.UpdateEntry(ctx, id, form)
	if err != nil {
		return nil, err
	}
	f.Invalidate()
	return entry, nil
}

func (f *EntryFeed) DeleteEntry(ctx context.Context, id uint) error {
	if err := f.client.DeleteEntry(ctx, id); err != nil {
		return err
	}
	f.Invalidate()
	return nil
}
