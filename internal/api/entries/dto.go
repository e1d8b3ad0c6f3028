package entries

import "entry-tracker/internal/domain/entries"

// ---------- responses

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// PaginatedEntries is the list envelope. Clients keep paging while
// meta.page < meta.totalPages.
type PaginatedEntries struct {
	Data []entries.Entry `json:"data"`
	Meta PageMeta        `json:"meta"`
}

type EntryStats struct {
	TotalEntries int64 `json:"totalEntries"`
	TotalMovies  int64 `json:"totalMovies"`
	TotalTvShows int64 `json:"totalTvShows"`
}
