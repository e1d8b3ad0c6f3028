package entries

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"entry-tracker/internal/domain/entries"
	"entry-tracker/internal/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type Handler struct {
	store  store.EntryStore
	logger *slog.Logger
}

func NewHandler(s store.EntryStore, logger *slog.Logger) *Handler {
	return &Handler{store: s, logger: logger}
}

// ------------------------------
// POST /api/entries
// ------------------------------
func (h *Handler) CreateEntry(c *gin.Context) {
	var in EntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, ferrs := in.Validate(false)
	if ferrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Input validation failed", "errors": ferrs})
		return
	}

	ctx := c.Request.Context()

	// duplicate check and insert are two store calls; a concurrent
	// create of the same pair can slip between them
	existing, err := h.store.FindByTitleYear(ctx, *payload.Title, *payload.Year)
	if err != nil {
		h.logger.Error("duplicate lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An entry with this title and year already exists."})
		return
	}

	entry := entries.Entry{
		Type:     *payload.Type,
		Title:    *payload.Title,
		Year:     *payload.Year,
		Director: payload.Director,
		Budget:   payload.Budget,
		Location: payload.Location,
		Duration: payload.Duration,
	}
	if err := h.store.Create(ctx, &entry); err != nil {
		h.logger.Error("create entry failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ------------------------------
// GET /api/entries?page&limit
// ------------------------------
func (h *Handler) GetAllEntries(c *gin.Context) {
	page := positiveQueryInt(c, "page", defaultPage)
	limit := positiveQueryInt(c, "limit", defaultLimit)
	offset := (page - 1) * limit

	ctx := c.Request.Context()

	list, err := h.store.List(ctx, offset, limit)
	if err != nil {
		h.logger.Error("list entries failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
		return
	}
	total, err := h.store.Count(ctx)
	if err != nil {
		h.logger.Error("count entries failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
		return
	}

	c.JSON(http.StatusOK, PaginatedEntries{
		Data: list,
		Meta: PageMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// ------------------------------
// GET /api/entries/stats
// ------------------------------
func (h *Handler) GetEntryStats(c *gin.Context) {
	var totalEntries, totalMovies, totalTvShows int64

	// the three counts run concurrently; nothing guarantees they see
	// the same snapshot if writes interleave
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		totalEntries, err = h.store.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalMovies, err = h.store.CountByType(ctx, entries.TypeMovie)
		return err
	})
	g.Go(func() error {
		var err error
		totalTvShows, err = h.store.CountByType(ctx, entries.TypeTVShow)
		return err
	})
	if err := g.Wait(); err != nil {
		h.logger.Error("stats query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entry statistics"})
		return
	}

	c.JSON(http.StatusOK, EntryStats{
		TotalEntries: totalEntries,
		TotalMovies:  totalMovies,
		TotalTvShows: totalTvShows,
	})
}

// ------------------------------
// PUT /api/entries/:id
// ------------------------------
func (h *Handler) UpdateEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found or failed to update"})
		return
	}

	var in EntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, ferrs := in.Validate(true)
	if ferrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Input validation failed", "errors": ferrs})
		return
	}

	entry, err := h.store.Update(c.Request.Context(), uint(id), payload.Fields())
	if err != nil {
		if !errors.Is(err, store.ErrEntryNotFound) {
			h.logger.Error("update entry failed", "id", id, "error", err)
		}
		// any store failure on this path reads as a missing entry
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found or failed to update"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ------------------------------
// DELETE /api/entries/:id
// ------------------------------
func (h *Handler) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), uint(id)); err != nil {
		if !errors.Is(err, store.ErrEntryNotFound) {
			h.logger.Error("delete entry failed", "id", id, "error", err)
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func positiveQueryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
