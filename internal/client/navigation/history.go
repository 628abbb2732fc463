// Package navigation implements the app's history store: an append-only
// stack of visited (page, data) entries with a current-position index,
// mirrored to the session-scoped store so it survives a restart within the
// same session.
package navigation

import (
	"context"
	"strconv"

	"github.com/andrisk/realhub/internal/client/models"
	"github.com/andrisk/realhub/internal/client/repositories/kvstore"
	"github.com/andrisk/realhub/internal/jsonx"
	"github.com/andrisk/realhub/internal/logging"
)

// Session-store keys holding the persisted history.
const (
	EntriesKey = "realhub.nav.entries"
	IndexKey   = "realhub.nav.index"
)

// History is the navigation history store. Not safe for concurrent use;
// the app drives it from a single goroutine.
type History struct {
	store    kvstore.Repository
	addr     AddressBar
	viewport Viewport
	log      logging.Logger

	entries []models.HistoryEntry
	current int
}

// New constructs the store. Initial state is resolved in priority order:
// a password-reset deep link wins over everything and yields a single
// resetPassword entry; otherwise previously persisted state is restored if
// it passes validation; otherwise a single home entry. Corrupt persisted
// state is discarded wholesale, never repaired.
func New(ctx context.Context, store kvstore.Repository, addr AddressBar, viewport Viewport, log logging.Logger) *History {
	h := &History{store: store, addr: addr, viewport: viewport, log: log}

	if userID, secret, ok := addr.ResetLink(); ok {
		h.entries = []models.HistoryEntry{{
			Page: models.PageResetPassword,
			Data: models.ResetPasswordParams{UserID: userID, Secret: secret},
		}}
		h.current = 0
		h.persist(ctx)
		return h
	}

	if h.restore(ctx) {
		return h
	}

	h.entries = []models.HistoryEntry{{Page: models.PageHome}}
	h.current = 0
	h.persist(ctx)
	return h
}

// restore loads persisted state. It reports false (after clearing the
// stored keys) when the data is missing, unreadable, or violates the
// index invariant.
func (h *History) restore(ctx context.Context) bool {
	entriesData, err := h.store.Get(ctx, EntriesKey)
	if err != nil || entriesData == nil {
		return false
	}
	indexData, err := h.store.Get(ctx, IndexKey)
	if err != nil || indexData == nil {
		h.discard(ctx)
		return false
	}

	var entries []models.HistoryEntry
	if err := jsonx.Unmarshal(entriesData, &entries); err != nil {
		h.log.Warn(ctx, "discarding corrupt navigation history", "error", err)
		h.discard(ctx)
		return false
	}

	index, err := strconv.Atoi(string(indexData))
	if err != nil || len(entries) == 0 || index < 0 || index >= len(entries) {
		h.log.Warn(ctx, "discarding navigation history with invalid index",
			"index", string(indexData), "entries", len(entries))
		h.discard(ctx)
		return false
	}

	h.entries = entries
	h.current = index
	return true
}

func (h *History) discard(ctx context.Context) {
	if err := h.store.Delete(ctx, EntriesKey); err != nil {
		h.log.Warn(ctx, "failed to clear navigation entries", "error", err)
	}
	if err := h.store.Delete(ctx, IndexKey); err != nil {
		h.log.Warn(ctx, "failed to clear navigation index", "error", err)
	}
}

// persist mirrors the current state to the session store. Fire-and-forget:
// failures are logged, never surfaced.
func (h *History) persist(ctx context.Context) {
	data, err := jsonx.Marshal(h.entries)
	if err != nil {
		h.log.Warn(ctx, "failed to serialize navigation history", "error", err)
		return
	}
	if err := h.store.Set(ctx, EntriesKey, data); err != nil {
		h.log.Warn(ctx, "failed to persist navigation entries", "error", err)
	}
	if err := h.store.Set(ctx, IndexKey, []byte(strconv.Itoa(h.current))); err != nil {
		h.log.Warn(ctx, "failed to persist navigation index", "error", err)
	}
}

// Navigate pushes a new entry: the forward branch past the current position
// is discarded, the new entry appended, and the position moved to it. Any
// reset deep link still in the address bar is stripped, and the viewport
// scrolls to the top.
func (h *History) Navigate(ctx context.Context, page models.Page, data models.EntryData) {
	h.addr.ClearResetLink()

	h.entries = append(h.entries[:h.current+1], models.HistoryEntry{Page: page, Data: data})
	h.current = len(h.entries) - 1

	h.persist(ctx)
	h.viewport.ScrollToTop()
}

// Replace overwrites the current entry in place without growing the stack.
// Used for redirects that must not leave a back-button trail. The forward
// branch is discarded like a push.
func (h *History) Replace(ctx context.Context, page models.Page, data models.EntryData) {
	h.addr.ClearResetLink()

	h.entries = h.entries[:h.current+1]
	h.entries[h.current] = models.HistoryEntry{Page: page, Data: data}

	h.persist(ctx)
	h.viewport.ScrollToTop()
}

// GoBack moves one entry back. No-op at the oldest entry. Never mutates
// the entries themselves.
func (h *History) GoBack(ctx context.Context) {
	if h.current > 0 {
		h.current--
		h.persist(ctx)
	}
}

// GoForward moves one entry forward. No-op at the newest entry.
func (h *History) GoForward(ctx context.Context) {
	if h.current < len(h.entries)-1 {
		h.current++
		h.persist(ctx)
	}
}

// Current returns the entry at the current position.
func (h *History) Current() models.HistoryEntry {
	return h.entries[h.current]
}

func (h *History) CanGoBack() bool {
	return h.current > 0
}

func (h *History) CanGoForward() bool {
	return h.current < len(h.entries)-1
}

// Entries returns a copy of the stack, oldest first.
func (h *History) Entries() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Index returns the current position within Entries.
func (h *History) Index() int {
	return h.current
}
