// Package search builds the derived views over the catalog: two-phase search
// (instant local scan, then additive AI merge), favorites resolution, and the
// featured selection.
package search

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mstrand/cinestream/internal/ai"
	"github.com/mstrand/cinestream/internal/catalog"
	"github.com/mstrand/cinestream/internal/logger"
	"github.com/mstrand/cinestream/internal/models"
)

// featuredRowLimit bounds how many items each designated category contributes
// to the featured set.
const featuredRowLimit = 4

// Update is one observable step of a search: first the local-only results,
// then (when the AI source is enabled) the merged local+remote results.
type Update struct {
	Query string
	Items []models.Item
	Final bool
}

// Observer receives search updates. Observers are invoked outside the
// searcher lock and must not block for long.
type Observer func(Update)

// Searcher owns the transient search-result view. A generation counter
// scopes each AI continuation to the query that started it, so a stale
// response can never overwrite a newer query's results.
type Searcher struct {
	store   *catalog.Store
	pool    []models.Item
	fetcher ai.CandidateFetcher // nil disables phase 2
	log     zerolog.Logger

	mu        sync.Mutex
	gen       uint64
	query     string
	results   []models.Item
	pending   bool
	observers []Observer
}

// NewSearcher creates a searcher over the store and bootstrap pool. fetcher
// may be nil, in which case every search is final after the local phase.
func NewSearcher(store *catalog.Store, pool []models.Item, fetcher ai.CandidateFetcher) *Searcher {
	return &Searcher{
		store:   store,
		pool:    pool,
		fetcher: fetcher,
		log:     logger.With("search"),
	}
}

// Subscribe registers an observer for result updates.
func (s *Searcher) Subscribe(obs Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, obs)
	s.mu.Unlock()
}

// Search runs phase 1 synchronously and returns its results immediately:
// every stored item whose title or any genre contains the query,
// case-insensitively, deduplicated by id. Phase 2 runs as an independent
// continuation that merges AI candidates additively when it completes.
func (s *Searcher) Search(ctx context.Context, query string) []models.Item {
	local := s.localMatches(query)

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.query = query
	s.results = local
	s.pending = s.fetcher != nil
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	notify(observers, Update{Query: query, Items: local, Final: s.fetcher == nil})

	if s.fetcher != nil {
		// Deliberately detached from the caller's context: the remote
		// phase must outlive the request that started it. The fetcher
		// applies its own timeout.
		go s.fetchRemote(context.Background(), gen, query)
	}

	return local
}

// Results returns the current result view: the query it belongs to, the
// items, and whether a remote phase is still outstanding.
func (s *Searcher) Results() (string, []models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.Item, len(s.results))
	copy(items, s.results)
	return s.query, items, s.pending
}

// ResolveFavorites maps favorite ids to items, searching the union of the
// bootstrap pool, the category store, and the current search results.
// Dangling ids are silently dropped.
func (s *Searcher) ResolveFavorites(favoriteIDs []string) []models.Item {
	wanted := make(map[string]struct{}, len(favoriteIDs))
	for _, id := range favoriteIDs {
		wanted[id] = struct{}{}
	}

	s.mu.Lock()
	current := append([]models.Item(nil), s.results...)
	s.mu.Unlock()

	seen := make(map[string]struct{})
	var out []models.Item
	for _, pool := range [][]models.Item{s.pool, s.store.AllItems(), current} {
		for _, item := range pool {
			if _, ok := wanted[item.ID]; !ok {
				continue
			}
			if _, dup := seen[item.ID]; dup {
				continue
			}
			seen[item.ID] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// FeaturedSet returns the deterministic featured selection: the fixed
// editorial item, then a bounded prefix of uploads, trending, and action, in
// that priority order, deduplicated by id with first occurrence winning.
func (s *Searcher) FeaturedSet() []models.Item {
	seen := make(map[string]struct{})
	var out []models.Item

	add := func(items []models.Item) {
		for _, item := range items {
			if _, dup := seen[item.ID]; dup {
				continue
			}
			seen[item.ID] = struct{}{}
			out = append(out, item)
		}
	}

	add([]models.Item{catalog.FeaturedItem()})
	for _, categoryID := range []string{catalog.CategoryUploads, catalog.CategoryTrending, catalog.CategoryAction} {
		row := s.store.Category(categoryID)
		if len(row) > featuredRowLimit {
			row = row[:featuredRowLimit]
		}
		add(row)
	}
	return out
}

// localMatches scans the store for items whose title or any genre contains
// the query, case-insensitively.
func (s *Searcher) localMatches(query string) []models.Item {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	var out []models.Item
	for _, item := range s.store.AllItems() {
		if matches(item, needle) {
			out = append(out, item)
		}
	}
	return out
}

func matches(item models.Item, needle string) bool {
	if strings.Contains(strings.ToLower(item.Title), needle) {
		return true
	}
	for _, genre := range item.Genres {
		if strings.Contains(strings.ToLower(genre), needle) {
			return true
		}
	}
	return false
}

// fetchRemote is the phase-2 continuation for one search generation.
func (s *Searcher) fetchRemote(ctx context.Context, gen uint64, query string) {
	candidates, err := s.fetcher.FetchCandidates(ctx, query)
	if err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("AI source failed, local results are final")
		candidates = nil
	}

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.log.Debug().Str("query", query).Msg("Discarding results for superseded search")
		return
	}
	s.results = mergeRemote(s.results, candidates)
	s.pending = false
	merged := append([]models.Item(nil), s.results...)
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	notify(observers, Update{Query: query, Items: merged, Final: true})
}

// mergeRemote appends candidates whose id and title both differ from every
// item already present. Title is checked because the AI source cannot
// guarantee id stability; earlier revisions compared id only, the stricter
// id-or-title rule is the settled behavior.
func mergeRemote(existing, candidates []models.Item) []models.Item {
	ids := make(map[string]struct{}, len(existing))
	titles := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		ids[item.ID] = struct{}{}
		titles[strings.ToLower(item.Title)] = struct{}{}
	}

	out := existing
	for _, c := range candidates {
		if _, ok := ids[c.ID]; ok {
			continue
		}
		if _, ok := titles[strings.ToLower(c.Title)]; ok {
			continue
		}
		ids[c.ID] = struct{}{}
		titles[strings.ToLower(c.Title)] = struct{}{}
		out = append(out, c)
	}
	return out
}

func notify(observers []Observer, update Update) {
	for _, obs := range observers {
		obs(update)
	}
}
