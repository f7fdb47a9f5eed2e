package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/adeilh/metcat/cache"
	"github.com/adeilh/metcat/metapi"
	"github.com/adeilh/metcat/museum"
	"github.com/adeilh/metcat/nationality"
)

// How many ids of a search result are expanded into full artworks. The
// remaining ids stay cached as an id list; expanding them all would hammer
// the object endpoint.
const (
	departmentDetailLimit  = 20
	artistDetailLimit      = 25
	nationalityDetailLimit = 30
)

// departmentsKey is the single key under which the department list lives.
const departmentsKey = "all"

// SearchService answers the browse flows: department listing and searches
// by department, nationality and artist name. Cache keys are derived and
// normalized here; the store never sees raw user input.
type SearchService struct {
	api           APIClient
	artworks      *ArtworkService
	nationalities *nationality.Manager
	store         *cache.Store
	log           *slog.Logger
	concurrency   int
}

// NewSearchService wires the search flows to the shared store, the API
// client, the artwork resolver and the nationality list.
func NewSearchService(api APIClient, artworks *ArtworkService, nationalities *nationality.Manager, store *cache.Store, opts ...ServiceOption) *SearchService {
	cfg := defaultServiceConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &SearchService{
		api:           api,
		artworks:      artworks,
		nationalities: nationalities,
		store:         store,
		log:           cfg.log,
		concurrency:   cfg.concurrency,
	}
}

// Departments returns the museum's departments sorted by name. The list is
// cached whole under one key; the sorted slice is a copy, since cached
// payloads are read-only to consumers.
func (s *SearchService) Departments(ctx context.Context) ([]museum.Department, error) {
	if payload, ok := s.store.Get(cache.Departments, departmentsKey); ok {
		if departments, ok := payload.([]museum.Department); ok {
			return sortedDepartments(departments), nil
		}
	}

	departments, err := s.api.Departments(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(cache.Departments, departmentsKey, departments); err != nil {
		return nil, err
	}
	return sortedDepartments(departments), nil
}

// ByDepartment returns up to departmentDetailLimit artworks held by the
// department. The department's id list and every resolved artwork land in
// their own cache categories, so a follow-up detail view is a hit.
func (s *SearchService) ByDepartment(ctx context.Context, departmentID int) ([]museum.Artwork, error) {
	if departmentID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepartment, departmentID)
	}
	key := strconv.Itoa(departmentID)

	ids, ok := s.cachedIDs(cache.DepartmentIDs, key)
	if !ok {
		var err error
		ids, err = s.api.ObjectIDsByDepartment(ctx, departmentID)
		if err != nil {
			if errors.Is(err, metapi.ErrNotFound) {
				return nil, fmt.Errorf("%w: %d", ErrInvalidDepartment, departmentID)
			}
			return nil, err
		}
		if err := s.store.Put(cache.DepartmentIDs, key, ids); err != nil {
			return nil, err
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	limited := limitIDs(ids, departmentDetailLimit)
	artworks, failures := s.resolve(ctx, limited)
	if failures*2 > len(limited) {
		return nil, fmt.Errorf("%w: department %d, %d of %d", ErrTooManyFailures, departmentID, failures, len(limited))
	}
	return artworks, nil
}

// ByNationality returns artworks whose artist matches the nationality. The
// nationality must appear in the loaded list; matching against resolved
// artworks is a substring test on the artist's recorded nationality.
func (s *SearchService) ByNationality(ctx context.Context, nat string) ([]museum.Artwork, error) {
	nat = strings.TrimSpace(nat)
	if nat == "" || !s.nationalities.Valid(nat) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNationality, nat)
	}

	ids, err := s.searchIDs(ctx, "nationality:"+strings.ToLower(nat), nat)
	if err != nil {
		return nil, err
	}
	artworks, _ := s.resolve(ctx, limitIDs(ids, nationalityDetailLimit))

	matched := artworks[:0]
	needle := strings.ToLower(nat)
	for _, artwork := range artworks {
		if strings.Contains(strings.ToLower(artwork.Artist.Nationality), needle) {
			matched = append(matched, artwork)
		}
	}
	return matched, nil
}

// ByArtist returns artworks whose artist name contains the (sanitized)
// query, matched case-insensitively.
func (s *SearchService) ByArtist(ctx context.Context, name string) ([]museum.Artwork, error) {
	clean := sanitizeArtistName(name)
	if clean == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidArtistName, name)
	}

	ids, err := s.searchIDs(ctx, "artist:"+strings.ToLower(clean), clean)
	if err != nil {
		return nil, err
	}
	artworks, _ := s.resolve(ctx, limitIDs(ids, artistDetailLimit))

	matched := artworks[:0]
	needle := strings.ToLower(clean)
	for _, artwork := range artworks {
		if strings.Contains(strings.ToLower(artwork.Artist.Name), needle) {
			matched = append(matched, artwork)
		}
	}
	return matched, nil
}

// searchIDs applies the facade protocol to the searches category: cached id
// list when fresh, otherwise a free-text API search stored under key.
func (s *SearchService) searchIDs(ctx context.Context, key, query string) ([]int, error) {
	if ids, ok := s.cachedIDs(cache.Searches, key); ok {
		return ids, nil
	}
	ids, err := s.api.SearchObjects(ctx, query, 0)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(cache.Searches, key, ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *SearchService) cachedIDs(category cache.Category, key string) ([]int, bool) {
	payload, ok := s.store.Get(category, key)
	if !ok {
		return nil, false
	}
	ids, ok := payload.([]int)
	return ids, ok
}

// resolve expands ids into artworks with bounded parallelism, preserving
// order. Individual failures are skipped and counted; the search flows
// decide whether the failure rate is fatal.
func (s *SearchService) resolve(ctx context.Context, ids []int) ([]museum.Artwork, int) {
	results := make([]*museum.Artwork, len(ids))
	var failures atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			artwork, err := s.artworks.Artwork(ctx, id)
			if err != nil {
				failures.Add(1)
				s.log.Debug("artwork skipped", "id", id, "error", err)
				return nil
			}
			results[i] = &artwork
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	artworks := make([]museum.Artwork, 0, len(ids))
	for _, artwork := range results {
		if artwork != nil {
			artworks = append(artworks, *artwork)
		}
	}
	return artworks, int(failures.Load())
}

func limitIDs(ids []int, limit int) []int {
	if len(ids) > limit {
		return ids[:limit]
	}
	return ids
}

func sortedDepartments(departments []museum.Department) []museum.Department {
	sorted := append([]museum.Department(nil), departments...)
	museum.SortDepartmentsByName(sorted)
	return sorted
}

// sanitizeArtistName keeps letters, digits, spaces and the punctuation that
// occurs in artist names, collapsing runs of spaces.
func sanitizeArtistName(name string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '\'':
			b.WriteRune(r)
			lastSpace = false
		case r == ' ':
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
