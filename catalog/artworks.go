package catalog

import (
	"context"
	"log/slog"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/adeilh/metcat/cache"
	"github.com/adeilh/metcat/museum"
)

// ArtworkService resolves individual artworks through the shared cache.
// Because the same store backs the search service, an artwork populated
// during a search is immediately visible to detail lookups and vice versa.
type ArtworkService struct {
	api    APIClient
	store  *cache.Store
	log    *slog.Logger
	flight singleflight.Group
}

// NewArtworkService wires the service to the shared store and API client.
func NewArtworkService(api APIClient, store *cache.Store, opts ...ServiceOption) *ArtworkService {
	cfg := defaultServiceConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &ArtworkService{api: api, store: store, log: cfg.log}
}

// Artwork returns the artwork for id, from cache when fresh, otherwise from
// the API. Concurrent misses for the same id collapse into one fetch.
// Fetch failures propagate unchanged and cache nothing.
func (s *ArtworkService) Artwork(ctx context.Context, id int) (museum.Artwork, error) {
	if id <= 0 {
		return museum.Artwork{}, museum.ErrInvalidArtworkID
	}
	key := strconv.Itoa(id)
	if payload, ok := s.store.Get(cache.Artworks, key); ok {
		if artwork, ok := payload.(museum.Artwork); ok {
			return artwork, nil
		}
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		rec, err := s.api.Object(ctx, id)
		if err != nil {
			return nil, err
		}
		artwork, err := convertRecord(rec)
		if err != nil {
			return nil, err
		}
		if err := s.store.Put(cache.Artworks, key, artwork); err != nil {
			return nil, err
		}
		s.log.Debug("artwork fetched", "id", id, "title", artwork.Title)
		return artwork, nil
	})
	if err != nil {
		return museum.Artwork{}, err
	}
	return v.(museum.Artwork), nil
}
