package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/adeilh/metcat/metapi"
	"github.com/adeilh/metcat/museum"
)

func TestArtworkPopulatesCacheOnMiss(t *testing.T) {
	api := newFakeAPI()
	api.addObject(436535, "Wheat Field with Cypresses", "Vincent van Gogh", "Dutch")
	_, artworks, _ := newServices(t, api)

	first, err := artworks.Artwork(context.Background(), 436535)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := artworks.Artwork(context.Background(), 436535)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Title != second.Title || second.Title != "Wheat Field with Cypresses" {
		t.Fatalf("unexpected artworks: %+v vs %+v", first, second)
	}
	if calls := api.Calls("object436535"); calls != 1 {
		t.Fatalf("cache did not absorb the second lookup: %d calls", calls)
	}
}

func TestArtworkRejectsInvalidID(t *testing.T) {
	_, artworks, _ := newServices(t, newFakeAPI())
	if _, err := artworks.Artwork(context.Background(), 0); !errors.Is(err, museum.ErrInvalidArtworkID) {
		t.Fatalf("expected ErrInvalidArtworkID, got %v", err)
	}
}

func TestArtworkFailureIsNeverCached(t *testing.T) {
	api := newFakeAPI()
	api.objectErr[7] = metapi.ErrRateLimited
	_, artworks, _ := newServices(t, api)

	if _, err := artworks.Artwork(context.Background(), 7); !errors.Is(err, metapi.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}

	// The failure cached nothing: once the API recovers, the same id is
	// fetched again rather than served from a poisoned entry.
	api.mu.Lock()
	delete(api.objectErr, 7)
	api.addObject(7, "Recovered", "Someone", "")
	api.mu.Unlock()

	artwork, err := artworks.Artwork(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if artwork.Title != "Recovered" {
		t.Fatalf("unexpected artwork: %+v", artwork)
	}
	if calls := api.Calls("object7"); calls != 2 {
		t.Fatalf("expected 2 fetch attempts, got %d", calls)
	}
}

func TestArtworkConversionFailurePropagates(t *testing.T) {
	api := newFakeAPI()
	api.objects[9] = metapi.ObjectRecord{ObjectID: 9, Title: "   "}
	_, artworks, _ := newServices(t, api)

	if _, err := artworks.Artwork(context.Background(), 9); !errors.Is(err, museum.ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got %v", err)
	}
}

func TestArtworkWithoutArtistGetsPlaceholder(t *testing.T) {
	api := newFakeAPI()
	api.addObject(12, "Anonymous Fragment", "", "")
	_, artworks, _ := newServices(t, api)

	artwork, err := artworks.Artwork(context.Background(), 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artwork.Artist.Name != museum.UnknownArtistName {
		t.Fatalf("unexpected artist: %+v", artwork.Artist)
	}
}
