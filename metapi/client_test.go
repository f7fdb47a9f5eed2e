package metapi

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/adeilh/metcat/internal/testutil/metstub"
)

func newStubClient(t *testing.T, stub *metstub.Stub) *Client {
	t.Helper()
	return NewClient(
		WithBaseURL(stub.URL()),
		WithTimeout(2*time.Second),
		WithRetry(0, time.Millisecond),
		WithRateLimit(0, 0),
	)
}

func TestDepartmentsSkipsIncompleteRecords(t *testing.T) {
	stub := metstub.New()
	defer stub.Close()
	stub.AddDepartment(11, "European Paintings")
	stub.AddDepartment(0, "No ID")
	stub.AddDepartment(6, "Asian Art")

	client := newStubClient(t, stub)
	departments, err := client.Departments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(departments) != 2 {
		t.Fatalf("unexpected departments: %+v", departments)
	}
}

func TestDepartmentsEmptyListIsIncompleteData(t *testing.T) {
	stub := metstub.New()
	defer stub.Close()

	client := newStubClient(t, stub)
	if _, err := client.Departments(context.Background()); !errors.Is(err, ErrIncompleteData) {
		t.Fatalf("expected ErrIncompleteData, got %v", err)
	}
}

func TestSearchObjectsFiltersInvalidIDs(t *testing.T) {
	stub := metstub.New()
	defer stub.Close()
	stub.SetSearch("sunflowers", []int{436524, -1, 0, 436535})

	client := newStubClient(t, stub)
	ids, err := client.SearchObjects(context.Background(), "sunflowers", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != 436524 || ids[1] != 436535 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestSearchObjectsNullResultIsEmpty(t *testing.T) {
	stub := metstub.New()
	defer stub.Close()

	client := newStubClient(t, stub)
	ids, err := client.SearchObjects(context.Background(), "nothing", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestSearchObjectsEmptyQuerySkipsNetwork(t *testing.T) {
	stub := metstub.New()
	defer stub.Close()

	client := newStubClient(t, stub)
	ids, err := client.SearchObjects(context.Background(), "   ", 0)
	if err != nil || ids != nil {
		t.Fatalf("unexpected result: ids=%v err=%v", ids, err)
	}
	if stub.Calls("/search") != 0 {
		t.Fatalf("empty query reached the network")
	}
}

func TestObjectNotFound(t *testing.T) {
	stub := metstub.New()
	defer stub.Close()

	client := newStubClient(t, stub)
	if _, err := client.Object(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestObjectRateLimited(t *testing.T) {
	stub := metstub.New()
	defer stub.Close()
	stub.FailWith(http.StatusTooManyRequests)

	client := newStubClient(t, stub)
	if _, err := client.Object(context.Background(), 1); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestObjectIDMismatchIsIncompleteData(t *testing.T) {
	stub := metstub.New()
	defer stub.Close()
	stub.AddObject(2, "Wrong Record", map[string]any{"objectID": 7})

	client := newStubClient(t, stub)
	if _, err := client.Object(context.Background(), 2); !errors.Is(err, ErrIncompleteData) {
		t.Fatalf("expected ErrIncompleteData, got %v", err)
	}
}

func TestObjectMissingTitleIsIncompleteData(t *testing.T) {
	stub := metstub.New()
	defer stub.Close()
	stub.AddObject(3, "   ", nil)

	client := newStubClient(t, stub)
	if _, err := client.Object(context.Background(), 3); !errors.Is(err, ErrIncompleteData) {
		t.Fatalf("expected ErrIncompleteData, got %v", err)
	}
}

func TestMalformedJSONIsIncompleteData(t *testing.T) {
	stub := metstub.New()
	defer stub.Close()
	stub.RespondRaw("/departments", "{not json")

	client := newStubClient(t, stub)
	if _, err := client.Departments(context.Background()); !errors.Is(err, ErrIncompleteData) {
		t.Fatalf("expected ErrIncompleteData, got %v", err)
	}
}

func TestObjectFullRecordDecodes(t *testing.T) {
	stub := metstub.New()
	defer stub.Close()
	stub.AddObject(436535, "Wheat Field with Cypresses", map[string]any{
		"artistDisplayName": "Vincent van Gogh",
		"artistNationality": "Dutch",
		"artistBeginDate":   "1853",
		"artistEndDate":     "1890",
		"classification":    "Paintings",
		"objectDate":        "1889",
		"primaryImage":      "https://images.example/436535.jpg",
		"department":        "European Paintings",
	})

	client := newStubClient(t, stub)
	rec, err := client.Object(context.Background(), 436535)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ArtistDisplayName != "Vincent van Gogh" || rec.ArtistNationality != "Dutch" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.PrimaryImage == "" || rec.Department != "European Paintings" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}
