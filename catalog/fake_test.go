package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/adeilh/metcat/cache"
	"github.com/adeilh/metcat/metapi"
	"github.com/adeilh/metcat/museum"
	"github.com/adeilh/metcat/nationality"
)

// fakeAPI implements APIClient in memory and counts every call, so tests
// can assert which lookups the cache absorbed.
type fakeAPI struct {
	mu sync.Mutex

	departments    []museum.Department
	departmentsErr error
	objects        map[int]metapi.ObjectRecord
	objectErr      map[int]error
	searches       map[string][]int
	searchErr      error
	deptIDs        map[int][]int
	deptIDsErr     map[int]error

	calls map[string]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		objects:    make(map[int]metapi.ObjectRecord),
		objectErr:  make(map[int]error),
		searches:   make(map[string][]int),
		deptIDs:    make(map[int][]int),
		deptIDsErr: make(map[int]error),
		calls:      make(map[string]int),
	}
}

func (f *fakeAPI) count(op string) {
	f.calls[op]++
}

func (f *fakeAPI) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeAPI) Departments(ctx context.Context) ([]museum.Department, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("departments")
	if f.departmentsErr != nil {
		return nil, f.departmentsErr
	}
	return append([]museum.Department(nil), f.departments...), nil
}

func (f *fakeAPI) SearchObjects(ctx context.Context, query string, departmentID int) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("search")
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searches[query], nil
}

func (f *fakeAPI) ObjectIDsByDepartment(ctx context.Context, departmentID int) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("deptIDs")
	if err := f.deptIDsErr[departmentID]; err != nil {
		return nil, err
	}
	return f.deptIDs[departmentID], nil
}

func (f *fakeAPI) Object(ctx context.Context, id int) (metapi.ObjectRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("object" + strconv.Itoa(id))
	if err := f.objectErr[id]; err != nil {
		return metapi.ObjectRecord{}, err
	}
	rec, ok := f.objects[id]
	if !ok {
		return metapi.ObjectRecord{}, metapi.ErrNotFound
	}
	return rec, nil
}

func (f *fakeAPI) addObject(id int, title, artist, natl string) {
	f.objects[id] = metapi.ObjectRecord{
		ObjectID:          id,
		Title:             title,
		ArtistDisplayName: artist,
		ArtistNationality: natl,
	}
}

func newStore(t *testing.T) *cache.Store {
	t.Helper()
	store, err := cache.New()
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}
	return store
}

func loadedNationalities(t *testing.T, entries string) *nationality.Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nationalities.txt")
	if err := os.WriteFile(path, []byte(entries), 0o644); err != nil {
		t.Fatalf("unexpected error writing list: %v", err)
	}
	m := nationality.NewManager(path)
	if err := m.Load(); err != nil {
		t.Fatalf("unexpected error loading list: %v", err)
	}
	return m
}

// newServices builds the full wiring over one shared store, the way the
// application composes them.
func newServices(t *testing.T, api APIClient) (*SearchService, *ArtworkService, *cache.Store) {
	t.Helper()
	store := newStore(t)
	artworks := NewArtworkService(api, store)
	search := NewSearchService(api, artworks, loadedNationalities(t, "Dutch\nFrench\n"), store)
	return search, artworks, store
}
