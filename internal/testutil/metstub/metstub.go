// Package metstub runs a canned collection API server for tests, so client
// and service tests exercise real HTTP round-trips without the network.
package metstub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// Stub is an httptest-backed stand-in for the collection API. Responses are
// registered per endpoint; unregistered resources return 404 like the real
// API. Every request is counted so tests can assert how often the cache let
// a call through.
type Stub struct {
	srv *httptest.Server

	mu          sync.Mutex
	calls       map[string]int
	failStatus  int
	rawBodies   map[string]string
	departments []map[string]any
	objects     map[int]map[string]any
	searches    map[string][]int
	deptObjects map[int][]int
}

// New starts the stub server. Callers own Close.
func New() *Stub {
	s := &Stub{
		calls:       make(map[string]int),
		rawBodies:   make(map[string]string),
		objects:     make(map[int]map[string]any),
		searches:    make(map[string][]int),
		deptObjects: make(map[int][]int),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/departments", s.handleDepartments)
	mux.HandleFunc("/search", s.handleSearch)
	mux.HandleFunc("/objects", s.handleObjects)
	mux.HandleFunc("/objects/", s.handleObject)
	s.srv = httptest.NewServer(mux)
	return s
}

// Close shuts the server down.
func (s *Stub) Close() { s.srv.Close() }

// URL returns the stub's base URL.
func (s *Stub) URL() string { return s.srv.URL }

// Calls reports how many requests hit the given path.
func (s *Stub) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// FailWith makes every subsequent request answer with the given status.
// A zero status restores normal behavior.
func (s *Stub) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// RespondRaw registers a verbatim body for one path, bypassing the canned
// JSON encoding (used to simulate malformed responses).
func (s *Stub) RespondRaw(path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawBodies[path] = body
}

// AddDepartment registers a department record.
func (s *Stub) AddDepartment(id int, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.departments = append(s.departments, map[string]any{
		"departmentId": id,
		"displayName":  name,
	})
}

// AddObject registers an object record with the given fields merged over
// the minimal valid shape.
func (s *Stub) AddObject(id int, title string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := map[string]any{"objectID": id, "title": title}
	for k, v := range fields {
		rec[k] = v
	}
	s.objects[id] = rec
}

// SetSearch registers the ids returned for a free-text query.
func (s *Stub) SetSearch(query string, ids []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches[strings.ToLower(query)] = ids
}

// SetDepartmentObjects registers the ids listed for one department.
func (s *Stub) SetDepartmentObjects(departmentID int, ids []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deptObjects[departmentID] = ids
}

func (s *Stub) begin(w http.ResponseWriter, r *http.Request) (done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[r.URL.Path]++
	if body, ok := s.rawBodies[r.URL.Path]; ok {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
		return true
	}
	if s.failStatus != 0 {
		http.Error(w, http.StatusText(s.failStatus), s.failStatus)
		return true
	}
	return false
}

func (s *Stub) handleDepartments(w http.ResponseWriter, r *http.Request) {
	if s.begin(w, r) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, map[string]any{"departments": s.departments})
}

func (s *Stub) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.begin(w, r) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeIDs(w, s.searches[strings.ToLower(r.URL.Query().Get("q"))])
}

func (s *Stub) handleObjects(w http.ResponseWriter, r *http.Request) {
	if s.begin(w, r) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id, _ := strconv.Atoi(r.URL.Query().Get("departmentIds"))
	writeIDs(w, s.deptObjects[id])
}

func (s *Stub) handleObject(w http.ResponseWriter, r *http.Request) {
	if s.begin(w, r) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/objects/"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	rec, ok := s.objects[id]
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, rec)
}

// writeIDs mimics the API's no-result shape: a null objectIDs array.
func writeIDs(w http.ResponseWriter, ids []int) {
	if len(ids) == 0 {
		writeJSON(w, map[string]any{"total": 0, "objectIDs": nil})
		return
	}
	writeJSON(w, map[string]any{"total": len(ids), "objectIDs": ids})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
