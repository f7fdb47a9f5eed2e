// Package catalog implements the cache-aware services behind the console
// browser. Every lookup follows the same protocol: ask the shared cache
// first, populate it from the collection API on a miss, and never cache a
// failure. A later call retries the network, since the failure may be
// transient.
package catalog

import (
	"context"
	"errors"

	"github.com/adeilh/metcat/metapi"
	"github.com/adeilh/metcat/museum"
)

// APIClient is the slice of the collection API the services consume.
// *metapi.Client satisfies it; tests substitute fakes.
type APIClient interface {
	Departments(ctx context.Context) ([]museum.Department, error)
	SearchObjects(ctx context.Context, query string, departmentID int) ([]int, error)
	ObjectIDsByDepartment(ctx context.Context, departmentID int) ([]int, error)
	Object(ctx context.Context, id int) (metapi.ObjectRecord, error)
}

var (
	ErrInvalidDepartment  = errors.New("catalog: invalid department id")
	ErrUnknownNationality = errors.New("catalog: nationality not in the available list")
	ErrInvalidArtistName  = errors.New("catalog: artist name is empty")
	ErrTooManyFailures    = errors.New("catalog: too many artworks failed to load")
)
