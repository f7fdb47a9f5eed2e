// Package metapi is the client for the Metropolitan Museum collection API.
// It knows nothing about caching; the catalog services decide what to keep.
package metapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/adeilh/metcat/museum"
)

// Client talks to the collection API over HTTP with retries for transport
// failures and a client-side rate limiter.
type Client struct {
	resty   *resty.Client
	limiter *rate.Limiter
}

// NewClient builds a Client with the public API defaults.
func NewClient(opts ...Option) *Client {
	cfg := defaultClientConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	rc := resty.New().
		SetBaseURL(cfg.baseURL).
		SetTimeout(cfg.timeout).
		SetHeader("User-Agent", cfg.userAgent).
		SetRetryCount(cfg.retryCount).
		SetRetryWaitTime(cfg.retryWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Retry connection and timeout failures only; HTTP error
			// statuses carry meaning and are surfaced to the caller.
			return err != nil
		})

	var limiter *rate.Limiter
	if cfg.rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.rateLimit), cfg.rateBurst)
	}
	return &Client{resty: rc, limiter: limiter}
}

// Departments fetches the museum's curatorial departments. Records missing
// an id or name are skipped; an entirely empty list is malformed data.
func (c *Client) Departments(ctx context.Context) ([]museum.Department, error) {
	var out departmentsResponse
	if err := c.get(ctx, "/departments", nil, &out); err != nil {
		return nil, err
	}

	departments := make([]museum.Department, 0, len(out.Departments))
	for _, rec := range out.Departments {
		department, err := museum.NewDepartment(rec.DepartmentID, rec.DisplayName)
		if err != nil {
			continue
		}
		departments = append(departments, department)
	}
	if len(departments) == 0 {
		return nil, fmt.Errorf("%w: no departments in response", ErrIncompleteData)
	}
	return departments, nil
}

// SearchObjects runs a free-text search, optionally scoped to a department
// (zero means unscoped), and returns the matching object ids. An empty
// query returns no ids without touching the network.
func (c *Client) SearchObjects(ctx context.Context, query string, departmentID int) ([]int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	params := map[string]string{"q": query}
	if departmentID > 0 {
		params["departmentId"] = strconv.Itoa(departmentID)
	}

	var out objectIDsResponse
	if err := c.get(ctx, "/search", params, &out); err != nil {
		return nil, err
	}
	return validIDs(out), nil
}

// ObjectIDsByDepartment lists every object id held by one department.
func (c *Client) ObjectIDsByDepartment(ctx context.Context, departmentID int) ([]int, error) {
	params := map[string]string{"departmentIds": strconv.Itoa(departmentID)}

	var out objectIDsResponse
	if err := c.get(ctx, "/objects", params, &out); err != nil {
		return nil, err
	}
	return validIDs(out), nil
}

// Object fetches the full record for one object id. The record must echo
// the requested id and carry a title, otherwise it is malformed.
func (c *Client) Object(ctx context.Context, id int) (ObjectRecord, error) {
	var rec ObjectRecord
	if err := c.get(ctx, "/objects/"+strconv.Itoa(id), nil, &rec); err != nil {
		return ObjectRecord{}, err
	}
	if rec.ObjectID != id {
		return ObjectRecord{}, fmt.Errorf("%w: object id mismatch, requested %d got %d", ErrIncompleteData, id, rec.ObjectID)
	}
	if strings.TrimSpace(rec.Title) == "" {
		return ObjectRecord{}, fmt.Errorf("%w: object %d has no title", ErrIncompleteData, id)
	}
	return rec, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req := c.resty.R().SetContext(ctx).SetResult(out)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}
	resp, err := req.Get(path)
	if err != nil {
		// A transport-level success with a body resty could not decode is
		// malformed data, not a connection problem.
		if resp != nil && resp.StatusCode() == http.StatusOK {
			return fmt.Errorf("%w: %v", ErrIncompleteData, err)
		}
		return fmt.Errorf("metapi: request failed: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("metapi: http %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
}

// validIDs keeps the positive ids of a search/objects response. A null
// objectIDs array is the API's way of saying "no results".
func validIDs(out objectIDsResponse) []int {
	if out.Total == 0 || len(out.ObjectIDs) == 0 {
		return nil
	}
	ids := make([]int, 0, len(out.ObjectIDs))
	for _, id := range out.ObjectIDs {
		if id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
