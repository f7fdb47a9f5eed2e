package museum

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidDepartmentID   = errors.New("museum: department id must be positive")
	ErrMissingDepartmentName = errors.New("museum: department name is required")
)

// Department is one of the museum's curatorial departments.
type Department struct {
	ID   int
	Name string
}

// NewDepartment validates the id and name.
func NewDepartment(id int, name string) (Department, error) {
	if id <= 0 {
		return Department{}, ErrInvalidDepartmentID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Department{}, ErrMissingDepartmentName
	}
	return Department{ID: id, Name: name}, nil
}

// SortDepartmentsByName orders departments case-insensitively by display name.
func SortDepartmentsByName(departments []Department) {
	sort.Slice(departments, func(i, j int) bool {
		return strings.ToLower(departments[i].Name) < strings.ToLower(departments[j].Name)
	})
}
