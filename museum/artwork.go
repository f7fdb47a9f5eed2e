package museum

import (
	"errors"
	"strings"
)

var (
	ErrInvalidArtworkID   = errors.New("museum: artwork id must be positive")
	ErrMissingTitle       = errors.New("museum: artwork title is required")
	ErrMissingArtworkData = errors.New("museum: artwork artist is required")
)

// Artwork is a single object from the museum collection.
type Artwork struct {
	ID             int
	Title          string
	Artist         Artist
	Classification string
	Date           string
	ImageURL       string
	Department     string
}

// NewArtwork validates the required fields (id, title, artist) and trims the
// optional ones.
func NewArtwork(id int, title string, artist Artist) (Artwork, error) {
	if id <= 0 {
		return Artwork{}, ErrInvalidArtworkID
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return Artwork{}, ErrMissingTitle
	}
	if artist.Name == "" {
		return Artwork{}, ErrMissingArtworkData
	}
	return Artwork{ID: id, Title: title, Artist: artist}, nil
}

// HasImage reports whether the artwork carries a primary image URL.
func (a Artwork) HasImage() bool { return a.ImageURL != "" }
