package museum

import (
	"errors"
	"strings"
)

var ErrMissingArtistName = errors.New("museum: artist name is required")

// Artist describes the creator of an artwork. Only the name is mandatory;
// the collection API frequently omits the rest.
type Artist struct {
	Name        string
	Nationality string
	BirthYear   string
	DeathYear   string
}

// UnknownArtistName is substituted when the API record carries no creator.
const UnknownArtistName = "Unknown artist"

// NewArtist builds an Artist, trimming whitespace from every field.
func NewArtist(name, nationality, birthYear, deathYear string) (Artist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Artist{}, ErrMissingArtistName
	}
	return Artist{
		Name:        name,
		Nationality: strings.TrimSpace(nationality),
		BirthYear:   strings.TrimSpace(birthYear),
		DeathYear:   strings.TrimSpace(deathYear),
	}, nil
}

// Lifespan renders the artist's years as "1853-1890", "b. 1965" when only a
// birth year is known, or "" when neither year is present.
func (a Artist) Lifespan() string {
	switch {
	case a.BirthYear != "" && a.DeathYear != "":
		return a.BirthYear + "-" + a.DeathYear
	case a.BirthYear != "":
		return "b. " + a.BirthYear
	default:
		return ""
	}
}
