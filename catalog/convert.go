package catalog

import (
	"strings"

	"github.com/adeilh/metcat/metapi"
	"github.com/adeilh/metcat/museum"
)

// convertRecord turns a raw API record into a validated artwork. Records
// without a creator get the unknown-artist placeholder; records without an
// id or title fail validation.
func convertRecord(rec metapi.ObjectRecord) (museum.Artwork, error) {
	name := strings.TrimSpace(rec.ArtistDisplayName)
	if name == "" {
		name = museum.UnknownArtistName
	}
	artist, err := museum.NewArtist(name, rec.ArtistNationality, rec.ArtistBeginDate, rec.ArtistEndDate)
	if err != nil {
		return museum.Artwork{}, err
	}

	artwork, err := museum.NewArtwork(rec.ObjectID, rec.Title, artist)
	if err != nil {
		return museum.Artwork{}, err
	}
	artwork.Classification = strings.TrimSpace(rec.Classification)
	artwork.Date = strings.TrimSpace(rec.ObjectDate)
	artwork.Department = strings.TrimSpace(rec.Department)
	artwork.ImageURL = strings.TrimSpace(rec.PrimaryImage)
	if artwork.ImageURL == "" {
		artwork.ImageURL = strings.TrimSpace(rec.PrimaryImageSmall)
	}
	return artwork, nil
}
