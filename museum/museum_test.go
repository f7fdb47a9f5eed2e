package museum

import "testing"

func TestNewArtistValidation(t *testing.T) {
	if _, err := NewArtist("   ", "", "", ""); err != ErrMissingArtistName {
		t.Fatalf("expected ErrMissingArtistName, got %v", err)
	}

	artist, err := NewArtist("  Vincent van Gogh ", " Dutch ", " 1853 ", " 1890 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artist.Name != "Vincent van Gogh" || artist.Nationality != "Dutch" {
		t.Fatalf("fields not trimmed: %+v", artist)
	}
}

func TestArtistLifespan(t *testing.T) {
	cases := []struct {
		birth, death, want string
	}{
		{"1853", "1890", "1853-1890"},
		{"1965", "", "b. 1965"},
		{"", "", ""},
	}
	for _, tc := range cases {
		artist := Artist{Name: "X", BirthYear: tc.birth, DeathYear: tc.death}
		if got := artist.Lifespan(); got != tc.want {
			t.Fatalf("Lifespan(%q,%q) = %q, want %q", tc.birth, tc.death, got, tc.want)
		}
	}
}

func TestNewArtworkValidation(t *testing.T) {
	artist := Artist{Name: "Someone"}

	if _, err := NewArtwork(0, "Title", artist); err != ErrInvalidArtworkID {
		t.Fatalf("expected ErrInvalidArtworkID, got %v", err)
	}
	if _, err := NewArtwork(1, "  ", artist); err != ErrMissingTitle {
		t.Fatalf("expected ErrMissingTitle, got %v", err)
	}
	if _, err := NewArtwork(1, "Title", Artist{}); err != ErrMissingArtworkData {
		t.Fatalf("expected ErrMissingArtworkData, got %v", err)
	}

	artwork, err := NewArtwork(1, " Title ", artist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artwork.Title != "Title" || artwork.HasImage() {
		t.Fatalf("unexpected artwork: %+v", artwork)
	}
}

func TestNewDepartmentValidation(t *testing.T) {
	if _, err := NewDepartment(-1, "Name"); err != ErrInvalidDepartmentID {
		t.Fatalf("expected ErrInvalidDepartmentID, got %v", err)
	}
	if _, err := NewDepartment(1, ""); err != ErrMissingDepartmentName {
		t.Fatalf("expected ErrMissingDepartmentName, got %v", err)
	}
}

func TestSortDepartmentsByNameIsCaseInsensitive(t *testing.T) {
	departments := []Department{
		{ID: 1, Name: "greek and Roman Art"},
		{ID: 2, Name: "Asian Art"},
		{ID: 3, Name: "European Paintings"},
	}
	SortDepartmentsByName(departments)
	want := []string{"Asian Art", "European Paintings", "greek and Roman Art"}
	for i, name := range want {
		if departments[i].Name != name {
			t.Fatalf("position %d: got %q, want %q", i, departments[i].Name, name)
		}
	}
}
