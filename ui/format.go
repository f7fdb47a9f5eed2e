package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adeilh/metcat/cache"
	"github.com/adeilh/metcat/museum"
)

// formatArtworkLine renders one row of a search-result listing.
func formatArtworkLine(position int, artwork museum.Artwork) string {
	artist := artwork.Artist.Name
	if span := artwork.Artist.Lifespan(); span != "" {
		artist += " (" + span + ")"
	}
	return fmt.Sprintf("%2d. [%d] %s by %s", position, artwork.ID, artwork.Title, artist)
}

// formatArtworkDetails renders the full detail view of one artwork.
func formatArtworkDetails(artwork museum.Artwork) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(&b, "%s (ID %d)\n", artwork.Title, artwork.ID)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(&b, "Artist:         %s\n", artwork.Artist.Name)
	if artwork.Artist.Nationality != "" {
		fmt.Fprintf(&b, "Nationality:    %s\n", artwork.Artist.Nationality)
	}
	if span := artwork.Artist.Lifespan(); span != "" {
		fmt.Fprintf(&b, "Lifespan:       %s\n", span)
	}
	if artwork.Classification != "" {
		fmt.Fprintf(&b, "Classification: %s\n", artwork.Classification)
	}
	if artwork.Date != "" {
		fmt.Fprintf(&b, "Date:           %s\n", artwork.Date)
	}
	if artwork.Department != "" {
		fmt.Fprintf(&b, "Department:     %s\n", artwork.Department)
	}
	if artwork.HasImage() {
		fmt.Fprintf(&b, "Image:          %s\n", artwork.ImageURL)
	} else {
		fmt.Fprintf(&b, "Image:          (none)\n")
	}
	return b.String()
}

// formatStats renders the cache statistics view shown by the menu.
func formatStats(st cache.Stats) string {
	categories := make([]cache.Category, 0, len(st.Categories))
	for category := range st.Categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	var b strings.Builder
	b.WriteString("Cache statistics\n")
	b.WriteString("----------------\n")
	for _, category := range categories {
		cs := st.Categories[category]
		fmt.Fprintf(&b, "%-16s entries=%-5d hits=%-6d misses=%-6d ratio=%.2f\n",
			category, cs.Entries, cs.Hits, cs.Misses, cs.HitRatio)
	}
	fmt.Fprintf(&b, "total entries:      %d\n", st.TotalEntries())
	fmt.Fprintf(&b, "automatic cleanups: %d\n", st.AutomaticCleanups)
	fmt.Fprintf(&b, "estimated memory:   %d KB\n", st.EstimatedMemoryKB)
	return b.String()
}
