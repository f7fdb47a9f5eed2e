package cache

// CategoryStats is the per-category slice of a Stats snapshot.
type CategoryStats struct {
	Entries  int     `json:"entries"`
	Hits     uint64  `json:"hits"`
	Misses   uint64  `json:"misses"`
	HitRatio float64 `json:"hit_ratio"`
}

// Stats is a read-only snapshot of the store's counters, taken atomically
// under the store lock. It is the only observability surface the cache
// exposes; nothing outside Clear can write the counters back.
type Stats struct {
	Categories        map[Category]CategoryStats `json:"categories"`
	AutomaticCleanups uint64                     `json:"automatic_cleanups"`
	EstimatedMemoryKB int                        `json:"estimated_memory_kb"`
}

// TotalEntries sums entry counts across all categories.
func (st Stats) TotalEntries() int {
	total := 0
	for _, cs := range st.Categories {
		total += cs.Entries
	}
	return total
}

// Rough per-entry size heuristics in KB, not exact accounting: an artwork
// record with its artist, a full department list under one key, a
// search-result id list, a department id list.
var memoryWeightKB = map[Category]float64{
	Artworks:      2.0,
	Departments:   5.0,
	Searches:      0.5,
	DepartmentIDs: 1.0,
}

const defaultMemoryWeightKB = 0.5

// Stats returns the current snapshot. Hit ratio is hits over total lookups
// and 0.0 when a category has seen none, never a division fault.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Categories:        make(map[Category]CategoryStats, len(s.tables)),
		AutomaticCleanups: s.cleanups,
	}
	estimated := 0.0
	for category, table := range s.tables {
		cs := CategoryStats{
			Entries: len(table),
			Hits:    s.hits[category],
			Misses:  s.misses[category],
		}
		if lookups := cs.Hits + cs.Misses; lookups > 0 {
			cs.HitRatio = float64(cs.Hits) / float64(lookups)
		}
		st.Categories[category] = cs

		weight, ok := memoryWeightKB[category]
		if !ok {
			weight = defaultMemoryWeightKB
		}
		estimated += float64(len(table)) * weight
	}
	st.EstimatedMemoryKB = int(estimated)
	return st
}
