package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// baseSort orders entries by priority membership (members first), then by
// case-insensitive name. The sort is stable.
func baseSort(entries []AppEntry, p Priority) {
	// collate.Collator is not safe for concurrent use.
	col := collate.New(language.Und, collate.IgnoreCase)

	prio := make(map[string]bool, len(entries))
	for _, e := range entries {
		prio[e.Name] = p.Contains(e.Name)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		pi, pj := prio[entries[i].Name], prio[entries[j].Name]
		if pi != pj {
			return pi
		}
		return col.CompareString(entries[i].Name, entries[j].Name) < 0
	})
}
