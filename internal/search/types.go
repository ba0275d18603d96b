package search

import "github.com/kamusis/switcher/internal/catalog"

// Tier is the match rule that scored an entry.
type Tier int

const (
	TierNone Tier = iota
	TierFuzzy
	TierSubstring
	TierPrefix
	TierExact
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierPrefix:
		return "prefix"
	case TierSubstring:
		return "substring"
	case TierFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// Result pairs a catalog entry with its score for one query.
type Result struct {
	Entry catalog.AppEntry
	Score int
	Tier  Tier
}
