package search

import (
	"strings"

	"github.com/kamusis/switcher/internal/catalog"
)

// Base scores per tier, and the boost for priority names.
const (
	ScoreExact     = 100
	ScorePrefix    = 80
	ScoreSubstring = 60
	ScoreFuzzy     = 40
	PriorityBoost  = 10
)

// Score rates name against query using the first rule that applies: exact,
// prefix, substring, then subsequence. Both strings are lowercased first.
// Names in p get PriorityBoost on top of their tier score. A name that
// matches no rule scores 0 with TierNone.
func Score(name, query string, p catalog.Priority) (int, Tier) {
	lname := strings.ToLower(name)
	score, tier := tierScore(lname, strings.ToLower(query))
	if tier == TierNone {
		return 0, TierNone
	}
	if p.Contains(lname) {
		score += PriorityBoost
	}
	return score, tier
}

func tierScore(lname, lquery string) (int, Tier) {
	switch {
	case lname == lquery:
		return ScoreExact, TierExact
	case strings.HasPrefix(lname, lquery):
		return ScorePrefix, TierPrefix
	case strings.Contains(lname, lquery):
		return ScoreSubstring, TierSubstring
	case Subsequence(lquery, lname):
		return ScoreFuzzy, TierFuzzy
	}
	return 0, TierNone
}

// RankResults scores every entry of c against query and returns the matches
// ordered by score, highest first. Equal scores keep catalog order.
//
// An empty query is not scored: every entry comes back in catalog order
// with score 0.
func RankResults(c *catalog.Catalog, query string) []Result {
	entries := c.Entries()
	if query == "" {
		out := make([]Result, len(entries))
		for i, e := range entries {
			out[i] = Result{Entry: e}
		}
		return out
	}

	p := c.Priority()
	out := make([]Result, 0, len(entries))
	for _, e := range entries {
		score, tier := Score(e.Name, query, p)
		if score <= 0 {
			continue
		}
		out = append(out, Result{Entry: e, Score: score, Tier: tier})
	}
	SortResults(out)
	return out
}

// Rank returns the entries of c that match query, best first. An empty
// query returns the whole catalog in base order. c is never modified.
func Rank(c *catalog.Catalog, query string) []catalog.AppEntry {
	if query == "" {
		return c.Entries()
	}
	results := RankResults(c, query)
	out := make([]catalog.AppEntry, len(results))
	for i, r := range results {
		out[i] = r.Entry
	}
	return out
}

// Limit truncates results to at most k entries. k <= 0 means no limit.
func Limit[T any](results []T, k int) []T {
	if k > 0 && len(results) > k {
		return results[:k]
	}
	return results
}
