package search

// Subsequence reports whether every rune of query appears in target in
// order, not necessarily adjacent. It is a single greedy left-to-right scan
// with no backtracking. Comparison is exact; callers fold case first.
func Subsequence(query, target string) bool {
	if query == "" {
		return true
	}
	q := []rune(query)
	qi := 0
	for _, r := range target {
		if r != q[qi] {
			continue
		}
		qi++
		if qi == len(q) {
			return true
		}
	}
	return false
}
