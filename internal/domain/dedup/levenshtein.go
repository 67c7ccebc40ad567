// Package dedup finds near-duplicate clusters across the four ledger
// entity kinds so a human can review and merge them. Detection never
// mutates or deletes anything; it only classifies.
package dedup

// Distance returns the Levenshtein edit distance between two strings: the
// minimum number of single-character insertions, deletions, or
// substitutions transforming one into the other. Operates on runes so
// multi-byte characters count as single edits. Callers should normalize
// (fold case, trim whitespace) first so cosmetic differences do not count
// as edits.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	la := len(ra)
	lb := len(rb)

	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Keep rb the shorter string so the rows stay small
	if la < lb {
		ra, rb = rb, ra
		la, lb = lb, la
	}

	// Two-row dynamic programming: prev holds row i-1, curr row i
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[lb]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
