package domain

// RemoveLines returns a new line slice with the given 1-based line
// numbers removed, plus the count actually removed. Positions to drop
// are marked in a keep-mask first, then the survivors are materialised
// in original order, so the result never depends on deletion order.
// Out-of-range or duplicate entries reduce the realized count rather
// than erroring, which keeps the function safe to call standalone.
// An empty deletion set returns a copy equal to the input; deleting
// every line returns an empty slice.
func RemoveLines(lines []string, deletions []int) (kept []string, removed int) {
	doomed := make([]bool, len(lines))
	for _, n := range deletions {
		if n < 1 || n > len(lines) {
			continue
		}
		if !doomed[n-1] {
			doomed[n-1] = true
			removed++
		}
	}

	kept = make([]string, 0, len(lines)-removed)
	for i, line := range lines {
		if !doomed[i] {
			kept = append(kept, line)
		}
	}
	return kept, removed
}
