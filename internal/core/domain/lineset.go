package domain

import "sort"

// NormalizeDeletionSet prepares an externally computed deletion set for
// application: duplicates collapse to one entry, line numbers outside
// [1, lineCount] are silently dropped, and the survivors are sorted
// strictly descending. The returned dropped count is the number of
// distinct requested line numbers that were out of range. Pure function,
// the input slice is not modified.
func NormalizeDeletionSet(requested []int, lineCount int) (normalized []int, dropped int) {
	seen := make(map[int]struct{}, len(requested))
	for _, n := range requested {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		if n < 1 || n > lineCount {
			dropped++
			continue
		}
		normalized = append(normalized, n)
	}

	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i] > normalized[j]
	})
	return normalized, dropped
}
