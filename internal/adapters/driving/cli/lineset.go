package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseLineSet parses a comma-separated list of line numbers and ranges,
// e.g. "3,7,120-140". Whitespace around entries is ignored. Ranges are
// inclusive on both ends.
func ParseLineSet(spec string) ([]int, error) {
	var lines []int
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		parsed, err := parseLineToken(token)
		if err != nil {
			return nil, err
		}
		lines = append(lines, parsed...)
	}
	return lines, nil
}

// ReadLineSet parses line numbers from a reader, one or more per line.
// Blank lines are skipped and everything after a '#' is a comment.
// Entries may be separated by whitespace or commas, and ranges like
// "120-140" are accepted.
func ReadLineSet(r io.Reader) ([]int, error) {
	var lines []int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := scanner.Text()
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}

		for _, field := range strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		}) {
			parsed, err := parseLineToken(field)
			if err != nil {
				return nil, err
			}
			lines = append(lines, parsed...)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line numbers: %w", err)
	}
	return lines, nil
}

// parseLineToken parses a single number or an inclusive "low-high" range.
func parseLineToken(token string) ([]int, error) {
	if low, high, ok := strings.Cut(token, "-"); ok {
		start, err := strconv.Atoi(strings.TrimSpace(low))
		if err != nil {
			return nil, fmt.Errorf("invalid line range %q", token)
		}
		end, err := strconv.Atoi(strings.TrimSpace(high))
		if err != nil {
			return nil, fmt.Errorf("invalid line range %q", token)
		}
		if end < start {
			return nil, fmt.Errorf("invalid line range %q: end before start", token)
		}

		lines := make([]int, 0, end-start+1)
		for n := start; n <= end; n++ {
			lines = append(lines, n)
		}
		return lines, nil
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return nil, fmt.Errorf("invalid line number %q", token)
	}
	return []int{n}, nil
}
