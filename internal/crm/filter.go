package crm

import "strings"

// Filter returns the records whose selected field values contain query as
// a case-insensitive substring (OR across fields). The empty query is the
// identity filter. Output preserves input order; the input is untouched.
func Filter[T any](records []T, query string, fields func(T) []string) []T {
	if query == "" {
		out := make([]T, len(records))
		copy(out, records)
		return out
	}
	q := strings.ToLower(query)
	out := make([]T, 0, len(records))
	for _, r := range records {
		for _, f := range fields(r) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// InRange reports whether v falls inside [min, max]. An inverted range
// (min > max) is valid-but-empty input and matches nothing.
func InRange(v, min, max float64) bool {
	if min > max {
		return false
	}
	return v >= min && v <= max
}
