package race

import (
	"sort"
	"strconv"
	"strings"
)

// CompareNumbers orders race numbers naturally: the leading run of digits is
// compared as an integer, then the remaining suffix case-insensitively.
// Empty numbers sort before any non-empty one. "3A" < "3B" < "25A".
func CompareNumbers(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	case b == "":
		return 1
	}

	an, as := splitNumber(a)
	bn, bs := splitNumber(b)

	if an != bn {
		if an < bn {
			return -1
		}
		return 1
	}

	return strings.Compare(strings.ToLower(as), strings.ToLower(bs))
}

// splitNumber returns the numeric prefix and the rest of a race number.
// A number without leading digits, or whose prefix overflows, is all suffix.
func splitNumber(s string) (int, string) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, s
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, s
	}
	return n, s[end:]
}

// SortTargets orders races by number in place. The sort is stable.
func SortTargets(races []Target) {
	sort.SliceStable(races, func(i, j int) bool {
		return CompareNumbers(races[i].Number, races[j].Number) < 0
	})
}
