package gcpv

import "strings"

// ParseSkaterName splits "ID LASTNAME, FIRSTNAME" into its parts.
// Without a comma the whole string is the last name. Without a space before
// the comma there is no ID.
func ParseSkaterName(name string) (id, lastName, firstName string) {
	if strings.TrimSpace(name) == "" {
		return "", "", ""
	}

	before, after, ok := strings.Cut(name, ",")
	if !ok {
		return "", strings.TrimSpace(name), ""
	}

	before = strings.TrimSpace(before)
	firstName = strings.TrimSpace(after)

	if i := strings.LastIndex(before, " "); i > 0 {
		return strings.TrimSpace(before[:i]), strings.TrimSpace(before[i+1:]), firstName
	}

	return "", before, firstName
}
