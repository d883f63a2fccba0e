package entry

import "strings"

const (
	maxManualIPGroups     = 4
	maxManualIPGroupChars = 3
	maxManualIPChars      = 15
)

// FormatManualIP constrains raw user input to dotted quad text:
// characters other than digits and dots are removed, each group
// is truncated to 3 digits, at most 4 groups are kept and the
// result is at most 15 characters long. The result is not
// validated as an IP address.
func FormatManualIP(raw string) (formatted string) {
	filtered := strings.Map(func(r rune) rune {
		if r == '.' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, raw)

	groups := strings.Split(filtered, ".")
	if len(groups) > maxManualIPGroups {
		groups = groups[:maxManualIPGroups]
	}
	for i, group := range groups {
		if len(group) > maxManualIPGroupChars {
			groups[i] = group[:maxManualIPGroupChars]
		}
	}

	formatted = strings.Join(groups, ".")
	if len(formatted) > maxManualIPChars {
		formatted = formatted[:maxManualIPChars]
	}
	return formatted
}
