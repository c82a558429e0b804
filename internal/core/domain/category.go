package domain

import "strings"

// FormatCategory normalizes a raw upstream category code into its canonical
// display label. "PSR" (any case) becomes "Report" and "ROP" (any case) stays
// "ROP"; everything else is title-cased on the first character only, so
// "BAIL" becomes "Bail". Blank input returns an empty string.
//
// The frontend applies the same rule; changing it here drifts the two apart.
func FormatCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return ""
	}

	switch strings.ToUpper(category) {
	case "PSR":
		return CategoryReport
	case "ROP":
		return "ROP"
	}

	return strings.ToUpper(category[:1]) + strings.ToLower(category[1:])
}
