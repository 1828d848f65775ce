package utils

import "strings"

// DisplayPhone prefixes phone with the calling code as "+<code>-<phone>".
// Without a code the phone is returned unchanged.
func DisplayPhone(countryCode, phone string) string {
	code := strings.TrimPrefix(strings.TrimSpace(countryCode), "+")
	if code == "" {
		return phone
	}
	return "+" + code + "-" + phone
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so s matches literally inside a pattern.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// FirstNonEmpty returns the first argument that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
