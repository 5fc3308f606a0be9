package dealerscout

import "regexp"

// zipRe matches exactly five decimal digits with nothing else around them.
var zipRe = regexp.MustCompile(`^\d{5}$`)

// addressZipRe locates a five-digit zip inside a formatted address. The
// digit run must be preceded by the start of the string, whitespace, or a
// comma and followed by whitespace, a comma, a hyphen, or the end of the
// string, so digits embedded in street or unit numbers don't match. For a
// ZIP+4 like "62701-1234" the hyphen terminates the match and only the
// five-digit prefix is returned.
var addressZipRe = regexp.MustCompile(`(?:^|[\s,])(\d{5})(?:[\s,-]|$)`)

// ValidZipCode reports whether s is a well-formed US 5-digit zip code.
// No normalization is applied: leading/trailing whitespace, dashes, and
// ZIP+4 extensions all fail validation.
func ValidZipCode(s string) bool {
	return zipRe.MatchString(s)
}

// ExtractZipCode returns the first zip code found in a formatted address.
// The second return value is false when the address contains no
// boundary-delimited five-digit run.
func ExtractZipCode(address string) (string, bool) {
	m := addressZipRe.FindStringSubmatch(address)
	if m == nil {
		return "", false
	}
	return m[1], true
}
