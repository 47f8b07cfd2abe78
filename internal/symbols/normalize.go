package symbols

import "strings"

var keyStripper = strings.NewReplacer("-", "", "/", "", "_", "", " ", "")

// Normalize returns the comparison key of a ticker: a trailing "/P" is dropped,
// '-', '/', '_' and spaces are removed and the result is uppercased.
// Two tickers are the same symbol iff their keys are equal.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.ToUpper(keyStripper.Replace(trimPerpetual(raw)))
}
