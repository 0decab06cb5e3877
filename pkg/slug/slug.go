package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var nonAlphaRegex = regexp.MustCompile(`[^a-zA-Z0-9 ]+`)
var spacesRegex = regexp.MustCompile(` +`)

// GenerateGreetingSlug generates a URL-friendly slug from the greeting
// owner's name and a short unique suffix.
// Format: {name}-{suffix}
// Example: "Asha Reddy" + "7f3a9c" -> "asha-reddy-7f3a9c"
//
// Telugu names fall back to the suffix alone: the share URL only needs to be
// unique and typeable, not a transliteration.
func GenerateGreetingSlug(name, suffix string) string {
	s := nonAlphaRegex.ReplaceAllString(name, "")
	s = strings.TrimSpace(s)
	s = spacesRegex.ReplaceAllString(s, "-")
	s = strings.ToLower(s)

	if s == "" {
		return strings.ToLower(suffix)
	}

	return fmt.Sprintf("%s-%s", s, strings.ToLower(suffix))
}
