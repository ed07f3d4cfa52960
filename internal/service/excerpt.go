package service

import "strings"

// excerptMaxLen is the teaser length in runes before the ellipsis.
const excerptMaxLen = 150

// excerptStripper removes markdown markup and line breaks before truncation.
var excerptStripper = strings.NewReplacer(
	"#", "",
	"*", "",
	"-", "",
	">", "",
	"[", "",
	"]", "",
	"\n", "",
	"\r", "",
)

// deriveExcerpt turns raw article content into a bounded plain-text teaser.
// Empty content yields no excerpt. The ellipsis is appended only when the
// cleaned text was actually truncated.
func deriveExcerpt(content string) *string {
	if content == "" {
		return nil
	}
	cleaned := strings.TrimSpace(excerptStripper.Replace(content))
	runes := []rune(cleaned)
	if len(runes) > excerptMaxLen {
		cleaned = string(runes[:excerptMaxLen]) + "..."
	}
	return &cleaned
}
