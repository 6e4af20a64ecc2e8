package content

import "unicode/utf8"

// FitsInLimit checks if text fits within limit characters.
func FitsInLimit(text string, limit int) bool {
	return utf8.RuneCountInString(text) <= limit
}

// Overflow returns how many characters the draft body exceeds its platform
// limit by, or 0 when it fits. Unknown platforms never overflow.
// Limits are advisory: nothing in the pipeline rejects or truncates on overflow.
func (d Draft) Overflow() int {
	g, ok := PlatformGuidelines[d.Platform]
	if !ok {
		return 0
	}
	if FitsInLimit(d.Body, g.MaxLength) {
		return 0
	}
	return utf8.RuneCountInString(d.Body) - g.MaxLength
}
