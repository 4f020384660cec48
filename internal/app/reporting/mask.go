package reporting

import "strings"

// MaskName hides all but the first character of a personal name.
func MaskName(name string) string {
	runes := []rune(strings.TrimSpace(name))
	switch {
	case len(runes) >= 3:
		return string(runes[0]) + "XX"
	case len(runes) == 2:
		return string(runes[0]) + "X"
	default:
		return string(runes)
	}
}
