package telegram

import "strings"

// emoji codes as written in rule data, mapped to their unicode forms
var emojis = map[string]string{
	":+1:":    "\U0001F44D",
	":-1:":    "\U0001F44E",
	":wave:":  "\U0001F44B",
	":heart:": "❤️",
	":tada:":  "\U0001F389",
}

// Emoji returns the unicode string for a single emoji code,
// unknown codes come back unchanged
func Emoji(code string) string {
	if e, ok := emojis[code]; ok {
		return e
	}
	return code
}

// ExpandEmojis replaces every known emoji code inside s
func ExpandEmojis(s string) string {
	if !strings.Contains(s, ":") {
		return s
	}
	for code, e := range emojis {
		s = strings.ReplaceAll(s, code, e)
	}
	return s
}
