package jsx

import "strings"

// TrimWhitespace normalizes the whitespace of a JSX text run. Carriage
// returns are dropped, tabs become spaces, lines consisting only of
// whitespace disappear, continuation lines lose their indentation, and any
// remaining whitespace run collapses to a single space. A run that is
// whitespace throughout normalizes to the empty string.
func TrimWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\t", " ")
	if strings.Contains(text, "\n") {
		lines := strings.Split(text, "\n")
		kept := lines[:0]
		for i, l := range lines {
			if i > 0 {
				l = strings.TrimLeft(l, " ")
			}
			if strings.TrimSpace(l) == "" {
				continue
			}
			kept = append(kept, l)
		}
		text = strings.Join(kept, " ")
	}
	text = collapseSpaces(text)
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}

func collapseSpaces(s string) string {
	if !strings.Contains(s, "  ") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteByte(s[i])
	}
	return b.String()
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;")
)

// EscapeHTML escapes s for inclusion in an HTML template: ampersands and
// less-than signs in text position, plus double quotes in attribute position.
// Greater-than signs are left as they are.
func EscapeHTML(s string, forAttribute bool) string {
	if forAttribute {
		return attrEscaper.Replace(s)
	}
	return textEscaper.Replace(s)
}

// ToEventName derives the DOM event name from an event attribute key: the
// leading "on" or "on:" prefix is stripped and the remainder lowercased, so
// both onClick and on:CustomEvent yield their event names.
func ToEventName(key string) string {
	key = strings.TrimPrefix(key, "on")
	key = strings.TrimPrefix(key, ":")
	return strings.ToLower(key)
}
