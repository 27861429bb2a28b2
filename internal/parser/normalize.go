package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	runes := []rune(raw)
	for i, r := range runes {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		// A sign in front of a number stays so "hunt -3" is rejected rather
		// than read as "hunt 3".
		if r == '-' && (b.Len() == 0 || lastSpace) && i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9' {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' || r == '#' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

func parseQuantityToken(token string) *Quantity {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return nil
	}
	if n, err := strconv.Atoi(token); err == nil {
		return &Quantity{Raw: token, N: n}
	}
	return nil
}

// isFiller reports words that carry no meaning for any trail command, so
// "travel west at a grueling pace" reduces to "travel grueling".
func isFiller(token string) bool {
	switch token {
	case "a", "an", "the", "at", "on", "to", "for", "with", "of", "and",
		"west", "westward", "onward", "trail", "pace", "speed",
		"offer", "number", "no", "ammo", "rounds", "bullets", "shots":
		return true
	default:
		return false
	}
}

func defaultPaces() []string {
	return []string{"slow", "steady", "grueling"}
}
