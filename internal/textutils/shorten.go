// Package textutils canonicalizes noisy material descriptions into short
// chart labels and wraps long labels for display.
package textutils

import (
	"regexp"
	"strings"
)

// maxLabelLen is the display width a shortened label may occupy.
const maxLabelLen = 30

// minBreakPos guards the back-off to a word boundary when truncating:
// a boundary at or before this position would over-truncate short labels.
const minBreakPos = 10

var (
	// Quantity-with-unit tokens: "10MM", "5 KG", "3x", "50%", ...
	unitTokenPattern = regexp.MustCompile(`(?i)\b[0-9.]+\s*(PCS|PC|PKT|MTR|ML|LTR|GAL|KG|MM|CM|INCH|Z|W|V|A|PLY|BOX|BTL|ROLL|CTN|%|X)\b`)
	// Packaging and part qualifiers: "SIZE XL", "BALE OF 25", "PART NO. AB123"
	packagingPattern = regexp.MustCompile(`(?i)\b(SIZE\s+[A-Z]+|BALE OF \d+|PART NO\.?\s*[A-Z0-9]+)\b`)
	// Parenthesized sub-strings, removed entirely
	parenthesesPattern = regexp.MustCompile(`\([^)]*\)`)
	// Trailing hyphen qualifier, e.g. "- FINE" at end of string
	trailingDetailPattern = regexp.MustCompile(`(?i)-\s*[a-zA-Z0-9\s]+$`)
	// Everything that is not a letter, space or hyphen becomes a space
	nonLabelCharPattern = regexp.MustCompile(`[^a-zA-Z\s-]`)
	spaceRunPattern     = regexp.MustCompile(`\s+`)
)

// ShortenMaterialName canonicalizes a raw material description into a short
// human-readable label. Semicolon-delimited descriptions keep only the
// second segment; size, unit and packaging tokens are stripped, then the
// remainder is title-cased and truncated at a word boundary.
//
// The output is purely cosmetic. Aggregation always groups on the original
// string, so shortening can never merge or split groups.
func ShortenMaterialName(raw string) string {
	if raw == "" {
		return "Unknown"
	}

	parts := strings.Split(raw, ";")
	var text string
	if len(parts) > 1 {
		text = strings.TrimSpace(parts[1])
	} else {
		text = strings.TrimSpace(parts[0])
	}

	text = unitTokenPattern.ReplaceAllString(text, "")
	text = packagingPattern.ReplaceAllString(text, "")
	text = parenthesesPattern.ReplaceAllString(text, "")
	text = trailingDetailPattern.ReplaceAllString(text, "")
	text = nonLabelCharPattern.ReplaceAllString(text, " ")

	text = spaceRunPattern.ReplaceAllString(strings.TrimSpace(text), " ")
	text = titleCase(text)

	if len(text) > maxLabelLen {
		text = text[:maxLabelLen]
		if lastSpace := strings.LastIndexByte(text, ' '); lastSpace > minBreakPos {
			text = text[:lastSpace]
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		fallback := titleCase(strings.TrimSpace(parts[0]))
		if len(fallback) > maxLabelLen {
			fallback = fallback[:maxLabelLen]
		}
		return fallback
	}
	return text
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
