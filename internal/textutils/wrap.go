package textutils

import "strings"

// WrapLabel greedily word-wraps a label into lines of at most width
// characters. A single word longer than the width gets its own line rather
// than being split. Labels within the width come back as a single line.
func WrapLabel(label string, width int) []string {
	if width <= 0 {
		width = maxLabelLen
	}
	if len(label) <= width {
		return []string{label}
	}

	words := strings.Split(label, " ")
	lines := []string{""}
	cur := 0
	for _, word := range words {
		if len(lines[cur])+len(word) > width && len(lines[cur]) > 0 {
			lines = append(lines, "")
			cur++
		}
		if len(lines[cur]) > 0 {
			lines[cur] += " "
		}
		lines[cur] += word
	}
	return lines
}
