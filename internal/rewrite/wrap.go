package rewrite

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultWidth is the display width paragraph text is wrapped at, not
// counting the "// " comment prefix.
const DefaultWidth = 70

// WrapComment greedily wraps text into "// " comment lines of at most width
// display columns of text. Widths are measured in terminal columns, so East
// Asian wide characters count double. A single word wider than the limit
// gets a line of its own rather than being broken.
func WrapComment(text string, width int) []string {
	if width <= 0 {
		width = DefaultWidth
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{"//"}
	}

	var lines []string
	current := words[0]
	currentWidth := runewidth.StringWidth(words[0])

	for _, word := range words[1:] {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+1+wordWidth > width {
			lines = append(lines, "// "+current)
			current = word
			currentWidth = wordWidth
			continue
		}
		current += " " + word
		currentWidth += 1 + wordWidth
	}

	return append(lines, "// "+current)
}
