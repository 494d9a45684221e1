package layout

import (
	"strings"

	"github.com/tsawler/vita/font"
)

// WrapText splits text into the fewest lines whose measured width at
// fontSize fits maxWidth. Words are kept whole unless a single word is wider
// than maxWidth, in which case it is broken between runes. A rune wider than
// maxWidth on its own gets a line to itself.
//
// The result depends only on the arguments, never on page position.
func WrapText(text string, fontSize, maxWidth float64, measure font.MeasureFunc) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate, fontSize) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}

		if measure(word, fontSize) <= maxWidth {
			current = word
			continue
		}

		pieces := breakWord(word, fontSize, maxWidth, measure)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

// breakWord splits a word that is too wide into rune chunks that fit
func breakWord(word string, fontSize, maxWidth float64, measure font.MeasureFunc) []string {
	var pieces []string
	var chunk []rune

	for _, r := range word {
		next := append(chunk, r)
		if len(chunk) > 0 && measure(string(next), fontSize) > maxWidth {
			pieces = append(pieces, string(chunk))
			chunk = []rune{r}
			continue
		}
		chunk = next
	}
	if len(chunk) > 0 {
		pieces = append(pieces, string(chunk))
	}

	return pieces
}
