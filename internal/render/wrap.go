package render

import "strings"

// Wrap breaks text into lines no wider than maxWidth using a greedy
// first-fit pass. Widths come from the measure function, so the algorithm
// is independent of any PDF font state. A single word wider than maxWidth
// gets its own line rather than being split mid-word.
func Wrap(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) <= maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}
