package session

import "math"

// ReadThreshold is the read percentage past which the document counts as
// fully read and the mark-read call fires.
const ReadThreshold = 95

// Percent converts scroll metrics into a 0-100 read percentage. Content
// that fits the viewport without scrolling counts as already read.
func Percent(scrollTop, scrollHeight, viewportHeight float32) int {
	scrollable := scrollHeight - viewportHeight
	if scrollable <= 0 {
		return 100
	}
	pct := int(math.Round(float64(scrollTop/scrollable) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
