package tui

import (
	"math"
	"strings"
)

const (
	ScrollbarWidth = 1

	scrollbarThumb = "█"
	scrollbarTrack = "░"
)

// Scrollbar renders a vertical scrollbar of the given height for content of
// total lines, of which visible lines are shown starting at offset. Nothing
// is rendered when all the content fits.
func Scrollbar(height, total, visible, offset int) string {
	if height <= 0 || total <= visible {
		return ""
	}
	ratio := float64(height) / float64(total)
	thumbHeight := max(1, int(math.Round(float64(visible)*ratio)))
	thumbOffset := max(0, min(height-thumbHeight, int(math.Round(float64(offset)*ratio))))

	var b strings.Builder
	for i := 0; i < height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= thumbOffset && i < thumbOffset+thumbHeight {
			b.WriteString(scrollbarThumb)
		} else {
			b.WriteString(scrollbarTrack)
		}
	}
	return b.String()
}
