package tui

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-convtrace/dsp/core"
)

// renderLane draws one signal as a bar chart, one column group per sample,
// with a zero axis in the middle and the marker column drawn as a vertical
// line over the full lane height (the index marker of the animation).
// A marker of -1 disables the marker. limit is the absolute y value mapped
// to a full half-height bar.
func renderLane(ys []float64, marker, width, height int, limit float64) string {
	if height < 3 {
		height = 3
	}
	cols := len(ys)
	if cols == 0 {
		return ""
	}

	barWidth := (width - 2) / cols
	if barWidth < 1 {
		barWidth = 1
	}

	if limit <= 0 {
		limit = 1
	}

	zeroRow := height / 2
	rowsUp := zeroRow
	rowsDown := height - 1 - zeroRow

	filled := make([][]bool, height)
	for r := range filled {
		filled[r] = make([]bool, cols)
	}

	for c, v := range ys {
		level := core.Clamp(v/limit, -1, 1)
		if level >= 0 {
			span := int(math.Round(level * float64(rowsUp)))
			for r := zeroRow - span; r < zeroRow; r++ {
				filled[r][c] = true
			}
		} else {
			span := int(math.Round(-level * float64(rowsDown)))
			for r := zeroRow + 1; r <= zeroRow+span; r++ {
				filled[r][c] = true
			}
		}
	}

	var sb strings.Builder
	for r := 0; r < height; r++ {
		for c := 0; c < cols; c++ {
			var cell string
			switch {
			case filled[r][c]:
				cell = "█"
			case r == zeroRow:
				cell = "─"
			default:
				cell = " "
			}

			style := barStyle
			if c == marker {
				style = markerStyle
				if !filled[r][c] && r != zeroRow {
					cell = "│"
				}
			}
			sb.WriteString(style.Render(strings.Repeat(cell, barWidth)))
		}
		if r < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
