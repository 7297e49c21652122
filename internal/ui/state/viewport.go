package state

// Viewport tracks the first visible row of a list taller than the screen.
type Viewport struct {
	Offset int
}

// EnsureVisible adjusts the offset so row stays on screen. Out of range rows
// are clamped first.
func (v *Viewport) EnsureVisible(row, total, maxVisible int) {
	if total <= 0 || maxVisible <= 0 {
		v.Offset = 0
		return
	}
	if row < 0 {
		row = 0
	}
	if row >= total {
		row = total - 1
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if row < v.Offset {
		v.Offset = row
	}
	upper := v.Offset + maxVisible - 1
	if row > upper {
		v.Offset = row - maxVisible + 1
		if v.Offset < 0 {
			v.Offset = 0
		}
		if v.Offset > maxOffset {
			v.Offset = maxOffset
		}
	}
}

// EnsureRangeVisible keeps first..last on screen when they fit, and first
// otherwise.
func (v *Viewport) EnsureRangeVisible(first, last, total, maxVisible int) {
	v.EnsureVisible(last, total, maxVisible)
	v.EnsureVisible(first, total, maxVisible)
}

// Window returns the slice bounds of the visible rows.
func (v *Viewport) Window(total, maxVisible int) (int, int) {
	if maxVisible <= 0 || total <= maxVisible {
		return 0, total
	}
	start := v.Offset
	if start < 0 {
		start = 0
	}
	if start+maxVisible > total {
		start = total - maxVisible
	}
	return start, start + maxVisible
}
