package app

// tabStops expands tabs to the next multiple of its width.
type tabStops int

func newTabStops(width int) tabStops {
	if width < 1 {
		width = 4
	}
	return tabStops(width)
}

// next returns the column following a tab at col.
func (t tabStops) next(col int) int {
	w := int(t)
	return col + w - col%w
}

// width returns the display width of line, which must not contain a newline.
func (t tabStops) width(line []byte) int {
	col := 0
	for _, c := range line {
		if c == '\t' {
			col = t.next(col)
		} else {
			col++
		}
	}
	return col
}
