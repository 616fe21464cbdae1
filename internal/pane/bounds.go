package pane

import "fmt"

// Bounds is a rectangle in character cells.
type Bounds struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Right returns the first column past the rectangle.
func (b Bounds) Right() int {
	return b.Left + b.Width
}

// Bottom returns the first row past the rectangle.
func (b Bounds) Bottom() int {
	return b.Top + b.Height
}

// Area returns the number of cells covered.
func (b Bounds) Area() int {
	return b.Width * b.Height
}

// Contains reports whether the cell (x, y) lies inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.Left && x < b.Right() && y >= b.Top && y < b.Bottom()
}

// Overlaps reports whether b and o share at least one cell.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.Left < o.Right() && o.Left < b.Right() && b.Top < o.Bottom() && o.Top < b.Bottom()
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", b.Width, b.Height, b.Left, b.Top)
}

// Orientation selects how a split divides a rectangle.
type Orientation uint8

const (
	// Vertical places the halves side by side.
	Vertical Orientation = iota
	// Horizontal stacks the halves.
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// split divides b in two. The first half gets the floor of the halved
// dimension and the second half the remainder.
func split(b Bounds, o Orientation) (first, second Bounds) {
	first, second = b, b
	if o == Vertical {
		first.Width = b.Width / 2
		second.Left = b.Left + first.Width
		second.Width = b.Width - first.Width
	} else {
		first.Height = b.Height / 2
		second.Top = b.Top + first.Height
		second.Height = b.Height - first.Height
	}
	return first, second
}
