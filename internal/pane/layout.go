package pane

import (
	"errors"

	"github.com/dshills/shin/internal/engine/buffer"
)

// Layout errors.
var (
	ErrTooSmall = errors.New("pane too small to split")
	ErrLastPane = errors.New("cannot close the last pane")
)

// MaxPanes bounds the number of panes in a layout.
const MaxPanes = 12

// ErrTooManyPanes is returned by Split when MaxPanes panes are open.
var ErrTooManyPanes = errors.New("too many panes")

const none = -1

type node struct {
	parent   int
	children [2]int
	orient   Orientation
	bounds   Bounds
	// pane is nil for split nodes.
	pane *Pane
}

func (n *node) leaf() bool {
	return n.pane != nil
}

// Layout is the split tree of panes.
type Layout struct {
	nodes  []node
	root   int
	active int
}

// NewLayout creates a layout with one pane covering b and showing buf.
func NewLayout(b Bounds, buf *buffer.Buffer) *Layout {
	l := &Layout{}
	l.nodes = append(l.nodes, node{
		parent:   none,
		children: [2]int{none, none},
		bounds:   b,
		pane:     newPane(b, buf),
	})
	return l
}

// Active returns the active pane.
func (l *Layout) Active() *Pane {
	return l.nodes[l.active].pane
}

// Len returns the number of panes.
func (l *Layout) Len() int {
	return len(l.leaves())
}

// Bounds returns the rectangle the layout tiles.
func (l *Layout) Bounds() Bounds {
	return l.nodes[l.root].bounds
}

// Panes returns every pane in tree order.
func (l *Layout) Panes() []*Pane {
	leaves := l.leaves()
	out := make([]*Pane, len(leaves))
	for i, idx := range leaves {
		out[i] = l.nodes[idx].pane
	}
	return out
}

// Views returns a snapshot of every pane in tree order.
func (l *Layout) Views() []View {
	leaves := l.leaves()
	out := make([]View, len(leaves))
	for i, idx := range leaves {
		out[i] = l.nodes[idx].pane.View(idx == l.active)
	}
	return out
}

// leaves returns the leaf indices in tree order.
func (l *Layout) leaves() []int {
	var out []int
	var walk func(i int)
	walk = func(i int) {
		n := &l.nodes[i]
		if n.leaf() {
			out = append(out, i)
			return
		}
		walk(n.children[0])
		walk(n.children[1])
	}
	walk(l.root)
	return out
}

// Split divides the active pane. The active pane keeps the first half and
// a new pane showing buf takes the second half and becomes active.
func (l *Layout) Split(o Orientation, buf *buffer.Buffer) (*Pane, error) {
	if l.Len() >= MaxPanes {
		return nil, ErrTooManyPanes
	}
	idx := l.active
	b := l.nodes[idx].bounds
	if (o == Vertical && b.Width < 2) || (o == Horizontal && b.Height < 2) {
		return nil, ErrTooSmall
	}
	first, second := split(b, o)

	old := l.nodes[idx].pane
	old.bounds = first
	l.nodes = append(l.nodes,
		node{parent: idx, children: [2]int{none, none}, bounds: first, pane: old},
		node{parent: idx, children: [2]int{none, none}, bounds: second, pane: newPane(second, buf)},
	)
	firstIdx, secondIdx := len(l.nodes)-2, len(l.nodes)-1

	l.nodes[idx].pane = nil
	l.nodes[idx].orient = o
	l.nodes[idx].children = [2]int{firstIdx, secondIdx}

	l.active = secondIdx
	return l.nodes[secondIdx].pane, nil
}

// Close removes the active pane. Its sibling takes over the space of the
// parent split, and the pane of the sibling subtree nearest to the closed
// one becomes active.
func (l *Layout) Close() (*Pane, error) {
	idx := l.active
	parent := l.nodes[idx].parent
	if parent == none {
		return nil, ErrLastPane
	}
	closed := l.nodes[idx].pane

	p := &l.nodes[parent]
	wasFirst := p.children[0] == idx
	sibling := p.children[0]
	if wasFirst {
		sibling = p.children[1]
	}

	// The sibling moves into the parent's slot so the grandparent link stays valid.
	s := l.nodes[sibling]
	p.pane = s.pane
	p.orient = s.orient
	p.children = s.children
	for _, c := range p.children {
		if c != none {
			l.nodes[c].parent = parent
		}
	}
	l.layout(parent, p.bounds)

	// Remove the higher index first so the lower one stays valid.
	l.remove(max(idx, sibling), &parent)
	l.remove(min(idx, sibling), &parent)

	if wasFirst {
		l.active = l.firstLeaf(parent)
	} else {
		l.active = l.lastLeaf(parent)
	}
	return closed, nil
}

// remove swap-removes node i, fixing links to the node moved into its slot.
// track is updated if it pointed at the moved node.
func (l *Layout) remove(i int, track *int) {
	last := len(l.nodes) - 1
	if i != last {
		moved := l.nodes[last]
		l.nodes[i] = moved
		if moved.parent != none {
			pp := &l.nodes[moved.parent]
			for k, c := range pp.children {
				if c == last {
					pp.children[k] = i
				}
			}
		} else {
			l.root = i
		}
		for _, c := range moved.children {
			if c != none {
				l.nodes[c].parent = i
			}
		}
		if *track == last {
			*track = i
		}
	}
	l.nodes = l.nodes[:last]
}

func (l *Layout) firstLeaf(i int) int {
	for !l.nodes[i].leaf() {
		i = l.nodes[i].children[0]
	}
	return i
}

func (l *Layout) lastLeaf(i int) int {
	for !l.nodes[i].leaf() {
		i = l.nodes[i].children[1]
	}
	return i
}

// layout assigns b to node i and recomputes its subtree.
func (l *Layout) layout(i int, b Bounds) {
	n := &l.nodes[i]
	n.bounds = b
	if n.leaf() {
		n.pane.bounds = b
		return
	}
	first, second := split(b, n.orient)
	l.layout(n.children[0], first)
	l.layout(n.children[1], second)
}

// Resize re-tiles the whole layout into b.
func (l *Layout) Resize(b Bounds) {
	l.layout(l.root, b)
}

// Next activates the pane after the active one, wrapping around.
func (l *Layout) Next() *Pane {
	return l.cycle(1)
}

// Prev activates the pane before the active one, wrapping around.
func (l *Layout) Prev() *Pane {
	return l.cycle(-1)
}

func (l *Layout) cycle(step int) *Pane {
	leaves := l.leaves()
	for i, idx := range leaves {
		if idx == l.active {
			l.active = leaves[(i+step+len(leaves))%len(leaves)]
			break
		}
	}
	return l.Active()
}

// UpdateScroll recomputes the visible range of every pane.
func (l *Layout) UpdateScroll() {
	for _, p := range l.Panes() {
		p.UpdateScroll()
	}
}
