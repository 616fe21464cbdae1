package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/shin/internal/input/mode"
	"github.com/dshills/shin/internal/pane"
)

func TestSplitVertical(t *testing.T) {
	e := newEditor(t, "one\ntwo\n")
	first := e.ActivePane()

	feed(t, e, "<C-w>v")
	require.Equal(t, 2, e.Layout().Len())
	assert.Empty(t, e.Pending())

	active := e.ActivePane()
	assert.NotSame(t, first, active)
	assert.Equal(t, pane.Bounds{Left: 40, Top: 0, Width: 40, Height: 24}, active.Bounds())
	assert.Equal(t, pane.Bounds{Left: 0, Top: 0, Width: 40, Height: 24}, first.Bounds())
	assert.True(t, e.ActiveBuffer().IsEmpty())
	assert.NotEqual(t, first.Buffer().ID(), e.ActiveBuffer().ID())
	assert.Equal(t, "one\ntwo\n", first.Buffer().String())
}

func TestSplitHorizontal(t *testing.T) {
	e := newEditor(t, "")
	feed(t, e, "<C-w><C-s>")
	require.Equal(t, 2, e.Layout().Len())
	assert.Equal(t, pane.Bounds{Left: 0, Top: 12, Width: 80, Height: 12}, e.ActivePane().Bounds())
}

func TestSplitTooSmall(t *testing.T) {
	e := newEditor(t, "", WithBounds(pane.Bounds{Width: 1, Height: 24}))
	feed(t, e, "<C-w>v")
	assert.Equal(t, 1, e.Layout().Len())
	assert.Equal(t, pane.ErrTooSmall.Error(), e.ActivePane().Status())
}

func TestPaneCycle(t *testing.T) {
	e := newEditor(t, "")
	first := e.ActivePane()
	feed(t, e, "<C-w>v")
	second := e.ActivePane()

	feed(t, e, "<C-w>h")
	assert.Same(t, first, e.ActivePane())
	feed(t, e, "<C-w>h")
	assert.Same(t, second, e.ActivePane(), "cycling wraps")
	feed(t, e, "<C-w>w")
	assert.Same(t, first, e.ActivePane())
	feed(t, e, "<C-w><C-l>")
	assert.Same(t, second, e.ActivePane())
}

func TestPaneSwitchResetsMode(t *testing.T) {
	e := newEditor(t, "abc")
	first := e.ActivePane()
	feed(t, e, "<C-w>v")

	first.Buffer().SetMode(mode.Visual)
	first.Buffer().SetExtent(2)
	feed(t, e, "<C-w>h")
	assert.Same(t, first, e.ActivePane())
	assert.Equal(t, mode.Normal, e.Mode())
	assert.Equal(t, 0, e.ActiveBuffer().Extent())
}

func TestPaneClose(t *testing.T) {
	e := newEditor(t, "keep")
	first := e.ActivePane()
	feed(t, e, "<C-w>v")

	feed(t, e, "<C-w>q")
	assert.Equal(t, 1, e.Layout().Len())
	assert.Same(t, first, e.ActivePane())
	assert.Equal(t, pane.Bounds{Width: 80, Height: 24}, first.Bounds())
	assert.Equal(t, "keep", e.ActiveBuffer().String())

	feed(t, e, "<C-w>c")
	assert.Equal(t, 1, e.Layout().Len())
	assert.True(t, e.Running(), "closing the last pane does not quit")
	assert.Equal(t, pane.ErrLastPane.Error(), e.ActivePane().Status())
}

func TestPaneCloseNested(t *testing.T) {
	e := newEditor(t, "")
	feed(t, e, "<C-w>v<C-w>s")
	require.Equal(t, 3, e.Layout().Len())

	feed(t, e, "<C-w>q")
	require.Equal(t, 2, e.Layout().Len())
	assert.Equal(t, pane.Bounds{Left: 40, Top: 0, Width: 40, Height: 24}, e.ActivePane().Bounds())

	feed(t, e, "<C-w>q")
	require.Equal(t, 1, e.Layout().Len())
	assert.Equal(t, pane.Bounds{Width: 80, Height: 24}, e.ActivePane().Bounds())
}

func TestViews(t *testing.T) {
	e := newEditor(t, "")
	feed(t, e, "<C-w>v")

	views := e.Views()
	require.Len(t, views, 2)
	assert.False(t, views[0].Active)
	assert.True(t, views[1].Active)
	assert.Equal(t, mode.Normal, views[1].Mode)
}

func TestResize(t *testing.T) {
	e := newEditor(t, "")
	feed(t, e, "<C-w>v")
	e.Resize(pane.Bounds{Width: 100, Height: 30})

	views := e.Views()
	require.Len(t, views, 2)
	assert.Equal(t, pane.Bounds{Width: 50, Height: 30}, views[0].Bounds)
	assert.Equal(t, pane.Bounds{Left: 50, Width: 50, Height: 30}, views[1].Bounds)
}
