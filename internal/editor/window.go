package editor

import (
	"github.com/dshills/shin/internal/input/mode"
	"github.com/dshills/shin/internal/pane"
)

// split divides the active pane. The new pane shows a fresh empty buffer
// and becomes active; the old buffer returns to Normal mode.
func (e *Editor) split(vertical bool) {
	old := e.ActivePane()
	o := pane.Horizontal
	if vertical {
		o = pane.Vertical
	}
	p, err := e.layout.Split(o, e.newBuffer())
	if err != nil {
		old.SetStatus(err.Error())
		e.log.Debug("split %s: %v", o, err)
		return
	}
	old.Buffer().SetMode(mode.Normal)
	old.Buffer().SetExtent(0)
	e.log.Debug("split %s: %d panes, new buffer %s", o, e.layout.Len(), p.Buffer().ID())
}

// focus makes p's buffer ready for input after a pane switch.
func (e *Editor) focus(p *pane.Pane) {
	e.visualLine = false
	p.Buffer().SetMode(mode.Normal)
	p.Buffer().SetExtent(0)
}

// closePane closes the active pane unless it is the last one.
func (e *Editor) closePane() {
	closed, err := e.layout.Close()
	if err != nil {
		e.ActivePane().SetStatus(err.Error())
		return
	}
	e.log.Debug("closed pane showing %s", closed.Buffer().ID())
	e.focus(e.ActivePane())
}
