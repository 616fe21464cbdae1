package editor

import (
	"github.com/dshills/shin/internal/engine/buffer"
	"github.com/dshills/shin/internal/excmd"
	"github.com/dshills/shin/internal/fileio"
	"github.com/dshills/shin/internal/input/keymap"
	"github.com/dshills/shin/internal/input/mode"
	"github.com/dshills/shin/internal/input/vim"
	"github.com/dshills/shin/internal/logging"
	"github.com/dshills/shin/internal/pane"
	"github.com/dshills/shin/internal/register"
)

// DefaultBounds is the layout size used until the host reports one.
var DefaultBounds = pane.Bounds{Width: 80, Height: 23}

// Editor is the editing session.
type Editor struct {
	bounds   pane.Bounds
	layout   *pane.Layout
	keymaps  *keymap.Set
	parser   *vim.Parser
	cmdline  *buffer.Buffer
	storage  fileio.Storage
	register *register.Register
	log      *logging.Logger
	capacity int
	running  bool

	// visualLine marks a selection started with V; deleting or yanking it
	// fills the register linewise.
	visualLine bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithBounds sets the initial layout size.
func WithBounds(b pane.Bounds) Option {
	return func(e *Editor) { e.bounds = b }
}

// WithKeymaps replaces the default keymaps.
func WithKeymaps(s *keymap.Set) Option {
	return func(e *Editor) { e.keymaps = s }
}

// WithGrammar replaces the default normal-mode grammar.
func WithGrammar(g *vim.Grammar) Option {
	return func(e *Editor) { e.parser = vim.NewParser(g) }
}

// WithStorage sets where files are loaded from and saved to.
func WithStorage(s fileio.Storage) Option {
	return func(e *Editor) { e.storage = s }
}

// WithRegister sets the yank register.
func WithRegister(r *register.Register) Option {
	return func(e *Editor) { e.register = r }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) { e.log = l.WithComponent("editor") }
}

// WithCapacity sets the initial capacity of new buffers.
func WithCapacity(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.capacity = n
		}
	}
}

// New creates an editor with one empty pane in Normal mode.
func New(opts ...Option) *Editor {
	e := &Editor{
		bounds:   DefaultBounds,
		capacity: buffer.DefaultCapacity,
		log:      logging.Null(),
		running:  true,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.layout = pane.NewLayout(e.bounds, e.newBuffer())
	if e.keymaps == nil {
		e.keymaps = keymap.Defaults()
	}
	if e.parser == nil {
		e.parser = vim.NewParser(nil)
	}
	if e.storage == nil {
		e.storage = fileio.OS{}
	}
	if e.register == nil {
		e.register = register.New(nil)
	}
	e.cmdline = buffer.New(buffer.WithCapacity(excmd.MaxLength), buffer.WithMode(mode.Command))
	e.layout.UpdateScroll()
	return e
}

func (e *Editor) newBuffer() *buffer.Buffer {
	return buffer.New(buffer.WithCapacity(e.capacity))
}

// Layout returns the pane layout.
func (e *Editor) Layout() *pane.Layout { return e.layout }

// ActivePane returns the pane receiving input.
func (e *Editor) ActivePane() *pane.Pane { return e.layout.Active() }

// ActiveBuffer returns the buffer of the active pane.
func (e *Editor) ActiveBuffer() *buffer.Buffer { return e.layout.Active().Buffer() }

// Mode returns the mode of the active buffer.
func (e *Editor) Mode() mode.Mode { return e.ActiveBuffer().Mode() }

// CommandLine returns the command-line buffer. Its text starts with ':'
// while the active buffer is in Command mode.
func (e *Editor) CommandLine() *buffer.Buffer { return e.cmdline }

// Pending returns the normal-mode keys typed so far.
func (e *Editor) Pending() string { return e.parser.Pending() }

// Keymaps returns the per-mode keymaps.
func (e *Editor) Keymaps() *keymap.Set { return e.keymaps }

// Grammar returns the normal-mode grammar.
func (e *Editor) Grammar() *vim.Grammar { return e.parser.Grammar() }

// SetBindings replaces the keymaps and the normal-mode grammar. A pending
// normal-mode sequence is dropped.
func (e *Editor) SetBindings(k *keymap.Set, g *vim.Grammar) {
	e.keymaps = k
	e.parser = vim.NewParser(g)
}

// Register returns the yank register.
func (e *Editor) Register() *register.Register { return e.register }

// Running reports whether the session is still going.
func (e *Editor) Running() bool { return e.running }

// Quit ends the session.
func (e *Editor) Quit() { e.running = false }

// Views returns a render snapshot of every pane.
func (e *Editor) Views() []pane.View {
	views := e.layout.Views()
	for i := range views {
		views[i].LineWise = views[i].Active && e.visualLine
	}
	return views
}

// Resize lays the panes out over b.
func (e *Editor) Resize(b pane.Bounds) {
	e.layout.Resize(b)
	e.layout.UpdateScroll()
}

// Open binds path to the active buffer and loads it. A missing file leaves
// an empty buffer bound to path, so a later write creates it.
func (e *Editor) Open(path string) error {
	buf := e.ActiveBuffer()
	buf.SetPath(path)
	err := e.load(buf)
	buf.SetCursor(0)
	e.layout.UpdateScroll()
	return err
}
