// Package app hosts the editor in a terminal. It wires configuration,
// logging, scripting and the clipboard into an editor.Editor and runs the
// screen event loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/shin/internal/config"
	"github.com/dshills/shin/internal/editor"
	"github.com/dshills/shin/internal/fileio"
	"github.com/dshills/shin/internal/input/keymap"
	"github.com/dshills/shin/internal/input/vim"
	"github.com/dshills/shin/internal/logging"
	"github.com/dshills/shin/internal/register"
	"github.com/dshills/shin/internal/script"
)

// Application owns the screen and the editing session.
type Application struct {
	opts    Options
	cfg     *config.Config
	log     *logging.Logger
	logFile io.Closer

	editor  *editor.Editor
	screen  tcell.Screen
	render  *renderer
	watcher *config.Watcher
	metrics *Metrics

	// notices are problems found during startup, shown once the screen is up.
	notices []string

	running      atomic.Bool
	initialized  bool
	done         chan struct{}
	shutdownOnce sync.Once
}

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty uses config.DefaultPath.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// File is opened into the first pane.
	File string

	// Watch reloads the configuration when its file changes.
	Watch bool

	// Screen replaces the terminal screen, e.g. with a simulation screen.
	Screen tcell.Screen

	// Storage replaces the file system.
	Storage fileio.Storage

	// Clipboard replaces the system clipboard.
	Clipboard register.Clipboard

	// Lookup replaces os.LookupEnv for SHIN_* overrides.
	Lookup config.LookupFunc
}

// New creates an Application with the given options. Configuration,
// keymap and script problems are not fatal: they are logged and shown in
// the status line.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		log:     logging.Null(),
		screen:  opts.Screen,
		metrics: NewMetrics(),
		done:    make(chan struct{}),
	}
	if opts.Lookup == nil {
		app.opts.Lookup = os.LookupEnv
	}
	if opts.ConfigPath == "" {
		app.opts.ConfigPath = config.DefaultPath()
	}

	cfg, err := config.LoadEnv(app.opts.ConfigPath, app.opts.Lookup)
	if err != nil {
		app.notices = append(app.notices, err.Error())
		cfg = config.Default()
	}
	app.cfg = cfg

	if err := app.openLog(); err != nil {
		return nil, &InitError{Component: "logging", Err: err}
	}
	for _, n := range app.notices {
		app.log.Warn("config: %s", n)
	}

	keymaps, grammar, problems := app.bindings()
	for _, p := range problems {
		app.notice("%s", p)
	}

	clip := opts.Clipboard
	if clip == nil && register.SystemAvailable() {
		clip = register.System{}
	}
	edOpts := []editor.Option{
		editor.WithKeymaps(keymaps),
		editor.WithGrammar(grammar),
		editor.WithRegister(register.New(clip)),
		editor.WithLogger(app.log),
		editor.WithCapacity(cfg.Editor.InitialCapacity),
	}
	if opts.Storage != nil {
		edOpts = append(edOpts, editor.WithStorage(opts.Storage))
	}
	app.editor = editor.New(edOpts...)

	if opts.File != "" {
		if err := app.editor.Open(opts.File); err != nil {
			if errors.Is(err, fileio.ErrNotExist) {
				app.editor.ActivePane().SetStatus(fmt.Sprintf("%q [New]", opts.File))
			} else {
				app.notice("open: %v", err)
			}
		}
	}

	app.render = newRenderer(cfg)

	if opts.Watch && app.opts.ConfigPath != "" {
		w, err := config.NewWatcher(app.opts.ConfigPath, config.WithLookup(app.opts.Lookup))
		if err != nil {
			app.log.Warn("config watcher: %v", err)
		} else {
			app.watcher = w
		}
	}

	if len(app.notices) > 0 {
		app.editor.ActivePane().SetStatus(app.notices[0])
	}
	return app, nil
}

// notice logs a startup problem and queues it for the status line.
func (app *Application) notice(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	app.log.Warn("%s", msg)
	app.notices = append(app.notices, msg)
}

// openLog sets up the log file. An empty log path disables logging.
func (app *Application) openLog() error {
	level := app.cfg.LogLevel()
	if app.opts.LogLevel != "" {
		l, ok := logging.ParseLevel(app.opts.LogLevel)
		if !ok {
			return fmt.Errorf("unknown log level %q", app.opts.LogLevel)
		}
		level = l
	}
	if app.cfg.Log.File == "" {
		return nil
	}
	f, err := logging.OpenFile(app.cfg.Log.File)
	if err != nil {
		return err
	}
	app.logFile = f
	app.log = logging.New(logging.Config{Level: level, Output: f, Prefix: "shin"})
	return nil
}

// bindings builds fresh keymaps and grammar from the defaults, then the
// configured overrides, then the init script. The bindings are usable even
// when problems are reported.
func (app *Application) bindings() (*keymap.Set, *vim.Grammar, []string) {
	var problems []string
	keymaps := keymap.Defaults()
	if err := keymaps.Apply(app.cfg.Keymap); err != nil {
		problems = append(problems, fmt.Sprintf("keymap: %v", err))
	}
	grammar := vim.DefaultGrammar()
	if err := app.runScript(keymaps, grammar); err != nil {
		problems = append(problems, fmt.Sprintf("script: %v", err))
	}
	return keymaps, grammar, problems
}

// runScript runs the init script against the keymaps and grammar before
// the editor takes them over. A relative path is resolved against the
// directory of the configuration file.
func (app *Application) runScript(k *keymap.Set, g *vim.Grammar) error {
	path := app.cfg.Script.Init
	if path == "" {
		return nil
	}
	if !filepath.IsAbs(path) && app.cfg.Path != "" {
		path = filepath.Join(filepath.Dir(app.cfg.Path), path)
	}
	rt := script.New(script.Targets{Keymaps: k, Grammar: g, Logger: app.log})
	defer rt.Close()
	if err := rt.DoFile(context.Background(), path); err != nil {
		return err
	}
	app.log.Info("ran init script %s", path)
	return nil
}

// init opens the screen and sizes the layout to it.
func (app *Application) init() error {
	if app.initialized {
		return nil
	}
	if app.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return &InitError{Component: "screen", Err: err}
		}
		app.screen = s
	}
	if err := app.screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	app.render.screen = app.screen
	app.initialized = true
	app.resize()
	return nil
}

// Run opens the screen and processes events until the editor quits or
// Shutdown is called. Quitting from the editor returns ErrQuit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.init(); err != nil {
		return err
	}
	defer app.screen.Fini()

	return app.eventLoop()
}

// Shutdown stops the event loop and releases the watcher and log file.
// It is safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		close(app.done)
		if app.watcher != nil {
			if err := app.watcher.Close(); err != nil {
				app.log.Warn("close watcher: %v", err)
			}
		}
		s := app.metrics.Snapshot()
		app.log.Info("shutdown after %s: %d keys, %d frames (avg %s, max %s), %d reloads",
			s.Uptime, s.Keys, s.Frames, s.FrameAvg, s.FrameMax, s.Reloads)
		if app.logFile != nil {
			_ = app.logFile.Close()
		}
	})
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Editor returns the editing session.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Metrics returns the input and frame counters.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
