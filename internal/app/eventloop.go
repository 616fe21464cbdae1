package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/shin/internal/config"
	"github.com/dshills/shin/internal/pane"
)

// eventLoop is the main application loop. All editor state is touched from
// this goroutine only; screen events and config reloads arrive on channels.
func (app *Application) eventLoop() error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go app.screen.ChannelEvents(events, quit)

	var (
		updates <-chan *config.Config
		errs    <-chan error
	)
	if app.watcher != nil {
		updates, errs = app.watcher.Updates(), app.watcher.Errors()
	}

	app.draw()
	for {
		select {
		case <-app.done:
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.handleEvent(ev); err != nil {
				return err
			}

		case cfg := <-updates:
			app.applyConfig(cfg)

		case err := <-errs:
			app.log.Warn("config reload: %v", err)
			app.editor.ActivePane().SetStatus(err.Error())
		}
		app.draw()
	}
}

// handleEvent processes a screen event. Returns ErrQuit if the editor quit.
func (app *Application) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return app.handleKey(ev)
	case *tcell.EventResize:
		app.screen.Sync()
		app.resize()
	}
	return nil
}

func (app *Application) handleKey(ev *tcell.EventKey) error {
	kev, ok := convertKey(ev)
	if !ok {
		app.log.Debug("ignored key %s", ev.Name())
		return nil
	}
	app.metrics.RecordKey()
	app.editor.Dispatch(kev)
	if !app.editor.Running() {
		return ErrQuit
	}
	return nil
}

// resize lays the panes out over the screen minus the command line row.
func (app *Application) resize() {
	w, h := app.screen.Size()
	app.editor.Resize(pane.Bounds{Width: w, Height: max(1, h-1)})
}

func (app *Application) draw() {
	start := time.Now()
	app.render.draw(app.editor)
	app.metrics.RecordFrame(time.Since(start))
}

// applyConfig switches to a reloaded configuration. The bindings are rebuilt
// from scratch so overrides removed from the file stop applying.
func (app *Application) applyConfig(cfg *config.Config) {
	app.cfg = cfg
	app.metrics.RecordReload()
	if app.opts.LogLevel == "" {
		app.log.SetLevel(cfg.LogLevel())
	}
	keymaps, grammar, problems := app.bindings()
	app.editor.SetBindings(keymaps, grammar)
	for _, p := range problems {
		app.log.Warn("%s", p)
	}
	if len(problems) > 0 {
		app.editor.ActivePane().SetStatus(problems[0])
	}
	app.render.configure(cfg)
	app.log.Info("reloaded %s", cfg.Path)
}
