package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/shin/internal/config"
	"github.com/dshills/shin/internal/fileio"
	"github.com/dshills/shin/internal/input/key"
	"github.com/dshills/shin/internal/input/keymap"
	"github.com/dshills/shin/internal/input/mode"
)

type memClipboard struct{ text string }

func (c *memClipboard) ReadAll() (string, error) { return c.text, nil }

func (c *memClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func lookup(env map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// newTestApp creates an application on a 40x10 simulation screen with
// logging off and in-memory storage.
func newTestApp(t *testing.T, opts Options) (*Application, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	opts.Screen = sim
	if opts.ConfigPath == "" {
		opts.ConfigPath = filepath.Join(t.TempDir(), "config.toml")
	}
	if opts.Storage == nil {
		opts.Storage = fileio.NewMemory(nil)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = &memClipboard{}
	}
	if opts.Lookup == nil {
		opts.Lookup = lookup(map[string]string{config.EnvLogFile: ""})
	}

	app, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(app.Shutdown)

	require.NoError(t, app.init())
	sim.SetSize(40, 10)
	app.resize()
	return app, sim
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// typeText sends each byte of s as a key press.
func typeText(t *testing.T, app *Application, s string) {
	t.Helper()
	for _, r := range s {
		var ev *tcell.EventKey
		switch r {
		case '\r':
			ev = tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
		case 0x1b:
			ev = tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
		default:
			ev = tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
		}
		require.NoError(t, app.handleEvent(ev))
	}
}

func ctrl(app *Application, k tcell.Key) error {
	return app.handleEvent(tcell.NewEventKey(k, 0, tcell.ModCtrl))
}

func TestNew(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	assert.NotNil(t, app.Editor())
	assert.Equal(t, mode.Normal, app.Editor().Mode())
	assert.Equal(t, 4, app.Config().Editor.TabWidth)
	assert.False(t, app.IsRunning())
	assert.Nil(t, app.watcher)
}

func TestNewOpensFile(t *testing.T) {
	store := fileio.NewMemory(map[string]string{"notes.txt": "one\ntwo\n"})
	app, _ := newTestApp(t, Options{File: "notes.txt", Storage: store})

	buf := app.Editor().ActiveBuffer()
	assert.Equal(t, "one\ntwo\n", buf.String())
	assert.Equal(t, "notes.txt", buf.Path())
}

func TestNewMissingFile(t *testing.T) {
	app, _ := newTestApp(t, Options{File: "new.txt"})

	assert.Equal(t, `"new.txt" [New]`, app.Editor().ActivePane().Status())
	assert.Equal(t, "new.txt", app.Editor().ActiveBuffer().Path())
}

func TestNewBadConfig(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_width = 99\n")
	app, _ := newTestApp(t, Options{ConfigPath: path})

	assert.Equal(t, 4, app.Config().Editor.TabWidth)
	assert.Contains(t, app.Editor().ActivePane().Status(), "tab_width")
}

func TestNewBadLogLevel(t *testing.T) {
	_, err := New(Options{
		ConfigPath: filepath.Join(t.TempDir(), "config.toml"),
		LogLevel:   "loud",
		Lookup:     lookup(map[string]string{config.EnvLogFile: ""}),
	})

	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "logging", initErr.Component)
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "shin.log")
	app, _ := newTestApp(t, Options{
		Lookup: lookup(map[string]string{config.EnvLogFile: logPath}),
	})

	typeText(t, app, "ix")
	app.Shutdown()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shutdown after")
	assert.Contains(t, string(data), "2 keys")
}

func TestKeymapOverride(t *testing.T) {
	path := writeConfig(t, `
[editor]
line_numbers = false

[keymap.normal]
"<C-s>" = "file.save"
`)
	store := fileio.NewMemory(map[string]string{"a.txt": "x"})
	app, sim := newTestApp(t, Options{ConfigPath: path, File: "a.txt", Storage: store})

	typeText(t, app, "0iy\x1b")
	require.NoError(t, ctrl(app, tcell.KeyCtrlS))

	got, ok := store.File("a.txt")
	require.True(t, ok)
	assert.Equal(t, "yx", got)

	app.draw()
	assert.Equal(t, "yx", row(sim, 0))
}

func TestBadKeymapOverride(t *testing.T) {
	path := writeConfig(t, `
[keymap.normal]
"<C-s>" = "no.such.action"
`)
	app, _ := newTestApp(t, Options{ConfigPath: path})

	assert.Contains(t, app.Editor().ActivePane().Status(), "keymap")
}

func TestInitScript(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "init.lua"),
		[]byte(`shin.map("normal", "<C-q>", "editor.quit")`), 0o644))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[script]\ninit = \"init.lua\"\n"), 0o644))

	app, _ := newTestApp(t, Options{ConfigPath: path})

	assert.Empty(t, app.Editor().ActivePane().Status())
	assert.ErrorIs(t, ctrl(app, tcell.KeyCtrlQ), ErrQuit)
}

func TestInitScriptError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "init.lua"),
		[]byte(`shin.map("normal", "<C-q>", "bogus")`), 0o644))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[script]\ninit = \"init.lua\"\n"), 0o644))

	app, _ := newTestApp(t, Options{ConfigPath: path})

	assert.True(t, strings.HasPrefix(app.Editor().ActivePane().Status(), "script:"))
}

func TestQuitCommand(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	typeText(t, app, ":q")
	err := app.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.ErrorIs(t, err, ErrQuit)
	assert.False(t, app.Editor().Running())
}

func TestRunQuits(t *testing.T) {
	app, sim := newTestApp(t, Options{})

	sim.InjectKey(tcell.KeyRune, ':', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrQuit)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.Equal(t, uint64(3), app.Metrics().Snapshot().Keys)
	assert.False(t, app.IsRunning())
}

func TestShutdownStopsRun(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	require.Eventually(t, app.IsRunning, 5*time.Second, 10*time.Millisecond)
	app.Shutdown()
	app.Shutdown()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestRunTwice(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	app.running.Store(true)

	assert.ErrorIs(t, app.Run(), ErrAlreadyRunning)
}

func TestWatchReload(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_width = 4\n")
	app, _ := newTestApp(t, Options{ConfigPath: path, Watch: true})
	require.NotNil(t, app.watcher)

	done := make(chan error, 1)
	go func() { done <- app.Run() }()
	require.Eventually(t, app.IsRunning, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("[editor]\ntab_width = 8\n"), 0o644))
	require.Eventually(t, func() bool {
		return app.Metrics().Snapshot().Reloads > 0
	}, 5*time.Second, 20*time.Millisecond)

	app.Shutdown()
	require.NoError(t, <-done)
	assert.Equal(t, 8, app.Config().Editor.TabWidth)
	assert.Equal(t, tabStops(8), app.render.tabs)
}

func TestApplyConfig(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	cfg := config.Default()
	cfg.Editor.TabWidth = 2
	cfg.Editor.LineNumbers = false
	cfg.Keymap = keymap.Overrides{"normal": {"<C-q>": "editor.quit"}}
	app.applyConfig(cfg)

	assert.Same(t, cfg, app.Config())
	assert.Equal(t, tabStops(2), app.render.tabs)
	assert.False(t, app.render.lineNumbers)
	assert.Equal(t, uint64(1), app.Metrics().Snapshot().Reloads)
	assert.ErrorIs(t, ctrl(app, tcell.KeyCtrlQ), ErrQuit)
}

func TestApplyConfigRebuildsBindings(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	left := key.Combine(key.KeyLeft, key.ModNone)

	steps := []struct {
		name      string
		overrides keymap.Overrides
		ctrlQ     keymap.Action
		left      keymap.Action
		status    string
	}{
		{"override", keymap.Overrides{"normal": {"<C-q>": "editor.quit", "<Left>": "editor.quit"}},
			keymap.ActionQuit, keymap.ActionQuit, ""},
		{"override removed", nil, keymap.ActionNormalPending, keymap.ActionCursorLeft, ""},
		{"bad override", keymap.Overrides{"normal": {"<C-q>": "no.such.action"}},
			keymap.ActionNormalPending, keymap.ActionCursorLeft, "keymap:"},
	}
	for _, st := range steps {
		cfg := config.Default()
		cfg.Keymap = st.overrides
		app.Editor().ActivePane().SetStatus("")
		app.applyConfig(cfg)

		km := app.Editor().Keymaps()
		assert.Equal(t, st.ctrlQ, km.Lookup(mode.Normal, key.Ctrl('q')), st.name)
		assert.Equal(t, st.left, km.Lookup(mode.Normal, left), st.name)
		if st.status == "" {
			assert.Empty(t, app.Editor().ActivePane().Status(), st.name)
		} else {
			assert.True(t, strings.HasPrefix(app.Editor().ActivePane().Status(), st.status), st.name)
		}
	}
}

func TestApplyConfigRerunsScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "init.lua")
	require.NoError(t, os.WriteFile(script, []byte(`shin.map("normal", "<C-q>", "editor.quit")`), 0o644))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[script]\ninit = \"init.lua\"\n"), 0o644))

	app, _ := newTestApp(t, Options{ConfigPath: path})
	require.Equal(t, keymap.ActionQuit, app.Editor().Keymaps().Lookup(mode.Normal, key.Ctrl('q')))

	typeText(t, app, "2d")
	require.Equal(t, "2d", app.Editor().Pending())

	require.NoError(t, os.WriteFile(script, []byte(`shin.log("reloaded")`), 0o644))
	cfg := config.Default()
	cfg.Path = path
	cfg.Script.Init = "init.lua"
	app.applyConfig(cfg)

	assert.Equal(t, keymap.ActionNormalPending, app.Editor().Keymaps().Lookup(mode.Normal, key.Ctrl('q')))
	assert.Empty(t, app.Editor().Pending())
	assert.Empty(t, app.Editor().ActivePane().Status())
}

func TestResizeEvent(t *testing.T) {
	app, sim := newTestApp(t, Options{})

	sim.SetSize(60, 12)
	require.NoError(t, app.handleEvent(tcell.NewEventResize(60, 12)))

	views := app.Editor().Views()
	require.Len(t, views, 1)
	assert.Equal(t, 60, views[0].Bounds.Width)
	assert.Equal(t, 11, views[0].Bounds.Height)
}

func TestUnknownKeyIgnored(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	require.NoError(t, app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone)))
	assert.Zero(t, app.Metrics().Snapshot().Keys)
}
