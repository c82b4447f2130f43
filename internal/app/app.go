// Package app wires the browser together: configuration, logging, the data
// stores, the Lua init script, the engine and the terminal UI. It owns the
// event loop and the application lifecycle.
package app

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ripcurl/internal/browser"
	"github.com/dshills/ripcurl/internal/config"
	"github.com/dshills/ripcurl/internal/engine"
	"github.com/dshills/ripcurl/internal/input/command"
	"github.com/dshills/ripcurl/internal/input/inputbar"
	"github.com/dshills/ripcurl/internal/input/shortcut"
	"github.com/dshills/ripcurl/internal/plugin/lua"
	"github.com/dshills/ripcurl/internal/store"
	"github.com/dshills/ripcurl/internal/ui"
)

// Application is the central coordinator for all ripcurl components.
type Application struct {
	opts    Options
	cfg     *config.Config
	logger  *log.Logger
	logFile *os.File

	bookmarks *store.Bookmarks
	visited   *store.History
	lua       *lua.State
	router    *shortcut.Router[*browser.Window]
	registry  *command.Registry[*browser.Window]

	screen  *ui.Screen
	factory engine.Factory
	watcher *store.Watcher
	set     *browser.Set

	// startupErrs are shown in the first window once it is open.
	startupErrs []error
	pasting     bool
	screenUp    bool

	running   atomic.Bool
	closeOnce sync.Once
}

// Options configures the application.
type Options struct {
	// ConfigDir is the configuration directory. Empty uses
	// config.DefaultDir.
	ConfigDir string

	// LogLevel sets the logging verbosity.
	LogLevel string

	// LogFile overrides the log file from the configuration.
	LogFile string

	// Private starts with history recording disabled.
	Private bool

	// URI is loaded in the first window. Empty loads the home page.
	URI string

	// Screen replaces the controlling terminal.
	Screen tcell.Screen

	// Factory replaces the Chrome engine.
	Factory engine.Factory

	// Logger replaces the file logger.
	Logger *log.Logger
}

// New creates an application: it loads the configuration, opens the log,
// reads the data files and runs the init script. The terminal and the
// engine are started by Run.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		app.cleanup()
		return nil, err
	}
	return app, nil
}

func (app *Application) bootstrap() error {
	dir := app.opts.ConfigDir
	if dir == "" {
		var err error
		if dir, err = config.DefaultDir(); err != nil {
			return NewOperationError("locate", "config directory", err)
		}
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return NewOperationError("load", "config", err)
	}
	if app.opts.Private {
		cfg.Browser.Private = true
	}
	app.cfg = cfg

	if err := app.initLogger(); err != nil {
		return err
	}
	app.logger.Info("starting", "config", cfg.Dir)

	if err := app.initStores(); err != nil {
		return err
	}
	app.initLua()
	if err := app.initTables(); err != nil {
		return err
	}

	scr := app.opts.Screen
	if scr == nil {
		if scr, err = tcell.NewScreen(); err != nil {
			return NewOperationError("create", "terminal", err)
		}
	}
	app.screen = ui.NewScreenWith(scr, ui.NewTheme(cfg.Style))
	return nil
}

func (app *Application) initLogger() error {
	if app.opts.Logger != nil {
		app.logger = app.opts.Logger
		return nil
	}

	path := app.opts.LogFile
	if path == "" {
		path = app.cfg.Path(app.cfg.Files.Log)
	}
	lc := DefaultLoggerConfig()
	lc.Level = app.opts.LogLevel
	if path != "" {
		f, err := OpenLogFile(path)
		if err != nil {
			return NewOperationError("open", path, err)
		}
		app.logFile = f
		lc.Output = f
	}

	logger, err := NewLogger(lc)
	if err != nil {
		return err
	}
	app.logger = logger
	return nil
}

func (app *Application) initStores() error {
	if path := app.cfg.Path(app.cfg.Files.Bookmarks); path != "" {
		b, err := store.LoadBookmarks(path)
		if err != nil {
			return NewOperationError("load", path, err)
		}
		app.bookmarks = b
	}
	if path := app.cfg.Path(app.cfg.Files.History); path != "" {
		h, err := store.LoadHistory(path, app.cfg.Browser.HistoryLimit)
		if err != nil {
			return NewOperationError("load", path, err)
		}
		app.visited = h
	}
	return nil
}

// initLua runs the init script. Script errors do not stop startup; they
// are reported in the first window.
func (app *Application) initLua() {
	app.lua = lua.NewState(lua.WithLogger(componentLogger(app.logger, "lua")))

	path := app.cfg.Path(app.cfg.Files.InitScript)
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			app.startupErrs = append(app.startupErrs, NewOperationError("read", path, err))
		}
		return
	}
	if err := app.lua.DoFile(path); err != nil {
		app.logger.Error("init script failed", "path", path, "err", err)
		app.startupErrs = append(app.startupErrs, NewOperationError("run", path, err))
	}
}

func (app *Application) initTables() error {
	cmds := browser.DefaultCommands()
	cmds = append(cmds, browser.LuaCommands(app.lua.Commands(), cmds, componentLogger(app.logger, "lua"))...)
	registry, err := command.NewRegistry(cmds, browser.DefaultSpecials())
	if err != nil {
		return NewOperationError("build", "command registry", err)
	}

	shortcuts, inputbarShortcuts, err := browser.Tables(app.cfg.Shortcuts)
	if err != nil {
		return NewOperationError("bind", "shortcuts", err)
	}
	policy, _ := shortcut.ParsePolicy(app.cfg.Browser.Dispatch)

	app.registry = registry
	app.router = shortcut.NewRouter(shortcuts, inputbarShortcuts, policy)
	app.logger.Debug("shortcut tables built",
		"shortcuts", len(shortcuts), "inputbar", len(inputbarShortcuts), "policy", app.router.Policy())
	return nil
}

// Run starts the terminal and the engine, opens the first window and runs
// the event loop. It returns ErrQuit when the last window closes or quit
// is requested.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.Close()

	if err := app.screen.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	app.screenUp = true
	if err := app.startEngine(); err != nil {
		return err
	}
	app.watchBookmarks()

	set, err := browser.NewSet(browser.Options{
		Factory:   app.factory,
		Surfaces:  func() (browser.Surface, error) { return app.screen.NewSurface(), nil },
		Router:    app.router,
		Registry:  app.registry,
		History:   command.NewHistory(),
		Bookmarks: app.bookmarks,
		Visited:   app.visited,
		HomePage:  app.cfg.Browser.HomePage,
		Private:   app.cfg.Browser.Private,
		Post:      app.screen.Post,
		Logger:    componentLogger(app.logger, "browser"),
	})
	if err != nil {
		return err
	}
	app.set = set

	w, err := set.NewWindow(app.opts.URI)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoWindow, err)
	}
	for _, err := range app.startupErrs {
		w.Notify(inputbar.Error, err.Error())
	}

	return app.eventLoop()
}

func (app *Application) startEngine() error {
	if app.opts.Factory != nil {
		app.factory = app.opts.Factory
		return nil
	}
	chrome, err := engine.LaunchChrome(engine.ChromeOptions{
		ExecPath:    app.cfg.Engine.ChromePath,
		Headless:    app.cfg.Engine.Headless,
		UserAgent:   app.cfg.Browser.UserAgent,
		DownloadDir: app.cfg.DownloadDir(),
		OnDownload:  app.downloadNotice,
		Logger:      componentLogger(app.logger, "engine"),
	})
	if err != nil {
		return NewOperationError("launch", "chrome", err)
	}
	app.factory = chrome
	return nil
}

// watchBookmarks reloads the bookmarks file when it is edited outside the
// browser.
func (app *Application) watchBookmarks() {
	if app.bookmarks == nil {
		return
	}
	w, err := store.NewWatcher(componentLogger(app.logger, "watcher"), 0)
	if err != nil {
		app.logger.Warn("file watching unavailable", "err", err)
		return
	}
	app.watcher = w

	path := app.bookmarks.Path()
	err = w.Watch(path, func() {
		app.screen.Post(app.reloadBookmarks)
	})
	if err != nil {
		app.logger.Warn("watching bookmarks", "path", path, "err", err)
	}
}

func (app *Application) reloadBookmarks() {
	if err := app.bookmarks.Reload(); err != nil {
		app.logger.Warn("reloading bookmarks", "err", err)
		return
	}
	app.logger.Debug("bookmarks reloaded", "count", len(app.bookmarks.List()))
}

// downloadNotice runs on engine goroutines.
func (app *Application) downloadNotice(name string, finished bool) {
	msg := "Download started: " + name
	if finished {
		msg = "Download finished: " + name
	}
	app.screen.Post(func() {
		if w := app.set.Active(); w != nil {
			w.Notify(inputbar.Default, msg)
		}
	})
}

// Shutdown asks a running application to quit. It is safe to call from
// any goroutine.
func (app *Application) Shutdown() {
	if !app.running.Load() {
		return
	}
	app.screen.Post(func() {
		if app.set != nil {
			app.set.Quit()
		}
	})
}

// Close closes every window, writes the data files and releases the
// engine and the terminal. It is idempotent.
func (app *Application) Close() {
	app.closeOnce.Do(app.cleanup)
}

func (app *Application) cleanup() {
	if app.set != nil {
		app.set.CloseAll()
	}
	if app.visited != nil {
		if err := app.visited.Save(); err != nil {
			app.logger.Error("saving history", "err", err)
		}
	}
	if app.bookmarks != nil {
		if err := app.bookmarks.Save(); err != nil {
			app.logger.Error("saving bookmarks", "err", err)
		}
	}
	if app.factory != nil {
		if err := app.factory.Close(); err != nil {
			app.logger.Warn("closing engine", "err", err)
		}
	}
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	if app.lua != nil {
		_ = app.lua.Close()
	}
	if app.screenUp {
		app.screen.Fini()
	}
	if app.logger != nil {
		app.logger.Info("stopped")
	}
	if app.logFile != nil {
		_ = app.logFile.Close()
	}
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Windows returns the window set, nil before Run.
func (app *Application) Windows() *browser.Set {
	return app.set
}
