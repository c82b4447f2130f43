package config

// BrowserConfig holds browsing behaviour.
type BrowserConfig struct {
	// HomePage is loaded when no URI is given on the command line.
	HomePage string `toml:"home_page"`

	// UserAgent overrides the engine's user agent when set.
	UserAgent string `toml:"user_agent"`

	// Private disables history recording at startup.
	Private bool `toml:"private"`

	// Dispatch is the shortcut dispatch policy: "all" or "first".
	Dispatch string `toml:"dispatch"`

	// HistoryLimit caps the number of history entries written on exit.
	// Zero means no cap.
	HistoryLimit int `toml:"history_limit"`
}

// FilesConfig names the data files. Relative names are resolved against
// the config directory.
type FilesConfig struct {
	Bookmarks  string `toml:"bookmarks"`
	History    string `toml:"history"`
	InitScript string `toml:"init_script"`
	Log        string `toml:"log"`
}

// DownloadConfig controls downloads.
type DownloadConfig struct {
	// Dir is where downloads are saved. A leading ~ is expanded.
	Dir string `toml:"dir"`
}

// EngineConfig controls the Chrome process.
type EngineConfig struct {
	// ChromePath is the Chrome binary. Empty means auto-detect.
	ChromePath string `toml:"chrome_path"`

	// Headless runs Chrome without a window.
	Headless bool `toml:"headless"`
}

// StyleConfig holds colors as names or #rrggbb values.
type StyleConfig struct {
	InputbarBG  string `toml:"inputbar_bg"`
	InputbarFG  string `toml:"inputbar_fg"`
	StatusbarBG string `toml:"statusbar_bg"`
	StatusbarFG string `toml:"statusbar_fg"`
	ErrorFG     string `toml:"error_fg"`
	WarningFG   string `toml:"warning_fg"`
}

// ShortcutBinding is a user shortcut from a [[shortcuts]] table.
type ShortcutBinding struct {
	// Keys is a key specification such as "<C-r>" or "G".
	Keys string `toml:"keys"`

	// Action names a shortcut action such as "reload" or "scroll".
	Action string `toml:"action"`

	// Mode is "normal", "insert" or "all". Empty means normal.
	Mode string `toml:"mode"`

	// Inputbar binds the key while the input bar has focus instead.
	Inputbar bool `toml:"inputbar"`

	// Arg is the action argument in its textual form.
	Arg string `toml:"arg"`
}
