// Package config loads the ripcurl configuration.
//
// Configuration is layered: built-in defaults, then the TOML file
// <config dir>/config.toml, then RIPCURL_* environment variables. Keys
// missing from the file keep their default. Unknown keys are rejected so
// that typos do not pass silently.
//
// The config directory is $RIPCURL_CONFIG_DIR when set, otherwise
// ripcurl under the user configuration directory. Relative file names in
// the [files] section are resolved against it.
//
// Example:
//
//	[browser]
//	home_page = "https://duckduckgo.com"
//	dispatch = "first"
//
//	[[shortcuts]]
//	keys = "<C-r>"
//	action = "reload"
//	arg = "true"
package config
