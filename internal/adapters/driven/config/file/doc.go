// Package file persists application settings to a TOML file in the
// user's linecull config directory. It backs the ConfigStore port.
package file
