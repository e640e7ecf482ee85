// Package config loads and validates the application configuration.
//
// Configuration is a single JSON file layered over built-in defaults, so
// the binary runs usefully with no file at all. Validation happens at load
// time and normalizes what it checks (e.g. trailing slashes on the remote
// base URL), so downstream components can trust the values they receive.
package config
