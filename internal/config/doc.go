// Package config loads and validates application settings from
// environment variables (WORTWAHL_ prefix) and an optional config file,
// giving the rest of the application type-safe access to server, database
// and drill options.
package config
