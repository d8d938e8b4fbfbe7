// Package config holds the clock's settings. Values come from a YAML file,
// are overridden by INKCLOCK_* environment variables, and finally by
// command-line flags.
package config
