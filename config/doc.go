// Package config handles application configuration loading and validation.
//
// Settings come from, in increasing precedence: built-in defaults, an optional
// metro-indexer.yml file, a .env file next to the executable and the process
// environment. Command-line flags are applied on top by the caller. The line
// index table is not configurable.
package config
