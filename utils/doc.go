// Package utils provides internal helpers for the metro-indexer command.
// This package is not intended to be imported by external code.
package utils
