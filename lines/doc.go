// Package lines holds the static table mapping Moscow metro line names to
// their short index codes.
//
// The table is compiled into the binary and is not configurable. Lookups are
// exact: the name must match a key byte for byte, so case, whitespace and
// hyphen variants are treated as unknown lines.
//
//	code, ok := lines.Lookup("Кольцевая") // "5", true
//	_, ok = lines.Lookup("Unknown Line")   // "", false
package lines
