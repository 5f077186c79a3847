// Package formatter provides an order-preserving JSON document model and its
// serialization.
//
// This package is organized into:
// - node.go: Document tree (objects keep key order, numbers keep their literal)
// - parse.go: Parsing via fastjson
// - json.go: Indented JSON serialization with non-ASCII text written literally
//
// Serialization is done manually so the output matches the input byte for byte
// apart from whitespace and the fields a caller sets.
package formatter
