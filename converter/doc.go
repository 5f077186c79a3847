// Package converter annotates a metro dataset with line index codes.
//
// # Overview
//
// The input is a JSON document with a top-level "lines" array. Every line whose
// "name" is in the lines table gets an "index" field, and so does the embedded
// "line" object of each of its stations. Everything else, including key order
// and number literals, is written back unchanged.
//
// # Usage
//
//	conv := converter.NewConverter(converter.Options{Indent: 2}, logger)
//	res, err := conv.Convert(ctx, "stations.json", "stations_with_indexes.json")
//	var perr *converter.ParseError
//	if errors.As(err, &perr) {
//	    // invalid JSON or missing "lines"/"name"/"stations"/"line"
//	}
//
// Annotate runs the same pass on an already parsed document:
//
//	doc, _ := formatter.Parse(data)
//	res, err := conv.Annotate(doc)
//
// # Failure semantics
//
// Read, parse and structure failures abort the run before the output path is
// touched. The output is written through a temporary file and renamed into
// place. Lines missing from the table are not errors; they are collected into
// a warning summary logged at debug level, or warn when
// Options.ReportUnmatched is set.
//
// # Thread Safety
//
// A Converter holds no per-run state and may be reused. Annotate mutates the
// document it is given.
package converter
