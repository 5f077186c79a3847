package converter

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/metro-indexer/formatter"
	"github.com/theoremus-urban-solutions/metro-indexer/lines"
)

// Converter annotates metro datasets with line index codes
type Converter struct {
	opts   Options
	log    zerolog.Logger
	writer *formatter.Writer
}

// NewConverter creates a new converter instance
func NewConverter(opts Options, log zerolog.Logger) *Converter {
	return &Converter{opts: opts, log: log, writer: formatter.NewWriter(opts.Indent)}
}

// Convert reads inputPath, annotates every known line and its stations and
// writes the result to outputPath. Nothing is written unless the input was
// read, parsed and annotated successfully.
func (c *Converter) Convert(ctx context.Context, inputPath, outputPath string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Result{}, &IOError{Op: "read", Path: inputPath, Err: err}
	}

	doc, err := formatter.Parse(data)
	if err != nil {
		return Result{}, &ParseError{Path: inputPath, Err: err}
	}

	res, err := c.Annotate(doc)
	if err != nil {
		return Result{}, &ParseError{Path: inputPath, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := writeFileAtomic(outputPath, c.writer.BuildJSON(doc)); err != nil {
		return Result{}, &IOError{Op: "write", Path: outputPath, Err: err}
	}

	c.log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("lines", res.Lines).
		Int("indexed_lines", res.IndexedLines).
		Int("indexed_stations", res.IndexedStations).
		Int("unmatched_lines", len(res.Unmatched)).
		Msg("Conversion complete")
	return res, nil
}

// Annotate sets "index" on every line whose name is in the table and on the
// embedded line object of each of its stations. Lines missing from the table,
// including lines whose name is not a string, are left untouched and their
// stations are not inspected. Non-string names are reported by their JSON text.
func (c *Converter) Annotate(doc *formatter.Node) (Result, error) {
	var res Result
	warnings := NewWarningAggregator()

	lineNodes := doc.Get("lines")
	if lineNodes == nil || lineNodes.Kind() != formatter.KindArray {
		return res, structureError(`top-level "lines" array is missing`)
	}

	for i, line := range lineNodes.Items() {
		res.Lines++
		nameNode := line.Get("name")
		if nameNode == nil {
			return res, structureError(`lines[%d] has no "name"`, i)
		}

		// a non-string name can never match the table
		name, isString := nameNode.Str()
		if !isString {
			name = formatter.Compact(nameNode)
		}
		code, known := lines.Lookup(name)
		if !known || !isString {
			res.Unmatched = append(res.Unmatched, name)
			warnings.Add(WarningUnknownLine, name)
			continue
		}

		stations := line.Get("stations")
		if stations == nil || stations.Kind() != formatter.KindArray {
			return res, structureError(`lines[%d] (%s) has no "stations" array`, i, name)
		}

		checkReplaced(warnings, line, code, name)
		line.Set("index", formatter.NewString(code))
		res.IndexedLines++

		for j, station := range stations.Items() {
			embedded := station.Get("line")
			if embedded == nil || embedded.Kind() != formatter.KindObject {
				return res, structureError(`lines[%d].stations[%d] has no "line" object`, i, j)
			}
			if own, ok := embedded.Get("name").Str(); ok && own != name {
				warnings.Add(WarningStationLineMismatch, name+" / "+own)
			}
			checkReplaced(warnings, embedded, code, name)
			embedded.Set("index", formatter.NewString(code))
			res.IndexedStations++
		}
	}

	level := zerolog.DebugLevel
	if c.opts.ReportUnmatched {
		level = zerolog.WarnLevel
	}
	warnings.LogAll(c.log, level)
	return res, nil
}

// checkReplaced records an existing index that differs from the table code
func checkReplaced(w *WarningAggregator, obj *formatter.Node, code, name string) {
	prev := obj.Get("index")
	if prev == nil {
		return
	}
	if s, ok := prev.Str(); !ok || s != code {
		w.Add(WarningIndexReplaced, name)
	}
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place, so an existing file is either fully replaced or left intact.
// An existing file keeps its permission bits, a new one gets 0644.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".metro-indexer-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
