package converter

// Options contains the settings a conversion run needs
type Options struct {
	// Indent is the number of spaces per nesting level in the output.
	// Values below 1 use formatter.DefaultIndent.
	Indent int

	// ReportUnmatched raises the warning summary (unknown lines, mismatched
	// station line names, replaced indexes) from debug to warn level.
	ReportUnmatched bool
}

// Result summarizes an annotation pass
type Result struct {
	Lines           int      // line objects seen
	IndexedLines    int      // lines that received an index
	IndexedStations int      // station line objects that received an index
	Unmatched       []string // names of lines absent from the table, in document order
}
