package converter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Warning type constants
const (
	WarningUnknownLine         = "unknown_line"
	WarningStationLineMismatch = "station_line_mismatch"
	WarningIndexReplaced       = "index_replaced"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects warnings during conversion and outputs consolidated summaries
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example
func (w *WarningAggregator) Add(warningType, example string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, example)
	}
}

// Count returns the number of occurrences recorded for a warning type
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// LogAll outputs one summary line per warning type at the given level
func (w *WarningAggregator) LogAll(log zerolog.Logger, level zerolog.Level) {
	types := make([]string, 0, len(w.warnings))
	for warningType := range w.warnings {
		types = append(types, warningType)
	}
	sort.Strings(types)

	for _, warningType := range types {
		info := w.warnings[warningType]
		log.WithLevel(level).
			Str("warning", warningType).
			Int("count", info.count).
			Strs("examples", info.examples).
			Msg(w.formatWarningMessage(warningType, info))
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningUnknownLine:
		description = "lines not present in the index table"
		action = "Leaving them without an index"
	case WarningStationLineMismatch:
		description = "stations whose embedded line name differs from the parent line"
		action = "Using the parent line's index"
	case WarningIndexReplaced:
		description = "existing index values that differ from the table"
		action = "Replacing them with the table value"
	default:
		description = "unknown issue"
		action = "Continuing"
	}

	return fmt.Sprintf("Dataset has %s (%d occurrences). %s. Examples: %s",
		description, info.count, action, strings.Join(info.examples, ", "))
}
