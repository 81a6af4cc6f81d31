package model

// ScaleKind names the prefix table selected on the command line.
type ScaleKind string

const (
	ScaleBinary ScaleKind = "binary"
	ScaleSI     ScaleKind = "si"
	ScaleCustom ScaleKind = "custom"
)

// Options holds user-configurable runtime options as parsed from flags.
type Options struct {
	Scale     ScaleKind
	Base      uint64   // Custom scale base; only set when Scale is ScaleCustom.
	Labels    []string // Custom scale labels, smallest first.
	Precision int      // Max fractional digits to display.
	Comma     bool     // Use ',' instead of '.' as the decimal separator.
	Unit      string   // Fixed unit suffix appended after the rendered value.
	Top       int      // Entries shown by the TUI, largest first.
	Verbose   bool
}
