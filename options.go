package vita

import (
	"log/slog"

	"github.com/tsawler/vita/font"
	"github.com/tsawler/vita/layout"
)

// Options holds configuration for rendering and scoring.
type Options struct {
	// Page geometry and typography
	config layout.Config

	// Measurement: an explicit pair wins over the Go fonts
	measure     font.MeasureFunc
	measureBold font.MeasureFunc
	goFont      bool

	// Output
	compress bool

	logger *slog.Logger
}

// defaultOptions returns A4 geometry with Standard 14 metrics.
func defaultOptions() Options {
	return Options{
		config:   layout.A4(),
		goFont:   false,
		compress: false,
	}
}

// clone creates a copy of Options. layout.Config holds only values and
// function references, so a plain copy is deep enough.
func (o Options) clone() Options {
	return o
}
