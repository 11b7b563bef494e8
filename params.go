package knitdither

import (
	"errors"

	"github.com/knitloom/knitdither/color"
	"github.com/knitloom/knitdither/cost"
	"github.com/knitloom/knitdither/table"
)

// Method selects which row solver Dither uses.
type Method int

const (
	// Optimal solves every row exactly via dynamic programming
	// (package optimalsolve). It is the default zero value.
	Optimal Method = iota
	// Beam solves every row approximately via bounded beam search
	// (package beamsolve), trading exactness for speed.
	Beam
)

// Params configures a single Dither call.
type Params struct {
	// Image holds width*height linear-light pixel colors, row-major.
	Image  []color.Linear
	Width  int
	Height int

	// Palette holds the available yarn colors, linear-light, indexed by
	// the output raster's entries.
	Palette []color.Linear

	// UseWithin and CrossWithin are the two fabrication windows in
	// stitches; 0 disables the corresponding constraint.
	UseWithin   int
	CrossWithin int

	// Diffuse enables spreading quantization error into the next row.
	Diffuse bool

	// Seed selects the tiebreak.Chooser policy; see package tiebreak.
	Seed uint32

	// MaxThreads bounds how many goroutines the optimal solver's forward
	// pass may use; 0 means "let the worker pool decide" (GOMAXPROCS).
	// Ignored by the beam solver, which is inherently sequential per row.
	MaxThreads int

	// Difference is the cost metric comparing a pixel to a yarn.
	Difference cost.Difference

	// Method selects the row solver.
	Method Method

	// BeamWidth bounds the beam solver's frontier; ignored by Optimal.
	// 0 defaults to 100, matching the reference implementation's fixed
	// beam width.
	BeamWidth int
}

// Sentinel configuration errors, returned before any solving begins.
var (
	// ErrEmptyPalette is returned when Palette has no colors.
	ErrEmptyPalette = errors.New("knitdither: palette must not be empty")

	// ErrPaletteTooLarge is returned when the palette exceeds the
	// maximum size the state/table packing format supports.
	ErrPaletteTooLarge = errors.New("knitdither: palette size exceeds the maximum supported yarn count")

	// ErrUseWithinTooSmall is returned when 0 < UseWithin < len(Palette):
	// too few stitches to ever use every yarn within one window, so no
	// valid dither can exist and the call fails before any work starts.
	ErrUseWithinTooSmall = errors.New("knitdither: use_within is nonzero but smaller than the palette size")

	// ErrDimensionMismatch is returned when len(Image) != Width*Height.
	ErrDimensionMismatch = errors.New("knitdither: image length does not match width*height")

	// ErrZeroWidth is returned when Width < 1: every row needs at least
	// one column to dither.
	ErrZeroWidth = errors.New("knitdither: width must be at least 1")

	// ErrNoDifference is returned when Difference is nil.
	ErrNoDifference = errors.New("knitdither: a cost.Difference metric is required")
)

func (p Params) validate() error {
	if len(p.Palette) == 0 {
		return ErrEmptyPalette
	}
	if len(p.Palette) > table.KMax {
		return ErrPaletteTooLarge
	}
	if p.UseWithin > 0 && p.UseWithin < len(p.Palette) {
		return ErrUseWithinTooSmall
	}
	if p.Width < 1 {
		return ErrZeroWidth
	}
	if len(p.Image) != p.Width*p.Height {
		return ErrDimensionMismatch
	}
	if p.Difference == nil {
		return ErrNoDifference
	}
	return nil
}
