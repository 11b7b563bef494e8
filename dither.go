package knitdither

import (
	"fmt"
	"runtime"

	"github.com/knitloom/knitdither/beamsolve"
	"github.com/knitloom/knitdither/color"
	"github.com/knitloom/knitdither/diffusion"
	"github.com/knitloom/knitdither/optimalsolve"
	"github.com/knitloom/knitdither/state"
	"github.com/knitloom/knitdither/table"
	"github.com/knitloom/knitdither/tiebreak"
	"github.com/knitloom/knitdither/workerpool"
)

// RowMetrics reports diagnostics for a single solved row.
type RowMetrics struct {
	Cost float64
	Ties uint64
	// Optimal is only meaningful when Method == Beam: it reports whether
	// the beam search happened to sweep the whole row exactly.
	Optimal bool
}

// Metrics summarizes a completed Dither call.
type Metrics struct {
	Rows []RowMetrics
	// TotalCost is the sum of every row's Cost.
	TotalCost float64
	// RandomChoices is the total number of times, across every row, the
	// tiebreak.Chooser was asked to break an actual tie (n > 1).
	RandomChoices uint64
}

// Result is the output of a successful Dither call.
type Result struct {
	// Raster holds width*height yarn-palette indices, row-major.
	Raster  []uint8
	Metrics Metrics
}

const defaultBeamWidth = 100

// Dither quantizes p.Image to p.Palette under p.UseWithin/p.CrossWithin,
// using whichever row solver p.Method selects.
func Dither(p Params) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}

	c := state.Constraints{UseWithin: p.UseWithin, CrossWithin: p.CrossWithin, K: len(p.Palette)}

	// table.Build is exact but combinatorial in the palette size; the beam
	// solver exists precisely so callers can skip it, so only the Optimal
	// path may pay for it.
	var (
		tables []*table.Table
		pool   *workerpool.Pool
	)
	if p.Method == Optimal {
		var err error
		tables, err = table.Build(c, p.Width)
		if err != nil {
			return Result{}, fmt.Errorf("knitdither: building transition tables: %w", err)
		}
		workers := p.MaxThreads
		if procs := runtime.GOMAXPROCS(0); workers <= 0 || workers > procs {
			workers = procs
		}
		table.PrepareWorkers(tables, workers)
		pool = workerpool.New(workers)
		defer pool.Close()
	}

	// Diffusion mutates pixel colors in place; work on a private copy so
	// the caller's Image is left untouched.
	image := make([]color.Linear, len(p.Image))
	copy(image, p.Image)

	chooser := tiebreak.NewChooser(p.Seed)

	beamWidth := p.BeamWidth
	if beamWidth <= 0 {
		beamWidth = defaultBeamWidth
	}

	raster := make([]uint8, p.Width*p.Height)
	metrics := Metrics{Rows: make([]RowMetrics, p.Height)}

	for row := 0; row < p.Height; row++ {
		chooser.SetRow(row)
		pixels := image[row*p.Width : (row+1)*p.Width]
		tiesBefore := chooser.Ties()

		var (
			yarns      []uint8
			rowCost    float64
			rowOptimal bool
		)

		switch p.Method {
		case Beam:
			res, err := beamsolve.Row(c, p.Width, pixels, p.Palette, p.Difference, beamWidth, chooser)
			if err != nil {
				return Result{}, fmt.Errorf("knitdither: row %d: %w", row, err)
			}
			yarns, rowCost, rowOptimal = res.Yarns, res.Cost, res.Optimal
		default:
			res, err := optimalsolve.Row(tables, pixels, p.Palette, p.Difference, pool, chooser)
			if err != nil {
				return Result{}, fmt.Errorf("knitdither: row %d: %w", row, err)
			}
			yarns, rowCost = res.Yarns, res.Cost
		}

		copy(raster[row*p.Width:(row+1)*p.Width], yarns)

		if p.Diffuse {
			diffusion.Diffuse(image, p.Width, p.Height, row, yarns, p.Palette)
		}

		metrics.Rows[row] = RowMetrics{Cost: rowCost, Ties: chooser.Ties() - tiesBefore, Optimal: rowOptimal}
		metrics.TotalCost += rowCost
		metrics.RandomChoices = chooser.Ties()
	}

	return Result{Raster: raster, Metrics: metrics}, nil
}
