// Command knitdither quantizes a PNG image to a small yarn palette under
// weft-knit double-bed fabrication constraints, writing the result as a
// PNG raster (one palette color per pixel).
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"strconv"

	xdraw "golang.org/x/image/draw"

	"github.com/joho/godotenv"

	knitdither "github.com/knitloom/knitdither"
	"github.com/knitloom/knitdither/color"
	"github.com/knitloom/knitdither/cost"
	"github.com/knitloom/knitdither/palette"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine; KNITDITHER_* vars are optional
		// flag defaults, not required configuration.
	}

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "knitdither:", err)
		os.Exit(1)
	}
}

// envDefault returns the value of a KNITDITHER_* environment variable
// (as loaded by godotenv.Load from a .env file, or set in the real
// environment) if present, otherwise fallback. It lets a .env file
// override the CLI's built-in flag defaults without changing the
// invocation.
func envDefault(name, fallback string) string {
	if v, ok := os.LookupEnv("KNITDITHER_" + name); ok {
		return v
	}
	return fallback
}

func envDefaultInt(name string, fallback int) int {
	v := envDefault(name, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDefaultBool(name string, fallback bool) bool {
	v := envDefault(name, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func run(args []string) error {
	fs := flag.NewFlagSet("knitdither", flag.ContinueOnError)
	in := fs.String("in", envDefault("IN", ""), "input PNG path")
	out := fs.String("out", envDefault("OUT", ""), "output PNG path")
	width := fs.Int("width", envDefaultInt("WIDTH", 0), "resample to this width before dithering (0 keeps the source width)")
	useWithin := fs.Int("use-within", envDefaultInt("USE_WITHIN", 0), "float-length window in stitches (0 disables)")
	crossWithin := fs.Int("cross-within", envDefaultInt("CROSS_WITHIN", 0), "crossing window in stitches (0 disables)")
	diffuse := fs.Bool("diffuse", envDefaultBool("DIFFUSE", true), "diffuse quantization error into the next row")
	seed := fs.Uint("seed", uint(envDefaultInt("SEED", 0)), "tie-break seed (0 = first, 1 = row mod n, >=2 = PRNG)")
	maxThreads := fs.Int("threads", envDefaultInt("THREADS", 0), "max worker goroutines for the optimal solver (0 = auto)")
	method := fs.String("method", envDefault("METHOD", "optimal"), "row solver: optimal or beam")
	beamWidth := fs.Int("beam-width", envDefaultInt("BEAM_WIDTH", 100), "beam search frontier width (method=beam only)")
	metric := fs.String("metric", envDefault("METRIC", "oklab"), "cost metric: srgb, linear, oklab, or demo")
	selectYarns := fs.Int("select-yarns", envDefaultInt("SELECT_YARNS", 0), "if set and less than the palette size, pick the best subset of this many yarns first")

	var yarnFlag hexList
	fs.Var(&yarnFlag, "yarn", "yarn color as an RRGGBB hex string; repeat for each palette entry")
	fs.Var(&yarnFlag, "palette", "comma-separated RRGGBB hex yarn colors (alternative to repeated -yarn)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(yarnFlag) == 0 {
		if v := envDefault("PALETTE", ""); v != "" {
			if err := yarnFlag.Set(v); err != nil {
				return fmt.Errorf("KNITDITHER_PALETTE: %w", err)
			}
		}
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("both -in and -out are required")
	}
	if len(yarnFlag) == 0 {
		return fmt.Errorf("at least one -palette color is required")
	}

	diff, err := difference(*metric)
	if err != nil {
		return err
	}

	src, err := loadPNG(*in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *in, err)
	}
	if *width > 0 {
		src = resample(src, *width)
	}

	img, w, h := toLinear(src)
	paletteLinear := make([]color.Linear, len(yarnFlag))
	for i, hex := range yarnFlag {
		r, g, b, err := parseHex(hex)
		if err != nil {
			return fmt.Errorf("palette color %q: %w", hex, err)
		}
		paletteLinear[i] = color.FromSRGB8(r, g, b)
	}

	if *selectYarns > 0 && *selectYarns < len(paletteLinear) {
		sel, err := palette.SelectSubset(paletteLinear, img, *selectYarns, diff)
		if err != nil {
			return fmt.Errorf("selecting yarn subset: %w", err)
		}
		narrowed := make([]color.Linear, len(sel.Indices))
		for i, idx := range sel.Indices {
			narrowed[i] = paletteLinear[idx]
		}
		paletteLinear = narrowed
	}

	solveMethod := knitdither.Optimal
	if *method == "beam" {
		solveMethod = knitdither.Beam
	}

	result, err := knitdither.Dither(knitdither.Params{
		Image:       img,
		Width:       w,
		Height:      h,
		Palette:     paletteLinear,
		UseWithin:   *useWithin,
		CrossWithin: *crossWithin,
		Diffuse:     *diffuse,
		Seed:        uint32(*seed),
		MaxThreads:  *maxThreads,
		Difference:  diff,
		Method:      solveMethod,
		BeamWidth:   *beamWidth,
	})
	if err != nil {
		return fmt.Errorf("dithering: %w", err)
	}

	fmt.Printf("total cost %.4f over %d rows, %d arbitrary tie-breaks\n", result.Metrics.TotalCost, h, result.Metrics.RandomChoices)

	return writePNG(*out, result.Raster, paletteLinear, w, h)
}

func difference(name string) (cost.Difference, error) {
	switch name {
	case "srgb":
		return cost.SRGBDifference{}, nil
	case "linear":
		return cost.LinearDifference{}, nil
	case "oklab":
		return cost.OKLabDifference{}, nil
	case "demo":
		return cost.DemoDifference{}, nil
	default:
		return nil, fmt.Errorf("unknown metric %q", name)
	}
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// resample scales src to the given width, preserving aspect ratio, using
// the bilinear (tent kernel) scaler.
func resample(src image.Image, width int) image.Image {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 {
		return src
	}
	height := srcH * width / srcW
	if height < 1 {
		height = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func toLinear(src image.Image) ([]color.Linear, int, int) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	out := make([]color.Linear, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := nrgba.PixOffset(x, y)
			out[y*w+x] = color.FromSRGB8(nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2])
		}
	}
	return out, w, h
}

func writePNG(path string, raster []uint8, yarns []color.Linear, w, h int) error {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := raster[y*w+x]
			r, g, b := yarns[idx].ToSRGBClamped()
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8(r*255 + 0.5)
			img.Pix[i+1] = uint8(g*255 + 0.5)
			img.Pix[i+2] = uint8(b*255 + 0.5)
			img.Pix[i+3] = 255
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func parseHex(s string) (r, g, b uint8, err error) {
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("expected 6 hex digits, got %q", s)
	}
	var v uint32
	_, err = fmt.Sscanf(s, "%06x", &v)
	if err != nil {
		return 0, 0, 0, err
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// hexList is a flag.Value collecting repeated -yarn flags or a single
// comma-separated -palette flag into a slice of hex color strings.
type hexList []string

func (h *hexList) String() string { return fmt.Sprint([]string(*h)) }
func (h *hexList) Set(v string) error {
	start := 0
	for i := 0; i <= len(v); i++ {
		if i == len(v) || v[i] == ',' {
			if i > start {
				*h = append(*h, v[start:i])
			}
			start = i + 1
		}
	}
	return nil
}
