package cost

import "github.com/knitloom/knitdither/color"

// Cost is a nonnegative scalar quantization error.
type Cost = float64

// Difference computes the cost of substituting yarn color b for image pixel
// color a. Implementations must be pure and symmetric is not required
// (callers always invoke it as Cost(pixel, yarn)).
type Difference interface {
	Cost(a, b color.Linear) Cost
	Name() string
	Help() string
}

// SRGBDifference is the squared difference of sRGB-encoded color values
// (component values in range [0,1], clamped).
type SRGBDifference struct{}

func (SRGBDifference) Cost(a, b color.Linear) Cost {
	ar, ag, ab := a.ToSRGBClamped()
	br, bg, bb := b.ToSRGBClamped()
	dr := ar - br
	dg := ag - bg
	db := ab - bb
	return dr*dr + dg*dg + db*db
}

func (SRGBDifference) Name() string { return "srgb" }
func (SRGBDifference) Help() string {
	return "squared difference of srgb-encoded color values (component values in range [0,1])"
}

// LinearDifference is the squared difference of linear RGB color values.
type LinearDifference struct{}

func (LinearDifference) Cost(a, b color.Linear) Cost {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return dr*dr + dg*dg + db*db
}

func (LinearDifference) Name() string { return "linear" }
func (LinearDifference) Help() string {
	return "squared difference of linear rgb color values (component values in range [0,1])"
}

// OKLabDifference is the squared difference of linear Oklab color values.
// This is the default metric: it correlates best with perceived color
// distance among the four choices here.
type OKLabDifference struct{}

func (OKLabDifference) Cost(a, b color.Linear) Cost {
	la := color.OKLabFromLinear(a)
	lb := color.OKLabFromLinear(b)
	return color.Difference2(la, lb)
}

func (OKLabDifference) Name() string { return "oklab" }
func (OKLabDifference) Help() string {
	return "squared difference of linear Oklab color values (component values in range [0,1])"
}

// DemoDifference buckets each color into {0, 1, 2} greyscale (black, mid,
// white) and returns the squared difference of those buckets; always in
// {0, 1, 4}. Intended for black/white/grey yarn demo palettes only.
type DemoDifference struct{}

func (DemoDifference) Cost(a, b color.Linear) Cost {
	da := toGrey(a) - toGrey(b)
	return da * da
}

func (DemoDifference) Name() string { return "demo" }
func (DemoDifference) Help() string {
	return "distance for bw yarn <-> bwg image; always in {0,1,4}"
}

func toGrey(c color.Linear) float64 {
	switch {
	case c.R < 0.1 && c.G < 0.1 && c.B < 0.1:
		return 0.0
	case c.R > 0.9 && c.G > 0.9 && c.B > 0.9:
		return 2.0
	default:
		return 1.0
	}
}
