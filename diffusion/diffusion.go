package diffusion

import "github.com/knitloom/knitdither/color"

// tap is one weighted offset of the diffusion kernel.
type tap struct {
	dx, dy int
	weight float64
}

// kernel is the symmetric three-tap kernel: 2/16, 5/16, 2/16 landing on
// the row below at x-2, x, x+2. It intentionally sums to 9/16, not 1: the
// reference implementation never renormalizes, trading some error
// retention for a kernel with no left/right bias.
var kernel = [3]tap{
	{dx: -2, dy: 1, weight: 2.0 / 16.0},
	{dx: 0, dy: 1, weight: 5.0 / 16.0},
	{dx: 2, dy: 1, weight: 2.0 / 16.0},
}

// Diffuse spreads the quantization error of one placed row into the
// image buffer, which is row-major, width*height long, and covers the
// whole image (diffusion taps may land on any later row reachable from
// this one; in practice only row+1 is touched by the current kernel).
//
// image is mutated in place. row is the row just solved; placedYarns
// holds, for each column, the index into yarns of the yarn chosen there.
// image[row*width+x] must still hold the original (pre-quantization)
// pixel color when Diffuse is called, not the placed yarn's color.
func Diffuse(image []color.Linear, width, height int, row int, placedYarns []uint8, yarns []color.Linear) {
	for x := 0; x < width; x++ {
		yarn := placedYarns[x]
		pixel := image[row*width+x]
		chosen := yarns[yarn]

		errR := pixel.R - chosen.R
		errG := pixel.G - chosen.G
		errB := pixel.B - chosen.B

		for _, k := range kernel {
			tx := x + k.dx
			ty := row + k.dy
			if tx < 0 || tx >= width || ty < 0 || ty >= height {
				continue
			}
			target := &image[ty*width+tx]
			target.R += k.weight * errR
			target.G += k.weight * errG
			target.B += k.weight * errB
		}
	}
}
