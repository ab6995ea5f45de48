package render

import (
	"image"
	"image/color"
	"sort"
)

// segment is one projected line of the wireframe, carrying the colors of
// its two endpoints and its camera-space depth for back-to-front sorting.
type segment struct {
	x0, y0, x1, y1 int
	c0, c1         color.RGBA
	depth          float64
}

func drawSegments(img *image.RGBA, segs []segment) {
	sort.Slice(segs, func(i, j int) bool { return segs[i].depth < segs[j].depth })
	for _, s := range segs {
		drawLine(img, s.x0, s.y0, s.x1, s.y1, s.c0, s.c1)
	}
}

// drawLine rasterizes a color-interpolated line with Bresenham stepping.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c0, c1 color.RGBA) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if (x0 < 0 && x1 < 0) || (x0 >= w && x1 >= w) ||
		(y0 < 0 && y1 < 0) || (y0 >= h && y1 >= h) {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	errAcc := dx + dy

	total := dx
	if -dy > total {
		total = -dy
	}
	step := 0
	for {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			t := 0.0
			if total > 0 {
				t = float64(step) / float64(total)
			}
			img.SetRGBA(x0, y0, lerpRGBA(c0, c1, t))
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			errAcc += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			errAcc += dx
			y0 += sy
		}
		step++
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y > r*r {
				continue
			}
			px, py := cx+x, cy+y
			if px >= 0 && px < w && py >= 0 && py < h {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
