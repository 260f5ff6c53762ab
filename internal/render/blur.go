package render

import "image"

// BoxBlur returns a blurred copy of img using two separable box passes
// with the given radius. Edges clamp to the image bounds.
func BoxBlur(img *image.RGBA, radius int) *image.RGBA {
	if radius < 1 {
		out := image.NewRGBA(img.Bounds())
		copy(out.Pix, img.Pix)

		return out
	}

	horizontal := blurPass(img, radius, true)

	return blurPass(horizontal, radius, false)
}

func blurPass(img *image.RGBA, radius int, horizontal bool) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	window := 2*radius + 1

	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}

		if v > hi {
			return hi
		}

		return v
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var sumR, sumG, sumB, sumA int

			for d := -radius; d <= radius; d++ {
				sx, sy := x, y
				if horizontal {
					sx = clamp(x+d, bounds.Min.X, bounds.Max.X-1)
				} else {
					sy = clamp(y+d, bounds.Min.Y, bounds.Max.Y-1)
				}

				i := img.PixOffset(sx, sy)
				sumR += int(img.Pix[i])
				sumG += int(img.Pix[i+1])
				sumB += int(img.Pix[i+2])
				sumA += int(img.Pix[i+3])
			}

			o := out.PixOffset(x, y)
			out.Pix[o] = uint8(sumR / window)
			out.Pix[o+1] = uint8(sumG / window)
			out.Pix[o+2] = uint8(sumB / window)
			out.Pix[o+3] = uint8(sumA / window)
		}
	}

	return out
}
