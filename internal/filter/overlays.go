package filter

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// blendChannel combines base b with overlay o (both 0..255) under mode.
func blendChannel(b, o float64, mode BlendMode) float64 {
	switch mode {
	case BlendMultiply:
		return b * o / 255
	case BlendScreen:
		return 255 - (255-b)*(255-o)/255
	case BlendOverlay:
		if b < 128 {
			return 2 * b * o / 255
		}
		return 255 - 2*(255-b)*(255-o)/255
	default: // normal
		return o
	}
}

// gradientColorAt interpolates the overlay's stops at normalized position
// t in [0,1].
func gradientColorAt(g *GradientOverlay, t float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	last := g.Stops[len(g.Stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		f := 0.0
		if span > 0 {
			f = (t - a.Offset) / span
		}
		lerp := func(x, y uint8) uint8 {
			return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
		}
		return color.NRGBA{
			R: lerp(a.Color.R, b.Color.R),
			G: lerp(a.Color.G, b.Color.G),
			B: lerp(a.Color.B, b.Color.B),
			A: lerp(a.Color.A, b.Color.A),
		}
	}
	return last.Color
}

// compositeGradient blends the preset's gradient tint over img in place.
func compositeGradient(img *image.NRGBA, g *GradientOverlay) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	cx, cy := w/2, h/2
	maxDist := math.Hypot(cx, cy)

	// Linear gradients project each pixel onto the angle's direction vector.
	rad := g.Angle * math.Pi / 180
	dirX, dirY := math.Sin(rad), -math.Cos(rad)

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			var t float64
			if g.Kind == GradientRadial {
				t = math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
			} else {
				t = ((float64(x)-cx)*dirX + (float64(y)-cy)*dirY + maxDist) / (2 * maxDist)
			}
			c := gradientColorAt(g, clamp01(t))
			if c.A == 0 {
				continue
			}
			alpha := float64(c.A) / 255
			i := img.PixOffset(x, y)
			for ch, ov := range [3]float64{float64(c.R), float64(c.G), float64(c.B)} {
				base := float64(img.Pix[i+ch])
				mixed := blendChannel(base, ov, g.Blend)
				img.Pix[i+ch] = uint8(clamp255(base*(1-alpha) + mixed*alpha))
			}
		}
	}
}

// compositeVignette darkens toward the frame edge. The center is untouched
// and the corner loses edgeAlpha of its brightness; falloff is quadratic in
// normalized radius.
func compositeVignette(img *image.NRGBA, edgeAlpha float64) {
	b := img.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	maxDist := math.Hypot(cx, cy)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r := math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
			factor := 1 - edgeAlpha*r*r
			i := img.PixOffset(x, y)
			for ch := 0; ch < 3; ch++ {
				img.Pix[i+ch] = uint8(clamp255(float64(img.Pix[i+ch]) * factor))
			}
		}
	}
}

// compositeGrain lays a tileable random-luminance noise layer over the image
// with overlay blending. The noise grid is GrainTileSizePx-coarse and seeded
// deterministically so repeated renders of the same input agree.
func compositeGrain(img *image.NRGBA, alpha uint8, seed int64) {
	if alpha == 0 {
		return
	}
	b := img.Bounds()
	tilesX := (b.Dx() + GrainTileSizePx - 1) / GrainTileSizePx
	tilesY := (b.Dy() + GrainTileSizePx - 1) / GrainTileSizePx

	rng := rand.New(rand.NewSource(seed))
	noise := make([]uint8, tilesX*tilesY)
	for i := range noise {
		noise[i] = uint8(rng.Intn(256))
	}

	a := float64(alpha) / 255
	for y := 0; y < b.Dy(); y++ {
		row := (y / GrainTileSizePx) * tilesX
		for x := 0; x < b.Dx(); x++ {
			g := float64(noise[row+x/GrainTileSizePx])
			i := img.PixOffset(x, y)
			for ch := 0; ch < 3; ch++ {
				base := float64(img.Pix[i+ch])
				mixed := blendChannel(base, g, BlendOverlay)
				img.Pix[i+ch] = uint8(clamp255(base*(1-a) + mixed*a))
			}
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
