package filter

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	_ "image/jpeg"

	"github.com/ZacxDev/carousel-engine/pkg/types"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// grainSeed fixes the noise layer so two renders of the same slide agree.
const grainSeed = 0x5eed

// ApplyFilters runs the offline compositing pipeline on an encoded raster:
// decode, resize to the target, base transform, custom pixel transforms, then
// overlay compositing (gradient tint, vignette, grain) in that fixed order.
// Overlays composite after the pixel transforms so grain and vignette stay
// visually independent of the color grading.
//
// Neutral configs short-circuit to a byte-identical copy of the input.
func ApplyFilters(ctx context.Context, imageBytes []byte, cfg types.FilterConfig, width, height int) ([]byte, error) {
	if IsNeutral(cfg) {
		out := make([]byte, len(imageBytes))
		copy(out, imageBytes)
		return out, nil
	}

	src, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, &types.DecodeError{Reason: "input is not a decodable raster", Err: err}
	}

	nrgba := toNRGBA(src, width, height)
	if err := applyToNRGBA(ctx, nrgba, cfg); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, nrgba); err != nil {
		return nil, errors.Wrap(err, "encode filtered image")
	}
	return buf.Bytes(), nil
}

// ApplyToImage grades a decoded image in place of the byte pipeline; the
// export orchestrator and video assembly use it to avoid a redundant
// encode/decode round trip. The same stage order applies, and neutral configs
// only resize.
func ApplyToImage(ctx context.Context, src image.Image, cfg types.FilterConfig, width, height int) (*image.NRGBA, error) {
	nrgba := toNRGBA(src, width, height)
	if IsNeutral(cfg) {
		return nrgba, nil
	}
	if err := applyToNRGBA(ctx, nrgba, cfg); err != nil {
		return nil, err
	}
	return nrgba, nil
}

func toNRGBA(src image.Image, width, height int) *image.NRGBA {
	if width > 0 && height > 0 && (src.Bounds().Dx() != width || src.Bounds().Dy() != height) {
		src = imaging.Resize(src, width, height, imaging.Lanczos)
	}
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		clone := *n
		clone.Pix = append([]uint8(nil), n.Pix...)
		return &clone
	}
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	return out
}

func applyToNRGBA(ctx context.Context, img *image.NRGBA, cfg types.FilterConfig) error {
	cfg = Normalize(cfg)
	p := PresetFor(cfg.PredefinedFilter)

	// Stage 1+2: base transform and linear custom effects, one pass.
	t := BuildTransform(cfg)
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := img.PixOffset(x, y)
			r, g, bl := t.Apply(float64(img.Pix[i]), float64(img.Pix[i+1]), float64(img.Pix[i+2]))
			img.Pix[i] = uint8(r)
			img.Pix[i+1] = uint8(g)
			img.Pix[i+2] = uint8(bl)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Stage 3: overlays, gradient tint then vignette then grain.
	if p.Overlay != nil {
		compositeGradient(img, p.Overlay)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if depth := cfg.CustomParams.VignetteDepth; depth > 0 {
		compositeVignette(img, VignetteEdgeAlpha(depth))
	}
	if amount := cfg.CustomParams.GrainAmount; amount > 0 {
		compositeGrain(img, GrainAlpha(amount), grainSeed)
	}
	return ctx.Err()
}

// Background fills used for text-only slides, keyed by slide type so hooks
// and closers read differently in a reel.
var slideBackgrounds = map[types.SlideType]*GradientOverlay{
	types.SlideTypeHook: {
		Kind: GradientLinear, Angle: 30, Blend: BlendNormal,
		Stops: []GradientStop{
			{Offset: 0, Color: color.NRGBA{R: 28, G: 30, B: 48, A: 255}},
			{Offset: 1, Color: color.NRGBA{R: 64, G: 46, B: 94, A: 255}},
		},
	},
	types.SlideTypeStory: {
		Kind: GradientLinear, Angle: 30, Blend: BlendNormal,
		Stops: []GradientStop{
			{Offset: 0, Color: color.NRGBA{R: 24, G: 26, B: 32, A: 255}},
			{Offset: 1, Color: color.NRGBA{R: 44, G: 52, B: 70, A: 255}},
		},
	},
	types.SlideTypeCloser: {
		Kind: GradientLinear, Angle: 30, Blend: BlendNormal,
		Stops: []GradientStop{
			{Offset: 0, Color: color.NRGBA{R: 40, G: 26, B: 30, A: 255}},
			{Offset: 1, Color: color.NRGBA{R: 92, G: 48, B: 60, A: 255}},
		},
	},
}

// BackgroundFill renders the generated background for a text-only slide at
// the target size. Slides with no image must never render an empty frame.
func BackgroundFill(slideType types.SlideType, width, height int) *image.NRGBA {
	g, ok := slideBackgrounds[slideType]
	if !ok {
		g = slideBackgrounds[types.SlideTypeStory]
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	compositeGradient(img, g)
	return img
}
