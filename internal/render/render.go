// Package render composites a single slide into a final raster: source image
// or generated background, crop override, aspect fill, color grading, and
// text overlay burn-in.
package render

import (
	"bytes"
	"context"
	"image"

	"github.com/ZacxDev/carousel-engine/internal/filter"
	"github.com/ZacxDev/carousel-engine/internal/overlay"
	"github.com/ZacxDev/carousel-engine/pkg/types"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// ComposeSlide produces the fully composited raster for one slide at the
// target size. Slides without image data get a generated background fill.
func ComposeSlide(ctx context.Context, slide types.Slide, cfg types.FilterConfig, width, height int, ras *overlay.Rasterizer) (*image.NRGBA, error) {
	var base image.Image
	if len(slide.Image) == 0 {
		base = filter.BackgroundFill(slide.SlideType, width, height)
	} else {
		decoded, _, err := image.Decode(bytes.NewReader(slide.Image))
		if err != nil {
			return nil, &types.DecodeError{Reason: "slide image is not a decodable raster", Err: err}
		}
		base = decoded
	}

	base = applyCrop(base, slide.CropArea)

	// Fill to the exact target aspect (center crop), then grade.
	filled := imaging.Fill(base, width, height, imaging.Center, imaging.Lanczos)
	graded, err := filter.ApplyToImage(ctx, filled, cfg, width, height)
	if err != nil {
		return nil, err
	}

	if slide.TextOverlay != nil {
		if err := ras.Burn(graded, slide.TextOverlay); err != nil {
			return nil, errors.Wrap(err, "burn text overlay")
		}
	}
	return graded, nil
}

// applyCrop cuts the per-slide crop override out of the source. The crop
// rectangle is expressed in percentages of the source dimensions.
func applyCrop(img image.Image, crop *types.CropArea) image.Image {
	if crop == nil || crop.Width <= 0 || crop.Height <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	rect := image.Rect(
		b.Min.X+int(w*crop.X/100),
		b.Min.Y+int(h*crop.Y/100),
		b.Min.X+int(w*(crop.X+crop.Width)/100),
		b.Min.Y+int(h*(crop.Y+crop.Height)/100),
	)
	rect = rect.Intersect(b)
	if rect.Empty() {
		return img
	}
	return imaging.Crop(img, rect)
}
