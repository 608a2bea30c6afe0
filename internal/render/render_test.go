package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ZacxDev/carousel-engine/internal/overlay"
	"github.com/ZacxDev/carousel-engine/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// halfTonePNG is red on the left half, blue on the right.
func halfTonePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 255, A: 255}
			if x >= w/2 {
				c = color.NRGBA{B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestComposeSlideTargetSize(t *testing.T) {
	slide := types.Slide{
		ID: "a", Position: 0, Status: types.SlideStatusReady,
		Image: halfTonePNG(t, 100, 100),
	}
	ras := overlay.NewRasterizer("")

	img, err := ComposeSlide(context.Background(), slide, types.FilterConfig{}, 40, 50, ras)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestComposeSlideRejectsCorruptImage(t *testing.T) {
	slide := types.Slide{
		ID: "a", Position: 0, Status: types.SlideStatusReady,
		Image: []byte("not a raster"),
	}
	ras := overlay.NewRasterizer("")

	_, err := ComposeSlide(context.Background(), slide, types.FilterConfig{}, 40, 50, ras)
	require.Error(t, err)
	var decodeErr *types.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestComposeSlideTextOnlyBackground(t *testing.T) {
	slide := types.Slide{
		ID: "a", Position: 0, Status: types.SlideStatusReady,
		SlideType: types.SlideTypeHook,
	}
	ras := overlay.NewRasterizer("")

	img, err := ComposeSlide(context.Background(), slide, types.FilterConfig{}, 32, 40, ras)
	require.NoError(t, err)

	// Generated backgrounds are never fully black or transparent.
	opaque, nonBlack := true, false
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] != 0xff {
			opaque = false
		}
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			nonBlack = true
		}
	}
	assert.True(t, opaque)
	assert.True(t, nonBlack)
}

func TestComposeSlideCropSelectsRegion(t *testing.T) {
	slide := types.Slide{
		ID: "a", Position: 0, Status: types.SlideStatusReady,
		Image: halfTonePNG(t, 100, 100),
		// Left half only: the composited frame should be red throughout.
		CropArea: &types.CropArea{X: 0, Y: 0, Width: 50, Height: 100},
	}
	ras := overlay.NewRasterizer("")

	img, err := ComposeSlide(context.Background(), slide, types.FilterConfig{}, 20, 20, ras)
	require.NoError(t, err)

	center := img.NRGBAAt(10, 10)
	assert.Greater(t, center.R, uint8(200))
	assert.Less(t, center.B, uint8(50))
}

func TestComposeSlideBurnsOverlay(t *testing.T) {
	slide := types.Slide{
		ID: "a", Position: 0, Status: types.SlideStatusReady,
		SlideType: types.SlideTypeStory,
		TextOverlay: &types.TextOverlay{
			Content: types.TextContent{Primary: "Hi"},
			Styling: types.TextStyling{
				FontSize:  types.FontSizes{Primary: 24, Secondary: 14},
				TextColor: "#ffffff",
			},
			Positioning: types.Positioning{
				FreePosition: &types.FreePosition{X: 50, Y: 60},
			},
		},
	}
	ras := overlay.NewRasterizer("")

	with, err := ComposeSlide(context.Background(), slide, types.FilterConfig{}, 120, 150, ras)
	require.NoError(t, err)

	slide.TextOverlay = nil
	without, err := ComposeSlide(context.Background(), slide, types.FilterConfig{}, 120, 150, ras)
	require.NoError(t, err)

	assert.NotEqual(t, without.Pix, with.Pix)
}

func TestApplyCropIgnoresDegenerateRects(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))

	assert.Equal(t, img.Bounds(), applyCrop(img, nil).Bounds())
	assert.Equal(t, img.Bounds(), applyCrop(img, &types.CropArea{Width: 0, Height: 50}).Bounds())

	cropped := applyCrop(img, &types.CropArea{X: 10, Y: 20, Width: 50, Height: 30})
	assert.Equal(t, 5, cropped.Bounds().Dx())
	assert.Equal(t, 3, cropped.Bounds().Dy())
}
