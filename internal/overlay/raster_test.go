package overlay

import (
	"image"
	"testing"

	"github.com/ZacxDev/carousel-engine/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blankImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}

func TestBurnDrawsText(t *testing.T) {
	ras := NewRasterizer("")
	img := blankImage(200, 200)
	before := append([]uint8(nil), img.Pix...)

	o := overlayWith(types.TextContent{Primary: "Hello"})
	o.Positioning.FreePosition = &types.FreePosition{X: 50, Y: 50}

	require.NoError(t, ras.Burn(img, o))
	assert.NotEqual(t, before, img.Pix)
}

func TestBurnEmptyOverlayIsNoop(t *testing.T) {
	ras := NewRasterizer("")
	img := blankImage(50, 50)
	before := append([]uint8(nil), img.Pix...)

	require.NoError(t, ras.Burn(img, nil))
	require.NoError(t, ras.Burn(img, &types.TextOverlay{}))
	assert.Equal(t, before, img.Pix)
}

func TestBurnDrawsBackgroundBox(t *testing.T) {
	ras := NewRasterizer("")
	img := blankImage(200, 200)

	o := overlayWith(types.TextContent{Primary: "Boxed"})
	o.Positioning.FreePosition = &types.FreePosition{X: 50, Y: 50}
	o.Styling.BackgroundColor = "#ff0000"

	require.NoError(t, ras.Burn(img, o))

	// A red pixel must exist inside the box footprint.
	placed := Layout(o, 200, 200)
	require.NotNil(t, placed[0].Box)
	box := placed[0].Box
	px := img.NRGBAAt(int(box.X+box.W/2), int(box.Y+box.H/2))
	assert.Greater(t, px.R, uint8(200))
	assert.Less(t, px.G, uint8(80))
}

func TestBurnRejectsInvalidColors(t *testing.T) {
	ras := NewRasterizer("")
	img := blankImage(50, 50)

	o := overlayWith(types.TextContent{Primary: "Bad"})
	o.Styling.TextColor = "cornflower"
	require.Error(t, ras.Burn(img, o))

	o = overlayWith(types.TextContent{Primary: "Bad"})
	o.Styling.BackgroundColor = "nope"
	require.Error(t, ras.Burn(img, o))
}

func TestRasterizerMissingFontFile(t *testing.T) {
	ras := NewRasterizer("/nonexistent/font.ttf")
	img := blankImage(50, 50)

	o := overlayWith(types.TextContent{Primary: "Hi"})
	require.Error(t, ras.Burn(img, o))
}
