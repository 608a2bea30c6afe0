package overlay

import (
	"image"
	"image/draw"
	"os"
	"sync"

	"github.com/ZacxDev/carousel-engine/internal/config"
	"github.com/ZacxDev/carousel-engine/pkg/types"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Rasterizer burns overlay text into slide images for the offline path. A
// TTF path may be supplied; without one the bundled bitmap face is used,
// which keeps tests hermetic.
type Rasterizer struct {
	fontPath string

	mu    sync.Mutex
	faces map[float64]font.Face
	ttf   *truetype.Font
}

// NewRasterizer creates a rasterizer drawing with the font at fontPath, or a
// built-in face when fontPath is empty.
func NewRasterizer(fontPath string) *Rasterizer {
	return &Rasterizer{fontPath: fontPath, faces: make(map[float64]font.Face)}
}

func (r *Rasterizer) face(size float64) (font.Face, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	if r.fontPath == "" {
		return basicfont.Face7x13, nil
	}
	if r.ttf == nil {
		raw, err := os.ReadFile(r.fontPath)
		if err != nil {
			return nil, errors.Wrapf(err, "read font %s", r.fontPath)
		}
		parsed, err := truetype.Parse(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "parse font %s", r.fontPath)
		}
		r.ttf = parsed
	}
	f := truetype.NewFace(r.ttf, &truetype.Options{Size: size})
	r.faces[size] = f
	return f, nil
}

// Burn draws the overlay onto img in place. Coordinates come from the same
// Layout call the preview and SVG paths use.
func (r *Rasterizer) Burn(img *image.NRGBA, o *types.TextOverlay) error {
	placed := Layout(o, float64(img.Bounds().Dx()), float64(img.Bounds().Dy()))
	if len(placed) == 0 {
		return nil
	}

	dc := gg.NewContextForImage(img)

	for _, pt := range placed {
		if pt.Box == nil {
			continue
		}
		fill, ok := ParseHexColor(pt.Box.Fill)
		if !ok {
			return errors.Errorf("invalid background color %q", pt.Box.Fill)
		}
		dc.SetColor(fill)
		dc.DrawRoundedRectangle(pt.Box.X, pt.Box.Y, pt.Box.W, pt.Box.H, pt.Box.Radius)
		dc.Fill()
	}

	for _, pt := range placed {
		face, err := r.face(pt.FontSize)
		if err != nil {
			return err
		}
		dc.SetFontFace(face)

		ax := 0.5
		switch pt.Anchor {
		case "start":
			ax = 0
		case "end":
			ax = 1
		}

		fill, ok := ParseHexColor(pt.Color)
		if !ok {
			return errors.Errorf("invalid text color %q", pt.Color)
		}

		// ay=0 puts the baseline at y, matching the layout's baselines.
		y := pt.Y

		if pt.Shadow {
			dc.SetRGBA(0, 0, 0, 0.5)
			dc.DrawStringAnchored(pt.Text, pt.X+config.ShadowOffsetX, y+config.ShadowOffsetY, ax, 0)
		}
		if pt.StrokeColor != "" && pt.StrokeWidth > 0 {
			if stroke, ok := ParseHexColor(pt.StrokeColor); ok {
				dc.SetColor(stroke)
				n := pt.StrokeWidth
				for _, d := range [][2]float64{{-n, 0}, {n, 0}, {0, -n}, {0, n}} {
					dc.DrawStringAnchored(pt.Text, pt.X+d[0], y+d[1], ax, 0)
				}
			}
		}
		dc.SetColor(fill)
		dc.DrawStringAnchored(pt.Text, pt.X, y, ax, 0)
	}

	out := dc.Image()
	copyInto(img, out)
	return nil
}

func copyInto(dst *image.NRGBA, src image.Image) {
	b := dst.Bounds()
	draw.Draw(dst, b, src, src.Bounds().Min, draw.Src)
}
