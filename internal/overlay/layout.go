// Package overlay lays out freeform text blocks over slides. The same placed
// elements feed the interactive preview (scaled by the caller), the SVG
// markup used by the offline path, and the raster burn-in, so all three stay
// pixel-consistent.
package overlay

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/ZacxDev/carousel-engine/internal/config"
	"github.com/ZacxDev/carousel-engine/pkg/types"
)

// PlacedBox is a rounded background rectangle behind one text line.
type PlacedBox struct {
	X, Y, W, H float64
	Radius     float64
	Fill       string
}

// PlacedText is one laid-out text line. X/Y is the anchor point on the text
// baseline; Anchor selects how the glyph run hangs off it.
type PlacedText struct {
	Kind        string // primary|secondary|accent
	Text        string
	X, Y        float64
	FontSize    float64
	Anchor      string // start|middle|end
	Color       string
	FontFamily  string
	FontWeight  string
	FontStyle   string
	Shadow      bool
	StrokeColor string
	StrokeWidth float64
	Box         *PlacedBox
}

type line struct {
	kind string
	text string
	size float64
}

// lineAdvance is the vertical advance each line contributes to the block
// height. The constants must be identical between the rendering paths or
// thumbnails will visibly diverge from exported images.
func lineAdvance(l line, sizes types.FontSizes) float64 {
	switch l.kind {
	case "primary":
		return sizes.Primary*0.4 + sizes.Secondary + 8
	case "secondary":
		return l.size*1.3 + 4
	default: // accent
		return l.size*1.3 + 8
	}
}

func overlayLines(o *types.TextOverlay) []line {
	var lines []line
	if o.Content.Primary != "" {
		lines = append(lines, line{kind: "primary", text: o.Content.Primary, size: o.Styling.FontSize.Primary})
	}
	if o.Content.Secondary != "" {
		lines = append(lines, line{kind: "secondary", text: o.Content.Secondary, size: o.Styling.FontSize.Secondary})
	}
	if o.Content.Accent != "" {
		lines = append(lines, line{kind: "accent", text: o.Content.Accent, size: o.Styling.FontSize.Secondary})
	}
	return lines
}

// EstimatedTextWidth approximates a line's rendered width as
// 0.6 * fontSize * characterCount. This is a deliberate monospace-ish
// approximation, not a bug: true glyph measurement would break parity with
// the preset defaults tuned against it.
func EstimatedTextWidth(text string, fontSize float64) float64 {
	return config.EstimatedCharWidth * fontSize * float64(len([]rune(text)))
}

func anchorFor(textAlign string) string {
	switch textAlign {
	case "left":
		return "start"
	case "right":
		return "end"
	default:
		return "middle"
	}
}

// Layout computes placed text lines for a container of the given pixel size.
// The free-position path anchors the bottom of the stacked block at
// (x%, y%) of the container; the block grows upward from the anchor. The
// legacy alignment/padding path is used when no free position is set.
func Layout(o *types.TextOverlay, width, height float64) []PlacedText {
	if o == nil {
		return nil
	}
	lines := overlayLines(o)
	if len(lines) == 0 {
		return nil
	}

	totalH := 0.0
	for _, l := range lines {
		totalH += lineAdvance(l, o.Styling.FontSize)
	}

	shadow := o.Styling.TextShadow && isLightColor(o.Styling.TextColor)

	var x float64
	var anchor string
	baselines := make([]float64, len(lines))

	if fp := o.Positioning.FreePosition; fp != nil {
		x = width * fp.X / 100
		anchor = anchorFor(o.Styling.TextAlign)
		cursor := height*fp.Y/100 - totalH
		for i, l := range lines {
			cursor += lineAdvance(l, o.Styling.FontSize)
			baselines[i] = cursor
		}
	} else {
		pad := effectivePadding(o.Positioning.Padding)
		switch o.Positioning.HorizontalAlign {
		case "left":
			x, anchor = pad.Left, "start"
		case "right":
			x, anchor = width-pad.Right, "end"
		default:
			x, anchor = width/2, "middle"
		}
		var first float64
		switch o.Positioning.Alignment {
		case "top":
			first = pad.Top + o.Styling.FontSize.Primary
		case "bottom":
			first = height - pad.Bottom - totalH + o.Styling.FontSize.Primary
		default: // center
			first = (height-totalH)/2 + o.Styling.FontSize.Primary
		}
		baselines[0] = first
		for i := 1; i < len(lines); i++ {
			baselines[i] = baselines[i-1] + lineAdvance(lines[i], o.Styling.FontSize)
		}
	}

	placed := make([]PlacedText, 0, len(lines))
	for i, l := range lines {
		pt := PlacedText{
			Kind:        l.kind,
			Text:        l.text,
			X:           x,
			Y:           baselines[i],
			FontSize:    l.size,
			Anchor:      anchor,
			Color:       o.Styling.TextColor,
			FontFamily:  o.Styling.FontFamily,
			FontWeight:  o.Styling.FontWeight,
			FontStyle:   o.Styling.FontStyle,
			Shadow:      shadow,
			StrokeColor: o.Styling.StrokeColor,
			StrokeWidth: o.Styling.StrokeWidth,
		}
		if o.Styling.BackgroundColor != "" {
			pt.Box = backgroundBox(l, x, baselines[i], anchor, o.Styling)
		}
		placed = append(placed, pt)
	}
	return placed
}

// backgroundBox sizes the rounded rectangle behind one line from the
// estimated text width, expanded by the configured padding. The horizontal
// anchor shifts the left edge so the box stays aligned with the text.
func backgroundBox(l line, x, baseline float64, anchor string, s types.TextStyling) *PlacedBox {
	estW := EstimatedTextWidth(l.text, l.size)
	box := &PlacedBox{
		W:      estW + 2*s.BackgroundPadding.X,
		H:      l.size + 2*s.BackgroundPadding.Y,
		Y:      baseline - l.size - s.BackgroundPadding.Y,
		Radius: config.DefaultBoxRadius,
		Fill:   s.BackgroundColor,
	}
	switch anchor {
	case "start":
		box.X = x - s.BackgroundPadding.X
	case "end":
		box.X = x - estW - s.BackgroundPadding.X
	default:
		box.X = x - estW/2 - s.BackgroundPadding.X
	}
	return box
}

// effectivePadding enforces the minimum edge padding floor on every side so
// legacy-positioned text never touches the frame edge.
func effectivePadding(p types.Padding) types.Padding {
	return types.Padding{
		Top:    math.Max(p.Top, config.MinEdgePadding),
		Right:  math.Max(p.Right, config.MinEdgePadding),
		Bottom: math.Max(p.Bottom, config.MinEdgePadding),
		Left:   math.Max(p.Left, config.MinEdgePadding),
	}
}

// isLightColor implements the perceived-brightness contrast rule: shadows
// attach only to light text; dark text renders flat.
func isLightColor(hex string) bool {
	c, ok := ParseHexColor(hex)
	if !ok {
		return false
	}
	brightness := (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
	return brightness > config.LightTextBrightness
}

// ParseHexColor parses #rgb and #rrggbb colors.
func ParseHexColor(s string) (color.NRGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
