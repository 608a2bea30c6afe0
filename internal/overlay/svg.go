package overlay

import (
	"fmt"
	"strings"

	"github.com/ZacxDev/carousel-engine/pkg/types"
)

// RenderSVG renders the overlay as fixed-pixel SVG markup for the offline
// path, with width/height matching the target raster. The coordinates come
// from the same Layout call the interactive path uses.
func RenderSVG(o *types.TextOverlay, width, height int) string {
	placed := Layout(o, float64(width), float64(height))
	if len(placed) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, width, height)

	needShadow := false
	for _, pt := range placed {
		if pt.Shadow {
			needShadow = true
			break
		}
	}
	if needShadow {
		sb.WriteString(`<defs><filter id="textShadow"><feDropShadow dx="2" dy="2" stdDeviation="2" flood-color="#000000" flood-opacity="0.5"/></filter></defs>`)
	}

	for _, pt := range placed {
		if pt.Box != nil {
			fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s"/>`,
				pt.Box.X, pt.Box.Y, pt.Box.W, pt.Box.H, pt.Box.Radius, pt.Box.Fill)
		}
	}
	for _, pt := range placed {
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="%s" fill="%s"`,
			pt.X, pt.Y, pt.FontSize, pt.Anchor, pt.Color)
		if pt.FontFamily != "" {
			fmt.Fprintf(&sb, ` font-family="%s"`, pt.FontFamily)
		}
		if pt.FontWeight != "" {
			fmt.Fprintf(&sb, ` font-weight="%s"`, pt.FontWeight)
		}
		if pt.FontStyle != "" {
			fmt.Fprintf(&sb, ` font-style="%s"`, pt.FontStyle)
		}
		if pt.StrokeColor != "" && pt.StrokeWidth > 0 {
			fmt.Fprintf(&sb, ` stroke="%s" stroke-width="%.1f"`, pt.StrokeColor, pt.StrokeWidth)
		}
		if pt.Shadow {
			sb.WriteString(` filter="url(#textShadow)"`)
		}
		fmt.Fprintf(&sb, `>%s</text>`, escapeXML(pt.Text))
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
