package overlay

import "github.com/ZacxDev/carousel-engine/pkg/types"

// ApplyGlobalStyle bulk-applies styling and positioning to every slide's
// overlay, returning a new slice. Content is kept per slide. Slides whose
// overlay was hand-edited (user_override) are left untouched; everything
// else is tagged preset_applied. The input is never mutated.
func ApplyGlobalStyle(slides []types.Slide, style types.TextStyling, positioning types.Positioning) []types.Slide {
	out := make([]types.Slide, len(slides))
	copy(out, slides)
	for i := range out {
		if out[i].TextOverlay == nil || out[i].OverlayState == types.OverlayStateUserOverride {
			continue
		}
		clone := *out[i].TextOverlay
		clone.Styling = style
		clone.Positioning = positioning
		out[i].TextOverlay = &clone
		out[i].OverlayState = types.OverlayStatePresetApplied
	}
	return out
}
