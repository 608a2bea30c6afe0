package filter

import (
	"fmt"
	"strings"

	"github.com/ZacxDev/carousel-engine/pkg/types"
)

// PreviewOp is one step of the interactive-surface filter chain, equivalent
// to a CSS filter function.
type PreviewOp struct {
	Name  string  // brightness|contrast|saturate|hue-rotate|sepia
	Value float64 // multiplier, or degrees for hue-rotate
}

// OverlayLayer describes one translucent layer the interactive surface
// stacks on top of the filtered image.
type OverlayLayer struct {
	Kind     string // gradient|vignette|grain
	Gradient *GradientOverlay
	Alpha    float64 // 0..1 layer opacity (vignette edge / grain)
	Blend    BlendMode
	TileSize int // grain only, in final pixels
}

// PreviewChain is the full live-preview description for a FilterConfig: an
// ordered op chain plus overlay layers. It mirrors what the offline
// compositor does to pixels; both are built from the same parameter math.
type PreviewChain struct {
	Ops    []PreviewOp
	Layers []OverlayLayer
}

// BuildPreviewChain converts cfg into the interactive filter/overlay
// description. Neutral configs produce an empty chain.
func BuildPreviewChain(cfg types.FilterConfig) PreviewChain {
	cfg = Normalize(cfg)
	p := PresetFor(cfg.PredefinedFilter)

	var chain PreviewChain
	if p.Brightness != 0 {
		// The preview surface has no additive brightness op; express the
		// 0..255 offset as the closest multiplier on mid gray.
		chain.Ops = append(chain.Ops, PreviewOp{Name: "brightness", Value: 1 + p.Brightness*2})
	}
	if p.Contrast != 1 {
		chain.Ops = append(chain.Ops, PreviewOp{Name: "contrast", Value: p.Contrast})
	}
	if fade := cfg.CustomParams.ShadowFade; fade > 0 {
		chain.Ops = append(chain.Ops, PreviewOp{Name: "contrast", Value: ShadowFadeContrast(fade)})
		chain.Ops = append(chain.Ops, PreviewOp{Name: "brightness", Value: 1 + ShadowFadeOffset(fade)/128})
	}
	if bloom := cfg.CustomParams.BloomDiffusion; bloom > 0 {
		chain.Ops = append(chain.Ops, PreviewOp{Name: "brightness", Value: BloomBrightness(bloom)})
	}
	if p.Saturation != 1 {
		chain.Ops = append(chain.Ops, PreviewOp{Name: "saturate", Value: p.Saturation})
	}
	if p.HueDegrees != 0 {
		chain.Ops = append(chain.Ops, PreviewOp{Name: "hue-rotate", Value: p.HueDegrees})
	}
	if p.Sepia > 0 {
		chain.Ops = append(chain.Ops, PreviewOp{Name: "sepia", Value: p.Sepia})
	}
	// The bias rotation is a custom step and runs after the full named
	// filter, mirroring the compositor's fold order.
	if bias := ColorBiasDegrees(cfg.CustomParams.ColorBias); bias != 0 {
		chain.Ops = append(chain.Ops, PreviewOp{Name: "hue-rotate", Value: bias})
	}

	if p.Overlay != nil {
		chain.Layers = append(chain.Layers, OverlayLayer{
			Kind:     "gradient",
			Gradient: p.Overlay,
			Blend:    p.Overlay.Blend,
		})
	}
	if depth := cfg.CustomParams.VignetteDepth; depth > 0 {
		chain.Layers = append(chain.Layers, OverlayLayer{
			Kind:  "vignette",
			Alpha: VignetteEdgeAlpha(depth),
			Blend: BlendMultiply,
		})
	}
	if amount := cfg.CustomParams.GrainAmount; amount > 0 {
		chain.Layers = append(chain.Layers, OverlayLayer{
			Kind:     "grain",
			Alpha:    float64(GrainAlpha(amount)) / 255,
			Blend:    BlendOverlay,
			TileSize: GrainTileSizePx,
		})
	}
	return chain
}

// String renders the op chain as a CSS filter value, e.g.
// "contrast(1.12) saturate(1.25) hue-rotate(-5deg)".
func (c PreviewChain) String() string {
	parts := make([]string, 0, len(c.Ops))
	for _, op := range c.Ops {
		if op.Name == "hue-rotate" {
			parts = append(parts, fmt.Sprintf("hue-rotate(%.1fdeg)", op.Value))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s(%.3f)", op.Name, op.Value))
	}
	return strings.Join(parts, " ")
}
