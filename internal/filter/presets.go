package filter

import (
	"image/color"

	"github.com/ZacxDev/carousel-engine/pkg/types"
	"golang.org/x/exp/slices"
)

// Predefined filter names. "none" is the identity preset.
const (
	PresetNone       = "none"
	PresetKodachrome = "kodachrome"
	PresetPolaroid   = "polaroid"
	PresetCinestill  = "cinestill"
	PresetPortra     = "portra"
	PresetVelvia     = "velvia"
	PresetNoir       = "noir"
	PresetSepia      = "sepia"
	PresetLomo       = "lomo"
	PresetDreamy     = "dreamy"
)

type GradientKind string

const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
)

// BlendMode is how a gradient overlay combines with the graded image.
type BlendMode string

const (
	BlendNormal   BlendMode = "normal"
	BlendMultiply BlendMode = "multiply"
	BlendScreen   BlendMode = "screen"
	BlendOverlay  BlendMode = "overlay"
)

// GradientStop is one RGBA stop at a normalized offset along the gradient.
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// GradientOverlay is a translucent tint layer composited on top of the base
// transform. Angle is in degrees and only meaningful for linear gradients.
type GradientOverlay struct {
	Kind  GradientKind
	Angle float64
	Stops []GradientStop
	Blend BlendMode
}

// Preset is a named camera profile: a contrast/brightness linear transform
// (output = input*Contrast + Brightness*255), a saturation/hue modulation, an
// optional sepia blend against the identity matrix, an optional gradient
// overlay, and the custom-parameter defaults applied when the preset is
// selected.
type Preset struct {
	Name       string
	Contrast   float64
	Brightness float64
	Saturation float64
	HueDegrees float64
	Sepia      float64
	Overlay    *GradientOverlay
	Defaults   types.CustomParams
}

var presets = map[string]Preset{
	PresetNone: {
		Name: PresetNone, Contrast: 1, Saturation: 1,
	},
	PresetKodachrome: {
		Name: PresetKodachrome, Contrast: 1.12, Brightness: 0.02, Saturation: 1.25, HueDegrees: -5,
		Defaults: types.CustomParams{GrainAmount: 15, VignetteDepth: 20},
	},
	PresetPolaroid: {
		Name: PresetPolaroid, Contrast: 0.95, Brightness: 0.06, Saturation: 0.85, Sepia: 0.18,
		Overlay: &GradientOverlay{
			Kind:  GradientLinear,
			Angle: 180,
			Stops: []GradientStop{
				{Offset: 0, Color: color.NRGBA{R: 255, G: 250, B: 230, A: 0}},
				{Offset: 1, Color: color.NRGBA{R: 255, G: 244, B: 214, A: 56}},
			},
			Blend: BlendNormal,
		},
		Defaults: types.CustomParams{GrainAmount: 25, ShadowFade: 30, VignetteDepth: 35},
	},
	PresetCinestill: {
		Name: PresetCinestill, Contrast: 1.05, Brightness: 0.01, Saturation: 1.1, HueDegrees: 8,
		Overlay: &GradientOverlay{
			Kind: GradientRadial,
			Stops: []GradientStop{
				{Offset: 0, Color: color.NRGBA{R: 255, G: 80, B: 60, A: 0}},
				{Offset: 1, Color: color.NRGBA{R: 180, G: 40, B: 60, A: 40}},
			},
			Blend: BlendScreen,
		},
		Defaults: types.CustomParams{GrainAmount: 35, BloomDiffusion: 25},
	},
	PresetPortra: {
		Name: PresetPortra, Contrast: 0.98, Brightness: 0.03, Saturation: 0.92, HueDegrees: 4, Sepia: 0.08,
		Defaults: types.CustomParams{GrainAmount: 10, ShadowFade: 15, ColorBias: 10},
	},
	PresetVelvia: {
		Name: PresetVelvia, Contrast: 1.18, Brightness: -0.02, Saturation: 1.45,
		Defaults: types.CustomParams{VignetteDepth: 15},
	},
	PresetNoir: {
		Name: PresetNoir, Contrast: 1.25, Brightness: -0.03, Saturation: 0,
		Overlay: &GradientOverlay{
			Kind: GradientRadial,
			Stops: []GradientStop{
				{Offset: 0, Color: color.NRGBA{A: 0}},
				{Offset: 1, Color: color.NRGBA{A: 90}},
			},
			Blend: BlendMultiply,
		},
		Defaults: types.CustomParams{GrainAmount: 45, VignetteDepth: 50},
	},
	PresetSepia: {
		Name: PresetSepia, Contrast: 1.02, Brightness: 0.02, Saturation: 0.9, Sepia: 0.85,
		Defaults: types.CustomParams{GrainAmount: 20, VignetteDepth: 25},
	},
	PresetLomo: {
		Name: PresetLomo, Contrast: 1.3, Brightness: -0.01, Saturation: 1.35, HueDegrees: -8,
		Overlay: &GradientOverlay{
			Kind: GradientRadial,
			Stops: []GradientStop{
				{Offset: 0, Color: color.NRGBA{A: 0}},
				{Offset: 1, Color: color.NRGBA{R: 10, G: 20, B: 40, A: 120}},
			},
			Blend: BlendOverlay,
		},
		Defaults: types.CustomParams{GrainAmount: 30, VignetteDepth: 60},
	},
	PresetDreamy: {
		Name: PresetDreamy, Contrast: 0.9, Brightness: 0.08, Saturation: 0.95, HueDegrees: 6,
		Overlay: &GradientOverlay{
			Kind:  GradientLinear,
			Angle: 45,
			Stops: []GradientStop{
				{Offset: 0, Color: color.NRGBA{R: 255, G: 200, B: 240, A: 36}},
				{Offset: 1, Color: color.NRGBA{R: 180, G: 210, B: 255, A: 36}},
			},
			Blend: BlendScreen,
		},
		Defaults: types.CustomParams{BloomDiffusion: 45, ShadowFade: 40},
	},
}

// PresetFor resolves a preset by name, falling back to "none".
func PresetFor(name string) Preset {
	if p, ok := presets[name]; ok {
		return p
	}
	return presets[PresetNone]
}

// PresetNames returns all preset names sorted alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ApplyPresetDefaults returns cfg with the preset's default custom parameters
// filled in. Selecting a preset resets the sliders to its defaults; the user
// can override them afterward.
func ApplyPresetDefaults(cfg types.FilterConfig) types.FilterConfig {
	cfg = Normalize(cfg)
	cfg.CustomParams = PresetFor(cfg.PredefinedFilter).Defaults
	return cfg
}
