// Package filter implements the parametric color model shared by the live
// preview chain and the offline raster compositor. Both renderers consume the
// same functions in this file; keeping the math in one place is what keeps
// thumbnails and exported images in agreement.
package filter

import (
	"math"

	"github.com/ZacxDev/carousel-engine/pkg/types"
)

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize returns a copy of cfg with every custom parameter clamped to its
// documented range and an unknown preset name mapped to "none". Out-of-range
// values are clamped, not rejected.
func Normalize(cfg types.FilterConfig) types.FilterConfig {
	cfg.CustomParams.GrainAmount = clampInt(cfg.CustomParams.GrainAmount, 0, 100)
	cfg.CustomParams.BloomDiffusion = clampInt(cfg.CustomParams.BloomDiffusion, 0, 100)
	cfg.CustomParams.ShadowFade = clampInt(cfg.CustomParams.ShadowFade, 0, 100)
	cfg.CustomParams.ColorBias = clampInt(cfg.CustomParams.ColorBias, -100, 100)
	cfg.CustomParams.VignetteDepth = clampInt(cfg.CustomParams.VignetteDepth, 0, 100)
	if _, ok := presets[cfg.PredefinedFilter]; !ok {
		cfg.PredefinedFilter = PresetNone
	}
	return cfg
}

// IsNeutral reports whether cfg is the identity configuration: preset "none"
// and all five custom parameters at zero. The compositor short-circuits to a
// no-op copy on neutral configs.
func IsNeutral(cfg types.FilterConfig) bool {
	cfg = Normalize(cfg)
	p := cfg.CustomParams
	return cfg.PredefinedFilter == PresetNone &&
		p.GrainAmount == 0 && p.BloomDiffusion == 0 && p.ShadowFade == 0 &&
		p.ColorBias == 0 && p.VignetteDepth == 0
}

// GrainTileSizePx is the edge length of one noise tile in final pixels. The
// noise is coarser than the pixel grid on purpose; both renderers use the
// same tile size.
const GrainTileSizePx = 4

// ShadowFadeContrast is the contrast multiplier for a shadow_fade value.
func ShadowFadeContrast(fade int) float64 {
	return 1.0 - float64(fade)*0.003
}

// ShadowFadeOffset is the brightness lift for a shadow_fade value, in 8-bit
// channel units (the linear transform is output = input*contrast + offset).
func ShadowFadeOffset(fade int) float64 {
	return float64(fade) * 0.4
}

// BloomBrightness is the brightness multiplier for a bloom_diffusion value.
func BloomBrightness(diffusion int) float64 {
	return 1.0 + float64(diffusion)*0.002
}

// ColorBiasDegrees converts a color_bias value to a hue rotation in degrees.
// Warm (positive) and cool (negative) use different sensitivities; the
// asymmetry compensates for perceptual hue-rotation nonlinearity and must be
// preserved.
func ColorBiasDegrees(bias int) float64 {
	if bias >= 0 {
		return float64(bias) * 0.3
	}
	return float64(bias) * 0.5
}

// VignetteEdgeAlpha is the darkening alpha at the frame corner for a
// vignette_depth value; the center stays untouched.
func VignetteEdgeAlpha(depth int) float64 {
	return float64(depth) * 0.008
}

// GrainAlpha is the 0..255 opacity of the noise layer for a grain_amount
// value.
func GrainAlpha(amount int) uint8 {
	return uint8(math.Round(float64(amount) / 100.0 * 80.0))
}
