package filter

import (
	"testing"

	"github.com/ZacxDev/carousel-engine/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPreviewChainNeutralIsEmpty(t *testing.T) {
	chain := BuildPreviewChain(types.FilterConfig{})
	assert.Empty(t, chain.Ops)
	assert.Empty(t, chain.Layers)
	assert.Equal(t, "", chain.String())
}

func TestBuildPreviewChainKodachrome(t *testing.T) {
	chain := BuildPreviewChain(types.FilterConfig{PredefinedFilter: PresetKodachrome})
	assert.Equal(t, "brightness(1.040) contrast(1.120) saturate(1.250) hue-rotate(-5.0deg)", chain.String())
	assert.Empty(t, chain.Layers)
}

// The interactive ops must be built from the same parameter math the
// compositor folds into its transform.
func TestPreviewChainSharesCustomParamMath(t *testing.T) {
	cfg := types.FilterConfig{
		CustomParams: types.CustomParams{ShadowFade: 60, BloomDiffusion: 30},
	}
	chain := BuildPreviewChain(cfg)
	require.Len(t, chain.Ops, 3)

	assert.Equal(t, "contrast", chain.Ops[0].Name)
	assert.InDelta(t, ShadowFadeContrast(60), chain.Ops[0].Value, 1e-9)
	assert.Equal(t, "brightness", chain.Ops[1].Name)
	assert.InDelta(t, 1+ShadowFadeOffset(60)/128, chain.Ops[1].Value, 1e-9)
	assert.Equal(t, "brightness", chain.Ops[2].Name)
	assert.InDelta(t, BloomBrightness(30), chain.Ops[2].Value, 1e-9)
}

// On sepia-bearing presets the bias rotation must appear after the sepia
// op, matching the compositor's fold order.
func TestPreviewChainBiasFollowsSepia(t *testing.T) {
	chain := BuildPreviewChain(types.FilterConfig{
		PredefinedFilter: PresetSepia,
		CustomParams:     types.CustomParams{ColorBias: 40},
	})

	var names []string
	for _, op := range chain.Ops {
		names = append(names, op.Name)
	}
	assert.Equal(t, []string{"brightness", "contrast", "saturate", "sepia", "hue-rotate"}, names)
	assert.InDelta(t, ColorBiasDegrees(40), chain.Ops[len(chain.Ops)-1].Value, 1e-9)
}

func TestPreviewChainLayers(t *testing.T) {
	cfg := types.FilterConfig{
		PredefinedFilter: PresetLomo,
		CustomParams:     types.CustomParams{VignetteDepth: 50, GrainAmount: 50},
	}
	chain := BuildPreviewChain(cfg)
	require.Len(t, chain.Layers, 3)

	assert.Equal(t, "gradient", chain.Layers[0].Kind)
	require.NotNil(t, chain.Layers[0].Gradient)
	assert.Equal(t, BlendOverlay, chain.Layers[0].Blend)

	assert.Equal(t, "vignette", chain.Layers[1].Kind)
	assert.InDelta(t, VignetteEdgeAlpha(50), chain.Layers[1].Alpha, 1e-9)
	assert.Equal(t, BlendMultiply, chain.Layers[1].Blend)

	assert.Equal(t, "grain", chain.Layers[2].Kind)
	assert.Equal(t, GrainTileSizePx, chain.Layers[2].TileSize)
	assert.InDelta(t, float64(GrainAlpha(50))/255, chain.Layers[2].Alpha, 1e-9)
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	assert.Len(t, names, 10)
	assert.Contains(t, names, PresetNone)
	assert.Contains(t, names, PresetKodachrome)
	assert.Contains(t, names, PresetDreamy)
	assert.IsIncreasing(t, names)
}

func TestPresetForFallsBack(t *testing.T) {
	assert.Equal(t, PresetVelvia, PresetFor(PresetVelvia).Name)
	assert.Equal(t, PresetNone, PresetFor("ektachrome").Name)
}

func TestApplyPresetDefaults(t *testing.T) {
	cfg := types.FilterConfig{
		PredefinedFilter: PresetPolaroid,
		CustomParams:     types.CustomParams{ColorBias: 77},
	}
	got := ApplyPresetDefaults(cfg)
	assert.Equal(t, types.CustomParams{GrainAmount: 25, ShadowFade: 30, VignetteDepth: 35}, got.CustomParams)

	// "none" resets every slider to zero.
	got = ApplyPresetDefaults(types.FilterConfig{CustomParams: types.CustomParams{GrainAmount: 90}})
	assert.Equal(t, types.CustomParams{}, got.CustomParams)
}
