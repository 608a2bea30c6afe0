package filter

import (
	"math"

	"github.com/ZacxDev/carousel-engine/pkg/types"
)

// Transform is an affine color transform: out = M*rgb + Offset, with channel
// values in 0..255. The base preset transform and all linear custom effects
// fold into a single Transform so the compositor grades in one pass.
type Transform struct {
	M      [3][3]float64
	Offset [3]float64
}

func identityTransform() Transform {
	return Transform{M: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// scaleAdd applies a contrast/brightness step on top of t:
// out = c*(previous) + o.
func (t Transform) scaleAdd(c, o float64) Transform {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.M[i][j] *= c
		}
		t.Offset[i] = t.Offset[i]*c + o
	}
	return t
}

// mulLeft applies matrix a after t: out = a*(previous).
func (t Transform) mulLeft(a [3][3]float64) Transform {
	var m [3][3]float64
	var off [3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				m[i][j] += a[i][k] * t.M[k][j]
			}
		}
		for k := 0; k < 3; k++ {
			off[i] += a[i][k] * t.Offset[k]
		}
	}
	t.M = m
	t.Offset = off
	return t
}

// Apply transforms one rgb triple, clamping to 0..255.
func (t Transform) Apply(r, g, b float64) (float64, float64, float64) {
	or := t.M[0][0]*r + t.M[0][1]*g + t.M[0][2]*b + t.Offset[0]
	og := t.M[1][0]*r + t.M[1][1]*g + t.M[1][2]*b + t.Offset[1]
	ob := t.M[2][0]*r + t.M[2][1]*g + t.M[2][2]*b + t.Offset[2]
	return clamp255(or), clamp255(og), clamp255(ob)
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Luminance weights from the SVG/CSS filter color matrices. Using the same
// constants in both renderers is required for parity.
const (
	lumR = 0.213
	lumG = 0.715
	lumB = 0.072
)

func saturationMatrix(s float64) [3][3]float64 {
	return [3][3]float64{
		{lumR + (1-lumR)*s, lumG - lumG*s, lumB - lumB*s},
		{lumR - lumR*s, lumG + (1-lumG)*s, lumB - lumB*s},
		{lumR - lumR*s, lumG - lumG*s, lumB + (1-lumB)*s},
	}
}

func hueRotateMatrix(degrees float64) [3][3]float64 {
	rad := degrees * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return [3][3]float64{
		{lumR + c*(1-lumR) - s*lumR, lumG - c*lumG - s*lumG, lumB - c*lumB + s*(1-lumB)},
		{lumR - c*lumR + s*0.143, lumG + c*(1-lumG) + s*0.140, lumB - c*lumB - s*0.283},
		{lumR - c*lumR - s*(1-lumR), lumG - c*lumG + s*lumG, lumB + c*(1-lumB) + s*lumB},
	}
}

// sepiaMatrix blends the classic sepia mixing matrix against identity by s.
func sepiaMatrix(s float64) [3][3]float64 {
	return [3][3]float64{
		{(1 - s) + s*0.393, s * 0.769, s * 0.189},
		{s * 0.349, (1 - s) + s*0.686, s * 0.168},
		{s * 0.272, s * 0.534, (1 - s) + s*0.131},
	}
}

// BuildTransform folds the named-filter base effect and the linear custom
// parameters into one Transform. Order matters: the named-filter base runs
// first in full (contrast/brightness, saturation, preset hue, sepia), then
// the custom-parameter steps on top (color_bias rotation, shadow fade,
// bloom). Hue and sepia matrices do not commute, so the bias rotation must
// stay after the sepia stage.
func BuildTransform(cfg types.FilterConfig) Transform {
	cfg = Normalize(cfg)
	p := PresetFor(cfg.PredefinedFilter)

	t := identityTransform()
	t = t.scaleAdd(p.Contrast, p.Brightness*255)
	if p.Saturation != 1 {
		t = t.mulLeft(saturationMatrix(p.Saturation))
	}
	if p.HueDegrees != 0 {
		t = t.mulLeft(hueRotateMatrix(p.HueDegrees))
	}
	if p.Sepia > 0 {
		t = t.mulLeft(sepiaMatrix(p.Sepia))
	}
	if bias := ColorBiasDegrees(cfg.CustomParams.ColorBias); bias != 0 {
		t = t.mulLeft(hueRotateMatrix(bias))
	}
	if fade := cfg.CustomParams.ShadowFade; fade > 0 {
		t = t.scaleAdd(ShadowFadeContrast(fade), ShadowFadeOffset(fade))
	}
	if bloom := cfg.CustomParams.BloomDiffusion; bloom > 0 {
		t = t.scaleAdd(BloomBrightness(bloom), 0)
	}
	return t
}
