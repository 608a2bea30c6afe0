package export

import "github.com/ZacxDev/carousel-engine/pkg/types"

// Manifest is the export record downstream packaging treats as source of
// truth. The core fills these fields faithfully; in particular the trimmed
// audio duration and the trim-applied flag must reflect the exact values
// used for rendering.
type Manifest struct {
	SlideCount    int      `json:"slide_count"`
	Platforms     []string `json:"platforms"`
	AudioDuration float64  `json:"audio_duration,omitempty"`
	TrimApplied   bool     `json:"trim_applied"`
	Attribution   string   `json:"attribution,omitempty"`
}

// BuildManifest assembles the manifest for an export run.
func BuildManifest(slides []types.Slide, platformNames []string, clip *types.AudioClip) Manifest {
	m := Manifest{
		SlideCount: len(types.ReadySlides(slides)),
		Platforms:  append([]string(nil), platformNames...),
	}
	if clip != nil {
		start, end := clip.EffectiveSpan()
		m.AudioDuration = end - start
		m.TrimApplied = clip.TrimApplied()
		m.Attribution = clip.Attribution
	}
	return m
}
