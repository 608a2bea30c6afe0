package assembly

import (
	"image"
	"math"

	"github.com/ZacxDev/carousel-engine/pkg/types"
)

// FrameSequencer turns composited slide frames plus timing into a
// deterministic time-coded frame stream. The interactive surface uses it to
// scrub the reel without an encoder; the same boundary math drives the
// encoder's transition graph.
type FrameSequencer struct {
	Frames     []*image.NRGBA
	Timing     types.VideoTiming
	Transition types.Transition
}

// FrameAt renders the frame visible at the given elapsed time. Within a
// transition window at a segment boundary the outgoing and incoming frames
// are blended; outside it the current slide's frame is returned as-is.
func (s *FrameSequencer) FrameAt(elapsed float64) *image.NRGBA {
	if len(s.Frames) == 0 {
		return nil
	}
	net := s.Timing.SlideDuration - s.Timing.TransitionDuration
	if net <= 0 {
		return s.Frames[0]
	}

	idx := int(math.Floor(elapsed / net))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.Frames) {
		return s.Frames[len(s.Frames)-1]
	}

	// A transition occupies the tail of each segment except the last.
	if s.Transition != types.TransitionNone && s.Timing.TransitionDuration > 0 && idx < len(s.Frames)-1 {
		into := elapsed - float64(idx)*net
		windowStart := net - s.Timing.TransitionDuration
		if into > windowStart {
			progress := (into - windowStart) / s.Timing.TransitionDuration
			return blendFrames(s.Frames[idx], s.Frames[idx+1], progress, s.Transition)
		}
	}
	return s.Frames[idx]
}

// blendFrames mixes two frames at progress in [0,1]. Crossfade is a linear
// alpha blend; slide is a horizontal displacement blend pushing the outgoing
// frame left.
func blendFrames(a, b *image.NRGBA, progress float64, transition types.Transition) *image.NRGBA {
	if progress <= 0 {
		return a
	}
	if progress >= 1 {
		return b
	}
	bounds := a.Bounds()
	out := image.NewNRGBA(bounds)

	switch transition {
	case types.TransitionSlide:
		shift := int(math.Round(progress * float64(bounds.Dx())))
		for y := 0; y < bounds.Dy(); y++ {
			for x := 0; x < bounds.Dx(); x++ {
				di := out.PixOffset(x, y)
				if x+shift < bounds.Dx() {
					si := a.PixOffset(x+shift, y)
					copy(out.Pix[di:di+4], a.Pix[si:si+4])
				} else {
					si := b.PixOffset(x+shift-bounds.Dx(), y)
					copy(out.Pix[di:di+4], b.Pix[si:si+4])
				}
			}
		}
	default: // crossfade
		for i := 0; i < len(out.Pix); i++ {
			out.Pix[i] = uint8(float64(a.Pix[i])*(1-progress) + float64(b.Pix[i])*progress + 0.5)
		}
	}
	return out
}
