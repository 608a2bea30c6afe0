// Package timing computes slide, transition, and total durations for a
// rendered reel. It is pure scheduling math with no rendering dependency.
package timing

import (
	"fmt"
	"math"

	"github.com/ZacxDev/carousel-engine/internal/config"
	"github.com/ZacxDev/carousel-engine/pkg/types"
)

// Compute derives the reel timing from the ready slide count, an optional
// audio clip, and the configured settings.
//
// In match-audio mode the trimmed audio span is divided evenly across
// slides; in custom mode the configured slide duration is fixed and
// transitions overlap adjacent slides. Zero ready slides means nothing to
// render: all durations are zero, not an error.
func Compute(readySlideCount int, clip *types.AudioClip, settings types.VideoSettings) types.VideoTiming {
	if readySlideCount == 0 {
		return types.VideoTiming{}
	}

	transition := settings.TransitionDuration
	if transition <= 0 {
		transition = config.DefaultTransitionDuration
	}
	if settings.Transition == types.TransitionNone {
		transition = 0
	}

	if settings.TimingMode == types.TimingModeMatchAudio && clip != nil {
		start, end := clip.EffectiveSpan()
		total := end - start
		if total > 0 {
			return types.VideoTiming{
				SlideDuration:      total / float64(readySlideCount),
				TransitionDuration: transition,
				TotalDuration:      total,
			}
		}
	}

	slideDur := settings.SlideDuration
	if slideDur <= 0 {
		slideDur = config.DefaultSlideDuration
	}
	total := float64(readySlideCount) * slideDur
	if transition > 0 {
		// Transitions overlap adjacent slides, so each one shortens the reel.
		total -= float64(readySlideCount-1) * transition
	}
	return types.VideoTiming{
		SlideDuration:      slideDur,
		TransitionDuration: transition,
		TotalDuration:      total,
	}
}

// Validate rejects inconsistent settings before assembly starts. The
// playback slide index is floor(elapsed / (slideDuration - transition)), so
// the transition must be strictly shorter than the slide duration.
func Validate(timing types.VideoTiming) error {
	if timing.TotalDuration == 0 {
		return nil
	}
	if timing.SlideDuration <= 0 {
		return &types.TimingConfigError{Reason: "slide duration must be positive"}
	}
	if timing.TransitionDuration < 0 {
		return &types.TimingConfigError{Reason: "transition duration must not be negative"}
	}
	if timing.TransitionDuration >= timing.SlideDuration {
		return &types.TimingConfigError{
			Reason: fmt.Sprintf("transition duration %.2fs must be shorter than slide duration %.2fs",
				timing.TransitionDuration, timing.SlideDuration),
		}
	}
	return nil
}

// SegmentDuration is the per-segment encode length that makes the encoded
// transition chain land exactly on the total duration. Each transition
// overlaps two adjacent segments, so n segments chained with n-1 overlaps
// of length F span n*s - (n-1)*F; solving for the span to equal the total
// gives s = (total + (n-1)*F) / n. In custom mode this is the configured
// slide duration; in match-audio mode it runs slightly longer than the
// per-slide playback duration so the video track ends with the audio.
func SegmentDuration(timing types.VideoTiming, segmentCount int) float64 {
	if segmentCount <= 1 {
		return timing.TotalDuration
	}
	return (timing.TotalDuration + float64(segmentCount-1)*timing.TransitionDuration) / float64(segmentCount)
}

// SlideIndexAt returns which slide is visible at the given elapsed time
// during playback.
func SlideIndexAt(elapsed float64, timing types.VideoTiming, slideCount int) int {
	net := timing.SlideDuration - timing.TransitionDuration
	if net <= 0 || slideCount == 0 {
		return 0
	}
	idx := int(math.Floor(elapsed / net))
	if idx < 0 {
		return 0
	}
	if idx >= slideCount {
		return slideCount - 1
	}
	return idx
}

// GoldilocksDuration is the recommended audio length for a slide count.
func GoldilocksDuration(slideCount int) float64 {
	return float64(slideCount) * config.GoldilocksSecondsPerSlide
}

// FormatDuration renders seconds as m:ss.t for UI display, e.g. "0:07.5".
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	tenths := int(math.Round(seconds * 10))
	m := tenths / 600
	s := (tenths % 600) / 10
	t := tenths % 10
	return fmt.Sprintf("%d:%02d.%d", m, s, t)
}
