package assembly

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZacxDev/carousel-engine/internal/config"
	"github.com/ZacxDev/carousel-engine/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

func TestOptionsWithDefaults(t *testing.T) {
	got := Options{}.withDefaults()
	assert.Equal(t, config.DefaultVideoWidth, got.Width)
	assert.Equal(t, config.DefaultVideoHeight, got.Height)
	assert.Equal(t, config.DefaultFPS, got.FPS)

	got = Options{Width: 720, Height: 1280, FPS: 24}.withDefaults()
	assert.Equal(t, 720, got.Width)
	assert.Equal(t, 1280, got.Height)
	assert.Equal(t, 24, got.FPS)
}

func TestAssembleRejectsNoReadySlides(t *testing.T) {
	out := filepath.Join(t.TempDir(), "reel.mp4")
	slides := []types.Slide{
		{ID: "a", Position: 0, Status: types.SlideStatusPending},
		{ID: "b", Position: 1, Status: types.SlideStatusError},
	}

	_, err := Assemble(context.Background(), slides, types.FilterConfig{}, types.VideoSettings{}, nil, out, Options{})
	require.Error(t, err)
	var failure *types.AssemblyFailure
	assert.ErrorAs(t, err, &failure)
}

func TestAssembleRejectsBadAudioTrim(t *testing.T) {
	trim := func(v float64) *float64 { return &v }
	out := filepath.Join(t.TempDir(), "reel.mp4")
	slides := []types.Slide{{ID: "a", Position: 0, Status: types.SlideStatusReady}}
	clip := &types.AudioClip{Duration: 10, TrimStart: trim(8), TrimEnd: trim(4)}

	_, err := Assemble(context.Background(), slides, types.FilterConfig{}, types.VideoSettings{}, clip, out, Options{})
	require.Error(t, err)
	var cfgErr *types.TimingConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestAssembleRejectsTransitionLongerThanSlide(t *testing.T) {
	out := filepath.Join(t.TempDir(), "reel.mp4")
	slides := []types.Slide{
		{ID: "a", Position: 0, Status: types.SlideStatusReady},
		{ID: "b", Position: 1, Status: types.SlideStatusReady},
	}
	settings := types.VideoSettings{
		Transition:         types.TransitionCrossfade,
		TimingMode:         types.TimingModeCustom,
		SlideDuration:      1,
		TransitionDuration: 1.5,
	}

	_, err := Assemble(context.Background(), slides, types.FilterConfig{}, settings, nil, out, Options{})
	require.Error(t, err)
	var cfgErr *types.TimingConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func compiledGraphArgs(t *testing.T, paths []string, transition types.Transition, tm types.VideoTiming) string {
	t.Helper()
	video := buildTransitionGraph(paths, transition, tm)
	cmd := ffmpeg.Output([]*ffmpeg.Stream{video}, "out.mp4").Compile()
	return strings.Join(cmd.Args, " ")
}

// The xfade chain must end exactly on the total duration. With 14s of
// trimmed audio across 4 slides and 0.5s crossfades the segments run
// 3.875s each, putting the boundaries at 3.375/6.750/10.125 and the tail
// of the last segment at 14.0s.
func TestTransitionGraphEndsWithAudio(t *testing.T) {
	tm := types.VideoTiming{SlideDuration: 3.5, TransitionDuration: 0.5, TotalDuration: 14}
	paths := []string{"seg_000.mp4", "seg_001.mp4", "seg_002.mp4", "seg_003.mp4"}

	args := compiledGraphArgs(t, paths, types.TransitionCrossfade, tm)
	assert.Contains(t, args, "transition=fade")
	assert.Contains(t, args, "offset=3.375")
	assert.Contains(t, args, "offset=6.750")
	assert.Contains(t, args, "offset=10.125")
	assert.NotContains(t, args, "offset=9.000")
}

func TestTransitionGraphCustomMode(t *testing.T) {
	// 5 slides at 3s with 0.5s crossfades: boundaries every 2.5s.
	tm := types.VideoTiming{SlideDuration: 3, TransitionDuration: 0.5, TotalDuration: 13}
	paths := []string{"a.mp4", "b.mp4", "c.mp4", "d.mp4", "e.mp4"}

	args := compiledGraphArgs(t, paths, types.TransitionSlide, tm)
	assert.Contains(t, args, "transition=slideleft")
	assert.Contains(t, args, "offset=2.500")
	assert.Contains(t, args, "offset=10.000")
}

func TestTransitionGraphHardCut(t *testing.T) {
	tm := types.VideoTiming{SlideDuration: 2, TransitionDuration: 0, TotalDuration: 6}
	paths := []string{"a.mp4", "b.mp4", "c.mp4"}

	args := compiledGraphArgs(t, paths, types.TransitionNone, tm)
	assert.Contains(t, args, "concat")
	assert.Contains(t, args, "n=3")
	assert.NotContains(t, args, "xfade")
}

func TestAssembleFailureLeavesNoArtifact(t *testing.T) {
	// With no ffmpeg on PATH the segment encode fails; the run must end in
	// an AssemblyFailure with nothing at the output path.
	t.Setenv("PATH", t.TempDir())

	out := filepath.Join(t.TempDir(), "reel.mp4")
	slides := []types.Slide{{ID: "a", Position: 0, Status: types.SlideStatusReady, SlideType: types.SlideTypeStory}}

	_, err := Assemble(context.Background(), slides, types.FilterConfig{}, types.VideoSettings{}, nil, out, Options{Width: 48, Height: 48})
	require.Error(t, err)
	var failure *types.AssemblyFailure
	assert.ErrorAs(t, err, &failure)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAssembleCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "reel.mp4")
	slides := []types.Slide{{ID: "a", Position: 0, Status: types.SlideStatusReady, SlideType: types.SlideTypeStory}}

	_, err := Assemble(ctx, slides, types.FilterConfig{}, types.VideoSettings{}, nil, out, Options{Width: 64, Height: 64})
	require.Error(t, err)
	assert.True(t, types.IsCancellation(err))

	// No partial artifact may survive a cancellation.
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
