// Package assembly sequences composited slide frames into an encoded reel:
// per-slide segments, transition blending at segment boundaries, and a
// trimmed audio mux.
package assembly

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/ZacxDev/carousel-engine/internal/config"
	"github.com/ZacxDev/carousel-engine/internal/filter"
	"github.com/ZacxDev/carousel-engine/internal/overlay"
	"github.com/ZacxDev/carousel-engine/internal/render"
	"github.com/ZacxDev/carousel-engine/internal/timing"
	"github.com/ZacxDev/carousel-engine/pkg/types"
	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Options tunes the reel encode.
type Options struct {
	Width    int
	Height   int
	FPS      int
	FontPath string
	Verbose  bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = config.DefaultVideoWidth
	}
	if o.Height <= 0 {
		o.Height = config.DefaultVideoHeight
	}
	if o.FPS <= 0 {
		o.FPS = config.DefaultFPS
	}
	return o
}

// Assemble renders the reel to outputPath and returns the timing used.
// Only ready slides take part; zero ready slides is an AssemblyFailure.
// FilterConfig and VideoSettings are captured once on entry, so caller-side
// mutation mid-run cannot corrupt the render. Cancellation via ctx discards
// any partial output and cleans up before returning context.Canceled.
func Assemble(ctx context.Context, slides []types.Slide, cfg types.FilterConfig, settings types.VideoSettings, clip *types.AudioClip, outputPath string, opts Options) (types.VideoTiming, error) {
	opts = opts.withDefaults()
	cfg = filter.Normalize(cfg)

	ready := types.ReadySlides(slides)
	if len(ready) == 0 {
		return types.VideoTiming{}, &types.AssemblyFailure{Reason: "no ready slides to assemble"}
	}
	if clip != nil {
		if err := clip.Validate(); err != nil {
			return types.VideoTiming{}, err
		}
	}

	t := timing.Compute(len(ready), clip, settings)
	if err := timing.Validate(t); err != nil {
		return types.VideoTiming{}, err
	}

	tempDir, err := os.MkdirTemp("", config.TempDirPrefix)
	if err != nil {
		return t, errors.Wrap(err, "create temp directory")
	}
	defer os.RemoveAll(tempDir)

	cleanupOnCancel := func(err error) (types.VideoTiming, error) {
		if types.IsCancellation(err) {
			os.Remove(outputPath)
		}
		return t, err
	}

	if opts.Verbose {
		log.Printf("assembling %d slides at %dx%d@%dfps, total %.2fs (slide %.2fs, transition %.2fs)",
			len(ready), opts.Width, opts.Height, opts.FPS, t.TotalDuration, t.SlideDuration, t.TransitionDuration)
	}

	// Stage 1: composite each ready slide into a frame image.
	ras := overlay.NewRasterizer(opts.FontPath)
	framePaths := make([]string, len(ready))
	for i, slide := range ready {
		if err := ctx.Err(); err != nil {
			return cleanupOnCancel(err)
		}
		img, err := render.ComposeSlide(ctx, slide, cfg, opts.Width, opts.Height, ras)
		if err != nil {
			if types.IsCancellation(err) {
				return cleanupOnCancel(err)
			}
			return t, &types.AssemblyFailure{Reason: fmt.Sprintf("composite slide %d", slide.Position), Err: err}
		}
		framePath := filepath.Join(tempDir, fmt.Sprintf("frame_%03d.png", i))
		f, err := os.Create(framePath)
		if err != nil {
			return t, errors.Wrap(err, "create frame file")
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return t, errors.Wrap(err, "encode frame")
		}
		f.Close()
		framePaths[i] = framePath
	}

	// Stage 2: encode one segment per slide. Segments are cut to the chain
	// segment length, not the playback slide duration: transitions overlap
	// adjacent segments, and the chain must still land on the total so the
	// video track ends together with the audio.
	segDur := timing.SegmentDuration(t, len(framePaths))
	segmentPaths := make([]string, len(framePaths))
	for i, framePath := range framePaths {
		segPath := filepath.Join(tempDir, fmt.Sprintf("seg_%03d.mp4", i))
		cmd := ffmpeg.Input(framePath, ffmpeg.KwArgs{"loop": "1", "framerate": opts.FPS}).
			Output(segPath, ffmpeg.KwArgs{
				"t":       fmt.Sprintf("%.3f", segDur),
				"c:v":     config.VideoCodec,
				"pix_fmt": "yuv420p",
				"r":       opts.FPS,
				"crf":     config.VideoCRF,
				"preset":  "medium",
			}).
			OverWriteOutput().Compile()
		if err := runCmd(ctx, cmd); err != nil {
			if types.IsCancellation(err) {
				return cleanupOnCancel(err)
			}
			return t, &types.AssemblyFailure{Reason: fmt.Sprintf("encode segment %d", i), Err: err}
		}
		segmentPaths[i] = segPath
		if opts.Verbose {
			log.Printf("segment ready: %d/%d", i+1, len(framePaths))
		}
	}

	// Stage 3+4: transition graph, then mux with the trimmed audio track.
	video := buildTransitionGraph(segmentPaths, settings.Transition, t)

	streams := []*ffmpeg.Stream{video}
	outputKwargs := ffmpeg.KwArgs{
		"c:v":      config.VideoCodec,
		"pix_fmt":  "yuv420p",
		"r":        opts.FPS,
		"crf":      config.VideoCRF,
		"preset":   "medium",
		"movflags": "+faststart",
		// Clip the artifact to the computed total so audio and video
		// terminate together.
		"t": fmt.Sprintf("%.3f", t.TotalDuration),
	}
	if clip != nil {
		start, _ := clip.EffectiveSpan()
		audio := ffmpeg.Input(clip.Path, ffmpeg.KwArgs{
			"ss": fmt.Sprintf("%.3f", start),
			"t":  fmt.Sprintf("%.3f", t.TotalDuration),
		}).Audio()
		streams = append(streams, audio)
		outputKwargs["c:a"] = config.AudioCodec
		outputKwargs["b:a"] = config.AudioBitrate
	}

	cmd := ffmpeg.Output(streams, outputPath, outputKwargs).OverWriteOutput().Compile()
	if err := runCmd(ctx, cmd); err != nil {
		if types.IsCancellation(err) {
			return cleanupOnCancel(err)
		}
		// A half-written artifact is not valid output.
		os.Remove(outputPath)
		return t, &types.AssemblyFailure{Reason: "mux final video", Err: err}
	}

	if _, err := os.Stat(outputPath); err != nil {
		return t, &types.AssemblyFailure{Reason: "encoder produced no output", Err: err}
	}
	return t, nil
}

// buildTransitionGraph chains the slide segments with the configured
// transition. Crossfade and slide use xfade with offsets that overlap each
// boundary by the transition duration; "none" is a hard cut via concat.
// Offsets advance by the chain segment length minus the overlap, so the
// last segment's tail falls exactly on the total duration.
func buildTransitionGraph(segmentPaths []string, transition types.Transition, t types.VideoTiming) *ffmpeg.Stream {
	inputs := make([]*ffmpeg.Stream, len(segmentPaths))
	for i, p := range segmentPaths {
		inputs[i] = ffmpeg.Input(p)
	}
	if len(inputs) == 1 {
		return inputs[0]
	}

	if transition == types.TransitionNone || t.TransitionDuration <= 0 {
		return ffmpeg.Filter(inputs, "concat", ffmpeg.Args{
			fmt.Sprintf("n=%d", len(inputs)),
			"v=1",
			"a=0",
		})
	}

	xfadeName := "fade"
	if transition == types.TransitionSlide {
		xfadeName = "slideleft"
	}

	segDur := timing.SegmentDuration(t, len(inputs))
	out := inputs[0]
	offset := 0.0
	for i := 1; i < len(inputs); i++ {
		offset += segDur - t.TransitionDuration
		out = ffmpeg.Filter([]*ffmpeg.Stream{out, inputs[i]}, "xfade", ffmpeg.Args{
			"transition=" + xfadeName,
			fmt.Sprintf("duration=%.3f", t.TransitionDuration),
			fmt.Sprintf("offset=%.3f", offset),
		})
	}
	return out
}
