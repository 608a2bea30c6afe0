// Package carousel is the public entry point of the engine: it loads project
// documents and drives video assembly, per-platform image export, and timing
// computation.
package carousel

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ZacxDev/carousel-engine/internal/assembly"
	"github.com/ZacxDev/carousel-engine/internal/config"
	"github.com/ZacxDev/carousel-engine/internal/export"
	"github.com/ZacxDev/carousel-engine/internal/filter"
	"github.com/ZacxDev/carousel-engine/internal/platform"
	"github.com/ZacxDev/carousel-engine/internal/timing"
	"github.com/ZacxDev/carousel-engine/pkg/types"
	"github.com/pkg/errors"
)

// RenderVideoOptions re-exports the render options for library callers.
type RenderVideoOptions = config.RenderVideoOptions

// ExportOptions re-exports the export options for library callers.
type ExportOptions = config.ExportOptions

// GetSupportedPlatforms returns the names of all registered export targets.
func GetSupportedPlatforms() []string {
	return platform.GetSupportedPlatforms()
}

// GetPresetNames returns the names of all predefined filters.
func GetPresetNames() []string {
	return filter.PresetNames()
}

// RenderVideo assembles the project's reel to opts.OutputPath and returns
// the timing used. Cancellation through ctx discards partial output.
func RenderVideo(ctx context.Context, opts RenderVideoOptions) (types.VideoTiming, error) {
	project, err := LoadProject(opts.ProjectPath)
	if err != nil {
		return types.VideoTiming{}, err
	}
	if opts.OutputPath == "" {
		return types.VideoTiming{}, fmt.Errorf("output path is required")
	}

	return assembly.Assemble(ctx, project.Slides, project.Filter, project.Video, project.Audio, opts.OutputPath, assembly.Options{
		Width:    opts.Width,
		Height:   opts.Height,
		FPS:      opts.FPS,
		FontPath: opts.FontPath,
		Verbose:  opts.Verbose,
	})
}

// ExportImages composites every ready slide for every requested platform
// into opts.OutputDir and writes a manifest.json describing the run. Pairs
// that fail are reported in the returned results; successes are still
// written.
func ExportImages(ctx context.Context, opts ExportOptions) ([]export.Result, error) {
	project, err := LoadProject(opts.ProjectPath)
	if err != nil {
		return nil, err
	}
	platforms := opts.Platforms
	if len(platforms) == 0 {
		platforms = platform.GetSupportedPlatforms()
	}

	results, err := export.CompositeForExport(ctx, project.Slides, project.Filter, platforms, export.Options{
		Concurrency: opts.Concurrency,
		FontPath:    opts.FontPath,
		Verbose:     opts.Verbose,
	})
	if err != nil {
		return results, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return results, errors.Wrap(err, "create output directory")
	}
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		ext := "jpg"
		if res.Format == "png" {
			ext = "png"
		}
		name := fmt.Sprintf("slide_%02d_%s.%s", res.SlideIndex, res.Platform, ext)
		if err := os.WriteFile(filepath.Join(opts.OutputDir, name), res.Data, 0o644); err != nil {
			return results, errors.Wrapf(err, "write %s", name)
		}
	}

	manifest := export.BuildManifest(project.Slides, platforms, project.Audio)
	if manifest.Attribution == "" {
		manifest.Attribution = project.Attribution
	}
	raw, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return results, errors.Wrap(err, "marshal manifest")
	}
	if err := os.WriteFile(filepath.Join(opts.OutputDir, "manifest.json"), raw, 0o644); err != nil {
		return results, errors.Wrap(err, "write manifest")
	}

	if opts.Verbose {
		log.Printf("exported %d results (%d failed) to %s", len(results), len(export.Failed(results)), opts.OutputDir)
	}
	return results, nil
}

// ComputeTiming derives the reel timing for a loaded project without
// rendering anything.
func ComputeTiming(project *Project) (types.VideoTiming, error) {
	ready := types.ReadySlides(project.Slides)
	t := timing.Compute(len(ready), project.Audio, project.Video)
	if err := timing.Validate(t); err != nil {
		return types.VideoTiming{}, err
	}
	return t, nil
}

// FormatDuration renders seconds as m:ss.t for UI display.
func FormatDuration(seconds float64) string {
	return timing.FormatDuration(seconds)
}
