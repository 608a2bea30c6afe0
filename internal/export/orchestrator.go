// Package export fans slide compositing out across target platforms and
// collects per-pair results, tolerating partial failure.
package export

import (
	"bytes"
	"context"
	"image/jpeg"
	"image/png"
	"log"
	"runtime"

	"github.com/ZacxDev/carousel-engine/internal/filter"
	"github.com/ZacxDev/carousel-engine/internal/overlay"
	"github.com/ZacxDev/carousel-engine/internal/platform"
	"github.com/ZacxDev/carousel-engine/internal/render"
	"github.com/ZacxDev/carousel-engine/pkg/types"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of compositing one (slide, platform) pair. Err is
// set when the pair failed; successes for sibling pairs are unaffected.
type Result struct {
	Platform   string
	SlideIndex int
	Width      int
	Height     int
	Format     string
	Data       []byte
	Err        error
}

// Options tunes the export fan-out.
type Options struct {
	Concurrency int
	FontPath    string
	Verbose     bool
}

// CompositeForExport renders every ready slide for every requested platform.
// The result set always contains one entry per (ready slide, platform) pair;
// per-pair failures are recorded on the entry rather than aborting the rest.
// The returned error is only non-nil on cancellation or when a platform name
// is unknown.
func CompositeForExport(ctx context.Context, slides []types.Slide, cfg types.FilterConfig, platformNames []string, opts Options) ([]Result, error) {
	plats := make([]platform.Platform, 0, len(platformNames))
	for _, name := range platformNames {
		p, err := platform.Get(name)
		if err != nil {
			return nil, err
		}
		plats = append(plats, p)
	}

	cfg = filter.Normalize(cfg)
	ready := types.ReadySlides(slides)
	results := make([]Result, len(ready)*len(plats))

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	ras := overlay.NewRasterizer(opts.FontPath)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for si, slide := range ready {
		for pi, plat := range plats {
			si, pi, slide, plat := si, pi, slide, plat
			g.Go(func() error {
				res := compositePair(gctx, slide, cfg, plat, ras)
				res.SlideIndex = slide.Position
				results[si*len(plats)+pi] = res
				if opts.Verbose {
					if res.Err != nil {
						log.Printf("export: slide %d for %s failed: %v", slide.Position, plat.GetName(), res.Err)
					} else {
						log.Printf("export: slide %d for %s done (%d bytes)", slide.Position, plat.GetName(), len(res.Data))
					}
				}
				if types.IsCancellation(res.Err) {
					return res.Err
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func compositePair(ctx context.Context, slide types.Slide, cfg types.FilterConfig, plat platform.Platform, ras *overlay.Rasterizer) Result {
	w, h := plat.GetDimensions()
	res := Result{Platform: plat.GetName(), Width: w, Height: h, Format: plat.GetFormat()}

	img, err := render.ComposeSlide(ctx, slide, cfg, w, h, ras)
	if err != nil {
		if types.IsCancellation(err) {
			res.Err = err
			return res
		}
		res.Err = &types.CompositingError{SlideIndex: slide.Position, Platform: plat.GetName(), Stage: "compose", Err: err}
		return res
	}

	var buf bytes.Buffer
	switch plat.GetFormat() {
	case "png":
		err = png.Encode(&buf, img)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: plat.GetQuality()})
	}
	if err != nil {
		res.Err = &types.CompositingError{SlideIndex: slide.Position, Platform: plat.GetName(), Stage: "encode", Err: errors.WithStack(err)}
		return res
	}
	res.Data = buf.Bytes()
	return res
}

// Failed filters the result set down to the pairs that did not composite.
// Surfacing them is the caller's responsibility.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
