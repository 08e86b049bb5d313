// batch.go - Render and write many variants, optionally in parallel.
package scene

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rafsoft/adstencil/pkg/generator"
)

// BatchOptions configures RenderAll.
type BatchOptions struct {
	OutputDir     string
	MaxConcurrent int       // variants rendered at once; <= 1 is serial
	Data          *DataSpec // copy overrides, may be nil
	Logger        *slog.Logger
}

// Result is the outcome of one variant.
type Result struct {
	Variant  string
	Path     string
	Width    int
	Height   int
	Duration time.Duration
	Err      error
}

// RenderAll renders every variant and writes it to opts.OutputDir as
// <name>_<W>x<H>.<ext>. Variants are independent: each owns its buffers, and
// a failure is recorded in that variant's Result without stopping the
// others. ctx is checked before each variant starts.
func RenderAll(ctx context.Context, c *Composer, variants []Variant, opts BatchOptions) []Result {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	results := make([]Result, len(variants))
	var g errgroup.Group
	g.SetLimit(max(opts.MaxConcurrent, 1))

	for i, v := range variants {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Variant: v.Name, Err: err}
				return nil
			}
			results[i] = renderOne(c, v, opts)
			if err := results[i].Err; err != nil {
				logger.Error("variant failed", "variant", v.Name, "err", err)
			} else {
				logger.Info("variant written", "variant", v.Name, "path", results[i].Path,
					"duration", results[i].Duration)
			}
			return nil
		})
	}
	g.Wait()

	return results
}

func renderOne(c *Composer, v Variant, opts BatchOptions) Result {
	start := time.Now()
	res := Result{Variant: v.Name, Width: v.Canvas.Width, Height: v.Canvas.Height}

	name, err := generator.OutputName(v.Name, v.Canvas.Width, v.Canvas.Height, v.Format)
	if err != nil {
		res.Err = &RenderError{Variant: v.Name, Err: err}
		return res
	}

	img, err := c.Render(v, opts.Data)
	if err != nil {
		res.Err = err
		return res
	}

	path := filepath.Join(opts.OutputDir, name)
	cfg := generator.Config{Format: v.Format, Quality: v.Quality}
	if err := generator.Generate(path, img, cfg); err != nil {
		res.Err = &RenderError{Variant: v.Name, Err: err}
		return res
	}

	res.Path = path
	res.Duration = time.Since(start)
	return res
}

// Errors joins the failures of results, or returns nil if every variant
// was written.
func Errors(results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d variants failed: %w", len(errs), len(results), errors.Join(errs...))
}
