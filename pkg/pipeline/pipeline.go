package pipeline

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"path/filepath"

	"loglogplot/pkg/config"
	"loglogplot/pkg/data"
	"loglogplot/pkg/figure"
	"loglogplot/pkg/model"
)

// Viewer displays a rendered figure. Show blocks until the user is done with it.
type Viewer interface {
	Show(ctx context.Context, title string, img image.Image) error
}

// Result is everything one run produced.
type Result struct {
	Dataset *data.Dataset
	Fit     model.Fit
	Figure  *figure.Figure
	Output  string
}

// Pipeline runs load -> fit -> plot -> display for one input file.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
	viewer Viewer
	stdout io.Writer
}

// New returns a pipeline. A nil viewer skips the display step.
func New(cfg *config.Config, logger *slog.Logger, viewer Viewer, stdout io.Writer) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger, viewer: viewer, stdout: stdout}
}

// Run processes path. The fitted coefficients are printed to stdout as one
// "m: %f, b: %f" line before the figure is rendered.
func (p *Pipeline) Run(ctx context.Context, path string) (*Result, error) {
	ds, err := data.Load(path, data.WithDelimiter(p.cfg.DelimiterRune()))
	if err != nil {
		return nil, err
	}
	p.logger.Info("loaded dataset", "path", path, "rows", ds.Len(), "x", ds.XName, "y", ds.YName)

	fit, err := model.FitLogLog(ds.X, ds.Y, p.cfg.SkipRows)
	if err != nil {
		return nil, fmt.Errorf("fit %s: %w", path, err)
	}
	if fit.NonPositive > 0 {
		p.logger.Warn("values <= 0 have no logarithm, fit is undefined", "count", fit.NonPositive)
	}
	if fit.Rank == 1 {
		p.logger.Warn("all x values are equal, slope is the minimum-norm solution", "points", fit.N)
	}
	if fit.Valid() {
		p.logger.Info("fitted power law", "points", fit.N, "r2", fit.R2, "rmse", fit.RMSE)
	}
	if _, err := fmt.Fprintln(p.stdout, fit.String()); err != nil {
		return nil, fmt.Errorf("write result: %w", err)
	}

	res := &Result{Dataset: ds, Fit: fit}

	fig, err := figure.Render(ds, p.cfg.SkipRows, &fit, StyleFromConfig(p.cfg))
	if err != nil {
		return res, fmt.Errorf("plot %s: %w", path, err)
	}
	if fig.Masked > 0 {
		p.logger.Warn("rows with values <= 0 left out of the log-log plot", "count", fig.Masked)
	}
	res.Figure = fig

	out := figure.OutputPath(path)
	if err := fig.Save(out); err != nil {
		return res, err
	}
	res.Output = out
	p.logger.Info("saved figure", "path", out)

	if p.viewer == nil {
		return res, nil
	}
	if err := p.viewer.Show(ctx, filepath.Base(out), fig.Image()); err != nil {
		return res, fmt.Errorf("display: %w", err)
	}
	return res, nil
}
