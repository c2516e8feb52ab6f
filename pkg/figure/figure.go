// Package figure draws a dataset on log-log axes with gonum/plot and writes it out.
package figure

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"loglogplot/pkg/data"
	"loglogplot/pkg/model"
)

// ErrNoDrawablePoints means every row had a value <= 0, which a log axis can't show.
var ErrNoDrawablePoints = errors.New("no positive points to draw on log axes")

// Style is the look of every figure. It is set up once, from DefaultStyle or configuration.
type Style struct {
	Width, Height vg.Length
	LabelFontSize vg.Length
	GridColor     color.Color
	LineColor     color.Color
	LineWidth     vg.Length
	FitColor      color.Color
	// OverlayFit draws the fitted power law as a dashed line.
	OverlayFit bool
}

// DefaultStyle is a grayscale 6.4x4.8in figure with a faint grid and 18pt axis labels.
func DefaultStyle() Style {
	return Style{
		Width:         6.4 * vg.Inch,
		Height:        4.8 * vg.Inch,
		LabelFontSize: vg.Points(18),
		GridColor:     GridColor(0.1),
		LineColor:     color.Black,
		LineWidth:     vg.Points(1.5),
		FitColor:      color.Gray{Y: 0x80},
	}
}

// GridColor returns black at the given opacity (0..1).
func GridColor(alpha float64) color.Color {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.NRGBA{A: uint8(math.Round(alpha * 255))}
}

// OutputPath is where the SVG for an input file goes: the same path with ".svg" appended.
func OutputPath(input string) string {
	return input + ".svg"
}

// Figure is a rendered plot plus what was left out of it.
type Figure struct {
	Plot *plot.Plot
	// Points is the number of points drawn.
	Points int
	// Masked is the number of rows dropped because x or y was <= 0 or not finite.
	Masked int

	style Style
}

// Render plots rows skip.. of ds as a line on log-log axes. Axis labels are the column
// headers. When style.OverlayFit is set and fit is valid, the fitted line is added.
func Render(ds *data.Dataset, skip int, fit *model.Fit, style Style) (*Figure, error) {
	if skip < 0 {
		skip = 0
	}
	if skip > ds.Len() {
		skip = ds.Len()
	}

	pts := make(plotter.XYs, 0, ds.Len()-skip)
	masked := 0
	for i := skip; i < ds.Len(); i++ {
		x, y := ds.X[i], ds.Y[i]
		if !drawable(x) || !drawable(y) {
			masked++
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("%w (%d rows masked)", ErrNoDrawablePoints, masked)
	}

	p := plot.New()
	p.X.Label.Text = ds.XName
	p.Y.Label.Text = ds.YName
	p.X.Label.TextStyle.Font.Size = style.LabelFontSize
	p.Y.Label.TextStyle.Font.Size = style.LabelFontSize
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	grid := plotter.NewGrid()
	grid.Vertical.Color = style.GridColor
	grid.Horizontal.Color = style.GridColor
	p.Add(grid)

	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("data line: %w", err)
	}
	l.LineStyle.Color = style.LineColor
	l.LineStyle.Width = style.LineWidth
	p.Add(l)

	if style.OverlayFit && fit != nil && fit.Valid() {
		p.Legend.Add("data", l)
		p.Legend.Top = true
		if err := addFitLine(p, pts, *fit, style); err != nil {
			return nil, err
		}
	}

	padLogRange(&p.X)
	padLogRange(&p.Y)

	return &Figure{Plot: p, Points: len(pts), Masked: masked, style: style}, nil
}

func addFitLine(p *plot.Plot, pts plotter.XYs, fit model.Fit, style Style) error {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	for _, pt := range pts {
		xmin = math.Min(xmin, pt.X)
		xmax = math.Max(xmax, pt.X)
	}
	if xmin == xmax {
		return nil
	}

	// a power law is straight on log-log axes, two points are enough
	line := plotter.XYs{
		{X: xmin, Y: fit.Eval(xmin)},
		{X: xmax, Y: fit.Eval(xmax)},
	}
	if !drawable(line[0].Y) || !drawable(line[1].Y) {
		return nil
	}
	fl, err := plotter.NewLine(line)
	if err != nil {
		return fmt.Errorf("fit line: %w", err)
	}
	fl.LineStyle.Color = style.FitColor
	fl.LineStyle.Width = style.LineWidth
	fl.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(fl)
	p.Legend.Add(fmt.Sprintf("fit m=%.3g", fit.Slope), fl)
	return nil
}

// padLogRange widens a degenerate axis range by half a decade on each side.
// The linear widening plot does on its own (±1) can reach zero, which panics on a log scale.
func padLogRange(a *plot.Axis) {
	if a.Min == a.Max {
		a.Min /= math.Sqrt(10)
		a.Max *= math.Sqrt(10)
	}
}

func drawable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Save writes the figure to path. The format follows the extension, ".svg" for OutputPath.
func (f *Figure) Save(path string) error {
	if err := f.Plot.Save(f.style.Width, f.style.Height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Image rasterizes the figure at the default resolution, for on-screen display.
func (f *Figure) Image() image.Image {
	c := vgimg.New(f.style.Width, f.style.Height)
	f.Plot.Draw(draw.New(c))
	return c.Image()
}
