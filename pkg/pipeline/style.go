package pipeline

import (
	"gonum.org/v1/plot/vg"

	"loglogplot/pkg/config"
	"loglogplot/pkg/figure"
)

// StyleFromConfig maps the plot settings onto the default figure style.
func StyleFromConfig(cfg *config.Config) figure.Style {
	s := figure.DefaultStyle()
	s.Width = vg.Length(cfg.Plot.Width) * vg.Inch
	s.Height = vg.Length(cfg.Plot.Height) * vg.Inch
	s.LabelFontSize = vg.Points(cfg.Plot.LabelFontSize)
	s.GridColor = figure.GridColor(cfg.Plot.GridAlpha)
	s.OverlayFit = cfg.OverlayFit
	return s
}
