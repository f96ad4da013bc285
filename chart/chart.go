// Package chart renders datasets and fitted models to image files.
//
// It draws a scatter of the observations plus any number of fitted curves,
// and writes PNG, SVG, or PDF depending on the file extension.
package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/go-regress/regress"
)

// Curve is a fitted model to overlay on the scatter plot.
type Curve struct {
	Name string
	Fn   func(x float64) float64
}

// Config configures a rendered chart. Zero values are usable defaults.
type Config struct {
	Title  string
	XLabel string // default "x"
	YLabel string // default "y"
}

// Render writes a scatter plot of d with the given curves overlaid.
// The output format follows the file extension of path.
func Render(path string, d regress.Dataset, cfg Config, curves ...Curve) error {
	if d.Len() == 0 {
		return regress.ErrEmptyDataset
	}
	if cfg.XLabel == "" {
		cfg.XLabel = "x"
	}
	if cfg.YLabel == "" {
		cfg.YLabel = "y"
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel

	pts := make(plotter.XYs, d.Len())
	for i := range pts {
		pts[i].X = d.X[i]
		pts[i].Y = d.Y[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("chart: building scatter: %w", err)
	}
	p.Add(scatter)
	p.Legend.Add("observations", scatter)

	for i, c := range curves {
		fn := plotter.NewFunction(c.Fn)
		fn.Samples = 200
		fn.Color = plotutil.Color(i)
		p.Add(fn)
		if c.Name != "" {
			p.Legend.Add(c.Name, fn)
		}
	}
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("chart: saving %s: %w", path, err)
	}
	return nil
}
