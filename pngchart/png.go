// Package pngchart draws benchmark trends into a static PNG image.
package pngchart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/tiancaiamao/benchtrend"
)

const (
	DefaultFilename = "benchmark_trends.png"

	widthPx  = 1200
	heightPx = 700
	dpi      = 96
)

type Renderer struct {
	// Loc is the time zone of the x axis labels.
	Loc *time.Location
}

func New() *Renderer {
	return &Renderer{Loc: time.Local}
}

func (r *Renderer) Kind() string { return "chart image" }

func (r *Renderer) Filename() string { return DefaultFilename }

// Check makes sure gonum/plot has a font to draw labels with.
func (r *Renderer) Check() error {
	if plot.DefaultTextHandler == nil {
		return errors.New("gonum/plot has no text handler")
	}
	if face := font.DefaultCache.Lookup(plot.DefaultFont, 12); face.Face == nil {
		return fmt.Errorf("gonum/plot font %s is not available", plot.DefaultFont.Name())
	}
	return nil
}

func (r *Renderer) Render(w io.Writer, final benchtrend.Trends) error {
	pl, err := r.NewPlot(final)
	if err != nil {
		return err
	}

	c := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthPx)/dpi*vg.Inch, vg.Length(heightPx)/dpi*vg.Inch),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(c))
	_, err = c.WriteTo(w)
	return err
}

// NewPlot builds the trend plot, one line per benchmark.
func (r *Renderer) NewPlot(final benchtrend.Trends) (*plot.Plot, error) {
	loc := r.Loc
	if loc == nil {
		loc = time.Local
	}

	pl := plot.New()
	pl.Title.Text = "Benchmark Trends"
	pl.X.Label.Text = "Run Date"
	pl.Y.Label.Text = "Mean Time (ns)"
	pl.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02\n15:04", Time: plot.UnixTimeIn(loc)}
	pl.Legend.Top = true
	pl.Legend.Left = true
	pl.Add(plotter.NewGrid())

	for i, name := range final.Names() {
		oneCase := final[name]
		xys := make(plotter.XYs, len(oneCase))
		for j, p := range oneCase {
			xys[j].X = float64(p.Date.UnixNano()) / 1e9
			xys[j].Y = p.Mean
		}

		l, s, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", name, err)
		}
		l.Color = plotutil.Color(i)
		s.Color = plotutil.Color(i)
		s.Shape = plotutil.Shape(i)
		pl.Add(l, s)
		pl.Legend.Add(name, l, s)
	}
	return pl, nil
}
