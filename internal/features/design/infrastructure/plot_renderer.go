package infrastructure

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"room-designer/backend/internal/features/design/domain"
)

const (
	layoutTitle = "Room Layout"

	DefaultInchesPerMeter = 1.0
	DefaultMaxInches      = 40.0
	DefaultMinInches      = 2.0
	DefaultDPI            = 96
)

// PlotOptions controls the canvas size of rendered layouts.
type PlotOptions struct {
	InchesPerMeter float64
	MaxInches      float64
	MinInches      float64
	DPI            int
}

// PlotRenderer draws room layouts with gonum/plot. Every Render call builds
// its own plot and canvas, so a single renderer is safe for concurrent use.
type PlotRenderer struct {
	opts PlotOptions
}

// NewPlotRenderer fills unset options with defaults.
func NewPlotRenderer(opts PlotOptions) *PlotRenderer {
	if opts.InchesPerMeter <= 0 {
		opts.InchesPerMeter = DefaultInchesPerMeter
	}
	if opts.MaxInches <= 0 {
		opts.MaxInches = DefaultMaxInches
	}
	if opts.MinInches <= 0 || opts.MinInches > opts.MaxInches {
		opts.MinInches = math.Min(DefaultMinInches, opts.MaxInches)
	}
	if opts.DPI <= 0 {
		opts.DPI = DefaultDPI
	}
	return &PlotRenderer{opts: opts}
}

// CanvasSize returns the canvas width and height in inches for a room,
// keeping the room's aspect ratio. Rooms too elongated to fit between the
// min and max sizes get their short side held at the minimum.
func (r *PlotRenderer) CanvasSize(length, breadth float64) (float64, float64) {
	w := length * r.opts.InchesPerMeter
	h := breadth * r.opts.InchesPerMeter

	if short := math.Min(w, h); short < r.opts.MinInches {
		k := r.opts.MinInches / short
		w, h = w*k, h*k
	}
	if long := math.Max(w, h); long > r.opts.MaxInches {
		k := r.opts.MaxInches / long
		w, h = w*k, h*k
	}
	return math.Max(w, r.opts.MinInches), math.Max(h, r.opts.MinInches)
}

// Render draws the furniture placements for a length x breadth room and
// returns the PNG encoded image.
func (r *PlotRenderer) Render(ctx context.Context, length, breadth float64, items []string) (out []byte, err error) {
	if err := domain.ValidateDimensions(length, breadth); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			out, err = nil, fmt.Errorf("render layout: %v", rec)
		}
	}()

	p := plot.New()
	p.Title.Text = layoutTitle
	p.X.Label.Text = "Length (m)"
	p.Y.Label.Text = "Breadth (m)"
	p.BackgroundColor = color.White

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 225}
	grid.Horizontal.Color = color.Gray{Y: 225}
	p.Add(grid)

	for i, pl := range domain.PlaceFurniture(items, length, breadth) {
		marker, err := plotter.NewScatter(plotter.XYs{{X: pl.X, Y: pl.Y}})
		if err != nil {
			return nil, fmt.Errorf("marker for %q: %w", pl.Name, err)
		}
		marker.GlyphStyle.Shape = draw.BoxGlyph{}
		marker.GlyphStyle.Radius = vg.Points(10)
		marker.GlyphStyle.Color = plotutil.Color(i)

		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: pl.X, Y: pl.LabelY(breadth)}},
			Labels: []string{pl.Name},
		})
		if err != nil {
			return nil, fmt.Errorf("label for %q: %w", pl.Name, err)
		}
		for j := range label.TextStyle {
			label.TextStyle[j].XAlign = text.XCenter
			label.TextStyle[j].Font.Size = vg.Points(10)
		}

		p.Add(marker, label)
		p.Legend.Add(pl.Name, marker)
	}

	// Add widens the axes to the data; pin them to the room afterwards.
	p.X.Min, p.X.Max = 0, length
	p.Y.Min, p.Y.Max = 0, breadth

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.TextStyle.Font.Size = vg.Points(8)

	w, h := r.CanvasSize(length, breadth)
	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch),
		vgimg.UseDPI(r.opts.DPI),
	)
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode layout png: %w", err)
	}
	return buf.Bytes(), nil
}
