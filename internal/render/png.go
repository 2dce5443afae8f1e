package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/banshee-data/curveplot/internal/curves"
	"github.com/banshee-data/curveplot/internal/monitoring"
)

// PNG renders both panes with gonum/plot into one image, tiled 1x2.
type PNG struct {
	opts Options
	path string
}

// NewPNG returns a PNG renderer writing <OutputDir>/<BaseName>.png.
func NewPNG(o Options) *PNG {
	return &PNG{opts: o.withDefaults()}
}

func (r *PNG) OutputPath() string { return r.path }

func (r *PNG) Render(p Panes) error {
	left, err := r.plot(p, "left", p.Left)
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	right, err := r.plot(p, "right", p.Right)
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}

	path, err := r.opts.targetPath(".png")
	if err != nil {
		return err
	}
	err = writeArtifact(path, func(w io.Writer) error {
		return r.draw(w, left, right)
	})
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	r.path = path
	monitoring.Logf("wrote %s (%d left, %d right curves)", path, len(p.Left), len(p.Right))
	return nil
}

// pixels converts a pixel count at 96 DPI to a vg length.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / 96
}

func (r *PNG) draw(w io.Writer, left, right *plot.Plot) error {
	img := vgimg.New(pixels(2*r.opts.Width), pixels(r.opts.Height))
	dc := draw.New(img)

	tiles := draw.Tiles{Rows: 1, Cols: 2, PadX: vg.Millimeter, PadY: vg.Millimeter}
	canvases := plot.Align([][]*plot.Plot{{left, right}}, tiles, dc)
	left.Draw(canvases[0][0])
	right.Draw(canvases[0][1])

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (r *PNG) plot(p Panes, id string, cs []curves.Curve) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s (%s)", p.Title, id)
	pl.X.Label.Text = p.xLabel()
	pl.Y.Label.Text = p.yLabel()
	pl.Add(plotter.NewGrid())

	for i, c := range cs {
		if c.Len() == 0 {
			continue
		}
		xys := make(plotter.XYs, 0, c.Len())
		for _, s := range c.Samples() {
			xys = append(xys, plotter.XY{X: s.Depth, Y: s.Value})
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("curve %s: %w", c.Name, err)
		}
		colour := SeriesColor(i)
		line.Color = colour
		line.Width = vg.Points(1)
		points.GlyphStyle.Color = colour
		points.GlyphStyle.Radius = vg.Points(2)

		pl.Add(line, points)
		pl.Legend.Add(c.Name, line, points)
	}

	pl.Legend.Top = true
	pl.Legend.Left = false
	pl.Legend.XOffs = -10
	pl.Legend.YOffs = -10
	return pl, nil
}
