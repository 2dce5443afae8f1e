package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/curveplot/internal/curves"
	"github.com/banshee-data/curveplot/internal/monitoring"
)

// HTML renders both panes as go-echarts line charts laid out side by side on
// one page.
type HTML struct {
	opts Options
	path string

	// AssetsHost overrides where the echarts JavaScript is loaded from.
	AssetsHost string
}

// NewHTML returns an HTML renderer writing <OutputDir>/<BaseName>.html.
func NewHTML(o Options) *HTML {
	return &HTML{opts: o.withDefaults()}
}

// OutputPath returns the file written by the last successful Render.
func (h *HTML) OutputPath() string { return h.path }

func (h *HTML) Render(p Panes) error {
	path, err := h.opts.targetPath(".html")
	if err != nil {
		return err
	}
	if err := writeArtifact(path, func(w io.Writer) error { return h.write(w, p) }); err != nil {
		return fmt.Errorf("html: %w", err)
	}
	h.path = path
	monitoring.Logf("wrote %s (%d left, %d right curves)", path, len(p.Left), len(p.Right))
	return nil
}

func (h *HTML) write(w io.Writer, p Panes) error {
	page := components.NewPage()
	page.PageTitle = p.Title
	page.SetLayout(components.PageFlexLayout)
	if h.AssetsHost != "" {
		page.SetAssetsHost(h.AssetsHost)
	}
	page.AddCharts(
		h.lineChart(p, "left", p.Left),
		h.lineChart(p, "right", p.Right),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render error: %w", err)
	}
	return nil
}

func (h *HTML) lineChart(p Panes, id string, cs []curves.Curve) *charts.Line {
	init := opts.Initialization{
		PageTitle: p.Title,
		ChartID:   "curves_" + id,
		Width:     fmt.Sprintf("%dpx", h.opts.Width),
		Height:    fmt.Sprintf("%dpx", h.opts.Height),
	}
	if h.AssetsHost != "" {
		init.AssetsHost = h.AssetsHost
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(init),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s (%s)", p.Title, id), Subtitle: p.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: p.xLabel(), NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: p.yLabel(), NameLocation: "middle", NameGap: 45}),
	)

	for i, c := range cs {
		colour := Hex(SeriesColor(i))
		line.AddSeries(c.Name, lineData(c),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true), Symbol: "circle", SymbolSize: 4}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colour}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: colour, Width: 1}),
		)
	}
	return line
}

// lineData pairs depth and value so the x axis is numeric rather than a
// category list taken from one curve.
func lineData(c curves.Curve) []opts.LineData {
	data := make([]opts.LineData, 0, c.Len())
	for _, s := range c.Samples() {
		data = append(data, opts.LineData{Value: []interface{}{s.Depth, s.Value}})
	}
	return data
}
