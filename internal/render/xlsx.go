package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/banshee-data/curveplot/internal/curves"
	"github.com/banshee-data/curveplot/internal/monitoring"
)

// Sheet names of the two panes.
const (
	SheetLeft  = "Left"
	SheetRight = "Right"
)

// XLSX writes a workbook with one sheet per pane. Each curve occupies two
// columns (depth, value) and a scatter chart with lines sits to the right of
// the data.
type XLSX struct {
	opts Options
	path string
}

// NewXLSX returns an XLSX renderer writing <OutputDir>/<BaseName>.xlsx.
func NewXLSX(o Options) *XLSX {
	return &XLSX{opts: o.withDefaults()}
}

func (x *XLSX) OutputPath() string { return x.path }

func (x *XLSX) Render(p Panes) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetLeft); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if _, err := f.NewSheet(SheetRight); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if err := x.fillSheet(f, SheetLeft, p, p.Left); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if err := x.fillSheet(f, SheetRight, p, p.Right); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	path, err := x.opts.targetPath(".xlsx")
	if err != nil {
		return err
	}
	if err := writeArtifact(path, func(w io.Writer) error { return f.Write(w) }); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	x.path = path
	monitoring.Logf("wrote %s (%d left, %d right curves)", path, len(p.Left), len(p.Right))
	return nil
}

func (x *XLSX) fillSheet(f *excelize.File, sheet string, p Panes, cs []curves.Curve) error {
	var series []excelize.ChartSeries
	for i, c := range cs {
		depthCol, err := excelize.ColumnNumberToName(2*i + 1)
		if err != nil {
			return err
		}
		valueCol, err := excelize.ColumnNumberToName(2*i + 2)
		if err != nil {
			return err
		}

		if err := f.SetCellValue(sheet, depthCol+"1", p.xLabel()); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, valueCol+"1", c.Name); err != nil {
			return err
		}
		for row, s := range c.Samples() {
			if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", depthCol, row+2), s.Depth); err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", valueCol, row+2), s.Value); err != nil {
				return err
			}
		}

		n := c.Len()
		if n == 0 {
			continue
		}
		colour := strings.TrimPrefix(Hex(SeriesColor(i)), "#")
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", sheet, valueCol),
			Categories: fmt.Sprintf("%s!$%s$2:$%s$%d", sheet, depthCol, depthCol, n+1),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", sheet, valueCol, valueCol, n+1),
			Line:       excelize.ChartLine{Width: 1},
			Marker: excelize.ChartMarker{
				Symbol: "circle",
				Size:   4,
				Fill:   excelize.Fill{Type: "pattern", Color: []string{colour}, Pattern: 1},
			},
			Fill: excelize.Fill{Type: "pattern", Color: []string{colour}, Pattern: 1},
		})
	}

	if len(series) == 0 {
		return f.SetCellValue(sheet, "A1", "no curves")
	}

	anchor, err := excelize.CoordinatesToCellName(2*len(cs)+2, 1)
	if err != nil {
		return err
	}
	return f.AddChart(sheet, anchor, &excelize.Chart{
		Type:   excelize.Scatter,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: fmt.Sprintf("%s (%s)", p.Title, sheet)}},
		Legend: excelize.ChartLegend{Position: "bottom"},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: p.xLabel()}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: p.yLabel()}}},
		Dimension: excelize.ChartDimension{
			Width:  uint(x.opts.Width),
			Height: uint(x.opts.Height),
		},
	})
}
