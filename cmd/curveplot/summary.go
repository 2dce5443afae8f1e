package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/banshee-data/curveplot/internal/curves"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// summaryTable renders one row per curve in merge order.
func summaryTable(rows []curves.Summary) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("CURVE", "PANE", "SAMPLES", "DEPTH", "MIN", "MAX", "MEAN", "DEGREE")

	for _, s := range rows {
		t.Row(
			s.Name,
			s.Pane.String(),
			strconv.Itoa(s.Samples),
			formatFloat(s.MinDepth)+" .. "+formatFloat(s.MaxDepth),
			formatFloat(s.MinValue),
			formatFloat(s.MaxValue),
			formatFloat(s.Mean),
			strconv.FormatFloat(s.Degree, 'f', 2, 64),
		)
	}
	return t.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
