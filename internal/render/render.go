// Package render draws the two curve panes produced by the pipeline.
//
// Every Renderer receives the whole Panes value once and writes a single
// artifact (HTML page, PNG image or XLSX workbook) under its output
// directory. Each curve becomes one line series with a legend entry; series
// colours cycle through Palette.
package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/banshee-data/curveplot/internal/curves"
	"github.com/banshee-data/curveplot/internal/fsutil"
	"github.com/banshee-data/curveplot/internal/security"
)

// Axis captions used when Panes leaves them empty.
const (
	DefaultXLabel = "Depth"
	DefaultYLabel = "Value"
)

// Panes is the input of a Renderer: two curve lists drawn side by side.
type Panes struct {
	Title    string
	Subtitle string
	XLabel   string
	YLabel   string
	Left     []curves.Curve
	Right    []curves.Curve
}

// NewPanes builds Panes with the default axis captions.
func NewPanes(title string, left, right []curves.Curve) Panes {
	return Panes{Title: title, XLabel: DefaultXLabel, YLabel: DefaultYLabel, Left: left, Right: right}
}

func (p Panes) xLabel() string {
	if p.XLabel == "" {
		return DefaultXLabel
	}
	return p.XLabel
}

func (p Panes) yLabel() string {
	if p.YLabel == "" {
		return DefaultYLabel
	}
	return p.YLabel
}

// Renderer consumes finalized panes. Implementations must not modify the
// curves they are given.
type Renderer interface {
	Render(p Panes) error
}

// Artifact is implemented by renderers that write a file.
type Artifact interface {
	OutputPath() string
}

// Options configure file-writing renderers.
type Options struct {
	OutputDir string
	BaseName  string // file name without extension
	Width     int    // pixels per pane
	Height    int
}

const (
	defaultBaseName = "curves"
	defaultWidth    = 900
	defaultHeight   = 600
)

func (o Options) withDefaults() Options {
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.BaseName == "" {
		o.BaseName = defaultBaseName
	}
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	return o
}

// outputFS is where artifacts are written.
var outputFS fsutil.FileSystem = fsutil.OSFileSystem{}

// targetPath creates the output directory and returns a validated path for
// the artifact with the given extension.
func (o Options) targetPath(ext string) (string, error) {
	if err := outputFS.MkdirAll(o.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}
	return security.OutputPath(o.OutputDir, o.BaseName+ext)
}

// writeArtifact creates path and hands the writer to fill.
func writeArtifact(path string, fill func(w io.Writer) error) error {
	f, err := outputFS.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := fill(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Multi renders with each renderer in turn and stops at the first error.
type Multi []Renderer

func (m Multi) Render(p Panes) error {
	for _, r := range m {
		if err := r.Render(p); err != nil {
			return err
		}
	}
	return nil
}

// Palette is the series colour cycle: red, blue, green, purple, orange.
var Palette = []color.RGBA{
	{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF},
	{R: 0x00, G: 0x80, B: 0x00, A: 0xFF},
	{R: 0x80, G: 0x00, B: 0x80, A: 0xFF},
	{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF},
}

// SeriesColor returns the palette colour for the i-th series of a pane.
func SeriesColor(i int) color.RGBA {
	return Palette[i%len(Palette)]
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
