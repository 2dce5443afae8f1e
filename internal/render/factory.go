package render

import (
	"fmt"
	"strings"
)

// New returns the renderer for a format name: html, png or xlsx.
func New(format string, o Options) (Renderer, error) {
	switch strings.ToLower(format) {
	case "html":
		return NewHTML(o), nil
	case "png":
		return NewPNG(o), nil
	case "xlsx":
		return NewXLSX(o), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// ForFormats builds a Multi renderer with one entry per format, in order.
func ForFormats(formats []string, o Options) (Multi, error) {
	m := make(Multi, 0, len(formats))
	for _, f := range formats {
		r, err := New(f, o)
		if err != nil {
			return nil, err
		}
		m = append(m, r)
	}
	return m, nil
}

// Paths lists the artifacts written by the renderers in m.
func (m Multi) Paths() []string {
	var paths []string
	for _, r := range m {
		if a, ok := r.(Artifact); ok && a.OutputPath() != "" {
			paths = append(paths, a.OutputPath())
		}
	}
	return paths
}
