package curves

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/banshee-data/curveplot/internal/fsutil"
	"github.com/banshee-data/curveplot/internal/monitoring"
)

// maxLineBytes bounds a single table row. Wide logs with hundreds of curves
// stay well under this.
const maxLineBytes = 16 * 1024 * 1024

// ReadStats counts what the reader absorbed while parsing a table.
type ReadStats struct {
	Rows          int // data rows examined (header excluded)
	SkippedRows   int // wrong column count or unparseable depth
	SkippedValues int // individual curve values that failed to parse
}

// Reader parses curve tables from a FileSystem.
type Reader struct {
	fs fsutil.FileSystem
}

// NewReader returns a Reader over fs. A nil fs means the OS filesystem.
func NewReader(fs fsutil.FileSystem) *Reader {
	if fs == nil {
		fs = fsutil.OSFileSystem{}
	}
	return &Reader{fs: fs}
}

// ReadFile reads path from the OS filesystem.
func ReadFile(path string) ([]Curve, error) {
	return NewReader(nil).Read(path)
}

// Read returns the curves of the table at path in header order. A path that
// is missing or names a directory yields an empty list and no error.
func (r *Reader) Read(path string) ([]Curve, error) {
	curves, _, err := r.ReadWithStats(path)
	return curves, err
}

// ReadWithStats is Read plus the row accounting.
func (r *Reader) ReadWithStats(path string) ([]Curve, ReadStats, error) {
	info, err := r.fs.Stat(path)
	if err != nil && !fsutil.IsNotExist(err) {
		return nil, ReadStats{}, fmt.Errorf("failed to stat curve file: %w", err)
	}
	if err != nil || info.IsDir() {
		monitoring.Logf("curve file %s not found, continuing without it", path)
		return []Curve{}, ReadStats{}, nil
	}

	f, err := r.fs.Open(path)
	if err != nil {
		return nil, ReadStats{}, fmt.Errorf("failed to open curve file: %w", err)
	}
	defer f.Close()

	curves, stats, err := ReadFrom(f)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", path, err)
	}
	if stats.SkippedRows > 0 || stats.SkippedValues > 0 {
		monitoring.Logf("read %s: %d curves, %d rows, skipped %d rows and %d values",
			path, len(curves), stats.Rows, stats.SkippedRows, stats.SkippedValues)
	}
	return curves, stats, nil
}

// ReadFrom parses a curve table. The first line is the header; it must name a
// DEPTH column unless the table has fewer than two lines, in which case the
// result is empty.
func ReadFrom(src io.Reader) ([]Curve, ReadStats, error) {
	var stats ReadStats

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	if !sc.Scan() {
		return []Curve{}, stats, scanErr(sc)
	}
	header := strings.Fields(strings.TrimPrefix(sc.Text(), "\ufeff"))
	if !sc.Scan() {
		return []Curve{}, stats, scanErr(sc)
	}

	layout, err := newColumnLayout(header)
	if err != nil {
		return nil, stats, err
	}

	curves := make([]Curve, len(layout.columns))
	for i, col := range layout.columns {
		curves[i] = NewCurve(col.name)
	}

	lineNo := 1
	for {
		lineNo++
		stats.Rows++
		layout.parseRow(lineNo, sc.Text(), curves, &stats)
		if !sc.Scan() {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read curve table: %w", err)
	}
	return curves, stats, nil
}

func scanErr(sc *bufio.Scanner) error {
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read curve table: %w", err)
	}
	return nil
}

type column struct {
	name  string
	index int
}

// columnLayout maps header positions to curves. The first DEPTH token is the
// depth column; a repeated curve name keeps its first column only.
type columnLayout struct {
	width   int
	depth   int
	columns []column
}

func newColumnLayout(header []string) (*columnLayout, error) {
	l := &columnLayout{width: len(header), depth: -1}
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		if name == DepthColumn {
			if l.depth < 0 {
				l.depth = i
			} else {
				monitoring.Debugf("ignoring repeated %s column at position %d", DepthColumn, i+1)
			}
			continue
		}
		if seen[name] {
			monitoring.Debugf("ignoring repeated curve column %q at position %d", name, i+1)
			continue
		}
		seen[name] = true
		l.columns = append(l.columns, column{name: name, index: i})
	}
	if l.depth < 0 {
		return nil, ErrMissingDepthColumn
	}
	return l, nil
}

func (l *columnLayout) parseRow(lineNo int, line string, curves []Curve, stats *ReadStats) {
	fields := strings.Fields(line)
	if len(fields) != l.width {
		stats.SkippedRows++
		monitoring.Debugf("line %d: %d columns, header has %d", lineNo, len(fields), l.width)
		return
	}
	depth, ok := parseNumber(fields[l.depth])
	if !ok {
		stats.SkippedRows++
		monitoring.Debugf("line %d: unparseable depth %q", lineNo, fields[l.depth])
		return
	}
	for i, col := range l.columns {
		v, ok := parseNumber(fields[col.index])
		if !ok {
			stats.SkippedValues++
			monitoring.Debugf("line %d: unparseable %s value %q", lineNo, col.name, fields[col.index])
			continue
		}
		curves[i].Append(depth, v)
	}
}

// parseNumber accepts finite decimal-point numbers, independent of locale.
// Hex floats, digit separators, NaN and infinities are rejected.
func parseNumber(tok string) (float64, bool) {
	if strings.ContainsAny(tok, "xX_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
