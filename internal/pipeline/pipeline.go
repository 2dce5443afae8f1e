// Package pipeline is the composition root of curveplot: it reads the two
// curve files, merges and clusters them, and hands the two panes to the
// configured renderers. It owns no domain logic of its own.
//
// A run is synchronous and happens once per call. Fatal errors from reading
// or clustering abort the run before anything is rendered.
package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/banshee-data/curveplot/internal/config"
	"github.com/banshee-data/curveplot/internal/curves"
	"github.com/banshee-data/curveplot/internal/fsutil"
	"github.com/banshee-data/curveplot/internal/monitoring"
	"github.com/banshee-data/curveplot/internal/render"
)

// Run reads pathA and pathB, merges their curves and returns the left and
// right panes using the default degree window. Nothing is rendered.
func Run(pathA, pathB string) (left, right []curves.Curve, err error) {
	cfg := config.EmptyPipelineConfig()
	cfg.InputA = &pathA
	cfg.InputB = &pathB

	p, err := New(cfg, WithRenderer(nil))
	if err != nil {
		return nil, nil, err
	}
	res, err := p.Load()
	if err != nil {
		return nil, nil, err
	}
	return res.Left, res.Right, nil
}

// Result is the outcome of one run.
type Result struct {
	RunID     string
	Left      []curves.Curve
	Right     []curves.Curve
	Summaries []curves.Summary
	StatsA    curves.ReadStats
	StatsB    curves.ReadStats
	Artifacts []string
}

// Pipeline wires a Reader, a Clusterer and a Renderer from a PipelineConfig.
type Pipeline struct {
	cfg       *config.PipelineConfig
	reader    *curves.Reader
	clusterer curves.Clusterer
	renderer  render.Renderer
	newRunID  func() string

	fs          fsutil.FileSystem
	rendererSet bool
}

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithFileSystem reads input files from fs instead of the OS.
func WithFileSystem(fs fsutil.FileSystem) Option {
	return func(p *Pipeline) { p.fs = fs }
}

// WithRenderer replaces the renderers derived from the config. A nil
// renderer disables rendering.
func WithRenderer(r render.Renderer) Option {
	return func(p *Pipeline) {
		p.renderer = r
		p.rendererSet = true
	}
}

// WithRunIDFunc overrides run ID generation.
func WithRunIDFunc(f func() string) Option {
	return func(p *Pipeline) { p.newRunID = f }
}

// New validates cfg and builds a Pipeline. A nil cfg means all defaults.
func New(cfg *config.PipelineConfig, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.EmptyPipelineConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	p := &Pipeline{
		cfg: cfg,
		clusterer: curves.Clusterer{
			MinDegree: cfg.GetMinDegree(),
			MaxDegree: cfg.GetMaxDegree(),
		},
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.reader = curves.NewReader(p.fs)

	if !p.rendererSet {
		m, err := render.ForFormats(cfg.GetFormats(), render.Options{
			OutputDir: cfg.GetOutputDir(),
			BaseName:  "curves",
			Width:     cfg.GetChartWidth(),
			Height:    cfg.GetChartHeight(),
		})
		if err != nil {
			return nil, err
		}
		p.renderer = m
	}
	return p, nil
}

// Clusterer returns the degree window in use.
func (p *Pipeline) Clusterer() curves.Clusterer {
	return p.clusterer
}

// Load reads, merges and clusters without rendering.
func (p *Pipeline) Load() (*Result, error) {
	pathA, pathB := p.cfg.GetInputA(), p.cfg.GetInputB()

	setA, statsA, err := p.reader.ReadWithStats(pathA)
	if err != nil {
		return nil, err
	}
	setB, statsB, err := p.reader.ReadWithStats(pathB)
	if err != nil {
		return nil, err
	}

	merged := curves.Merge(setA, setB)
	left, right, err := p.clusterer.Cluster(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to cluster curves: %w", err)
	}
	summaries, err := p.clusterer.Summarize(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize curves: %w", err)
	}

	return &Result{
		Left:      left,
		Right:     right,
		Summaries: summaries,
		StatsA:    statsA,
		StatsB:    statsB,
	}, nil
}

// Execute runs Load and renders both panes once.
func (p *Pipeline) Execute() (*Result, error) {
	runID := p.newRunID()

	res, err := p.Load()
	if err != nil {
		monitoring.Logf("run %s aborted: %v", runID, err)
		return nil, err
	}
	res.RunID = runID
	monitoring.Logf("run %s: %d curves, %d left, %d right",
		runID, len(res.Summaries), len(res.Left), len(res.Right))

	if p.renderer == nil {
		return res, nil
	}

	panes := render.NewPanes(p.cfg.GetTitle(), res.Left, res.Right)
	panes.Subtitle = "run " + runID
	if err := p.renderer.Render(panes); err != nil {
		return nil, fmt.Errorf("failed to render curves: %w", err)
	}
	if m, ok := p.renderer.(render.Multi); ok {
		res.Artifacts = m.Paths()
	} else if a, ok := p.renderer.(render.Artifact); ok {
		res.Artifacts = []string{a.OutputPath()}
	}
	return res, nil
}
