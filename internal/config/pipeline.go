package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides, e.g. CURVEPLOT_INPUT_A.
const EnvPrefix = "CURVEPLOT"

// Supported output formats.
const (
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatXLSX = "xlsx"
)

// Defaults for a plain run with no config file.
const (
	DefaultInputA      = "data1.txt"
	DefaultInputB      = "data2.txt"
	DefaultOutputDir   = "plots"
	DefaultTitle       = "Well log curves"
	DefaultMinDegree   = 1.0
	DefaultMaxDegree   = 3.0
	DefaultChartWidth  = 900
	DefaultChartHeight = 600
)

const maxConfigFileSize = 1 * 1024 * 1024 // 1MB

// PipelineConfig holds every knob of a curveplot run. All fields are
// optional; the Get* accessors supply defaults for anything left nil so
// partial files and env-only setups behave the same way.
type PipelineConfig struct {
	InputA    *string `json:"input_a,omitempty" yaml:"input_a,omitempty" envconfig:"INPUT_A" validate:"omitempty,min=1"`
	InputB    *string `json:"input_b,omitempty" yaml:"input_b,omitempty" envconfig:"INPUT_B" validate:"omitempty,min=1"`
	OutputDir *string `json:"output_dir,omitempty" yaml:"output_dir,omitempty" envconfig:"OUTPUT_DIR" validate:"omitempty,min=1"`

	Formats []string `json:"formats,omitempty" yaml:"formats,omitempty" envconfig:"FORMATS" validate:"omitempty,dive,oneof=html png xlsx"`
	Title   *string  `json:"title,omitempty" yaml:"title,omitempty" envconfig:"TITLE"`

	// Degree window for the left pane (log10 of a curve's peak value).
	MinDegree *float64 `json:"min_degree,omitempty" yaml:"min_degree,omitempty" envconfig:"MIN_DEGREE"`
	MaxDegree *float64 `json:"max_degree,omitempty" yaml:"max_degree,omitempty" envconfig:"MAX_DEGREE"`

	// Size of a single pane in pixels.
	ChartWidth  *int `json:"chart_width,omitempty" yaml:"chart_width,omitempty" envconfig:"CHART_WIDTH" validate:"omitempty,gte=200,lte=8000"`
	ChartHeight *int `json:"chart_height,omitempty" yaml:"chart_height,omitempty" envconfig:"CHART_HEIGHT" validate:"omitempty,gte=200,lte=8000"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names in errors so they match the config file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyPipelineConfig returns a PipelineConfig with all fields unset.
func EmptyPipelineConfig() *PipelineConfig {
	return &PipelineConfig{}
}

// DefaultPipelineConfig returns a PipelineConfig with every field populated
// from the defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		InputA:      ptrString(DefaultInputA),
		InputB:      ptrString(DefaultInputB),
		OutputDir:   ptrString(DefaultOutputDir),
		Formats:     []string{FormatHTML},
		Title:       ptrString(DefaultTitle),
		MinDegree:   ptrFloat64(DefaultMinDegree),
		MaxDegree:   ptrFloat64(DefaultMaxDegree),
		ChartWidth:  ptrInt(DefaultChartWidth),
		ChartHeight: ptrInt(DefaultChartHeight),
	}
}

// LoadPipelineConfig loads a PipelineConfig from a .json, .yaml or .yml file
// no larger than 1MB. Unknown keys are rejected.
func LoadPipelineConfig(path string) (*PipelineConfig, error) {
	cleanPath := filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .json, .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxConfigFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyPipelineConfig()
	if ext == ".json" {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays CURVEPLOT_* environment variables onto c. Variables that
// are not set leave the corresponding field untouched.
func (c *PipelineConfig) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("failed to load config from env: %w", err)
	}
	return nil
}

// Validate checks field constraints and the degree window.
func (c *PipelineConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	for name, v := range map[string]*float64{"min_degree": c.MinDegree, "max_degree": c.MaxDegree} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return fmt.Errorf("%s must be finite, got %v", name, *v)
		}
	}
	if lo, hi := c.GetMinDegree(), c.GetMaxDegree(); lo > hi {
		return fmt.Errorf("min_degree (%v) must not exceed max_degree (%v)", lo, hi)
	}
	return nil
}

// GetInputA returns the first input path or the default.
func (c *PipelineConfig) GetInputA() string {
	if c.InputA == nil || *c.InputA == "" {
		return DefaultInputA
	}
	return *c.InputA
}

// GetInputB returns the second input path or the default.
func (c *PipelineConfig) GetInputB() string {
	if c.InputB == nil || *c.InputB == "" {
		return DefaultInputB
	}
	return *c.InputB
}

func (c *PipelineConfig) GetOutputDir() string {
	if c.OutputDir == nil || *c.OutputDir == "" {
		return DefaultOutputDir
	}
	return *c.OutputDir
}

// GetFormats returns the requested output formats, lower-cased and
// de-duplicated, defaulting to html.
func (c *PipelineConfig) GetFormats() []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range c.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	if len(out) == 0 {
		return []string{FormatHTML}
	}
	return out
}

func (c *PipelineConfig) GetTitle() string {
	if c.Title == nil || *c.Title == "" {
		return DefaultTitle
	}
	return *c.Title
}

func (c *PipelineConfig) GetMinDegree() float64 {
	if c.MinDegree == nil {
		return DefaultMinDegree
	}
	return *c.MinDegree
}

func (c *PipelineConfig) GetMaxDegree() float64 {
	if c.MaxDegree == nil {
		return DefaultMaxDegree
	}
	return *c.MaxDegree
}

func (c *PipelineConfig) GetChartWidth() int {
	if c.ChartWidth == nil {
		return DefaultChartWidth
	}
	return *c.ChartWidth
}

func (c *PipelineConfig) GetChartHeight() int {
	if c.ChartHeight == nil {
		return DefaultChartHeight
	}
	return *c.ChartHeight
}
