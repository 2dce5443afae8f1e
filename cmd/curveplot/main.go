// Command curveplot reads two well-log curve tables, merges curves that share
// a name, splits them into two panes by order of magnitude and writes the
// side-by-side chart.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/banshee-data/curveplot/internal/config"
	"github.com/banshee-data/curveplot/internal/monitoring"
	"github.com/banshee-data/curveplot/internal/pipeline"
	"github.com/banshee-data/curveplot/internal/version"
)

// cliFlags holds the parsed command line. Only flags the user actually set
// override the config file and environment.
type cliFlags struct {
	configPath  string
	inputA      string
	inputB      string
	outputDir   string
	formats     string
	title       string
	minDegree   float64
	maxDegree   float64
	open        bool
	summary     bool
	verbose     bool
	showVersion bool

	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	f := &cliFlags{set: make(map[string]bool)}
	fs := flag.NewFlagSet("curveplot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.configPath, "config", "", "Path to a JSON or YAML pipeline config")
	fs.StringVar(&f.inputA, "a", config.DefaultInputA, "First curve table")
	fs.StringVar(&f.inputB, "b", config.DefaultInputB, "Second curve table")
	fs.StringVar(&f.outputDir, "out", config.DefaultOutputDir, "Directory for chart artifacts")
	fs.StringVar(&f.formats, "format", config.FormatHTML, "Comma-separated output formats: html,png,xlsx")
	fs.StringVar(&f.title, "title", config.DefaultTitle, "Chart title")
	fs.Float64Var(&f.minDegree, "min-degree", config.DefaultMinDegree, "Lowest log10(peak) placed in the left pane")
	fs.Float64Var(&f.maxDegree, "max-degree", config.DefaultMaxDegree, "Highest log10(peak) placed in the left pane")
	fs.BoolVar(&f.open, "open", false, "Open the HTML chart in a browser when done")
	fs.BoolVar(&f.summary, "summary", false, "Print a per-curve summary table")
	fs.BoolVar(&f.verbose, "v", false, "Log skipped rows and values")
	fs.BoolVar(&f.showVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// buildConfig layers defaults, the config file, CURVEPLOT_* env vars and
// explicit flags, in that order.
func buildConfig(f *cliFlags) (*config.PipelineConfig, error) {
	cfg := config.EmptyPipelineConfig()
	if f.configPath != "" {
		loaded, err := config.LoadPipelineConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if f.set["a"] {
		cfg.InputA = &f.inputA
	}
	if f.set["b"] {
		cfg.InputB = &f.inputB
	}
	if f.set["out"] {
		cfg.OutputDir = &f.outputDir
	}
	if f.set["format"] {
		cfg.Formats = splitList(f.formats)
	}
	if f.set["title"] {
		cfg.Title = &f.title
	}
	if f.set["min-degree"] {
		cfg.MinDegree = &f.minDegree
	}
	if f.set["max-degree"] {
		cfg.MaxDegree = &f.maxDegree
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func run(args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if f.showVersion {
		fmt.Fprintln(stdout, version.String())
		return nil
	}
	monitoring.SetDebug(f.verbose)

	cfg, err := buildConfig(f)
	if err != nil {
		return err
	}
	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	res, err := p.Execute()
	if err != nil {
		return err
	}

	for _, path := range res.Artifacts {
		monitoring.Logf("Wrote %s", path)
	}
	if f.summary {
		fmt.Fprintln(stdout, summaryTable(res.Summaries))
	}
	if f.open {
		if path := htmlArtifact(res.Artifacts); path != "" {
			openBrowser(path)
		} else {
			monitoring.Logf("-open ignored: no html artifact was written")
		}
	}
	return nil
}

func htmlArtifact(paths []string) string {
	for _, p := range paths {
		if strings.HasSuffix(p, ".html") {
			return p
		}
	}
	return ""
}

func openBrowser(target string) {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{target}
	case "linux":
		cmd = "xdg-open"
		args = []string{target}
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", target}
	default:
		log.Printf("Unsupported platform: %s", runtime.GOOS)
		return
	}

	if err := exec.Command(cmd, args...).Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("curveplot: %v", err)
	}
}
