package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/curveplot/internal/config"
	"github.com/banshee-data/curveplot/internal/curves"
	"github.com/banshee-data/curveplot/internal/monitoring"
	"github.com/banshee-data/curveplot/internal/testutil"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	os.Exit(m.Run())
}

func TestParseFlags_Defaults(t *testing.T) {
	f, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultInputA, f.inputA)
	assert.Equal(t, config.DefaultInputB, f.inputB)
	assert.Equal(t, config.DefaultMinDegree, f.minDegree)
	assert.Equal(t, config.DefaultMaxDegree, f.maxDegree)
	assert.False(t, f.open)
	assert.Empty(t, f.set)
}

func TestParseFlags_RejectsPositionalArgs(t *testing.T) {
	_, err := parseFlags([]string{"-a", "x.txt", "extra"}, io.Discard)
	assert.Error(t, err)
}

func TestBuildConfig_FlagsOverrideFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "curveplot.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input_a: from-file.txt\nmin_degree: 0\nformats: [png]\n"), 0644))
	t.Setenv("CURVEPLOT_INPUT_B", "from-env.txt")

	f, err := parseFlags([]string{"-config", cfgPath, "-max-degree", "5", "-format", "html, xlsx"}, io.Discard)
	require.NoError(t, err)

	cfg, err := buildConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "from-file.txt", cfg.GetInputA())
	assert.Equal(t, "from-env.txt", cfg.GetInputB())
	assert.Equal(t, 0.0, cfg.GetMinDegree())
	assert.Equal(t, 5.0, cfg.GetMaxDegree())
	assert.Equal(t, []string{"html", "xlsx"}, cfg.GetFormats())
}

func TestBuildConfig_InvalidWindow(t *testing.T) {
	f, err := parseFlags([]string{"-min-degree", "4"}, io.Discard)
	require.NoError(t, err)

	_, err = buildConfig(f)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-version"}, &out, io.Discard))
	assert.Contains(t, out.String(), "curveplot")
}

func TestRun_WritesChartAndSummary(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "data1.txt", testutil.Table("DEPTH GR NPHI", "100 45 0.2", "101 80 0.3"))
	b := testutil.WriteFile(t, dir, "data2.txt", testutil.Table("DEPTH RES", "100 2500"))
	out := filepath.Join(dir, "plots")

	var stdout bytes.Buffer
	err := run([]string{"-a", a, "-b", b, "-out", out, "-summary"}, &stdout, io.Discard)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(out, "curves.html"))
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	for _, want := range []string{"GR", "NPHI", "RES", "left", "right"} {
		assert.Contains(t, stdout.String(), want)
	}
}

func TestRun_PropagatesFatalErrors(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "data1.txt", testutil.Table("GR NPHI", "1 2"))

	err := run([]string{"-a", a, "-b", filepath.Join(dir, "none.txt"), "-out", dir}, io.Discard, io.Discard)
	assert.ErrorIs(t, err, curves.ErrMissingDepthColumn)
	assert.NoFileExists(t, filepath.Join(dir, "curves.html"))
}

func TestHTMLArtifact(t *testing.T) {
	assert.Equal(t, "out/curves.html", htmlArtifact([]string{"out/curves.png", "out/curves.html"}))
	assert.Empty(t, htmlArtifact([]string{"out/curves.xlsx"}))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"html", "png"}, splitList(" html,,png "))
	assert.Nil(t, splitList(""))
}

func TestSummaryTable_PaneMatchesDegree(t *testing.T) {
	summaries, err := curves.DefaultClusterer().Summarize([]curves.Curve{
		{Name: "EDGE", Depth: []float64{1}, Values: []float64{1000.0000000000001}},
	})
	require.NoError(t, err)

	out := summaryTable(summaries)
	assert.Contains(t, out, "EDGE")
	assert.Contains(t, out, "3.00")
	assert.Contains(t, out, "left")
	assert.NotContains(t, out, "right")
}
