package clonecheck

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mehmattski/moss-popgen-scripts/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goldenName is the name of an expected output file under testdata.
func goldenName(tolerance int, kind string) string {
	return fmt.Sprintf("moss_t%d_%s.golden", tolerance, kind)
}

func countLines(b []byte) int {
	return bytes.Count(b, []byte("\n"))
}

// testConfig returns the default settings with a tolerance and output directory.
func testConfig(tolerance int, out string) *config.Config {
	return &config.Config{
		Mismatches: tolerance,
		Missing:    "0",
		Delimiter:  ",",
		Out:        out,
		Jobs:       1,
	}
}

// copyMoss copies the moss genotypes into dir under name.
func copyMoss(t *testing.T, dir, name string) string {
	t.Helper()

	contents, err := os.ReadFile(filepath.Join("testdata", "moss.csv"))
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, contents, 0644))
	return path
}

func TestRun(t *testing.T) {
	for _, tolerance := range []int{0, 2, 4} {
		t.Run(fmt.Sprintf("tolerance %d", tolerance), func(t *testing.T) {
			out := t.TempDir()

			o, err := Run(filepath.Join("testdata", "moss.csv"), testConfig(tolerance, out))
			require.NoError(t, err)

			require.Equal(t, []string{
				filepath.Join(out, "moss"+assignSuffix),
				filepath.Join(out, "moss"+clonesSuffix),
			}, o.Files)

			for i, kind := range []string{"assign", "clones"} {
				want, err := os.ReadFile(filepath.Join("testdata", goldenName(tolerance, kind)))
				require.NoError(t, err)

				got, err := os.ReadFile(o.Files[i])
				require.NoError(t, err)
				assert.Equal(t, string(want), string(got))
			}
		})
	}
}

func TestRun_summary(t *testing.T) {
	out := t.TempDir()
	conf := testConfig(0, out)
	conf.Summary = "JSON"

	o, err := Run(filepath.Join("testdata", "moss.csv"), conf)
	require.NoError(t, err)
	require.Len(t, o.Files, 3)
	assert.Equal(t, filepath.Join(out, "moss_summary.json"), o.Files[2])

	contents, err := os.ReadFile(o.Files[2])
	require.NoError(t, err)

	var s Summary
	require.NoError(t, json.Unmarshal(contents, &s))
	assert.Equal(t, 10, s.Genotypes)
	assert.Equal(t, 5, s.Clones)
	assert.Equal(t, 2, s.Ambiguous)
	assert.Equal(t, 6, s.Loci)
	assert.Equal(t, 0, s.Mismatches)
	assert.Equal(t, []TierSummary{
		{Missing: 0, Genotypes: 6},
		{Missing: 1, Genotypes: 1},
		{Missing: 2, Genotypes: 2},
		{Missing: 3, Genotypes: 0},
		{Missing: 4, Genotypes: 0},
		{Missing: 5, Genotypes: 1},
	}, s.Tiers)
}

func TestRun_badInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(in, []byte("MJ101,158,193\nMJ102,158,x\nMJ103,158,0\n"), 0644))

	_, err := Run(in, testConfig(0, ""))
	assert.ErrorIs(t, err, ErrMalformedRow)
	assert.NoFileExists(t, filepath.Join(dir, "bad"+assignSuffix))

	conf := testConfig(0, "")
	conf.SkipInvalid = true
	o, err := Run(in, conf)
	require.NoError(t, err)
	assert.Equal(t, 2, o.Summary.Genotypes)
	assert.FileExists(t, filepath.Join(dir, "bad"+assignSuffix))
}

func TestCluster(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		copyMoss(t, dir, "site1.csv"),
		copyMoss(t, dir, "site2.csv"),
		copyMoss(t, dir, "site3.csv"),
	}

	conf := testConfig(2, "")
	conf.Jobs = 2
	outputs, err := Cluster(inputs, conf)
	require.NoError(t, err)
	require.Len(t, outputs, 3)

	want, err := os.ReadFile(filepath.Join("testdata", goldenName(2, "clones")))
	require.NoError(t, err)

	for i, o := range outputs {
		// every run starts from an empty set of clones
		assert.Equal(t, inputs[i], o.Input)
		assert.Len(t, o.Result.Clones(), countLines(want))

		got, err := os.ReadFile(o.Files[1])
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	}
}

func TestCluster_sameOutputs(t *testing.T) {
	a := filepath.Join(t.TempDir(), "moss.csv")
	b := filepath.Join(t.TempDir(), "moss.csv")

	_, err := Cluster([]string{a, b}, testConfig(0, t.TempDir()))
	assert.Error(t, err)
}

func Test_parseInputs(t *testing.T) {
	inputs, err := parseInputs([]string{"a.csv", "b.csv", "./a.csv"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.csv", "b.csv"}, inputs)
}

func Test_summaryFormat(t *testing.T) {
	assert.Equal(t, "json", summaryFormat("JSON"))
	assert.Equal(t, "yaml", summaryFormat("yaml"))
	assert.Equal(t, "", summaryFormat(""))
	assert.Equal(t, "", summaryFormat("xml"))
}
