package clonecheck

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mehmattski/moss-popgen-scripts/config"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Output is the result of clustering a single input file.
type Output struct {
	// Input is the genotypes file
	Input string

	// Result of the clustering
	Result *Result

	// Summary of the run
	Summary Summary

	// Files written, in order: assignments, clones, and the summary (if any)
	Files []string
}

// ClusterCmd takes a cobra command (with its flags) and runs Cluster.
func ClusterCmd(cmd *cobra.Command, args []string) {
	conf, err := config.New()
	if err != nil {
		cmd.Help()
		stderr.Fatalln(err)
	}

	inputs, err := parseInputs(args)
	if err != nil {
		cmd.Help()
		stderr.Fatalln(err)
	}

	outputs, err := Cluster(inputs, conf)
	if err != nil {
		if IsInputError(err) && !conf.SkipInvalid {
			stderr.Println("use --skip-invalid to skip bad rows")
		}
		stderr.Fatalln(err)
	}

	for _, o := range outputs {
		fmt.Printf(
			"%s: %d genotypes, %d clones, %d ambiguous\n",
			o.Input, o.Summary.Genotypes, o.Summary.Clones, o.Summary.Ambiguous,
		)
		if conf.Verbose {
			for _, f := range o.Files {
				fmt.Printf("  wrote %s\n", f)
			}
		}
	}
}

// TiersCmd logs the genotypes of an input file grouped by their number of
// missing alleles, in the order they would be clustered.
func TiersCmd(cmd *cobra.Command, args []string) {
	conf, err := config.New()
	if err != nil {
		cmd.Help()
		stderr.Fatalln(err)
	}

	inputs, err := parseInputs(args)
	if err != nil {
		cmd.Help()
		stderr.Fatalln(err)
	}

	for _, in := range inputs {
		genotypes, err := Read(in, readOptions(conf))
		if err != nil {
			stderr.Fatalln(err)
		}

		if len(inputs) > 1 {
			fmt.Printf("%s\n", in)
		}
		if err := writeTiers(os.Stdout, Partition(genotypes), conf.Verbose); err != nil {
			stderr.Fatalln(err)
		}
	}
}

// Cluster runs each input file as its own clustering run. Runs share
// nothing, so up to conf.Jobs of them execute at once. Outputs are in the
// same order as the inputs.
func Cluster(inputs []string, conf *config.Config) ([]*Output, error) {
	outputs := make([]*Output, len(inputs))

	// two runs writing the same files would clobber one another
	p := inputParser{}
	stems := make(map[string]string)
	for _, in := range inputs {
		stem := p.guessOutput(in, conf.Out)
		if other, exists := stems[stem]; exists {
			return nil, fmt.Errorf("failed: %s and %s would write the same output files", other, in)
		}
		stems[stem] = in
	}

	var g errgroup.Group
	g.SetLimit(conf.Jobs)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			out, err := Run(in, conf)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

// Run clusters the genotypes of one input file and writes the assignments,
// clones, and optional summary next to it (or to conf.Out).
func Run(in string, conf *config.Config) (*Output, error) {
	start := time.Now()

	genotypes, err := Read(in, readOptions(conf))
	if err != nil {
		return nil, err
	}

	if conf.Verbose {
		fmt.Printf("clustering %d genotypes from %s\n", len(genotypes), in)
	}

	res, err := Assign(Partition(genotypes), conf.Mismatches)
	if err != nil {
		return nil, fmt.Errorf("failed to cluster %s: %w", in, err)
	}

	p := inputParser{}
	stem := p.guessOutput(in, conf.Out)
	out := &Output{
		Input:   in,
		Result:  res,
		Summary: newSummary(in, res, time.Since(start).Seconds()),
	}

	assignFile := stem + assignSuffix
	if err = writeFile(assignFile, func(w io.Writer) error {
		return writeAssignments(w, res, conf.Delimiter)
	}); err != nil {
		return nil, err
	}
	out.Files = append(out.Files, assignFile)

	clonesFile := stem + clonesSuffix
	if err = writeFile(clonesFile, func(w io.Writer) error {
		return writeClones(w, res, conf.Delimiter)
	}); err != nil {
		return nil, err
	}
	out.Files = append(out.Files, clonesFile)

	if format := summaryFormat(conf.Summary); format != "" {
		summaryFile := stem + "_summary." + format
		if err = writeFile(summaryFile, func(w io.Writer) error {
			return writeSummary(w, out.Summary, format)
		}); err != nil {
			return nil, err
		}
		out.Files = append(out.Files, summaryFile)
	}

	return out, nil
}

// parseInputs returns the input files from the command's arguments, or
// the first CSV in the working directory if there are none.
func parseInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		seen := make(map[string]bool)
		var inputs []string
		for _, a := range args {
			abs, err := filepath.Abs(a)
			if err != nil {
				return nil, fmt.Errorf("failed to create path to input file: %w", err)
			}
			if seen[abs] {
				continue // two runs would write the same outputs
			}
			seen[abs] = true
			inputs = append(inputs, a)
		}
		return inputs, nil
	}

	p := inputParser{}
	in, err := p.guessInput()
	if err != nil {
		return nil, err
	}
	return []string{in}, nil
}

// readOptions pulls the parsing settings out of the config.
func readOptions(conf *config.Config) ReadOptions {
	return ReadOptions{
		Missing:     conf.Missing,
		Delimiter:   conf.Delimiter,
		Header:      conf.Header,
		SkipInvalid: conf.SkipInvalid,
	}
}

// summaryFormat normalizes the summary setting to a file extension.
func summaryFormat(s string) string {
	switch strings.ToLower(s) {
	case config.SummaryJSON:
		return config.SummaryJSON
	case config.SummaryYAML:
		return config.SummaryYAML
	}
	return ""
}
