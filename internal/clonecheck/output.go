package clonecheck

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

const (
	assignSuffix = "_assign.csv"
	clonesSuffix = "_clones.csv"
)

// TierSummary is the number of genotypes with a given missing-allele count.
type TierSummary struct {
	Missing   int `json:"missing" yaml:"missing"`
	Genotypes int `json:"genotypes" yaml:"genotypes"`
}

// Summary describes a single clustering run.
type Summary struct {
	// RunID is unique to each run
	RunID string `json:"runId" yaml:"runId"`

	// Input is the path of the genotypes file
	Input string `json:"input" yaml:"input"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time" yaml:"time"`

	// Execution is the number of seconds it took to cluster the input
	Execution float64 `json:"execution" yaml:"execution"`

	// Mismatches is the tolerance used
	Mismatches int `json:"mismatches" yaml:"mismatches"`

	// Loci per genotype
	Loci int `json:"loci" yaml:"loci"`

	// Genotypes is the number of genotypes clustered
	Genotypes int `json:"genotypes" yaml:"genotypes"`

	// Clones is the number of distinct clones found
	Clones int `json:"clones" yaml:"clones"`

	// Ambiguous is the number of genotypes compatible with more than one clone
	Ambiguous int `json:"ambiguous" yaml:"ambiguous"`

	// Tiers is the genotype count per missing-allele count
	Tiers []TierSummary `json:"tiers" yaml:"tiers"`
}

// newSummary describes the result of clustering the input.
func newSummary(input string, res *Result, seconds float64) Summary {
	// same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	s := Summary{
		RunID: uuid.New().String(),
		Input: input,
		Time: fmt.Sprintf(
			"%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		),
		Execution:  seconds,
		Mismatches: res.Tolerance,
		Loci:       res.registry.Loci(),
		Genotypes:  res.Tiers.Count(),
		Clones:     res.registry.Len(),
		Ambiguous:  res.Ambiguous(),
	}

	for missing, tier := range res.Tiers {
		s.Tiers = append(s.Tiers, TierSummary{Missing: missing, Genotypes: len(tier)})
	}

	return s
}

// writeAssignments writes a row per genotype, sorted by ID: the ID, its
// alleles, then the ids of every clone it's compatible with.
func writeAssignments(w io.Writer, res *Result, delimiter string) error {
	cw := newCSVWriter(w, delimiter)
	for _, a := range res.Assignments() {
		row := append([]string{a.Genotype.ID}, a.Genotype.Codes()...)
		for _, id := range a.Clones {
			row = append(row, strconv.Itoa(id))
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write assignment of %s: %w", a.Genotype.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeClones writes a row per clone, sorted by its id: the id then its alleles.
func writeClones(w io.Writer, res *Result, delimiter string) error {
	cw := newCSVWriter(w, delimiter)
	for _, c := range res.Clones() {
		row := []string{strconv.Itoa(c.ID)}
		for _, a := range c.Alleles {
			row = append(row, a.Code)
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write clone %d: %w", c.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeSummary serializes the summary as JSON or YAML.
func writeSummary(w io.Writer, s Summary, format string) error {
	var (
		output []byte
		err    error
	)

	switch format {
	case "yaml":
		output, err = yaml.Marshal(s)
	default:
		output, err = json.MarshalIndent(s, "", "  ")
		output = append(output, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to serialize summary: %w", err)
	}

	_, err = w.Write(output)
	return err
}

// writeFile creates filename and fills it with write.
func writeFile(filename string, write func(io.Writer) error) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", filename, cerr)
		}
	}()

	if err = write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

func newCSVWriter(w io.Writer, delimiter string) *csv.Writer {
	cw := csv.NewWriter(w)
	if r, size := utf8.DecodeRuneInString(delimiter); size > 0 {
		cw.Comma = r
	}
	return cw
}

// writeTiers writes a table with a row per tier. The genotype IDs in each
// tier are only listed if ids is true.
func writeTiers(w io.Writer, tiers Tiers, ids bool) error {
	writer := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	if ids {
		fmt.Fprintf(writer, "missing\tgenotypes\tids\t\n")
	} else {
		fmt.Fprintf(writer, "missing\tgenotypes\t\n")
	}

	for missing, tier := range tiers {
		if !ids {
			fmt.Fprintf(writer, "%d\t%d\t\n", missing, len(tier))
			continue
		}

		names := make([]string, len(tier))
		for i, g := range tier {
			names[i] = g.ID
		}
		fmt.Fprintf(writer, "%d\t%d\t%s\t\n", missing, len(tier), strings.Join(names, ","))
	}
	fmt.Fprintf(writer, "total\t%d\t\n", tiers.Count())

	return writer.Flush()
}
