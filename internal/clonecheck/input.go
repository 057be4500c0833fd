package clonecheck

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mehmattski/moss-popgen-scripts/config"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// ReadOptions control how genotype rows are parsed.
type ReadOptions struct {
	// Missing is the allele code for an unreadable locus
	Missing string

	// Delimiter between fields, a single character
	Delimiter string

	// Header is whether the first row is column names, not a genotype
	Header bool

	// SkipInvalid logs and skips bad rows rather than failing the read
	SkipInvalid bool

	// Warn receives skipped-row messages. Defaults to stderr
	Warn *log.Logger
}

// inputParser contains methods for finding input and output paths.
type inputParser struct{}

// Read opens a genotype file and parses it.
func Read(path string, opts ReadOptions) ([]*Genotype, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %w", err)
		}
		path = abs
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open genotypes: %w", err)
	}
	defer f.Close()

	genotypes, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return genotypes, nil
}

// Parse reads delimited genotype rows: an ID followed by one allele code per
// locus. The first genotype sets the number of loci for the rest.
func Parse(r io.Reader, opts ReadOptions) ([]*Genotype, error) {
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}
	if opts.Warn == nil {
		opts.Warn = stderr
	}
	if !config.ValidDelimiter(opts.Delimiter) {
		return nil, fmt.Errorf("delimiter must be a single character other than a quote or line break, got %q", opts.Delimiter)
	}
	comma, _ := utf8.DecodeRuneInString(opts.Delimiter)

	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1 // row lengths are checked against the first genotype
	reader.TrimLeadingSpace = true

	var genotypes []*Genotype
	seen := make(map[string]bool)
	loci := 0
	first := true

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// the reader resumes at the next record after a syntax error
			var pe *csv.ParseError
			if opts.SkipInvalid && errors.As(err, &pe) {
				opts.Warn.Printf("warning: skipping line %d: %v: %v", pe.StartLine, ErrMalformedRow, pe.Err)
				first = false
				continue
			}
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		line, _ := reader.FieldPos(0)

		if first && opts.Header {
			first = false
			continue
		}
		first = false

		g, err := parseRow(fields, opts.Missing)
		if err == nil && loci > 0 && g.Len() != loci {
			err = fmt.Errorf("%w: %s has %d alleles, expected %d", ErrLengthMismatch, g.ID, g.Len(), loci)
		}
		if err == nil && seen[g.ID] {
			err = fmt.Errorf("%w: %s", ErrDuplicateID, g.ID)
		}
		if err != nil {
			if opts.SkipInvalid {
				opts.Warn.Printf("warning: skipping line %d: %v", line, err)
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if loci == 0 {
			loci = g.Len()
		}
		g.Line = line
		seen[g.ID] = true
		genotypes = append(genotypes, g)
	}

	if len(genotypes) == 0 {
		return nil, ErrNoRecords
	}

	return genotypes, nil
}

// parseRow turns the fields of a single row into a Genotype.
func parseRow(fields []string, missing string) (*Genotype, error) {
	// a trailing delimiter leaves an empty last field
	for len(fields) > 1 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}

	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: expected an id and at least one allele, got %d fields", ErrMalformedRow, len(fields))
	}

	return NewGenotype(strings.TrimSpace(fields[0]), fields[1:], missing)
}

// guessInput returns the first CSV file in the current directory. Is used
// if the user hasn't specified an input file.
func (p *inputParser) guessInput() (in string, err error) {
	dir, _ := filepath.Abs(".")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.ToLower(filepath.Ext(name)) != ".csv" {
			continue
		}

		// skip the outputs of earlier runs
		if isOutput(name) {
			continue
		}
		return name, nil
	}

	return "", fmt.Errorf("failed: no input argument set and no csv file found in %s", dir)
}

// guessOutput gets the stem of the output files from the input path. The
// input's extension is dropped and, if outDir is set, its directory replaced.
func (p *inputParser) guessOutput(in, outDir string) (stem string) {
	ext := filepath.Ext(in)
	stem = in[0 : len(in)-len(ext)]
	if outDir != "" {
		stem = filepath.Join(outDir, filepath.Base(stem))
	}
	return stem
}

// isOutput reports whether a file name looks like one this tool writes.
func isOutput(name string) bool {
	for _, suffix := range []string{assignSuffix, clonesSuffix} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// IsInputError reports whether an error came from bad input data rather
// than the file system.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMalformedRow) ||
		errors.Is(err, ErrLengthMismatch) ||
		errors.Is(err, ErrDuplicateID) ||
		errors.Is(err, ErrNoRecords)
}
