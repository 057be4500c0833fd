package clonecheck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Missing is the default allele code for an unreadable locus.
const Missing = "0"

// Allele is the code at a single locus. Code is kept verbatim for output,
// Value is its parsed integer and is only meaningful when Missing is false.
// Value fits in 32 bits.
type Allele struct {
	Code    string
	Value   int
	Missing bool
}

// Genotype is one individual's multilocus haploid genotype.
type Genotype struct {
	// ID is the first field of the input row
	ID string

	// Alleles at each locus, in input column order
	Alleles []Allele

	// Line is the 1-based line number of the row in its input (0 if unknown)
	Line int

	// missing is the number of loci with the missing sentinel
	missing int
}

// NewGenotype parses allele codes into a Genotype. A code equal to
// missingCode marks the locus as missing, every other code must be a 32-bit integer.
func NewGenotype(id string, codes []string, missingCode string) (*Genotype, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrMalformedRow)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: %s has no alleles", ErrMalformedRow, id)
	}
	if missingCode == "" {
		missingCode = Missing
	}

	g := &Genotype{ID: id, Alleles: make([]Allele, len(codes))}
	for i, code := range codes {
		code = strings.TrimSpace(code)
		if code == missingCode {
			g.Alleles[i] = Allele{Code: code, Missing: true}
			g.missing++
			continue
		}

		v, err := strconv.ParseInt(code, 10, 32)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("%w: %s has an allele %q outside the 32-bit range at locus %d", ErrMalformedRow, id, code, i+1)
			}
			return nil, fmt.Errorf("%w: %s has a non-integer allele %q at locus %d", ErrMalformedRow, id, code, i+1)
		}
		g.Alleles[i] = Allele{Code: code, Value: int(v)}
	}

	return g, nil
}

// MissingCount returns the number of missing loci.
func (g *Genotype) MissingCount() int {
	return g.missing
}

// Len is the number of loci.
func (g *Genotype) Len() int {
	return len(g.Alleles)
}

// Codes returns the verbatim allele codes.
func (g *Genotype) Codes() []string {
	codes := make([]string, len(g.Alleles))
	for i, a := range g.Alleles {
		codes[i] = a.Code
	}
	return codes
}
