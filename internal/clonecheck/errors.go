package clonecheck

import "errors"

var (
	// ErrMalformedRow is for rows without an ID, without alleles, or with
	// an allele code that isn't an integer.
	ErrMalformedRow = errors.New("malformed genotype row")

	// ErrLengthMismatch is for rows whose allele count differs from the
	// allele count established by the first row of the input.
	ErrLengthMismatch = errors.New("allele count mismatch")

	// ErrDuplicateID is for a genotype ID seen twice in one input.
	ErrDuplicateID = errors.New("duplicate genotype id")

	// ErrInvalidTolerance is for a negative mismatch tolerance.
	ErrInvalidTolerance = errors.New("invalid mismatch tolerance")

	// ErrNoRecords is for an input without any genotype rows.
	ErrNoRecords = errors.New("no genotypes")
)
