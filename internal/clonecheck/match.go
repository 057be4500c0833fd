package clonecheck

import (
	"fmt"
)

// Distance is the sum of absolute allele differences between two genotypes.
// Loci where either side is missing are skipped rather than penalized.
// a and b must be the same length.
func Distance(a, b []Allele) int64 {
	var dist int64
	for i := range a {
		if a[i].Missing || b[i].Missing {
			continue
		}

		d := int64(a[i].Value) - int64(b[i].Value)
		if d < 0 {
			d = -d
		}
		dist += d
	}
	return dist
}

// Match returns the ids of every clone in the registry within a distance of
// tolerance of g, in ascending id order. If no clone is compatible, g becomes
// a new clone and its id is the only one returned.
func Match(g *Genotype, reg *Registry, tolerance int) ([]int, error) {
	if tolerance < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTolerance, tolerance)
	}

	if reg.Len() == 0 {
		return []int{reg.Append(g.Alleles)}, nil
	}

	if g.Len() != reg.Loci() {
		return nil, fmt.Errorf("%w: %s has %d alleles, expected %d", ErrLengthMismatch, g.ID, g.Len(), reg.Loci())
	}

	var ids []int
	for id := 0; id < reg.Len(); id++ {
		if Distance(reg.Get(id), g.Alleles) <= int64(tolerance) {
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		ids = append(ids, reg.Append(g.Alleles))
	}

	return ids, nil
}
