package clonecheck

import (
	"fmt"
	"sort"
)

// Assignment is a genotype and the ids of the clones it's compatible with.
type Assignment struct {
	Genotype *Genotype

	// Clones are cluster ids in ascending order
	Clones []int
}

// Ambiguous reports whether the genotype matched more than one clone.
func (a Assignment) Ambiguous() bool {
	return len(a.Clones) > 1
}

// Result is the outcome of clustering one input.
type Result struct {
	// Tolerance is the mismatch tolerance the run used
	Tolerance int

	// Tiers are the genotypes as they were processed
	Tiers Tiers

	registry    *Registry
	assignments map[string]Assignment
}

// Assign runs every genotype, tier by tier and in input order within a tier,
// through Match against a fresh registry.
func Assign(tiers Tiers, tolerance int) (*Result, error) {
	if tolerance < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTolerance, tolerance)
	}

	res := &Result{
		Tolerance:   tolerance,
		Tiers:       tiers,
		registry:    NewRegistry(),
		assignments: make(map[string]Assignment, tiers.Count()),
	}

	for _, tier := range tiers {
		for _, g := range tier {
			if _, seen := res.assignments[g.ID]; seen {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateID, g.ID)
			}

			ids, err := Match(g, res.registry, tolerance)
			if err != nil {
				return nil, err
			}
			res.assignments[g.ID] = Assignment{Genotype: g, Clones: ids}
		}
	}

	return res, nil
}

// Lookup returns the assignment for a genotype id.
func (r *Result) Lookup(id string) (Assignment, bool) {
	a, ok := r.assignments[id]
	return a, ok
}

// Assignments returns every assignment sorted by genotype id.
func (r *Result) Assignments() []Assignment {
	assignments := make([]Assignment, 0, len(r.assignments))
	for _, a := range r.assignments {
		assignments = append(assignments, a)
	}

	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].Genotype.ID < assignments[j].Genotype.ID
	})

	return assignments
}

// Clones returns every clone sorted by cluster id.
func (r *Result) Clones() []Clone {
	return r.registry.Clones()
}

// Ambiguous is the number of genotypes compatible with more than one clone.
func (r *Result) Ambiguous() (n int) {
	for _, a := range r.assignments {
		if a.Ambiguous() {
			n++
		}
	}
	return
}
