package clonecheck

// Clone is a canonical genotype: the alleles of the first genotype that
// didn't match any earlier canonical genotype.
type Clone struct {
	// ID is the clone's cluster id, assigned in creation order from 0
	ID int

	// Alleles copied from the genotype that created the clone
	Alleles []Allele
}

// Registry is the append-only list of clones found during one run.
// A clone's ID is its index.
type Registry struct {
	clones []Clone

	// loci is the allele count of the first clone (0 while empty)
	loci int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Len is the number of clones so far.
func (r *Registry) Len() int {
	return len(r.clones)
}

// Loci is the allele count shared by every clone in the registry.
func (r *Registry) Loci() int {
	return r.loci
}

// Get returns the alleles of the clone with the passed id.
func (r *Registry) Get(id int) []Allele {
	return r.clones[id].Alleles
}

// Append adds a new clone with a copy of the alleles and returns its id.
func (r *Registry) Append(alleles []Allele) int {
	id := len(r.clones)
	if id == 0 {
		r.loci = len(alleles)
	}

	copied := make([]Allele, len(alleles))
	copy(copied, alleles)
	r.clones = append(r.clones, Clone{ID: id, Alleles: copied})

	return id
}

// Clones returns the clones in cluster id order.
func (r *Registry) Clones() []Clone {
	clones := make([]Clone, len(r.clones))
	copy(clones, r.clones)
	return clones
}
