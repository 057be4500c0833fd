package clonecheck

// Tiers groups genotypes by their missing-allele count. Tiers[k] holds
// the genotypes with exactly k missing loci, in input order. Empty tiers
// are kept so a tier's index is always its missing count.
type Tiers [][]*Genotype

// Partition buckets genotypes into Tiers. The maximum missing count is
// found first so the tiers are allocated once.
func Partition(genotypes []*Genotype) Tiers {
	if len(genotypes) == 0 {
		return Tiers{}
	}

	max := 0
	for _, g := range genotypes {
		if g.MissingCount() > max {
			max = g.MissingCount()
		}
	}

	tiers := make(Tiers, max+1)
	for _, g := range genotypes {
		k := g.MissingCount()
		tiers[k] = append(tiers[k], g)
	}

	return tiers
}

// Count returns the number of genotypes across all tiers.
func (t Tiers) Count() (n int) {
	for _, tier := range t {
		n += len(tier)
	}
	return
}
