package heredity

// Hypothesis is one complete assignment of the hidden variables: a gene count
// and a trait flag for every person, indexed in population order. Every
// person carries exactly one gene count, so nobody can be in both the
// one-gene and two-gene sets.
type Hypothesis struct {
	Genes    []GeneCount
	HasTrait []bool

	pop *Population
}

func newHypothesis(pop *Population) *Hypothesis {
	return &Hypothesis{
		Genes:    make([]GeneCount, pop.Len()),
		HasTrait: make([]bool, pop.Len()),
		pop:      pop,
	}
}

// OneGene lists the identifiers of everyone hypothesized to carry one copy.
func (h *Hypothesis) OneGene() []string {
	return h.withGenes(GeneOne)
}

// TwoGenes lists the identifiers of everyone hypothesized to carry two copies.
func (h *Hypothesis) TwoGenes() []string {
	return h.withGenes(GeneTwo)
}

// HaveTrait lists the identifiers of everyone hypothesized to show the trait.
func (h *Hypothesis) HaveTrait() []string {
	var out []string
	for i, has := range h.HasTrait {
		if has {
			out = append(out, h.pop.people[i].ID)
		}
	}
	return out
}

func (h *Hypothesis) withGenes(g GeneCount) []string {
	var out []string
	for i, gc := range h.Genes {
		if gc == g {
			out = append(out, h.pop.people[i].ID)
		}
	}
	return out
}

// consistentWithEvidence reports whether every observed trait agrees with the
// hypothesis.
func (h *Hypothesis) consistentWithEvidence() bool {
	for i, p := range h.pop.people {
		if !p.Trait.Consistent(h.HasTrait[i]) {
			return false
		}
	}
	return true
}
