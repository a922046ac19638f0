package heredity

// JointProbability is the probability of hypothesis h under the pedigree
// network. Gene counts of descendants depend only on their parents' gene
// counts and every trait depends only on its owner's gene count, so the joint
// probability is a product of one gene term and one trait term per person.
//
// The result is not normalized across hypotheses. Very large populations can
// underflow to zero; the enumeration limits keep populations well below that.
func JointProbability(pop *Population, m Model, h *Hypothesis) float64 {
	probability := 1.0

	for i := range pop.people {
		g := h.Genes[i]

		var geneProbability float64
		if mother, father, ok := pop.Parents(i); ok {
			geneProbability = Inherit(g,
				m.Transmission(h.Genes[mother]),
				m.Transmission(h.Genes[father]))
		} else {
			geneProbability = m.Prior(g)
		}

		probability *= geneProbability * m.TraitProbability(g, h.HasTrait[i])
	}

	return probability
}
