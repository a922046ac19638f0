package heredity

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// Model holds the conditional probability tables of the pedigree network.
type Model struct {
	// GenePrior is the unconditional probability that a founder carries 0, 1
	// or 2 copies of the gene, indexed by GeneCount.
	GenePrior [3]float64

	// Trait is the probability of showing the trait given the gene count,
	// indexed by GeneCount and then by 0 (no trait) or 1 (trait).
	Trait [3][2]float64

	// Mutation is the probability that an inherited copy flips state.
	Mutation float64
}

// DefaultModel returns the fixed tables. Returned by value so that no caller
// can alter another caller's tables.
func DefaultModel() Model {
	return Model{
		GenePrior: [3]float64{
			GeneZero: 0.96,
			GeneOne:  0.03,
			GeneTwo:  0.01,
		},
		Trait: [3][2]float64{
			GeneZero: {0.99, 0.01},
			GeneOne:  {0.44, 0.56},
			GeneTwo:  {0.35, 0.65},
		},
		Mutation: 0.01,
	}
}

// tolerance for checking that a distribution sums to one
const tolerance = 1e-9

// Validate confirms that every table row is a probability distribution.
func (m Model) Validate() error {
	if err := checkDistribution("gene prior", m.GenePrior[:]); err != nil {
		return pfx.Err(err)
	}

	for g := range m.Trait {
		if err := checkDistribution(fmt.Sprintf("trait given %s", GeneCount(g)), m.Trait[g][:]); err != nil {
			return pfx.Err(err)
		}
	}

	if m.Mutation < 0 || m.Mutation > 1 {
		return pfx.Err(fmt.Errorf("mutation rate %v is outside [0, 1]", m.Mutation))
	}

	return nil
}

func checkDistribution(name string, values []float64) error {
	sum := 0.0
	for i, v := range values {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s: entry %d (%v) is outside [0, 1]", name, i, v)
		}
		sum += v
	}
	if math.Abs(sum-1) > tolerance {
		return fmt.Errorf("%s sums to %v; expected 1", name, sum)
	}

	return nil
}

// Prior is the probability that a founder carries g copies.
func (m Model) Prior(g GeneCount) float64 {
	return m.GenePrior[g]
}

// TraitProbability is the probability of the trait being present (or absent,
// when hasTrait is false) for someone carrying g copies.
func (m Model) TraitProbability(g GeneCount, hasTrait bool) float64 {
	if hasTrait {
		return m.Trait[g][1]
	}
	return m.Trait[g][0]
}

// Transmission is the probability that a parent carrying g copies passes a
// copy of the gene on to a child.
func (m Model) Transmission(g GeneCount) float64 {
	switch g {
	case GeneTwo:
		return 1 - m.Mutation
	case GeneOne:
		return 0.5
	default:
		return m.Mutation
	}
}

// Inherit is the probability that a child carries g copies given the
// transmission probabilities of its mother and father.
func Inherit(g GeneCount, mother, father float64) float64 {
	switch g {
	case GeneTwo:
		return mother * father
	case GeneOne:
		return mother*(1-father) + (1-mother)*father
	default:
		return (1 - mother) * (1 - father)
	}
}
