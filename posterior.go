package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/floats"
)

// Distribution is one person's probability mass over gene counts and over
// trait presence. Before normalization the values are unnormalized sums of
// joint probabilities.
type Distribution struct {
	// Gene is indexed by GeneCount
	Gene [3]float64

	// Trait is indexed by 0 (no trait) and 1 (trait)
	Trait [2]float64
}

// GeneProbability returns the mass for gene count g.
func (d Distribution) GeneProbability(g GeneCount) float64 {
	return d.Gene[g]
}

// TraitProbability returns the mass for having (or lacking) the trait.
func (d Distribution) TraitProbability(hasTrait bool) float64 {
	if hasTrait {
		return d.Trait[1]
	}
	return d.Trait[0]
}

// Posterior accumulates joint probabilities into per-person marginals. Add
// every hypothesis with Update (or combine partial posteriors with Merge), then
// call Normalize exactly once.
type Posterior struct {
	pop        *Population
	dist       []Distribution
	normalized bool
}

// NewPosterior returns an all-zero Posterior for pop.
func NewPosterior(pop *Population) *Posterior {
	return &Posterior{
		pop:  pop,
		dist: make([]Distribution, pop.Len()),
	}
}

// Update adds probability p to the gene count and trait value that h assigns
// to each person.
func (post *Posterior) Update(h *Hypothesis, p float64) {
	for i := range post.dist {
		post.dist[i].Gene[h.Genes[i]] += p

		if h.HasTrait[i] {
			post.dist[i].Trait[1] += p
		} else {
			post.dist[i].Trait[0] += p
		}
	}
}

// Merge adds the accumulated mass of other, which must cover the same
// population and must not have been normalized.
func (post *Posterior) Merge(other *Posterior) error {
	if other.pop != post.pop {
		return pfx.Err(fmt.Errorf("cannot merge posteriors of different populations"))
	}
	if post.normalized || other.normalized {
		return pfx.Err(ErrAlreadyNormalized)
	}

	for i := range post.dist {
		floats.Add(post.dist[i].Gene[:], other.dist[i].Gene[:])
		floats.Add(post.dist[i].Trait[:], other.dist[i].Trait[:])
	}

	return nil
}

// Normalize scales each person's gene and trait masses so that each sums to
// one. A field with no mass at all means a hypothesis was lost along the way
// and is reported as an *InvariantViolation.
func (post *Posterior) Normalize() error {
	if post.normalized {
		return pfx.Err(ErrAlreadyNormalized)
	}

	// Every total is checked before anything is scaled so that a failure
	// leaves the table untouched.
	for i := range post.dist {
		id := post.pop.people[i].ID
		if floats.Sum(post.dist[i].Gene[:]) == 0 {
			return pfx.Err(&InvariantViolation{Person: id, Field: "gene"})
		}
		if floats.Sum(post.dist[i].Trait[:]) == 0 {
			return pfx.Err(&InvariantViolation{Person: id, Field: "trait"})
		}
	}

	for i := range post.dist {
		normalize(post.dist[i].Gene[:])
		normalize(post.dist[i].Trait[:])
	}
	post.normalized = true

	return nil
}

func normalize(mass []float64) {
	floats.Scale(1/floats.Sum(mass), mass)
}

// Normalized reports whether Normalize has completed.
func (post *Posterior) Normalized() bool {
	return post.normalized
}

// Population returns the population the posterior covers.
func (post *Posterior) Population() *Population {
	return post.pop
}

// At returns the distribution of the i'th person in population order.
func (post *Posterior) At(i int) Distribution {
	return post.dist[i]
}

// Get returns the distribution of the person with the given identifier.
func (post *Posterior) Get(id string) (Distribution, bool) {
	i, ok := post.pop.Index(id)
	if !ok {
		return Distribution{}, false
	}
	return post.dist[i], true
}
