package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// MaxIndividuals is the largest population whose hypothesis space can be
// indexed. 6^24 still fits in a uint64; in practice the run-time limit in
// Options is far lower because the work grows as 2^n * 3^n.
const MaxIndividuals = 24

// Enumerator walks every hypothesis that agrees with the observed traits.
// Candidate trait sets are taken from the power set of the population and any
// set that contradicts an observation is dropped before its gene assignments
// are generated. Gene assignments are numbered 0 to 3^n-1 by reading person
// i's gene count as the i'th base-3 digit.
//
// An Enumerator is not safe for concurrent use. Use NewEnumeratorRange to give
// each worker its own slice of the gene assignments.
type Enumerator struct {
	HypothesesSeen uint64

	pop *Population

	traitMask  uint64
	traitLimit uint64

	gene   uint64
	geneLo uint64
	geneHi uint64

	// Reused between calls to Next
	h *Hypothesis
}

// NewEnumerator returns an Enumerator over every evidence-consistent
// hypothesis for pop.
func NewEnumerator(pop *Population) (*Enumerator, error) {
	return NewEnumeratorRange(pop, 0, GeneAssignments(pop.Len()))
}

// NewEnumeratorRange returns an Enumerator that only emits gene assignments
// numbered in [lo, hi), paired with every evidence-consistent trait set.
func NewEnumeratorRange(pop *Population, lo, hi uint64) (*Enumerator, error) {
	if err := checkEnumerable(pop); err != nil {
		return nil, pfx.Err(err)
	}
	if total := GeneAssignments(pop.Len()); lo > hi || hi > total {
		return nil, pfx.Err(fmt.Errorf("gene assignment range [%d, %d) is outside [0, %d)", lo, hi, total))
	}

	e := &Enumerator{
		pop:        pop,
		traitLimit: uint64(1) << uint(pop.Len()),
		gene:       lo,
		geneLo:     lo,
		geneHi:     hi,
		h:          newHypothesis(pop),
	}
	if lo == hi {
		e.traitMask = e.traitLimit
	} else {
		e.traitMask = e.nextConsistentMask(0)
	}

	return e, nil
}

func checkEnumerable(pop *Population) error {
	if pop.Len() > MaxIndividuals {
		return fmt.Errorf("%w: %d individuals, at most %d can be enumerated", ErrPopulationTooLarge, pop.Len(), MaxIndividuals)
	}
	return nil
}

// Next returns the next hypothesis, or nil once every hypothesis has been
// produced. The returned Hypothesis is overwritten by the following call.
func (e *Enumerator) Next() *Hypothesis {
	if e.traitMask >= e.traitLimit {
		return nil
	}

	for i := range e.h.HasTrait {
		e.h.HasTrait[i] = e.traitMask&(1<<uint(i)) != 0
	}
	decodeGenes(e.gene, e.h.Genes)

	e.gene++
	if e.gene == e.geneHi {
		e.gene = e.geneLo
		e.traitMask = e.nextConsistentMask(e.traitMask + 1)
	}
	e.HypothesesSeen++

	return e.h
}

// nextConsistentMask returns the first trait set at or after mask that agrees
// with every observed trait, or traitLimit if there is none.
func (e *Enumerator) nextConsistentMask(mask uint64) uint64 {
MaskLoop:
	for ; mask < e.traitLimit; mask++ {
		for i, p := range e.pop.people {
			if !p.Trait.Consistent(mask&(1<<uint(i)) != 0) {
				continue MaskLoop
			}
		}
		return mask
	}
	return e.traitLimit
}

func decodeGenes(index uint64, genes []GeneCount) {
	for i := range genes {
		genes[i] = GeneCount(index % 3)
		index /= 3
	}
}

// GeneAssignments is the number of ways to give n people a gene count, 3^n.
func GeneAssignments(n int) uint64 {
	total := uint64(1)
	for i := 0; i < n; i++ {
		total *= 3
	}
	return total
}

// Count is the number of hypotheses an Enumerator over pop will produce:
// 2^u * 3^n, where u is the number of people whose trait was not observed.
func Count(pop *Population) uint64 {
	total := GeneAssignments(pop.Len())
	for _, p := range pop.people {
		if !p.Trait.Observed() {
			total *= 2
		}
	}
	return total
}
