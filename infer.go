package heredity

import (
	"context"
	"fmt"

	"github.com/carbocation/pfx"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxPopulation is the largest population Infer accepts unless told
// otherwise. At 16 people a run scores roughly 2.8e12 hypotheses in the worst
// case.
const DefaultMaxPopulation = 16

// Options controls a single inference run.
type Options struct {
	// Workers is the number of goroutines that score hypotheses. Values
	// below 2 run everything on the calling goroutine.
	Workers int

	// MaxPopulation rejects populations with more people than this. Zero
	// means DefaultMaxPopulation.
	MaxPopulation int
}

// checkEvery is how many hypotheses are scored between context checks.
const checkEvery = 1 << 14

// Infer computes the exact posterior gene-count and trait distribution of
// every person in pop by summing the joint probability of every hypothesis
// consistent with the observed traits. The returned Posterior is normalized.
func Infer(ctx context.Context, pop *Population, m Model, opts Options) (*Posterior, error) {
	maxPop := opts.MaxPopulation
	if maxPop <= 0 {
		maxPop = DefaultMaxPopulation
	}
	if maxPop > MaxIndividuals {
		maxPop = MaxIndividuals
	}
	if pop.Len() > maxPop {
		return nil, pfx.Err(fmt.Errorf("%w: %d individuals exceeds the limit of %d", ErrPopulationTooLarge, pop.Len(), maxPop))
	}

	log.WithFields(log.Fields{
		"individuals": pop.Len(),
		"hypotheses":  Count(pop),
		"workers":     opts.Workers,
	}).Debug("Starting exact inference")

	var post *Posterior
	var err error
	if opts.Workers < 2 {
		post, err = inferRange(ctx, pop, m, 0, GeneAssignments(pop.Len()))
	} else {
		post, err = inferParallel(ctx, pop, m, opts.Workers)
	}
	if err != nil {
		return nil, pfx.Err(err)
	}

	if err := post.Normalize(); err != nil {
		return nil, pfx.Err(err)
	}

	return post, nil
}

// inferParallel splits the gene assignments into one contiguous range per
// worker. Each worker fills its own Posterior and the partial sums are merged
// in worker order once all of them finish, so no totals are shared while
// scoring.
func inferParallel(ctx context.Context, pop *Population, m Model, workers int) (*Posterior, error) {
	total := GeneAssignments(pop.Len())
	if uint64(workers) > total {
		workers = int(total)
	}

	partials := make([]*Posterior, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := total * uint64(w) / uint64(workers)
		hi := total * uint64(w+1) / uint64(workers)
		g.Go(func() error {
			log.WithFields(log.Fields{"worker": w, "from": lo, "to": hi}).Debug("Launching worker")
			partial, err := inferRange(ctx, pop, m, lo, hi)
			if err != nil {
				return err
			}
			partials[w] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, pfx.Err(err)
	}

	post := NewPosterior(pop)
	for _, partial := range partials {
		if err := post.Merge(partial); err != nil {
			return nil, pfx.Err(err)
		}
	}

	return post, nil
}

// inferRange scores and accumulates every hypothesis whose gene assignment
// lies in [lo, hi).
func inferRange(ctx context.Context, pop *Population, m Model, lo, hi uint64) (*Posterior, error) {
	e, err := NewEnumeratorRange(pop, lo, hi)
	if err != nil {
		return nil, pfx.Err(err)
	}

	post := NewPosterior(pop)
	for h := e.Next(); h != nil; h = e.Next() {
		if e.HypothesesSeen%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, pfx.Err(err)
			}
		}
		post.Update(h, JointProbability(pop, m, h))
	}

	return post, nil
}
