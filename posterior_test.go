package heredity

import (
	"errors"
	"testing"
)

func TestPosteriorUpdate(t *testing.T) {
	pop := mustPopulation(t, Person{ID: "A"}, Person{ID: "B"})
	post := NewPosterior(pop)

	h := hypothesisFor(t, pop, map[string]GeneCount{"A": GeneTwo}, "B")
	post.Update(h, 0.25)
	post.Update(h, 0.25)

	a, _ := post.Get("A")
	if a.Gene != [3]float64{0, 0, 0.5} || a.Trait != [2]float64{0.5, 0} {
		t.Errorf("Got %+v for A", a)
	}
	b, _ := post.Get("B")
	if b.Gene != [3]float64{0.5, 0, 0} || b.Trait != [2]float64{0, 0.5} {
		t.Errorf("Got %+v for B", b)
	}
}

func TestPosteriorNormalize(t *testing.T) {
	pop := mustPopulation(t, Person{ID: "A"})
	post := NewPosterior(pop)
	post.dist[0] = Distribution{Gene: [3]float64{2, 1, 1}, Trait: [2]float64{3, 1}}

	if err := post.Normalize(); err != nil {
		t.Fatal(err)
	}

	d := post.At(0)
	want := Distribution{Gene: [3]float64{0.5, 0.25, 0.25}, Trait: [2]float64{0.75, 0.25}}
	if d != want {
		t.Errorf("Got %+v, expected %+v", d, want)
	}
	if !post.Normalized() {
		t.Errorf("expected Normalized to report true")
	}
}

func TestPosteriorNormalizeTwice(t *testing.T) {
	pop := mustPopulation(t, Person{ID: "A"})
	post := NewPosterior(pop)
	post.dist[0] = Distribution{Gene: [3]float64{1, 0, 0}, Trait: [2]float64{1, 0}}

	if err := post.Normalize(); err != nil {
		t.Fatal(err)
	}
	if err := post.Normalize(); !errors.Is(err, ErrAlreadyNormalized) {
		t.Errorf("Got %v, expected ErrAlreadyNormalized", err)
	}
}

func TestPosteriorNormalizeZeroMass(t *testing.T) {
	pop := mustPopulation(t, Person{ID: "A"})
	post := NewPosterior(pop)
	post.dist[0].Gene = [3]float64{1, 0, 0}

	err := post.Normalize()
	var violation *InvariantViolation
	if !errors.As(err, &violation) {
		t.Fatalf("Got %v, expected an *InvariantViolation", err)
	}
	if violation.Person != "A" || violation.Field != "trait" {
		t.Errorf("Got %+v, expected person A field trait", violation)
	}
}

func TestPosteriorMerge(t *testing.T) {
	pop := mustPopulation(t, Person{ID: "A"})
	h := hypothesisFor(t, pop, map[string]GeneCount{"A": GeneOne})

	left, right := NewPosterior(pop), NewPosterior(pop)
	left.Update(h, 0.1)
	right.Update(h, 0.2)

	if err := left.Merge(right); err != nil {
		t.Fatal(err)
	}
	if got := left.At(0).GeneProbability(GeneOne); !approx(got, 0.3, 1e-15) {
		t.Errorf("Got %v, expected 0.3", got)
	}

	other := NewPosterior(mustPopulation(t, Person{ID: "A"}))
	if err := left.Merge(other); err == nil {
		t.Errorf("expected an error merging posteriors of different populations")
	}
}

func TestPosteriorNormalizeFailureLeavesTableUntouched(t *testing.T) {
	pop := mustPopulation(t, Person{ID: "A"}, Person{ID: "B"})
	post := NewPosterior(pop)
	post.dist[0] = Distribution{Gene: [3]float64{2, 2, 0}, Trait: [2]float64{1, 3}}

	err := post.Normalize()
	var violation *InvariantViolation
	if !errors.As(err, &violation) || violation.Person != "B" {
		t.Fatalf("Got %v, expected an *InvariantViolation for B", err)
	}

	want := Distribution{Gene: [3]float64{2, 2, 0}, Trait: [2]float64{1, 3}}
	if got := post.At(0); got != want {
		t.Errorf("Got %+v for A, expected the unnormalized %+v", got, want)
	}
	if post.Normalized() {
		t.Errorf("expected Normalized to report false")
	}
}
