package heredity

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/carbocation/pfx"
	"github.com/go-playground/validator/v10"
)

// Population is an immutable snapshot of a validated pedigree. People keep
// the order in which they were supplied, and that order is used for every
// per-person slice in this package.
type Population struct {
	people []Person
	index  map[string]int

	// parents[i] holds the indices of person i's mother and father, or -1
	// for founders.
	parents [][2]int
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// NewPopulation validates people and returns a Population. Any breach of the
// pedigree contract is reported as a *DataIntegrityError.
func NewPopulation(people []Person) (*Population, error) {
	pop := &Population{
		people:  make([]Person, len(people)),
		index:   make(map[string]int, len(people)),
		parents: make([][2]int, len(people)),
	}
	copy(pop.people, people)

	for i, p := range pop.people {
		if err := structValidator().Struct(p); err != nil {
			return nil, pfx.Err(integrityError(p.ID, err))
		}
		if _, exists := pop.index[p.ID]; exists {
			return nil, pfx.Err(&DataIntegrityError{Person: p.ID, Reason: "duplicate identifier"})
		}
		pop.index[p.ID] = i
	}

	for i, p := range pop.people {
		if p.Founder() {
			pop.parents[i] = [2]int{-1, -1}
			continue
		}

		mother, ok := pop.index[p.Mother]
		if !ok {
			return nil, pfx.Err(&DataIntegrityError{Person: p.ID, Reason: fmt.Sprintf("mother %q is not in the pedigree", p.Mother)})
		}
		father, ok := pop.index[p.Father]
		if !ok {
			return nil, pfx.Err(&DataIntegrityError{Person: p.ID, Reason: fmt.Sprintf("father %q is not in the pedigree", p.Father)})
		}
		pop.parents[i] = [2]int{mother, father}
	}

	return pop, nil
}

// integrityError turns validator field errors into a DataIntegrityError that
// names the offending fields.
func integrityError(id string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &DataIntegrityError{Person: id, Reason: err.Error()}
	}

	reasons := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			reasons = append(reasons, fmt.Sprintf("%s is empty", strings.ToLower(fe.Field())))
		case "required_with":
			reasons = append(reasons, fmt.Sprintf("%s is missing but %s is set", strings.ToLower(fe.Field()), strings.ToLower(fe.Param())))
		case "nefield":
			reasons = append(reasons, fmt.Sprintf("%s refers to the person themselves", strings.ToLower(fe.Field())))
		default:
			reasons = append(reasons, fmt.Sprintf("%s fails %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}

	return &DataIntegrityError{Person: id, Reason: strings.Join(reasons, "; ")}
}

// Len is the number of people in the population.
func (p *Population) Len() int {
	return len(p.people)
}

// Person returns the i'th person in input order.
func (p *Population) Person(i int) Person {
	return p.people[i]
}

// Index returns the position of the person with the given identifier.
func (p *Population) Index(id string) (int, bool) {
	i, ok := p.index[id]
	return i, ok
}

// Parents returns the indices of person i's mother and father. ok is false
// for founders.
func (p *Population) Parents(i int) (mother, father int, ok bool) {
	pr := p.parents[i]
	if pr[0] < 0 {
		return -1, -1, false
	}
	return pr[0], pr[1], true
}
