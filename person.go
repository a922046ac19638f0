package heredity

// Person is one record of the pedigree. Mother and Father are either both set
// or both empty.
type Person struct {
	ID     string `validate:"required"`
	Mother string `validate:"required_with=Father,omitempty,nefield=ID"`
	Father string `validate:"required_with=Mother,omitempty,nefield=ID"`
	Trait  Trait  `validate:"lte=2"`
}

// Founder reports whether the person has no recorded parents, in which case
// their gene count is drawn from the population prior.
func (p Person) Founder() bool {
	return p.Mother == "" && p.Father == ""
}
