package heredity

import (
	"fmt"
	"strings"

	"github.com/carbocation/pfx"
)

// Trait is the observed state of the trait for one individual. The zero value
// means that the trait was not observed.
type Trait uint8

const (
	TraitUnobserved Trait = iota
	TraitAbsent
	TraitPresent
)

// ParseTrait reads the tri-state encoding used by pedigree files: "1" for
// present, "0" for absent and an empty field for unobserved.
func ParseTrait(s string) (Trait, error) {
	switch strings.TrimSpace(s) {
	case "":
		return TraitUnobserved, nil
	case "0":
		return TraitAbsent, nil
	case "1":
		return TraitPresent, nil
	}

	return TraitUnobserved, pfx.Err(fmt.Errorf("trait value %q is not one of \"1\", \"0\" or empty", s))
}

// Observed reports whether the trait was recorded at all.
func (t Trait) Observed() bool {
	return t != TraitUnobserved
}

// Consistent reports whether having (or lacking) the trait agrees with what
// was observed. Unobserved traits agree with anything.
func (t Trait) Consistent(hasTrait bool) bool {
	switch t {
	case TraitPresent:
		return hasTrait
	case TraitAbsent:
		return !hasTrait
	}
	return true
}

func (t Trait) String() string {
	switch t {
	case TraitUnobserved:
		return "Unobserved"
	case TraitAbsent:
		return "Absent"
	case TraitPresent:
		return "Present"

	default:
		return "Illegal selection"
	}
}
