package heredity

// GeneCount is the number of copies of the gene that an individual carries.
// It is never observed; every hypothesis assigns one to each individual.
type GeneCount uint8

const (
	GeneZero GeneCount = iota
	GeneOne
	GeneTwo
)

// GeneCounts lists every gene count in the order the report prints them.
var GeneCounts = [...]GeneCount{GeneTwo, GeneOne, GeneZero}

func (g GeneCount) String() string {
	switch g {
	case GeneZero:
		return "0"
	case GeneOne:
		return "1"
	case GeneTwo:
		return "2"

	default:
		return "Illegal selection"
	}
}
