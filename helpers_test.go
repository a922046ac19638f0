package heredity

import (
	"strings"
	"testing"
)

// family0 is a child of one observed-true and one observed-false founder.
const family0 = `name,mother,father,trait
Harry,Lily,James,
James,,,1
Lily,,,0
`

// family2 has two generations, six people and mixed evidence.
const family2 = `name,mother,father,trait
Arthur,,,0
Charlotte,,,0
Fred,Molly,Arthur,1
Ginny,Molly,Arthur,
Molly,,,
Ron,Molly,Arthur,
`

func mustPopulation(t *testing.T, people ...Person) *Population {
	t.Helper()
	pop, err := NewPopulation(people)
	if err != nil {
		t.Fatal(err)
	}
	return pop
}

func mustReadCSV(t *testing.T, data string) *Population {
	t.Helper()
	pop, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return pop
}

func approx(got, want, tol float64) bool {
	d := got - want
	return d <= tol && d >= -tol
}
