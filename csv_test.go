package heredity

import (
	"errors"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	pop := mustReadCSV(t, family0)

	want := []Person{
		{ID: "Harry", Mother: "Lily", Father: "James", Trait: TraitUnobserved},
		{ID: "James", Trait: TraitPresent},
		{ID: "Lily", Trait: TraitAbsent},
	}
	if pop.Len() != len(want) {
		t.Fatalf("Got %d people, expected %d", pop.Len(), len(want))
	}
	for i := range want {
		if got := pop.Person(i); got != want[i] {
			t.Errorf("Got %+v, expected %+v", got, want[i])
		}
	}
}

func TestReadCSVColumnOrder(t *testing.T) {
	pop := mustReadCSV(t, "trait,father,name,mother,notes\n1,,A,,founder\n,A,B,C,\n0,,C,,\n")

	b, ok := pop.Index("B")
	if !ok {
		t.Fatal("B is missing")
	}
	if p := pop.Person(b); p.Mother != "C" || p.Father != "A" {
		t.Errorf("Got %+v, expected mother C and father A", p)
	}
}

func TestReadCSVErrors(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"missing column": "name,mother,father\nA,,\n",
		"bad trait":      "name,mother,father,trait\nA,,,maybe\n",
		"one parent":     "name,mother,father,trait\nA,,,\nB,A,,\n",
		"unknown parent": "name,mother,father,trait\nB,X,Y,\n",
	}

	for name, data := range cases {
		_, err := ReadCSV(strings.NewReader(data))
		var integrity *DataIntegrityError
		if !errors.As(err, &integrity) {
			t.Errorf("%s: Got %v, expected a *DataIntegrityError", name, err)
		}
	}

	if _, err := ReadCSV(strings.NewReader("name,mother,father,trait\nA,,\n")); err == nil {
		t.Errorf("expected an error for a short row")
	}
}

func TestReadCSVByteOrderMark(t *testing.T) {
	pop := mustReadCSV(t, "\ufeff"+family0)

	if _, ok := pop.Index("Harry"); !ok || pop.Len() != 3 {
		t.Errorf("Got %d people, expected the 3 people of the family with Harry among them", pop.Len())
	}
}
