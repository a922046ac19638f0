package heredity

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
)

// Columns that a pedigree file must carry. Any other columns are ignored.
var pedigreeColumns = []string{"name", "mother", "father", "trait"}

// ReadCSV parses a pedigree with a header row naming the columns name, mother,
// father and trait, in any order. Empty mother and father fields mark a
// founder; the trait column holds "1", "0" or nothing.
func ReadCSV(r io.Reader) (*Population, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, pfx.Err(&DataIntegrityError{Reason: "file is empty; expected a header row"})
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	// Spreadsheet exports often start with a byte order mark.
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, want := range pedigreeColumns {
		if _, ok := cols[want]; !ok {
			return nil, pfx.Err(&DataIntegrityError{Reason: fmt.Sprintf("header is missing the %q column", want)})
		}
	}

	var people []Person
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		field := func(name string) string {
			return strings.TrimSpace(row[cols[name]])
		}

		trait, err := ParseTrait(field("trait"))
		if err != nil {
			return nil, pfx.Err(&DataIntegrityError{Person: field("name"), Reason: fmt.Sprintf("line %d: %v", line, err)})
		}

		people = append(people, Person{
			ID:     field("name"),
			Mother: field("mother"),
			Father: field("father"),
			Trait:  trait,
		})
	}

	return NewPopulation(people)
}
