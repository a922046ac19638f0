// Command heredity computes, for every person in a pedigree, the exact
// posterior probability of carrying 0, 1 or 2 copies of a gene and of
// showing the associated trait.
//
//	heredity [flags] data.csv
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/carbocation/heredity"
	log "github.com/sirupsen/logrus"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		var usage *heredity.UsageError
		if errors.As(err, &usage) {
			fmt.Fprintln(os.Stderr, cmd.UsageString())
		}
		log.Fatalln(err)
	}
}
