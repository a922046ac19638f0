package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/carbocation/heredity"
	"github.com/carbocation/pfx"
	log "github.com/sirupsen/logrus"
)

func main() {
	dbPath := flag.String("db", "", "SQLite file written by heredity --db")
	runID := flag.String("run", "", "Print the posteriors of this run instead of listing runs")
	flag.Parse()

	if *dbPath == "" {
		flag.PrintDefaults()
		log.Fatalln("No results database given")
	}

	path, err := heredity.ExpandHome(*dbPath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	store, err := heredity.OpenResultStore(path)
	if err != nil {
		log.Fatalln(err)
	}
	defer store.Close()

	log.Println("Using sqlite driver", heredity.WhichSQLiteDriver())

	if *runID != "" {
		recs, err := store.Posteriors(*runID)
		if err != nil {
			log.Fatalln(err)
		}
		for _, rec := range recs {
			fmt.Printf("%s\t%s\t%s\t%.4f\n", rec.Person, rec.Field, rec.Value, rec.Probability)
		}
		log.Println("Saw", len(recs), "posterior values")
		return
	}

	runs, err := store.Runs()
	if err != nil {
		log.Fatalln(err)
	}
	for i, run := range runs {
		fmt.Printf("%d) %s %s individuals=%d hypotheses=%d source=%s\n", i, run.RunID,
			time.Time(run.CreatedAt).Format(time.RFC3339), run.Individuals, run.Hypotheses, run.Source)
	}

	log.Println("Saw", len(runs), "runs")
}
