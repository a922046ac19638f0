package heredity

import (
	"fmt"
	"strings"
	"time"

	"github.com/carbocation/pfx"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// WhichSQLiteDriver names the database/sql driver used by ResultStore, which
// depends on whether the binary was built with cgo.
func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}

const resultSchema = `
CREATE TABLE IF NOT EXISTS Run (
	run_id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	individuals INTEGER NOT NULL,
	hypotheses INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS Posterior (
	run_id TEXT NOT NULL REFERENCES Run(run_id) ON DELETE CASCADE,
	person TEXT NOT NULL,
	field TEXT NOT NULL,
	value TEXT NOT NULL,
	probability REAL NOT NULL,
	PRIMARY KEY (run_id, person, field, value)
);
`

// ResultStore keeps normalized posteriors from finished runs in a SQLite
// database. Nothing is written while a run is in progress.
type ResultStore struct {
	DB *sqlx.DB
}

// RunRecord conforms to the rows of the "Run" table and can be parsed with
// sqlx.
type RunRecord struct {
	RunID       string `db:"run_id"`
	Source      string
	CreatedAt   Time `db:"created_at"`
	Individuals int
	Hypotheses  int64
}

// PosteriorRecord conforms to the rows of the "Posterior" table. Field is
// "gene" or "trait"; Value is "0", "1" or "2" for genes and "true" or "false"
// for traits.
type PosteriorRecord struct {
	RunID       string `db:"run_id"`
	Person      string
	Field       string
	Value       string
	Probability float64
}

// OpenResultStore opens (creating if needed) the results database at path.
func OpenResultStore(path string) (*ResultStore, error) {
	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html . It seems that sqlite3 permitted
	// URI filenames without the file: prefix, but that is not standard.
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect(whichSQLiteDriver, path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(driverPragmas); err != nil {
		db.Close()
		return nil, pfx.Err(fmt.Errorf("unable to set pragmas: %w", err))
	}
	if _, err := db.Exec(resultSchema); err != nil {
		db.Close()
		return nil, pfx.Err(fmt.Errorf("unable to create schema: %w", err))
	}

	return &ResultStore{DB: db}, nil
}

func (s *ResultStore) Close() error {
	return s.DB.Close()
}

// SaveRun stores a normalized posterior under a new run identifier, which it
// returns. source describes where the pedigree came from.
func (s *ResultStore) SaveRun(source string, post *Posterior) (string, error) {
	if !post.Normalized() {
		return "", pfx.Err(fmt.Errorf("only normalized posteriors can be saved"))
	}

	run := RunRecord{
		RunID:       uuid.New().String(),
		Source:      source,
		CreatedAt:   Time(time.Now()),
		Individuals: post.pop.Len(),
		Hypotheses:  int64(Count(post.pop)),
	}

	tx, err := s.DB.Beginx()
	if err != nil {
		return "", pfx.Err(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO Run (run_id, source, created_at, individuals, hypotheses) VALUES (?, ?, ?, ?, ?)`,
		run.RunID, run.Source, time.Time(run.CreatedAt).Unix(), run.Individuals, run.Hypotheses); err != nil {
		return "", pfx.Err(err)
	}

	for _, rec := range posteriorRecords(run.RunID, post) {
		if _, err := tx.NamedExec(`INSERT INTO Posterior (run_id, person, field, value, probability) VALUES (:run_id, :person, :field, :value, :probability)`, rec); err != nil {
			return "", pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", pfx.Err(err)
	}

	return run.RunID, nil
}

func posteriorRecords(runID string, post *Posterior) []PosteriorRecord {
	out := make([]PosteriorRecord, 0, 5*post.pop.Len())
	for i, p := range post.pop.people {
		d := post.dist[i]
		for _, g := range GeneCounts {
			out = append(out, PosteriorRecord{RunID: runID, Person: p.ID, Field: "gene", Value: g.String(), Probability: d.GeneProbability(g)})
		}
		out = append(out,
			PosteriorRecord{RunID: runID, Person: p.ID, Field: "trait", Value: "true", Probability: d.TraitProbability(true)},
			PosteriorRecord{RunID: runID, Person: p.ID, Field: "trait", Value: "false", Probability: d.TraitProbability(false)},
		)
	}
	return out
}

// Runs lists every stored run, oldest first.
func (s *ResultStore) Runs() ([]RunRecord, error) {
	var runs []RunRecord
	if err := s.DB.Select(&runs, "SELECT * FROM Run ORDER BY created_at ASC, run_id ASC"); err != nil {
		return nil, pfx.Err(err)
	}
	return runs, nil
}

// Posteriors returns the stored probabilities of one run.
func (s *ResultStore) Posteriors(runID string) ([]PosteriorRecord, error) {
	var recs []PosteriorRecord
	if err := s.DB.Select(&recs, "SELECT * FROM Posterior WHERE run_id = ? ORDER BY person ASC, field ASC, value ASC", runID); err != nil {
		return nil, pfx.Err(err)
	}
	return recs, nil
}
