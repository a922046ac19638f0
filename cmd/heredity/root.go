package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/carbocation/heredity"
	"github.com/carbocation/pfx"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string
	flagCfg := heredity.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "heredity data.csv",
		Short: "Exact gene and trait posteriors for a pedigree",
		Long: `heredity reads a pedigree (name, mother, father, trait) and prints the
posterior probability that each person carries 0, 1 or 2 copies of the
gene and shows the trait, by summing over every hypothesis consistent
with the observed traits.

The pedigree may be a local file, a ~/ path or gs://bucket/object, and
may be gzip (.gz) or zstd (.zst) compressed.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &heredity.UsageError{Message: fmt.Sprintf("%s (%v)", cmd.UseLine(), err)}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := heredity.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = heredity.LoadConfig(configPath); err != nil {
					return pfx.Err(err)
				}
			}
			overrideFromFlags(cmd, &cfg, flagCfg)
			if err := cfg.Validate(); err != nil {
				return pfx.Err(err)
			}

			return run(cmd.Context(), cmd, args[0], cfg)
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &heredity.UsageError{Message: err.Error()}
	})

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML file with default settings")
	f.IntVar(&flagCfg.Workers, "workers", flagCfg.Workers, "Number of goroutines scoring hypotheses")
	f.IntVar(&flagCfg.MaxPopulation, "max-population", flagCfg.MaxPopulation, "Refuse pedigrees with more people than this")
	f.IntVar(&flagCfg.Decimals, "decimals", flagCfg.Decimals, "Decimal places to print")
	f.StringVar(&flagCfg.Format, "format", flagCfg.Format, "Report format: text or tsv")
	f.StringVar(&flagCfg.Database, "db", flagCfg.Database, "SQLite file in which to store the posteriors")
	f.BoolVar(&flagCfg.Verbose, "verbose", flagCfg.Verbose, "Log progress")

	return cmd
}

// overrideFromFlags copies into cfg only the flags that were set explicitly,
// so that values from a config file survive.
func overrideFromFlags(cmd *cobra.Command, cfg *heredity.Config, flagCfg heredity.Config) {
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = flagCfg.Workers
	}
	if flags.Changed("max-population") {
		cfg.MaxPopulation = flagCfg.MaxPopulation
	}
	if flags.Changed("decimals") {
		cfg.Decimals = flagCfg.Decimals
	}
	if flags.Changed("format") {
		cfg.Format = flagCfg.Format
	}
	if flags.Changed("db") {
		cfg.Database = flagCfg.Database
	}
	if flags.Changed("verbose") {
		cfg.Verbose = flagCfg.Verbose
	}
}

func run(ctx context.Context, cmd *cobra.Command, path string, cfg heredity.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	format, err := heredity.ParseReportFormat(cfg.Format)
	if err != nil {
		return pfx.Err(err)
	}

	model := heredity.DefaultModel()
	if err := model.Validate(); err != nil {
		return pfx.Err(err)
	}

	log.Infoln("Loading pedigree:", path)
	pop, err := heredity.Open(ctx, path)
	if err != nil {
		return pfx.Err(err)
	}
	log.Infoln("Loaded", pop.Len(), "people")

	post, err := heredity.Infer(ctx, pop, model, cfg.Options())
	if errors.Is(err, heredity.ErrPopulationTooLarge) {
		return pfx.Err(fmt.Errorf("%w; raise --max-population (at most %d) to run anyway", err, heredity.MaxIndividuals))
	} else if err != nil {
		return pfx.Err(err)
	}

	log.Infoln("Scored", heredity.Count(pop), "hypotheses")

	if err := heredity.WriteReportAs(cmd.OutOrStdout(), post, cfg.Decimals, format); err != nil {
		return pfx.Err(err)
	}

	if cfg.Database == "" {
		return nil
	}

	dbPath, err := heredity.ExpandHome(cfg.Database)
	if err != nil {
		return pfx.Err(err)
	}

	store, err := heredity.OpenResultStore(dbPath)
	if err != nil {
		return pfx.Err(err)
	}
	defer store.Close()

	runID, err := store.SaveRun(path, post)
	if err != nil {
		return pfx.Err(err)
	}
	log.WithFields(log.Fields{"run": runID, "db": cfg.Database, "driver": heredity.WhichSQLiteDriver()}).Info("Saved posteriors")

	return nil
}
