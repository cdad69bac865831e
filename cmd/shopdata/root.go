package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"shopdata/internal/config"
	"shopdata/pkg/logger"
)

// app carries what every subcommand needs once the root pre-run has loaded it.
type app struct {
	cfg   *config.Config
	log   logger.Logger
	runID string
}

type rootFlags struct {
	dataDir    string
	seed       int64
	store      string
	sqlitePath string
	logLevel   string
}

// newRootCmd returns the command tree and the app its pre-run fills in.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	var flags rootFlags

	root := &cobra.Command{
		Use:           "shopdata",
		Short:         "Generate, load and report on a synthetic e-commerce dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, flags)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.dataDir, "data-dir", "", "directory holding the CSV record sets (DATA_DIR)")
	pf.Int64Var(&flags.seed, "seed", 0, "random seed, 0 for a random run (GEN_SEED)")
	pf.StringVar(&flags.store, "store", "", "load target: sqlite or postgres (STORE_TARGET)")
	pf.StringVar(&flags.sqlitePath, "sqlite-path", "", "SQLite database file (SQLITE_PATH)")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (LOG_LEVEL)")

	root.AddCommand(
		newSeedCmd(a),
		newGenerateCmd(a),
		newLoadCmd(a),
		newVerifyCmd(a),
		newReportCmd(a),
		newPublishCmd(a),
		newSetupCmd(a),
	)
	return root, a
}

// reportError sends a failed command's error to the app logger once the
// pre-run built one, and to w otherwise.
func (a *app) reportError(w io.Writer, err error) {
	if a.log == nil {
		fmt.Fprintln(w, "error:", err)
		return
	}
	a.log.Error("command failed", logger.Error(err))
	_ = a.log.Sync()
}

func (a *app) init(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("data-dir") {
		cfg.Data.Dir = flags.dataDir
	}
	if f.Changed("seed") {
		cfg.Generator.Seed = flags.seed
	}
	if f.Changed("store") {
		cfg.Store.Target = strings.ToLower(flags.store)
	}
	if f.Changed("sqlite-path") {
		cfg.Store.SQLitePath = flags.sqlitePath
	}
	if f.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.NewZapLogger(cfg.App.Env, cfg.Log.Level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.runID = uuid.NewString()
	a.log = log.WithFields(logger.String("command", cmd.Name()))
	cmd.SetContext(logger.ContextWithRunID(cmd.Context(), a.runID))
	return nil
}
