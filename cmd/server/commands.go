package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/BigBug273/daily-vocab/internal/importer"
	"github.com/BigBug273/daily-vocab/internal/platform/sqlstore"
	"github.com/BigBug273/daily-vocab/internal/store"
	"github.com/spf13/cobra"
)

// Migration actions accepted by the migrate command.
const (
	migrateUp      = "up"
	migrateDown    = "down"
	migrateStatus  = "status"
	migrateVersion = "version"
	migrateReset   = "reset"
)

type rootOptions struct {
	configDirs []string
}

// newRootCmd builds the command tree. Running the root command without a
// subcommand starts the server.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "daily-vocab",
		Short:         "Daily vocabulary practice API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	root.PersistentFlags().StringSliceVar(&opts.configDirs, "config-dir", nil,
		"directories searched for config.yaml (default . and ./config)")

	root.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newImportWordsCmd(opts),
	)
	return root
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()

	cfg, log, err := loadAppConfig(opts.configDirs)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return err
	}

	return app.Run(ctx)
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|version|reset]",
		Short:     "Manage the database schema",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{migrateUp, migrateDown, migrateStatus, migrateVersion, migrateReset},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := migrateUp
			if len(args) == 1 {
				action = args[0]
			}

			ctx := cmd.Context()
			cfg, log, err := loadAppConfig(opts.configDirs)
			if err != nil {
				return err
			}

			// auto_migrate must not run before an explicit down or reset.
			dbCfg := cfg.Database
			dbCfg.AutoMigrate = false

			db, err := setupAppDatabase(ctx, dbCfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			m, err := sqlstore.NewMigrator(db, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch action {
			case migrateUp:
				return m.Up(ctx)
			case migrateDown:
				return m.Down(ctx)
			case migrateReset:
				return m.Reset(ctx)
			case migrateVersion:
				v, err := m.Version(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "version %d\n", v)
				return err
			case migrateStatus:
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}
				return printMigrationStatus(out, statuses)
			default:
				return fmt.Errorf("unknown migrate action %q", action)
			}
		},
	}
}

func printMigrationStatus(out io.Writer, statuses []sqlstore.MigrationStatus) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tNAME\tAPPLIED AT")
	for _, s := range statuses {
		appliedAt := "pending"
		if s.Applied {
			appliedAt = s.AppliedAt
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, s.Name, appliedAt)
	}
	return tw.Flush()
}

func newImportWordsCmd(opts *rootOptions) *cobra.Command {
	importOpts := importer.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "import-words <file.csv|file.xlsx>",
		Short: "Load vocabulary words from a CSV or XLSX file",
		Long: "Load vocabulary words from a CSV or XLSX file with the columns\n" +
			"word, difficulty_level. Words already stored are skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, log, err := loadAppConfig(opts.configDirs)
			if err != nil {
				return err
			}

			db, err := setupAppDatabase(ctx, cfg.Database, log)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			words := sqlstore.NewWordStore(db, log)
			imp, err := importer.New(store.NewTransactor(db), words, log)
			if err != nil {
				return err
			}

			result, err := imp.ImportFile(ctx, args[0], importOpts)
			if err != nil {
				return err
			}
			if err := printImportResult(cmd.OutOrStdout(), result); err != nil {
				return err
			}

			total, err := words.Count(ctx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "catalog holds %d words\n", total)
			return err
		},
	}

	cmd.Flags().StringVar(&importOpts.Sheet, "sheet", "", "XLSX sheet to read (default first sheet)")
	cmd.Flags().IntVar(&importOpts.StartRow, "start-row", importer.DefaultStartRow, "first 1-based row holding data")
	return cmd
}

func printImportResult(out io.Writer, result *importer.Result) error {
	if _, err := fmt.Fprintf(out, "processed %d, inserted %d, skipped %d, errors %d\n",
		result.Processed, result.Inserted, result.Skipped, len(result.Errors)); err != nil {
		return err
	}
	for _, rowErr := range result.Errors {
		if _, err := fmt.Fprintln(out, "  "+rowErr.Error()); err != nil {
			return err
		}
	}
	return nil
}
