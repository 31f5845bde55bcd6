package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"storefront/internal/app/config"
	"storefront/internal/app/infra/postal"
)

var (
	importSource string
	importDSN    string
)

// importCmd loads a postal file into PostgreSQL
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Copy a CSV or DBF postal file into PostgreSQL",
	Long: `Read every postal point of a CSV or DBF file and upsert it into the
postal_codes table. Set postal.source=postgres afterwards to quote from it.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importSource, "source", postal.SourceCSV, "file format: csv or dbf")
	importCmd.Flags().StringVar(&importDSN, "dsn", "", "postgres DSN (default: postal.postgres_dsn)")
}

func runImport(cmd *cobra.Command, args []string) error {
	if importSource != postal.SourceCSV && importSource != postal.SourceDBF {
		return fmt.Errorf("--source must be csv or dbf, got %q", importSource)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	dsn := importDSN
	if dsn == "" {
		dsn = cfg.Postal.PostgresDSN
	}
	if dsn == "" {
		return fmt.Errorf("postgres DSN required: pass --dsn or set postal.postgres_dsn")
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := cmd.Context()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect postgres failed: %w", err)
	}
	defer pool.Close()

	repo, err := postal.NewRepository(ctx, pool)
	if err != nil {
		return err
	}

	res, err := postal.NewImporter(repo, log).Import(ctx, importSource, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "read %d postal codes, wrote %d\n", res.Read, res.Written)
	return nil
}
