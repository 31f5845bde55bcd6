package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"storefront/internal/app/config"
	"storefront/internal/app/pkg/logger"
)

var (
	configPath string
	logLevel   string
)

// rootCmd postal table and shipping quote maintenance
var rootCmd = &cobra.Command{
	Use:   "postalctl",
	Short: "Manage the postal reference table and price shipping quotes",
	Long: `postalctl works on the postal reference table used for shipping quotes.

Available subcommands:
  import - Copy a CSV or DBF postal file into PostgreSQL
  lookup - Print the reference point of a postal code
  quote  - Price a shipment with the configured formula`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "yaml config file (default: defaults + STOREFRONT_* env)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(quoteCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadConfig loads config and checks the shipping and postal sections
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateShipping(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger() (logger.Logger, error) {
	return logger.NewZapLogger(logLevel)
}
