// Package cli provides the bq-audit command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/doitintl/bq-audit/framework/connection"
	"github.com/doitintl/bq-audit/logger"
	"github.com/doitintl/bq-audit/service"
	serviceIface "github.com/doitintl/bq-audit/service/iface"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var cfgFile string

// engineFactory builds the audit service for a target project. Tests
// replace it to run commands against a mock service.
var engineFactory = func(ctx context.Context, project string) (serviceIface.AuditService, error) {
	logging, err := logger.NewLogging(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not initialize logging: %w", err)
	}

	conn, err := connection.NewConnection(ctx, logging, project)
	if err != nil {
		return nil, fmt.Errorf("could not initialize bigquery connection: %w", err)
	}

	return service.NewAuditService(logger.FromContext, conn), nil
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bq-audit",
		Short:         "BigQuery workload audit and table-reference extraction engine",
		Long: `bq-audit exports recent BigQuery job history across locations, ranks jobs
by cost, extracts the tables a SQL statement references, and enriches them
with catalog metadata into a schema report.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./bq-audit.yaml)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "overall run timeout (0 means none)")

	rootCmd.AddCommand(newAuditCommand())
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newJobsCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// commandContext derives the run context, bounded by --timeout when set.
func commandContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(parent, timeout)
	}

	return context.WithCancel(parent)
}
