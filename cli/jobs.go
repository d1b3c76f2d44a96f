package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doitintl/bq-audit/cli/config"
	"github.com/doitintl/bq-audit/domain"
)

func newJobsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Dump a compact flattened inspection of recent jobs in one region",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags(), map[string]interface{}{
				"days":    3,
				"limit":   200,
				"outfile": "analysis_out/all_job_inspector.txt",
			})
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd.Context(), cfg.Timeout)
			defer cancel()

			return runJobs(ctx, cmd, cfg)
		},
	}

	cmd.Flags().String("project", "", "GCP project whose job history to inspect")
	cmd.Flags().String("region", "US", "BigQuery location to inspect (US or EU)")
	cmd.Flags().Int("days", 3, "days of job history to scan")
	cmd.Flags().Int("limit", 200, "maximum jobs to fetch")
	cmd.Flags().String("outfile", "analysis_out/all_job_inspector.txt", "inspection output path")

	return cmd
}

func runJobs(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	region, err := domain.ParseRegion(cfg.Region)
	if err != nil {
		return err
	}

	svc, err := engineFactory(ctx, cfg.Project)
	if err != nil {
		return err
	}

	result, err := svc.InspectJobs(ctx, domain.InspectParams{
		Project:    cfg.Project,
		Region:     region,
		WindowDays: cfg.Days,
		Limit:      cfg.Limit,
		OutFile:    cfg.OutFile,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if result.Preview != "" {
		fmt.Fprintln(out, result.Preview)
	}

	fmt.Fprintf(out, "\nWrote job inspection (%d rows) to: %s\n", result.Rows, result.ReportPath)

	return nil
}
