package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doitintl/bq-audit/cli/config"
	"github.com/doitintl/bq-audit/domain"
	"github.com/doitintl/bq-audit/service"
)

func newAuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Export recent job history to CSV and rank jobs by cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags(), nil)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd.Context(), cfg.Timeout)
			defer cancel()

			return runAudit(ctx, cmd, cfg)
		},
	}

	cmd.Flags().String("project", "", "GCP project whose job history to audit")
	cmd.Flags().Int("days", 90, "days of job history to scan")
	cmd.Flags().String("locations", "US,EU", "comma-separated BigQuery locations")
	cmd.Flags().Int("limit", 1000, "maximum jobs to fetch per location")
	cmd.Flags().Int("topn", 5, "number of most expensive jobs to print")
	cmd.Flags().String("outfile", "bq_job_stats.csv", "CSV output path")

	return cmd
}

func runAudit(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	regions, err := domain.ParseRegions(cfg.Locations)
	if err != nil {
		return err
	}

	svc, err := engineFactory(ctx, cfg.Project)
	if err != nil {
		return err
	}

	summary, err := svc.RunAudit(ctx, domain.AuditParams{
		Project:    cfg.Project,
		Regions:    regions,
		WindowDays: cfg.Days,
		Limit:      cfg.Limit,
		TopN:       cfg.TopN,
		OutFile:    cfg.OutFile,
	})
	if err != nil {
		return err
	}

	printAuditSummary(cmd.OutOrStdout(), cmd.ErrOrStderr(), summary)

	return nil
}

func printAuditSummary(out, errOut io.Writer, summary *domain.AuditSummary) {
	for _, warning := range summary.Warnings {
		fmt.Fprintf(errOut, "Warning: %s\n", warning)
	}

	switch {
	case summary.TotalJobs == 0:
		fmt.Fprintln(out, "No jobs found in the specified window/locations.")
	case len(summary.Top) > 0:
		top := summary.Top[0]

		fmt.Fprintln(out, "Most expensive query in the window:")
		fmt.Fprintf(out, "  Location: %s\n", top.Location)
		fmt.Fprintf(out, "  Job ID:   %s\n", top.JobID)
		fmt.Fprintf(out, "  User:     %s\n", top.UserEmail)
		fmt.Fprintf(out, "  Created:  %s\n", top.CreationTime)
		fmt.Fprintf(out, "  Billed:   %d bytes\n", top.TotalBytesBilled)
		fmt.Fprintf(out, "  Processed: %d bytes\n", top.TotalBytesProcessed)
		fmt.Fprintf(out, "  Slot ms:  %d\n", top.TotalSlotMS)
		fmt.Fprintf(out, "  Type:     %s\n", top.StatementType)

		fmt.Fprintf(out, "\nTop %d most expensive queries:\n", len(summary.Top))
		fmt.Fprintln(out, service.RenderTopJobs(summary.Top))
	}

	fmt.Fprintf(out, "\nWrote job CSV to: %s\n", summary.CSVPath)
}
