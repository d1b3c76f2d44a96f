package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/bigquery"

	"github.com/doitintl/bq-audit/bqmodels"
	dalIface "github.com/doitintl/bq-audit/dal/iface"
	"github.com/doitintl/bq-audit/domain"
	"github.com/doitintl/bq-audit/logger"
)

// Rendering caps keep the inspection dump bounded no matter how noisy the
// job history is.
const (
	inspectMaxRows      = 120
	inspectMaxQueryLen  = 400
	inspectMaxStringLen = 200
	inspectMaxChars     = 250_000
	inspectPreviewLines = 40
)

// Inspector renders a compact flattened dump of recent jobs: one line per
// (job, stage, timeline entry, referenced table) combination.
type Inspector struct {
	loggerProvider logger.Provider
	dal            dalIface.Bigquery
}

func NewInspector(loggerProvider logger.Provider, dal dalIface.Bigquery) *Inspector {
	return &Inspector{
		loggerProvider: loggerProvider,
		dal:            dal,
	}
}

func (i *Inspector) InspectJobs(ctx context.Context, bq *bigquery.Client, params domain.InspectParams) (*domain.InspectResult, error) {
	rows, err := i.dal.GetInspectRows(ctx, bq, params.Region, params.WindowDays, params.Limit)
	if err != nil {
		return nil, err
	}

	text := renderInspectRows(rows)

	if err := ensureParentDir(params.OutFile); err != nil {
		return nil, err
	}

	if err := os.WriteFile(params.OutFile, []byte(text), 0o644); err != nil {
		return nil, err
	}

	reportPath, err := filepath.Abs(params.OutFile)
	if err != nil {
		reportPath = params.OutFile
	}

	i.loggerProvider(ctx).Infof("wrote job inspection for %s (%d rows) to %s", params.Region, len(rows), reportPath)

	textLines := strings.Split(text, "\n")
	if len(textLines) > inspectPreviewLines {
		textLines = textLines[:inspectPreviewLines]
	}

	return &domain.InspectResult{
		ReportPath: reportPath,
		Rows:       len(rows),
		Preview:    strings.Join(textLines, "\n"),
	}, nil
}

// renderInspectRows formats rows as pipe-separated key=value lines with
// strict truncation: at most 120 rows, query text flattened and cut at 400
// chars, other strings cut at 200, and a 250k total character cap.
func renderInspectRows(rows []bqmodels.InspectRow) string {
	var (
		lines    []string
		totalLen int
		rendered int
	)

	for _, row := range rows {
		if rendered >= inspectMaxRows {
			break
		}

		line := renderInspectRow(row)

		if totalLen+len(line) > inspectMaxChars {
			lines = append(lines, "... (truncated for length) ...")
			break
		}

		lines = append(lines, line)
		totalLen += len(line)
		rendered++
	}

	if remaining := len(rows) - rendered; remaining > 0 {
		lines = append(lines, fmt.Sprintf("... and %d more rows", remaining))
	}

	return strings.Join(lines, "\n")
}

func renderInspectRow(row bqmodels.InspectRow) string {
	query := strings.ReplaceAll(bqmodels.NullableString(row.Query), "\n", " ")
	if len(query) > inspectMaxQueryLen {
		query = query[:inspectMaxQueryLen] + " ..."
	}

	parts := []string{
		"job_id=" + truncateInspectString(bqmodels.NullableString(row.JobID)),
		"user_email=" + truncateInspectString(bqmodels.NullableString(row.UserEmail)),
		"creation_time=" + bqmodels.NullableTimestamp(row.CreationTime),
		fmt.Sprintf("total_bytes_billed=%d", bqmodels.NullableInt(row.TotalBytesBilled)),
		fmt.Sprintf("total_slot_ms=%d", bqmodels.NullableInt(row.TotalSlotMS)),
		"statement_type=" + truncateInspectString(bqmodels.NullableString(row.StatementType)),
		"query=" + query,
		"stage_name=" + truncateInspectString(bqmodels.NullableString(row.StageName)),
		fmt.Sprintf("stage_slot_ms=%d", bqmodels.NullableInt(row.StageSlotMS)),
		fmt.Sprintf("stage_records_read=%d", bqmodels.NullableInt(row.StageRecordsRead)),
		fmt.Sprintf("stage_records_written=%d", bqmodels.NullableInt(row.StageRecordsWritten)),
		fmt.Sprintf("t_elapsed_ms=%d", bqmodels.NullableInt(row.ElapsedMS)),
		fmt.Sprintf("t_total_slot_ms=%d", bqmodels.NullableInt(row.TimelineSlotMS)),
		fmt.Sprintf("t_pending_units=%d", bqmodels.NullableInt(row.PendingUnits)),
		fmt.Sprintf("t_completed_units=%d", bqmodels.NullableInt(row.CompletedUnits)),
		fmt.Sprintf("t_active_units=%d", bqmodels.NullableInt(row.ActiveUnits)),
		"ref_project=" + truncateInspectString(bqmodels.NullableString(row.RefProject)),
		"ref_dataset=" + truncateInspectString(bqmodels.NullableString(row.RefDataset)),
		"ref_table=" + truncateInspectString(bqmodels.NullableString(row.RefTable)),
	}

	return strings.Join(parts, " | ")
}

func truncateInspectString(s string) string {
	if len(s) > inspectMaxStringLen {
		return s[:inspectMaxStringLen] + " ..."
	}

	return s
}
