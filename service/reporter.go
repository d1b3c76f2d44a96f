package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/doitintl/bq-audit/domain"
	"github.com/doitintl/bq-audit/times"
)

// csvColumns is the fixed job export header. Order is part of the file
// format contract.
var csvColumns = []string{
	"location",
	"job_id",
	"user_email",
	"creation_time",
	"end_time",
	"total_bytes_processed",
	"total_bytes_billed",
	"total_slot_ms",
	"statement_type",
	"query",
}

// Reporter writes the audit artifacts: the CSV job export and the
// structured schema report.
type Reporter struct {
	timeNow func() time.Time
}

func NewReporter() *Reporter {
	return &Reporter{timeNow: time.Now}
}

// WriteJobsCSV writes all records to path, overwriting any existing file.
// The header row is always written, even for an empty record set.
func (r *Reporter) WriteJobsCSV(path string, jobs []domain.JobRecord) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating job export %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(csvColumns); err != nil {
		return err
	}

	for _, j := range jobs {
		record := []string{
			j.Location,
			j.JobID,
			j.UserEmail,
			j.CreationTime,
			j.EndTime,
			strconv.FormatInt(j.TotalBytesProcessed, 10),
			strconv.FormatInt(j.TotalBytesBilled, 10),
			strconv.FormatInt(j.TotalSlotMS, 10),
			j.StatementType,
			j.Query,
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// WriteSchemaReport writes the schema metadata report: a fenced key-value
// header, the section bodies joined by blank lines, and a Notes section
// that is omitted entirely when there are no notes.
func (r *Reporter) WriteSchemaReport(path, project string, sections []domain.SchemaReportSection, notes []string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	header := []string{
		"---",
		"format: bq_schema_report",
		"version: 1",
		fmt.Sprintf("project: %s", project),
		fmt.Sprintf("generated_utc: %s", times.FormatReportTimestamp(r.timeNow())),
		"---",
		"",
		"# BigQuery Schema Metadata",
	}

	body := "No metadata found."

	if len(sections) > 0 {
		texts := make([]string, 0, len(sections))
		for _, s := range sections {
			texts = append(texts, s.Text())
		}

		body = strings.Join(texts, "\n\n")
	}

	var sb strings.Builder

	sb.WriteString(strings.Join(header, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(body)

	if len(notes) > 0 {
		sb.WriteString("\n\n## Notes\n")
		sb.WriteString(strings.Join(notes, "\n"))
	}

	sb.WriteString("\n")

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// RenderTopJobs renders the top-N summary table for console output.
func RenderTopJobs(jobs []domain.JobRecord) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Location", "Job ID", "User", "Bytes Billed", "Slot ms", "Type"})

	for i, j := range jobs {
		t.AppendRow(table.Row{i + 1, j.Location, j.JobID, j.UserEmail, j.TotalBytesBilled, j.TotalSlotMS, j.StatementType})
	}

	return t.Render()
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	return os.MkdirAll(dir, 0o755)
}
