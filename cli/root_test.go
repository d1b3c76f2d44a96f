package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doitintl/bq-audit/domain"
	serviceIface "github.com/doitintl/bq-audit/service/iface"
	serviceMocks "github.com/doitintl/bq-audit/service/mocks"
)

func stubEngine(t *testing.T, svc serviceIface.AuditService) {
	t.Helper()

	orig := engineFactory
	engineFactory = func(ctx context.Context, project string) (serviceIface.AuditService, error) {
		return svc, nil
	}

	t.Cleanup(func() { engineFactory = orig })
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestAuditCommand(t *testing.T) {
	svc := serviceMocks.NewAuditService(t)
	svc.On("RunAudit", mock.Anything, domain.AuditParams{
		Project:    "proj",
		Regions:    []domain.Region{domain.RegionUS, domain.RegionEU},
		WindowDays: 90,
		Limit:      1000,
		TopN:       5,
		OutFile:    "bq_job_stats.csv",
	}).Return(&domain.AuditSummary{
		Project:   "proj",
		TotalJobs: 3,
		Top: []domain.JobRecord{
			{Location: "US", JobID: "huge", UserEmail: "a@b.c", TotalBytesBilled: 999},
		},
		CSVPath:  "/tmp/bq_job_stats.csv",
		Warnings: []string{"failed fetching jobs from EU: quota exceeded"},
	}, nil).Once()

	stubEngine(t, svc)

	out, errOut, err := runCommand(t, "audit", "--project", "proj")

	require.NoError(t, err)
	assert.Contains(t, errOut, "Warning: failed fetching jobs from EU: quota exceeded")
	assert.Contains(t, out, "Most expensive query in the window:")
	assert.Contains(t, out, "  Job ID:   huge")
	assert.Contains(t, out, "Top 1 most expensive queries:")
	assert.Contains(t, out, "Wrote job CSV to: /tmp/bq_job_stats.csv")
}

func TestAuditCommandNoJobs(t *testing.T) {
	svc := serviceMocks.NewAuditService(t)
	svc.On("RunAudit", mock.Anything, mock.AnythingOfType("domain.AuditParams")).
		Return(&domain.AuditSummary{Project: "proj", CSVPath: "/tmp/out.csv"}, nil).Once()

	stubEngine(t, svc)

	out, _, err := runCommand(t, "audit", "--project", "proj")

	require.NoError(t, err)
	assert.Contains(t, out, "No jobs found in the specified window/locations.")
}

func TestAuditCommandRequiresProject(t *testing.T) {
	_, _, err := runCommand(t, "audit")

	assert.ErrorContains(t, err, "invalid configuration")
}

func TestAuditCommandRejectsBadLocation(t *testing.T) {
	_, _, err := runCommand(t, "audit", "--project", "proj", "--locations", "asia-east1")

	assert.ErrorIs(t, err, domain.ErrUnsupportedRegion)
}

func TestJobsCommandDefaults(t *testing.T) {
	svc := serviceMocks.NewAuditService(t)
	svc.On("InspectJobs", mock.Anything, domain.InspectParams{
		Project:    "proj",
		Region:     domain.RegionUS,
		WindowDays: 3,
		Limit:      200,
		OutFile:    "analysis_out/all_job_inspector.txt",
	}).Return(&domain.InspectResult{
		ReportPath: "/tmp/all_job_inspector.txt",
		Rows:       12,
		Preview:    "job_id=j1",
	}, nil).Once()

	stubEngine(t, svc)

	out, _, err := runCommand(t, "jobs", "--project", "proj")

	require.NoError(t, err)
	assert.Contains(t, out, "job_id=j1")
	assert.Contains(t, out, "Wrote job inspection (12 rows) to: /tmp/all_job_inspector.txt")
}

func TestAnalyzeCommand(t *testing.T) {
	svc := serviceMocks.NewAuditService(t)
	svc.On("AnalyzeQuery", mock.Anything, domain.AnalyzeParams{
		Project:    "proj",
		SQL:        "SELECT * FROM `proj.ds.t`",
		ReportPath: "analysis_out/schema_report.md",
	}).Return(&domain.AnalysisResult{
		Tables:     []domain.TableReference{{Project: "proj", Dataset: "ds", Table: "t"}},
		ReportPath: "/tmp/schema_report.md",
		Notes:      []string{"Skipping external table: other.ds.t"},
	}, nil).Once()

	stubEngine(t, svc)

	out, _, err := runCommand(t, "analyze", "--project", "proj", "--sql", "SELECT * FROM `proj.ds.t`")

	require.NoError(t, err)
	assert.Contains(t, out, "Extracted 1 table reference(s):")
	assert.Contains(t, out, "  proj.ds.t")
	assert.Contains(t, out, "Note: Skipping external table: other.ds.t")
	assert.Contains(t, out, "Wrote schema report to: /tmp/schema_report.md")
}

func TestAnalyzeCommandSQLInput(t *testing.T) {
	stubEngine(t, serviceMocks.NewAuditService(t))

	t.Run("neither sql nor sql-file", func(t *testing.T) {
		_, _, err := runCommand(t, "analyze", "--project", "proj")
		assert.ErrorIs(t, err, errSQLInput)
	})

	t.Run("both sql and sql-file", func(t *testing.T) {
		_, _, err := runCommand(t, "analyze", "--project", "proj", "--sql", "SELECT 1", "--sql-file", "q.sql")
		assert.ErrorIs(t, err, errSQLInput)
	})
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "bq-audit "+Version)
}
