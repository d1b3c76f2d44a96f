package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	dalMocks "github.com/doitintl/bq-audit/dal/mocks"
	"github.com/doitintl/bq-audit/domain"
	"github.com/doitintl/bq-audit/framework/connection"
	"github.com/doitintl/bq-audit/logger"
	loggerMocks "github.com/doitintl/bq-audit/logger/mocks"
)

// testServiceContext returns a context carrying a bigquery client override
// so no real connection is needed.
func testServiceContext() context.Context {
	return context.WithValue(context.Background(), connection.CtxBigqueryKey, &bigquery.Client{})
}

func newServiceForTest(t *testing.T, dal *dalMocks.Bigquery, log logger.ILogger) *AuditService {
	conn := &connection.Connection{BigQueryClient: &connection.BigQueryClient{}}

	return newAuditService(
		func(ctx context.Context) logger.ILogger { return log },
		conn,
		dal,
	)
}

func TestAuditServiceRunAudit(t *testing.T) {
	ctx := testServiceContext()
	outFile := filepath.Join(t.TempDir(), "jobs.csv")

	dal := dalMocks.NewBigquery(t)
	dal.On("GetJobs", mock.Anything, mock.Anything, domain.RegionUS, 90, 1000).
		Return([]domain.JobRecord{
			{Location: "US", JobID: "small", TotalBytesBilled: 1},
			{Location: "US", JobID: "huge", TotalBytesBilled: 999},
		}, nil).Once()

	s := newServiceForTest(t, dal, loggerMocks.NewILogger(t))

	got, err := s.RunAudit(ctx, domain.AuditParams{
		Project:    "proj",
		Regions:    []domain.Region{domain.RegionUS},
		WindowDays: 90,
		Limit:      1000,
		TopN:       1,
		OutFile:    outFile,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalJobs)
	assert.Equal(t, map[domain.Region]int{domain.RegionUS: 2}, got.JobsPerRegion)
	require.Len(t, got.Top, 1)
	assert.Equal(t, "huge", got.Top[0].JobID)
	assert.Empty(t, got.Warnings)

	_, err = os.Stat(outFile)
	assert.NoError(t, err)
}

func TestAuditServiceRunAuditRequiresProject(t *testing.T) {
	s := newServiceForTest(t, dalMocks.NewBigquery(t), loggerMocks.NewILogger(t))

	_, err := s.RunAudit(testServiceContext(), domain.AuditParams{})

	assert.ErrorIs(t, err, domain.ErrMissingProject)
}

func TestAuditServiceAnalyzeQuery(t *testing.T) {
	ctx := testServiceContext()
	reportPath := filepath.Join(t.TempDir(), "out", "schema_report.md")

	dal := dalMocks.NewBigquery(t)
	mockHappyFacets(dal)
	mockHappyDatasetTotals(dal)
	dal.On("GetDatasetLocation", mock.Anything, mock.Anything, "proj", "ds").
		Return("US", true, nil).Once()

	s := newServiceForTest(t, dal, loggerMocks.NewILogger(t))

	got, err := s.AnalyzeQuery(ctx, domain.AnalyzeParams{
		Project:    "proj",
		SQL:        "SELECT * FROM `proj.ds.sales`",
		ReportPath: reportPath,
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.TableReference{{Project: "proj", Dataset: "ds", Table: "sales"}}, got.Tables)
	assert.Empty(t, got.Notes)

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Table: proj.ds.sales")
	assert.Contains(t, string(content), "format: bq_schema_report")
}

func TestAuditServiceAnalyzeQueryValidation(t *testing.T) {
	s := newServiceForTest(t, dalMocks.NewBigquery(t), loggerMocks.NewILogger(t))

	_, err := s.AnalyzeQuery(testServiceContext(), domain.AnalyzeParams{SQL: "SELECT 1"})
	assert.ErrorIs(t, err, domain.ErrMissingProject)

	_, err = s.AnalyzeQuery(testServiceContext(), domain.AnalyzeParams{Project: "proj", SQL: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptySQL)
}

func TestAuditServiceAnalyzeQueryNoTables(t *testing.T) {
	ctx := testServiceContext()
	reportPath := filepath.Join(t.TempDir(), "schema_report.md")

	s := newServiceForTest(t, dalMocks.NewBigquery(t), loggerMocks.NewILogger(t))

	got, err := s.AnalyzeQuery(ctx, domain.AnalyzeParams{
		Project:    "proj",
		SQL:        "SELECT 1",
		ReportPath: reportPath,
	})

	require.NoError(t, err)
	assert.Empty(t, got.Tables)
	assert.Equal(t, []string{"No tables extracted; check SQL."}, got.Notes)

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "No metadata found.")
}
