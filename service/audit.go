package service

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/doitintl/bq-audit/bqutils"
	"github.com/doitintl/bq-audit/dal"
	dalIface "github.com/doitintl/bq-audit/dal/iface"
	"github.com/doitintl/bq-audit/domain"
	"github.com/doitintl/bq-audit/framework/connection"
	"github.com/doitintl/bq-audit/logger"
)

// AuditService is the facade the CLI and HTTP surfaces call. It wires the
// collector, ranker, extractor, aggregator, inspector, and report writers
// together.
type AuditService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	collector      *Collector
	aggregator     *Aggregator
	inspector      *Inspector
	reporter       *Reporter
}

func NewAuditService(loggerProvider logger.Provider, conn *connection.Connection) *AuditService {
	bqDAL := dal.NewBigquery(loggerProvider, &bqutils.QueryHandler{})

	return newAuditService(loggerProvider, conn, bqDAL)
}

func newAuditService(loggerProvider logger.Provider, conn *connection.Connection, bqDAL dalIface.Bigquery) *AuditService {
	return &AuditService{
		loggerProvider: loggerProvider,
		conn:           conn,
		collector:      NewCollector(loggerProvider, bqDAL),
		aggregator:     NewAggregator(loggerProvider, bqDAL),
		inspector:      NewInspector(loggerProvider, bqDAL),
		reporter:       NewReporter(),
	}
}

// RunAudit collects job history across the requested regions, ranks it,
// and writes the CSV export. Per-region failures surface as summary
// warnings, never as the run's error.
func (s *AuditService) RunAudit(ctx context.Context, params domain.AuditParams) (*domain.AuditSummary, error) {
	if params.Project == "" {
		return nil, domain.ErrMissingProject
	}

	bq := s.conn.Bigquery(ctx)

	records, perRegion, warnings := s.collector.Collect(ctx, bq, params.Regions, params.WindowDays, params.Limit)

	if err := s.reporter.WriteJobsCSV(params.OutFile, records); err != nil {
		return nil, err
	}

	csvPath := params.OutFile
	if abs, err := filepath.Abs(csvPath); err == nil {
		csvPath = abs
	}

	return &domain.AuditSummary{
		Project:       params.Project,
		TotalJobs:     len(records),
		JobsPerRegion: perRegion,
		Top:           TopNMostExpensive(records, params.TopN),
		CSVPath:       csvPath,
		Warnings:      warnings,
	}, nil
}

// AnalyzeQuery extracts the tables a SQL statement references, enriches
// them with catalog metadata, and writes the schema report.
func (s *AuditService) AnalyzeQuery(ctx context.Context, params domain.AnalyzeParams) (*domain.AnalysisResult, error) {
	if params.Project == "" {
		return nil, domain.ErrMissingProject
	}

	if strings.TrimSpace(params.SQL) == "" {
		return nil, domain.ErrEmptySQL
	}

	refs := ExtractTableReferences(params.SQL, params.Project)

	bq := s.conn.Bigquery(ctx)

	sections, resolved, notes := s.aggregator.Aggregate(ctx, bq, refs, params.Project)

	if err := s.reporter.WriteSchemaReport(params.ReportPath, params.Project, sections, notes); err != nil {
		return nil, err
	}

	reportPath := params.ReportPath
	if abs, err := filepath.Abs(reportPath); err == nil {
		reportPath = abs
	}

	resultNotes := notes
	if len(refs) == 0 && len(notes) == 0 {
		resultNotes = []string{"No tables extracted; check SQL."}
	}

	return &domain.AnalysisResult{
		Tables:     resolved,
		ReportPath: reportPath,
		Notes:      resultNotes,
	}, nil
}

// InspectJobs writes the compact flattened job dump for one region.
func (s *AuditService) InspectJobs(ctx context.Context, params domain.InspectParams) (*domain.InspectResult, error) {
	if params.Project == "" {
		return nil, domain.ErrMissingProject
	}

	return s.inspector.InspectJobs(ctx, s.conn.Bigquery(ctx), params)
}
