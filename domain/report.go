package domain

import "strings"

// SchemaReportSection is the rendered text block for one resolved table
// reference, assembled from the facets that could be fetched. Sections
// keep the order their references were extracted in.
type SchemaReportSection struct {
	Ref   TableReference
	Lines []string
}

func (s SchemaReportSection) Text() string {
	return strings.Join(s.Lines, "\n")
}

// AuditParams bounds one job-history audit run.
type AuditParams struct {
	Project    string
	Regions    []Region
	WindowDays int
	Limit      int
	TopN       int
	OutFile    string
}

// AuditSummary is the result of one audit run. Per-region fetch failures
// surface here as warnings, never as the run's error.
type AuditSummary struct {
	Project       string
	TotalJobs     int
	JobsPerRegion map[Region]int
	Top           []JobRecord
	CSVPath       string
	Warnings      []string
}

// AnalyzeParams bounds one SQL table-reference analysis.
type AnalyzeParams struct {
	Project    string
	SQL        string
	ReportPath string
}

// AnalysisResult lists the references that were resolved and fetched,
// the written report location, and every note collected on the way.
type AnalysisResult struct {
	Tables     []TableReference
	ReportPath string
	Notes      []string
}

// InspectParams bounds one compact job-inspection run over a single
// region's job history.
type InspectParams struct {
	Project    string
	Region     Region
	WindowDays int
	Limit      int
	OutFile    string
}

// InspectResult points at the written inspection dump.
type InspectResult struct {
	ReportPath string
	Rows       int
	Preview    string
}
