package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/doitintl/bq-audit/domain"
	"github.com/doitintl/bq-audit/framework/connection"
	"github.com/doitintl/bq-audit/framework/web"
	"github.com/doitintl/bq-audit/logger"
	"github.com/doitintl/bq-audit/service"
	serviceIface "github.com/doitintl/bq-audit/service/iface"
)

const (
	defaultWindowDays  = 90
	defaultLocations   = "US,EU"
	defaultJobLimit    = 1000
	defaultTopN        = 5
	defaultJobsOutFile = "bq_job_stats.csv"
	defaultReportPath  = "analysis_out/schema_report.md"
)

type Audit struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	service        serviceIface.AuditService
}

func NewAudit(log logger.Provider, conn *connection.Connection) *Audit {
	svc := service.NewAuditService(log, conn)

	return &Audit{
		loggerProvider: log,
		conn:           conn,
		service:        svc,
	}
}

// AuditRequest is the POST /api/v1/audits payload. Zero-valued optional
// fields get the CLI defaults before validation.
type AuditRequest struct {
	Project   string `json:"project" validate:"required"`
	Days      int    `json:"days" validate:"min=1"`
	Locations string `json:"locations" validate:"required"`
	Limit     int    `json:"limit" validate:"min=1"`
	TopN      int    `json:"topn" validate:"min=1"`
	OutFile   string `json:"outfile" validate:"required"`
}

func (r *AuditRequest) applyDefaults() {
	if r.Days == 0 {
		r.Days = defaultWindowDays
	}

	if r.Locations == "" {
		r.Locations = defaultLocations
	}

	if r.Limit == 0 {
		r.Limit = defaultJobLimit
	}

	if r.TopN == 0 {
		r.TopN = defaultTopN
	}

	if r.OutFile == "" {
		r.OutFile = defaultJobsOutFile
	}
}

// AnalyzeRequest is the POST /api/v1/analyses payload.
type AnalyzeRequest struct {
	Project string `json:"project" validate:"required"`
	SQL     string `json:"sql" validate:"required"`
	Report  string `json:"report" validate:"required"`
}

func (r *AnalyzeRequest) applyDefaults() {
	if r.Report == "" {
		r.Report = defaultReportPath
	}
}

func (h *Audit) CreateAudit(ctx *gin.Context) error {
	var req AuditRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req.applyDefaults()

	if err := validator.New().Struct(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	regions, err := domain.ParseRegions(req.Locations)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	summary, err := h.service.RunAudit(ctx, domain.AuditParams{
		Project:    req.Project,
		Regions:    regions,
		WindowDays: req.Days,
		Limit:      req.Limit,
		TopN:       req.TopN,
		OutFile:    req.OutFile,
	})
	if err != nil {
		return web.NewRequestError(err, statusForServiceError(err))
	}

	h.loggerProvider(ctx).Infof("audit for %s completed with %d jobs", req.Project, summary.TotalJobs)

	return web.Respond(ctx, summary, http.StatusOK)
}

func (h *Audit) CreateAnalysis(ctx *gin.Context) error {
	var req AnalyzeRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req.applyDefaults()

	if err := validator.New().Struct(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	result, err := h.service.AnalyzeQuery(ctx, domain.AnalyzeParams{
		Project:    req.Project,
		SQL:        req.SQL,
		ReportPath: req.Report,
	})
	if err != nil {
		return web.NewRequestError(err, statusForServiceError(err))
	}

	h.loggerProvider(ctx).Infof("analysis for %s resolved %d tables", req.Project, len(result.Tables))

	return web.Respond(ctx, result, http.StatusOK)
}

func (h *Audit) Health(ctx *gin.Context) error {
	return web.Respond(ctx, map[string]string{"status": "ok"}, http.StatusOK)
}

// statusForServiceError keeps configuration mistakes out of the 5xx bucket.
func statusForServiceError(err error) int {
	if errors.Is(err, domain.ErrMissingProject) ||
		errors.Is(err, domain.ErrEmptySQL) ||
		errors.Is(err, domain.ErrUnsupportedRegion) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
