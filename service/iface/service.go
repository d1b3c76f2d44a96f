//go:generate mockery --name AuditService --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"github.com/doitintl/bq-audit/domain"
)

type AuditService interface {
	RunAudit(ctx context.Context, params domain.AuditParams) (*domain.AuditSummary, error)
	AnalyzeQuery(ctx context.Context, params domain.AnalyzeParams) (*domain.AnalysisResult, error)
	InspectJobs(ctx context.Context, params domain.InspectParams) (*domain.InspectResult, error)
}
