package bqutils

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/doitintl/bq-audit/bqutils/iface"
)

// QueryHandler is the concrete iface.QueryHandler that defers to the
// client's own iterator.
type QueryHandler struct{}

func (h *QueryHandler) Read(ctx context.Context, query *bigquery.Query) (iface.RowIterator, error) {
	return query.Read(ctx)
}
