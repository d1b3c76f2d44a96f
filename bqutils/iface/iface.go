package iface

import (
	"context"

	"cloud.google.com/go/bigquery"
)

// RowIterator abstracts *bigquery.RowIterator so row loading is mockable.
//
//go:generate mockery --name RowIterator --output ../mocks
type RowIterator interface {
	Next(dst interface{}) error
}

// QueryHandler issues a configured query and exposes its row iterator.
//
//go:generate mockery --name QueryHandler --output ../mocks
type QueryHandler interface {
	Read(ctx context.Context, query *bigquery.Query) (RowIterator, error)
}
