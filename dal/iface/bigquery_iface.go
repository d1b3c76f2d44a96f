//go:generate mockery --name Bigquery --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/doitintl/bq-audit/bqmodels"
	"github.com/doitintl/bq-audit/domain"
)

type Bigquery interface {
	GetJobs(ctx context.Context, bq *bigquery.Client, region domain.Region, days, limit int) ([]domain.JobRecord, error)
	GetInspectRows(ctx context.Context, bq *bigquery.Client, region domain.Region, days, limit int) ([]bqmodels.InspectRow, error)

	// GetDatasetLocation reports the dataset's location and whether the
	// dataset exists at all in the project.
	GetDatasetLocation(ctx context.Context, bq *bigquery.Client, project, dataset string) (string, bool, error)

	GetTableBasic(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.TableBasicRow, error)
	GetTableStorage(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.TableStorageRow, error)
	GetPartitions(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.PartitionRow, error)
	GetColumnCount(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) (int64, error)
	GetClustering(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.ClusteringRow, error)
	GetTableOptions(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.TableOptionRow, error)
	GetColumnsDetailed(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.ColumnDetailRow, error)
	GetColumnFieldPaths(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.ColumnFieldPathRow, error)
	GetViewDefinition(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.ViewRow, error)
	GetMaterializedViewInfo(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.MaterializedViewRow, error)
	GetTableMetadata(ctx context.Context, bq *bigquery.Client, ref domain.TableReference) (*bigquery.TableMetadata, error)

	GetDatasetTableCount(ctx context.Context, bq *bigquery.Client, project, dataset, location string) (int64, error)
	GetDatasetStorageTotals(ctx context.Context, bq *bigquery.Client, project, dataset, location string) (bqmodels.DatasetStorageTotalsRow, error)
	GetDatasetAPITotals(ctx context.Context, bq *bigquery.Client, project, dataset string) (int64, int64, error)
}
