package dal

import (
	"context"
	"net/http"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"

	"github.com/doitintl/bq-audit/bqmodels"
	"github.com/doitintl/bq-audit/bqutils"
	doitBQIface "github.com/doitintl/bq-audit/bqutils/iface"
	"github.com/doitintl/bq-audit/domain"
	"github.com/doitintl/bq-audit/logger"
)

const bqAuditJobPrefix = "bq_audit"

var queryLabels = map[string]string{
	"app": "bq-audit",
}

type BigqueryDAL struct {
	loggerProvider logger.Provider
	queryHandler   doitBQIface.QueryHandler
}

func NewBigquery(
	loggerProvider logger.Provider,
	queryHandler doitBQIface.QueryHandler,
) *BigqueryDAL {
	return &BigqueryDAL{
		loggerProvider: loggerProvider,
		queryHandler:   queryHandler,
	}
}

// GetJobs reads one region's recent query jobs from the regional
// INFORMATION_SCHEMA.JOBS_BY_PROJECT view, newest first.
func (d *BigqueryDAL) GetJobs(ctx context.Context, bq *bigquery.Client, region domain.Region, days, limit int) ([]domain.JobRecord, error) {
	query := bq.Query(bqmodels.GetJobsQuery(region))
	query.Location = region.String()
	query.Parameters = []bigquery.QueryParameter{
		{Name: "days", Value: int64(days)},
		{Name: "limit", Value: int64(limit)},
	}
	query.JobIDConfig = bigquery.JobIDConfig{
		JobID:          bqAuditJobPrefix + "_jobs",
		AddJobIDSuffix: true,
	}
	query.Labels = queryLabels

	iter, err := d.queryHandler.Read(ctx, query)
	if err != nil {
		return nil, err
	}

	rows, err := bqutils.LoadRows[bqmodels.JobsRow](iter)
	if err != nil {
		return nil, err
	}

	records := make([]domain.JobRecord, 0, len(rows))

	for _, row := range rows {
		records = append(records, row.ToRecord(region))
	}

	return records, nil
}

// GetInspectRows reads the flattened per-(job, stage, timeline, referenced
// table) projection from the regional INFORMATION_SCHEMA.JOBS view.
func (d *BigqueryDAL) GetInspectRows(ctx context.Context, bq *bigquery.Client, region domain.Region, days, limit int) ([]bqmodels.InspectRow, error) {
	query := bq.Query(bqmodels.GetInspectJobsQuery(region))
	query.Location = region.String()
	query.Parameters = []bigquery.QueryParameter{
		{Name: "days", Value: int64(days)},
		{Name: "limit", Value: int64(limit)},
	}
	query.JobIDConfig = bigquery.JobIDConfig{
		JobID:          bqAuditJobPrefix + "_inspect",
		AddJobIDSuffix: true,
	}
	query.Labels = queryLabels

	iter, err := d.queryHandler.Read(ctx, query)
	if err != nil {
		return nil, err
	}

	return bqutils.LoadRows[bqmodels.InspectRow](iter)
}

// GetDatasetLocation resolves the dataset's location so facet queries run
// in the right region. A missing dataset is not an error: the caller skips
// the table with a note.
func (d *BigqueryDAL) GetDatasetLocation(ctx context.Context, bq *bigquery.Client, project, dataset string) (string, bool, error) {
	md, err := bq.DatasetInProject(project, dataset).Metadata(ctx)
	if err != nil {
		if gapiErr, ok := err.(*googleapi.Error); ok && gapiErr.Code == http.StatusNotFound {
			return "", false, nil
		}

		return "", false, err
	}

	return md.Location, true, nil
}

func (d *BigqueryDAL) GetTableBasic(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.TableBasicRow, error) {
	iter, err := d.readTableFacet(ctx, bq, bqmodels.TablesBasicQuery, ref, location)
	if err != nil {
		return nil, err
	}

	return bqutils.LoadRows[bqmodels.TableBasicRow](iter)
}

func (d *BigqueryDAL) GetTableStorage(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.TableStorageRow, error) {
	iter, err := d.readTableFacet(ctx, bq, bqmodels.TableStorageQuery, ref, location)
	if err != nil {
		return nil, err
	}

	return bqutils.LoadRows[bqmodels.TableStorageRow](iter)
}

func (d *BigqueryDAL) GetPartitions(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.PartitionRow, error) {
	iter, err := d.readTableFacet(ctx, bq, bqmodels.PartitionsQuery, ref, location)
	if err != nil {
		return nil, err
	}

	return bqutils.LoadRows[bqmodels.PartitionRow](iter)
}

func (d *BigqueryDAL) GetColumnCount(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) (int64, error) {
	iter, err := d.readTableFacet(ctx, bq, bqmodels.ColumnCountQuery, ref, location)
	if err != nil {
		return 0, err
	}

	rows, err := bqutils.LoadRows[bqmodels.ColumnCountRow](iter)
	if err != nil {
		return 0, err
	}

	if len(rows) == 0 {
		return 0, nil
	}

	return bqmodels.NullableInt(rows[0].ColCount), nil
}

func (d *BigqueryDAL) GetClustering(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.ClusteringRow, error) {
	iter, err := d.readTableFacet(ctx, bq, bqmodels.ClusteringQuery, ref, location)
	if err != nil {
		return nil, err
	}

	return bqutils.LoadRows[bqmodels.ClusteringRow](iter)
}

func (d *BigqueryDAL) GetTableOptions(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.TableOptionRow, error) {
	iter, err := d.readTableFacet(ctx, bq, bqmodels.TableOptionsQuery, ref, location)
	if err != nil {
		return nil, err
	}

	return bqutils.LoadRows[bqmodels.TableOptionRow](iter)
}

func (d *BigqueryDAL) GetColumnsDetailed(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.ColumnDetailRow, error) {
	iter, err := d.readTableFacet(ctx, bq, bqmodels.ColumnsDetailedQuery, ref, location)
	if err != nil {
		return nil, err
	}

	return bqutils.LoadRows[bqmodels.ColumnDetailRow](iter)
}

func (d *BigqueryDAL) GetColumnFieldPaths(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.ColumnFieldPathRow, error) {
	iter, err := d.readTableFacet(ctx, bq, bqmodels.ColumnFieldPathsQuery, ref, location)
	if err != nil {
		return nil, err
	}

	return bqutils.LoadRows[bqmodels.ColumnFieldPathRow](iter)
}

func (d *BigqueryDAL) GetViewDefinition(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.ViewRow, error) {
	iter, err := d.readTableFacet(ctx, bq, bqmodels.ViewDefinitionQuery, ref, location)
	if err != nil {
		return nil, err
	}

	return bqutils.LoadRows[bqmodels.ViewRow](iter)
}

func (d *BigqueryDAL) GetMaterializedViewInfo(ctx context.Context, bq *bigquery.Client, ref domain.TableReference, location string) ([]bqmodels.MaterializedViewRow, error) {
	iter, err := d.readTableFacet(ctx, bq, bqmodels.MaterializedViewQuery, ref, location)
	if err != nil {
		return nil, err
	}

	return bqutils.LoadRows[bqmodels.MaterializedViewRow](iter)
}

// GetTableMetadata reads the table's API-side metadata (row/byte counts,
// partitioning, clustering, labels, encryption, snapshot definition).
func (d *BigqueryDAL) GetTableMetadata(ctx context.Context, bq *bigquery.Client, ref domain.TableReference) (*bigquery.TableMetadata, error) {
	return bq.DatasetInProject(ref.Project, ref.Dataset).Table(ref.Table).Metadata(ctx)
}

func (d *BigqueryDAL) GetDatasetTableCount(ctx context.Context, bq *bigquery.Client, project, dataset, location string) (int64, error) {
	iter, err := d.readDatasetFacet(ctx, bq, bqmodels.DatasetTableCountQuery, project, dataset, location)
	if err != nil {
		return 0, err
	}

	rows, err := bqutils.LoadRows[bqmodels.DatasetTableCountRow](iter)
	if err != nil {
		return 0, err
	}

	if len(rows) == 0 {
		return 0, nil
	}

	return bqmodels.NullableInt(rows[0].TableCount), nil
}

func (d *BigqueryDAL) GetDatasetStorageTotals(ctx context.Context, bq *bigquery.Client, project, dataset, location string) (bqmodels.DatasetStorageTotalsRow, error) {
	iter, err := d.readDatasetFacet(ctx, bq, bqmodels.DatasetStorageTotalsQuery, project, dataset, location)
	if err != nil {
		return bqmodels.DatasetStorageTotalsRow{}, err
	}

	rows, err := bqutils.LoadRows[bqmodels.DatasetStorageTotalsRow](iter)
	if err != nil {
		return bqmodels.DatasetStorageTotalsRow{}, err
	}

	if len(rows) == 0 {
		return bqmodels.DatasetStorageTotalsRow{}, nil
	}

	return rows[0], nil
}

// GetDatasetAPITotals sums table sizes through the table-listing API as a
// fallback signal when INFORMATION_SCHEMA storage views are unavailable.
// Tables whose metadata cannot be read are skipped.
func (d *BigqueryDAL) GetDatasetAPITotals(ctx context.Context, bq *bigquery.Client, project, dataset string) (int64, int64, error) {
	var (
		tableCount int64
		totalBytes int64
	)

	l := d.loggerProvider(ctx)

	tables := bq.DatasetInProject(project, dataset).Tables(ctx)

	for {
		table, err := tables.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return 0, 0, err
		}

		md, err := table.Metadata(ctx)
		if err != nil {
			l.Warningf("skipping table metadata for %s.%s.%s: %v", project, dataset, table.TableID, err)
			continue
		}

		totalBytes += md.NumBytes
		tableCount++
	}

	return tableCount, totalBytes, nil
}

// readTableFacet runs one facet query with the reference's dataset as the
// default dataset and the table name bound as @table.
func (d *BigqueryDAL) readTableFacet(ctx context.Context, bq *bigquery.Client, sql string, ref domain.TableReference, location string) (doitBQIface.RowIterator, error) {
	query := bq.Query(sql)
	query.DefaultProjectID = ref.Project
	query.DefaultDatasetID = ref.Dataset
	query.Location = location
	query.Parameters = []bigquery.QueryParameter{
		{Name: "table", Value: ref.Table},
	}
	query.JobIDConfig = bigquery.JobIDConfig{
		JobID:          bqAuditJobPrefix + "_facet",
		AddJobIDSuffix: true,
	}
	query.Labels = queryLabels

	return d.queryHandler.Read(ctx, query)
}

func (d *BigqueryDAL) readDatasetFacet(ctx context.Context, bq *bigquery.Client, sql, project, dataset, location string) (doitBQIface.RowIterator, error) {
	query := bq.Query(sql)
	query.DefaultProjectID = project
	query.DefaultDatasetID = dataset
	query.Location = location
	query.JobIDConfig = bigquery.JobIDConfig{
		JobID:          bqAuditJobPrefix + "_dataset",
		AddJobIDSuffix: true,
	}
	query.Labels = queryLabels

	return d.queryHandler.Read(ctx, query)
}
