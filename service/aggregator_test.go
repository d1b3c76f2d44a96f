package service

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/doitintl/bq-audit/bqmodels"
	dalMocks "github.com/doitintl/bq-audit/dal/mocks"
	"github.com/doitintl/bq-audit/domain"
	"github.com/doitintl/bq-audit/logger"
	loggerMocks "github.com/doitintl/bq-audit/logger/mocks"
)

// mockHappyFacets wires every table facet to a small successful result.
func mockHappyFacets(m *dalMocks.Bigquery) {
	m.On("GetTableBasic", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.TableBasicRow{
			{TableType: bigquery.NullString{StringVal: "BASE TABLE", Valid: true}},
		}, nil).Maybe()
	m.On("GetTableStorage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.TableStorageRow{}, nil).Maybe()
	m.On("GetPartitions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.PartitionRow{}, nil).Maybe()
	m.On("GetColumnCount", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(3), nil).Maybe()
	m.On("GetClustering", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.ClusteringRow{}, nil).Maybe()
	m.On("GetTableOptions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.TableOptionRow{}, nil).Maybe()
	m.On("GetColumnsDetailed", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.ColumnDetailRow{}, nil).Maybe()
	m.On("GetColumnFieldPaths", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.ColumnFieldPathRow{}, nil).Maybe()
	m.On("GetViewDefinition", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.ViewRow{}, nil).Maybe()
	m.On("GetMaterializedViewInfo", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.MaterializedViewRow{}, nil).Maybe()
	m.On("GetTableMetadata", mock.Anything, mock.Anything, mock.Anything).
		Return(&bigquery.TableMetadata{NumRows: 5, NumBytes: 100}, nil).Maybe()
}

func mockHappyDatasetTotals(m *dalMocks.Bigquery) {
	m.On("GetDatasetTableCount", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(2), nil).Maybe()
	m.On("GetDatasetStorageTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(bqmodels.DatasetStorageTotalsRow{}, nil).Maybe()
	m.On("GetDatasetAPITotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(2), int64(100), nil).Maybe()
}

func newAggregatorForTest(t *testing.T, dal *dalMocks.Bigquery) *Aggregator {
	return NewAggregator(
		func(ctx context.Context) logger.ILogger { return loggerMocks.NewILogger(t) },
		dal,
	)
}

func TestAggregateSkipsMissingDataset(t *testing.T) {
	ctx := context.Background()
	bq := &bigquery.Client{}

	dal := dalMocks.NewBigquery(t)
	mockHappyFacets(dal)
	mockHappyDatasetTotals(dal)

	dal.On("GetDatasetLocation", mock.Anything, mock.Anything, "proj", "ds1").
		Return("US", true, nil).Once()
	dal.On("GetDatasetLocation", mock.Anything, mock.Anything, "proj", "ds2").
		Return("", false, nil).Once()
	dal.On("GetDatasetLocation", mock.Anything, mock.Anything, "proj", "ds3").
		Return("US", true, nil).Once()

	refs := []domain.TableReference{
		{Project: "proj", Dataset: "ds1", Table: "t1"},
		{Project: "proj", Dataset: "ds2", Table: "t2"},
		{Project: "proj", Dataset: "ds3", Table: "t3"},
	}

	a := newAggregatorForTest(t, dal)

	sections, resolved, notes := a.Aggregate(ctx, bq, refs, "proj")

	assert.Equal(t, []string{"Skipping table: Dataset proj.ds2 not found in current project."}, notes)
	assert.Equal(t, []domain.TableReference{
		{Project: "proj", Dataset: "ds1", Table: "t1"},
		{Project: "proj", Dataset: "ds3", Table: "t3"},
	}, resolved)

	// Each surviving table yields its section plus two dataset sections,
	// in input order.
	assert.Len(t, sections, 6)
	assert.Equal(t, "Table: proj.ds1.t1", sections[0].Lines[0])
	assert.Equal(t, "Dataset: proj.ds1", sections[1].Lines[0])
	assert.Contains(t, sections[2].Lines[0], "Dataset API totals:")
	assert.Equal(t, "Table: proj.ds3.t3", sections[3].Lines[0])
	assert.Equal(t, "Dataset: proj.ds3", sections[4].Lines[0])
}

func TestAggregateSkipsExternalProject(t *testing.T) {
	ctx := context.Background()
	bq := &bigquery.Client{}

	dal := dalMocks.NewBigquery(t)

	a := newAggregatorForTest(t, dal)

	refs := []domain.TableReference{
		{Project: "other", Dataset: "ds", Table: "t"},
	}

	sections, resolved, notes := a.Aggregate(ctx, bq, refs, "proj")

	assert.Empty(t, sections)
	assert.Empty(t, resolved)
	assert.Equal(t, []string{"Skipping external table: other.ds.t"}, notes)
}

func TestAggregateFacetFailureIsolation(t *testing.T) {
	ctx := context.Background()
	bq := &bigquery.Client{}

	dal := dalMocks.NewBigquery(t)
	mockHappyDatasetTotals(dal)

	dal.On("GetDatasetLocation", mock.Anything, mock.Anything, "proj", "ds").
		Return("EU", true, nil).Once()

	// Storage facet fails; everything else still renders.
	dal.On("GetTableBasic", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.TableBasicRow{}, nil).Once()
	dal.On("GetTableStorage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("boom")).Once()
	dal.On("GetPartitions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.PartitionRow{}, nil).Once()
	dal.On("GetColumnCount", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(3), nil).Once()
	dal.On("GetClustering", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.ClusteringRow{}, nil).Once()
	dal.On("GetTableOptions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.TableOptionRow{}, nil).Once()
	dal.On("GetColumnsDetailed", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.ColumnDetailRow{}, nil).Once()
	dal.On("GetColumnFieldPaths", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.ColumnFieldPathRow{}, nil).Once()
	dal.On("GetViewDefinition", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.ViewRow{}, nil).Once()
	dal.On("GetMaterializedViewInfo", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]bqmodels.MaterializedViewRow{}, nil).Once()
	dal.On("GetTableMetadata", mock.Anything, mock.Anything, mock.Anything).
		Return(&bigquery.TableMetadata{}, nil).Once()

	a := newAggregatorForTest(t, dal)

	refs := []domain.TableReference{{Project: "proj", Dataset: "ds", Table: "t"}}

	sections, resolved, notes := a.Aggregate(ctx, bq, refs, "proj")

	assert.Equal(t, []string{"Error TABLE_STORAGE for proj.ds.t: boom"}, notes)
	assert.Len(t, resolved, 1)

	assert.GreaterOrEqual(t, len(sections), 1)
	text := sections[0].Text()
	assert.Contains(t, text, "Table: proj.ds.t")
	assert.Contains(t, text, "  columns: 3")
	assert.Contains(t, text, "  clustering: none")
	assert.NotContains(t, text, "physical_bytes")
}

func TestAggregateDatasetTotalsOncePerDataset(t *testing.T) {
	ctx := context.Background()
	bq := &bigquery.Client{}

	dal := dalMocks.NewBigquery(t)
	mockHappyFacets(dal)

	dal.On("GetDatasetLocation", mock.Anything, mock.Anything, "proj", "ds").
		Return("US", true, nil).Once()
	dal.On("GetDatasetTableCount", mock.Anything, mock.Anything, "proj", "ds", "US").
		Return(int64(2), nil).Once()
	dal.On("GetDatasetStorageTotals", mock.Anything, mock.Anything, "proj", "ds", "US").
		Return(bqmodels.DatasetStorageTotalsRow{
			TotalLogicalBytes:  bigquery.NullInt64{Int64: 10, Valid: true},
			TotalPhysicalBytes: bigquery.NullInt64{Int64: 20, Valid: true},
		}, nil).Once()
	dal.On("GetDatasetAPITotals", mock.Anything, mock.Anything, "proj", "ds").
		Return(int64(2), int64(30), nil).Once()

	refs := []domain.TableReference{
		{Project: "proj", Dataset: "ds", Table: "t1"},
		{Project: "proj", Dataset: "ds", Table: "t2"},
	}

	a := newAggregatorForTest(t, dal)

	sections, resolved, notes := a.Aggregate(ctx, bq, refs, "proj")

	assert.Empty(t, notes)
	assert.Len(t, resolved, 2)

	// Table 1 carries the dataset sections; table 2 only its own.
	assert.Len(t, sections, 4)
	assert.Equal(t, "Table: proj.ds.t1", sections[0].Lines[0])
	assert.Equal(t, "Dataset: proj.ds", sections[1].Lines[0])
	assert.Equal(t, "Dataset API totals: tables=2, sum_num_bytes=30", sections[2].Lines[0])
	assert.Equal(t, "Table: proj.ds.t2", sections[3].Lines[0])
}
