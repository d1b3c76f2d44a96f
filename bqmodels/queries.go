package bqmodels

import (
	"strings"

	"github.com/doitintl/bq-audit/domain"
)

type QueryName string

const (
	Jobs        QueryName = "jobs"
	InspectJobs QueryName = "inspectJobs"

	// table facets
	TablesBasic      QueryName = "tablesBasic"
	TableStorage     QueryName = "tableStorage"
	Partitions       QueryName = "partitions"
	ColumnCount      QueryName = "columnCount"
	Clustering       QueryName = "clustering"
	TableOptions     QueryName = "tableOptions"
	ColumnsDetailed  QueryName = "columnsDetailed"
	ColumnFieldPaths QueryName = "columnFieldPaths"
	ViewDefinition   QueryName = "viewDefinition"
	MaterializedView QueryName = "materializedView"

	// dataset facets
	DatasetTableCount    QueryName = "datasetTableCount"
	DatasetStorageTotals QueryName = "datasetStorageTotals"
)

// Facet labels the metadata category a note refers to. Values match the
// INFORMATION_SCHEMA views the facet reads, which is what report readers
// grep for.
type Facet string

const (
	FacetTables           Facet = "TABLES"
	FacetTableStorage     Facet = "TABLE_STORAGE"
	FacetPartitions       Facet = "PARTITIONS"
	FacetColumns          Facet = "COLUMNS"
	FacetTableOptions     Facet = "TABLE_OPTIONS"
	FacetColumnsDetailed  Facet = "detailed COLUMNS"
	FacetColumnFieldPaths Facet = "COLUMN_FIELD_PATHS"
	FacetViews            Facet = "VIEWS"
	FacetMaterializedView Facet = "MATERIALIZED_VIEWS"
	FacetAPIDetails       Facet = "API details"
	FacetDatasetTotals    Facet = "dataset totals"
	FacetDatasetAPITotals Facet = "dataset API totals"
)

// JobsQuery reads one region's job history, newest first. The region picks
// the view name from a closed enumeration; the numeric bounds are bound as
// query parameters, never interpolated.
const JobsQuery = `
SELECT
  job_id,
  user_email,
  creation_time,
  end_time,
  total_bytes_processed,
  total_bytes_billed,
  total_slot_ms,
  statement_type,
  query
FROM {jobsView}
WHERE job_type = "QUERY"
  AND creation_time >= TIMESTAMP_SUB(CURRENT_TIMESTAMP(), INTERVAL @days DAY)
ORDER BY creation_time DESC
LIMIT @limit`

// InspectJobsQuery is the compact flattened projection used by the job
// inspector: one row per (job, stage, timeline entry, referenced table)
// combination, kept narrow to bound the output size.
const InspectJobsQuery = `
SELECT
  j.job_id,
  j.user_email,
  j.creation_time,
  j.total_bytes_billed,
  j.total_slot_ms,
  j.statement_type,
  j.query,
  stage.name AS stage_name,
  stage.slot_ms AS stage_slot_ms,
  stage.records_read AS stage_records_read,
  stage.records_written AS stage_records_written,
  timeline_entry.elapsed_ms AS t_elapsed_ms,
  timeline_entry.total_slot_ms AS t_total_slot_ms,
  timeline_entry.pending_units AS t_pending_units,
  timeline_entry.completed_units AS t_completed_units,
  timeline_entry.active_units AS t_active_units,
  ref_table.project_id AS ref_project,
  ref_table.dataset_id AS ref_dataset,
  ref_table.table_id AS ref_table
FROM {jobsInspectView} AS j
LEFT JOIN UNNEST(j.job_stages) AS stage
LEFT JOIN UNNEST(j.timeline) AS timeline_entry
LEFT JOIN UNNEST(j.referenced_tables) AS ref_table
WHERE j.creation_time >= TIMESTAMP_SUB(CURRENT_TIMESTAMP(), INTERVAL @days DAY)
  AND j.job_type = "QUERY"
ORDER BY j.creation_time DESC
LIMIT @limit`

// Table facet queries run with the target dataset as the query's default
// dataset and the table name bound as @table, so table identifiers are
// never spliced into SQL.
const TablesBasicQuery = `
SELECT table_type, creation_time
FROM ` + "`INFORMATION_SCHEMA.TABLES`" + `
WHERE table_name = @table`

const TableStorageQuery = `
SELECT total_physical_bytes, total_logical_bytes
FROM ` + "`INFORMATION_SCHEMA.TABLE_STORAGE`" + `
WHERE table_name = @table`

const PartitionsQuery = `
SELECT partition_id, total_logical_bytes, last_modified_time
FROM ` + "`INFORMATION_SCHEMA.PARTITIONS`" + `
WHERE table_name = @table`

const ColumnCountQuery = `
SELECT COUNT(1) AS col_count
FROM ` + "`INFORMATION_SCHEMA.COLUMNS`" + `
WHERE table_name = @table`

const ClusteringQuery = `
SELECT clustering_ordinal_position, column_name
FROM ` + "`INFORMATION_SCHEMA.COLUMNS`" + `
WHERE table_name = @table AND clustering_ordinal_position IS NOT NULL
ORDER BY clustering_ordinal_position`

const TableOptionsQuery = `
SELECT option_name, option_type, option_value
FROM ` + "`INFORMATION_SCHEMA.TABLE_OPTIONS`" + `
WHERE table_name = @table
ORDER BY option_name`

const ColumnsDetailedQuery = `
SELECT ordinal_position, column_name, data_type, is_nullable, is_hidden, is_generated, is_system_defined
FROM ` + "`INFORMATION_SCHEMA.COLUMNS`" + `
WHERE table_name = @table
ORDER BY ordinal_position`

const ColumnFieldPathsQuery = `
SELECT field_path, data_type
FROM ` + "`INFORMATION_SCHEMA.COLUMN_FIELD_PATHS`" + `
WHERE table_name = @table
ORDER BY field_path`

const ViewDefinitionQuery = `
SELECT view_definition
FROM ` + "`INFORMATION_SCHEMA.VIEWS`" + `
WHERE table_name = @table`

const MaterializedViewQuery = `
SELECT last_refresh_time, refresh_watermark
FROM ` + "`INFORMATION_SCHEMA.MATERIALIZED_VIEWS`" + `
WHERE table_name = @table`

const DatasetTableCountQuery = `
SELECT COUNT(*) AS table_count
FROM ` + "`INFORMATION_SCHEMA.TABLES`"

const DatasetStorageTotalsQuery = `
SELECT SUM(total_logical_bytes) AS total_logical_bytes,
       SUM(total_physical_bytes) AS total_physical_bytes
FROM ` + "`INFORMATION_SCHEMA.TABLE_STORAGE`"

// GetJobsQuery resolves the job-history query for one region.
func GetJobsQuery(region domain.Region) string {
	replacer := strings.NewReplacer("{jobsView}", jobsViewForRegion(region))
	return replacer.Replace(JobsQuery)
}

// GetInspectJobsQuery resolves the inspector projection for one region.
func GetInspectJobsQuery(region domain.Region) string {
	replacer := strings.NewReplacer("{jobsInspectView}", jobsInspectViewForRegion(region))
	return replacer.Replace(InspectJobsQuery)
}

func jobsViewForRegion(region domain.Region) string {
	return "`region-" + strings.ToLower(region.String()) + "`.INFORMATION_SCHEMA.JOBS_BY_PROJECT"
}

func jobsInspectViewForRegion(region domain.Region) string {
	return "`region-" + strings.ToLower(region.String()) + "`.INFORMATION_SCHEMA.JOBS"
}
