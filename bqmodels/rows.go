package bqmodels

import (
	"cloud.google.com/go/bigquery"

	"github.com/doitintl/bq-audit/domain"
	"github.com/doitintl/bq-audit/times"
)

// JobsRow is one row of the job-history projection. Every column may be
// NULL in INFORMATION_SCHEMA, so the nullable wrappers are used throughout
// and normalized in ToRecord.
type JobsRow struct {
	JobID               bigquery.NullString    `bigquery:"job_id"`
	UserEmail           bigquery.NullString    `bigquery:"user_email"`
	CreationTime        bigquery.NullTimestamp `bigquery:"creation_time"`
	EndTime             bigquery.NullTimestamp `bigquery:"end_time"`
	TotalBytesProcessed bigquery.NullInt64     `bigquery:"total_bytes_processed"`
	TotalBytesBilled    bigquery.NullInt64     `bigquery:"total_bytes_billed"`
	TotalSlotMS         bigquery.NullInt64     `bigquery:"total_slot_ms"`
	StatementType       bigquery.NullString    `bigquery:"statement_type"`
	Query               bigquery.NullString    `bigquery:"query"`
}

// ToRecord normalizes a raw row into the domain record: absent numerics
// become 0, absent strings become "", timestamps render as RFC 3339 UTC.
func (r JobsRow) ToRecord(region domain.Region) domain.JobRecord {
	return domain.JobRecord{
		Location:            region.String(),
		JobID:               nullStr(r.JobID),
		UserEmail:           nullStr(r.UserEmail),
		CreationTime:        nullTime(r.CreationTime),
		EndTime:             nullTime(r.EndTime),
		TotalBytesProcessed: nullInt(r.TotalBytesProcessed),
		TotalBytesBilled:    nullInt(r.TotalBytesBilled),
		TotalSlotMS:         nullInt(r.TotalSlotMS),
		StatementType:       nullStr(r.StatementType),
		Query:               nullStr(r.Query),
	}
}

// InspectRow is the flattened per-(job, stage, timeline, referenced table)
// projection used by the job inspector.
type InspectRow struct {
	JobID            bigquery.NullString    `bigquery:"job_id"`
	UserEmail        bigquery.NullString    `bigquery:"user_email"`
	CreationTime     bigquery.NullTimestamp `bigquery:"creation_time"`
	TotalBytesBilled bigquery.NullInt64     `bigquery:"total_bytes_billed"`
	TotalSlotMS      bigquery.NullInt64     `bigquery:"total_slot_ms"`
	StatementType    bigquery.NullString    `bigquery:"statement_type"`
	Query            bigquery.NullString    `bigquery:"query"`

	StageName           bigquery.NullString `bigquery:"stage_name"`
	StageSlotMS         bigquery.NullInt64  `bigquery:"stage_slot_ms"`
	StageRecordsRead    bigquery.NullInt64  `bigquery:"stage_records_read"`
	StageRecordsWritten bigquery.NullInt64  `bigquery:"stage_records_written"`

	ElapsedMS      bigquery.NullInt64 `bigquery:"t_elapsed_ms"`
	TimelineSlotMS bigquery.NullInt64 `bigquery:"t_total_slot_ms"`
	PendingUnits   bigquery.NullInt64 `bigquery:"t_pending_units"`
	CompletedUnits bigquery.NullInt64 `bigquery:"t_completed_units"`
	ActiveUnits    bigquery.NullInt64 `bigquery:"t_active_units"`

	RefProject bigquery.NullString `bigquery:"ref_project"`
	RefDataset bigquery.NullString `bigquery:"ref_dataset"`
	RefTable   bigquery.NullString `bigquery:"ref_table"`
}

// TableBasicRow carries the type and creation time of one table.
type TableBasicRow struct {
	TableType    bigquery.NullString    `bigquery:"table_type"`
	CreationTime bigquery.NullTimestamp `bigquery:"creation_time"`
}

type TableStorageRow struct {
	TotalPhysicalBytes bigquery.NullInt64 `bigquery:"total_physical_bytes"`
	TotalLogicalBytes  bigquery.NullInt64 `bigquery:"total_logical_bytes"`
}

type PartitionRow struct {
	PartitionID       bigquery.NullString    `bigquery:"partition_id"`
	TotalLogicalBytes bigquery.NullInt64     `bigquery:"total_logical_bytes"`
	LastModifiedTime  bigquery.NullTimestamp `bigquery:"last_modified_time"`
}

type ColumnCountRow struct {
	ColCount bigquery.NullInt64 `bigquery:"col_count"`
}

type ClusteringRow struct {
	OrdinalPosition bigquery.NullInt64  `bigquery:"clustering_ordinal_position"`
	ColumnName      bigquery.NullString `bigquery:"column_name"`
}

type TableOptionRow struct {
	OptionName  bigquery.NullString `bigquery:"option_name"`
	OptionType  bigquery.NullString `bigquery:"option_type"`
	OptionValue bigquery.NullString `bigquery:"option_value"`
}

type ColumnDetailRow struct {
	OrdinalPosition bigquery.NullInt64  `bigquery:"ordinal_position"`
	ColumnName      bigquery.NullString `bigquery:"column_name"`
	DataType        bigquery.NullString `bigquery:"data_type"`
	IsNullable      bigquery.NullString `bigquery:"is_nullable"`
	IsHidden        bigquery.NullString `bigquery:"is_hidden"`
	IsGenerated     bigquery.NullString `bigquery:"is_generated"`
	IsSystemDefined bigquery.NullString `bigquery:"is_system_defined"`
}

type ColumnFieldPathRow struct {
	FieldPath bigquery.NullString `bigquery:"field_path"`
	DataType  bigquery.NullString `bigquery:"data_type"`
}

type ViewRow struct {
	ViewDefinition bigquery.NullString `bigquery:"view_definition"`
}

type MaterializedViewRow struct {
	LastRefreshTime  bigquery.NullTimestamp `bigquery:"last_refresh_time"`
	RefreshWatermark bigquery.NullTimestamp `bigquery:"refresh_watermark"`
}

type DatasetTableCountRow struct {
	TableCount bigquery.NullInt64 `bigquery:"table_count"`
}

type DatasetStorageTotalsRow struct {
	TotalLogicalBytes  bigquery.NullInt64 `bigquery:"total_logical_bytes"`
	TotalPhysicalBytes bigquery.NullInt64 `bigquery:"total_physical_bytes"`
}

func nullStr(v bigquery.NullString) string {
	if !v.Valid {
		return ""
	}

	return v.StringVal
}

func nullInt(v bigquery.NullInt64) int64 {
	if !v.Valid {
		return 0
	}

	return v.Int64
}

func nullTime(v bigquery.NullTimestamp) string {
	if !v.Valid {
		return ""
	}

	return times.FormatNullable(v.Timestamp)
}

// NullableString re-exports the string normalization for render code that
// works directly on raw rows.
func NullableString(v bigquery.NullString) string { return nullStr(v) }

// NullableInt re-exports the numeric normalization.
func NullableInt(v bigquery.NullInt64) int64 { return nullInt(v) }

// NullableTimestamp re-exports the timestamp normalization.
func NullableTimestamp(v bigquery.NullTimestamp) string { return nullTime(v) }
