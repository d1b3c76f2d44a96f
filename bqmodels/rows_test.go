package bqmodels

import (
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"

	"github.com/doitintl/bq-audit/domain"
)

func TestJobsRowToRecord(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		row  JobsRow
		want domain.JobRecord
	}{
		{
			name: "fully populated row",
			row: JobsRow{
				JobID:               bigquery.NullString{StringVal: "job_1", Valid: true},
				UserEmail:           bigquery.NullString{StringVal: "a@b.c", Valid: true},
				CreationTime:        bigquery.NullTimestamp{Timestamp: created, Valid: true},
				EndTime:             bigquery.NullTimestamp{Timestamp: created.Add(time.Minute), Valid: true},
				TotalBytesProcessed: bigquery.NullInt64{Int64: 100, Valid: true},
				TotalBytesBilled:    bigquery.NullInt64{Int64: 200, Valid: true},
				TotalSlotMS:         bigquery.NullInt64{Int64: 300, Valid: true},
				StatementType:       bigquery.NullString{StringVal: "SELECT", Valid: true},
				Query:               bigquery.NullString{StringVal: "SELECT 1", Valid: true},
			},
			want: domain.JobRecord{
				Location:            "US",
				JobID:               "job_1",
				UserEmail:           "a@b.c",
				CreationTime:        "2024-05-01T12:30:00Z",
				EndTime:             "2024-05-01T12:31:00Z",
				TotalBytesProcessed: 100,
				TotalBytesBilled:    200,
				TotalSlotMS:         300,
				StatementType:       "SELECT",
				Query:               "SELECT 1",
			},
		},
		{
			name: "null columns normalize to zero values",
			row:  JobsRow{},
			want: domain.JobRecord{Location: "US"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.row.ToRecord(domain.RegionUS))
		})
	}
}

func TestGetJobsQuery(t *testing.T) {
	us := GetJobsQuery(domain.RegionUS)
	assert.Contains(t, us, "`region-us`.INFORMATION_SCHEMA.JOBS_BY_PROJECT")
	assert.Contains(t, us, "@days")
	assert.Contains(t, us, "@limit")

	eu := GetJobsQuery(domain.RegionEU)
	assert.Contains(t, eu, "`region-eu`.INFORMATION_SCHEMA.JOBS_BY_PROJECT")
}

func TestGetInspectJobsQuery(t *testing.T) {
	us := GetInspectJobsQuery(domain.RegionUS)
	assert.Contains(t, us, "`region-us`.INFORMATION_SCHEMA.JOBS")
	assert.NotContains(t, us, "{jobsInspectView}")
}
