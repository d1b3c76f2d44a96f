package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/doitintl/bq-audit/domain"
)

func TestExtractTableReferences(t *testing.T) {
	tests := []struct {
		name           string
		sql            string
		defaultProject string
		want           []domain.TableReference
	}{
		{
			name:           "backtick-wrapped triple",
			sql:            "SELECT * FROM `proj.ds.sales`",
			defaultProject: "proj",
			want: []domain.TableReference{
				{Project: "proj", Dataset: "ds", Table: "sales"},
			},
		},
		{
			name:           "per-part backticks",
			sql:            "SELECT * FROM `proj`.`ds`.`sales`",
			defaultProject: "proj",
			want: []domain.TableReference{
				{Project: "proj", Dataset: "ds", Table: "sales"},
			},
		},
		{
			name:           "bare fully qualified with hyphenated project",
			sql:            "SELECT 1 FROM my-proj.ds.events",
			defaultProject: "other",
			want: []domain.TableReference{
				{Project: "my-proj", Dataset: "ds", Table: "events"},
			},
		},
		{
			name:           "dataset.table resolves to default project",
			sql:            "SELECT 1 FROM orders.items",
			defaultProject: "proj",
			want: []domain.TableReference{
				{Project: "proj", Dataset: "orders", Table: "items"},
			},
		},
		{
			name:           "mixed styles do not double count",
			sql:            "SELECT * FROM `proj.ds.sales` JOIN orders.items ON TRUE",
			defaultProject: "proj",
			want: []domain.TableReference{
				{Project: "proj", Dataset: "ds", Table: "sales"},
				{Project: "proj", Dataset: "orders", Table: "items"},
			},
		},
		{
			name:           "duplicate references deduplicated in first-match order",
			sql:            "SELECT 1 FROM proj.ds.t JOIN proj.ds.t ON TRUE JOIN ds.t ON TRUE",
			defaultProject: "proj",
			want: []domain.TableReference{
				{Project: "proj", Dataset: "ds", Table: "t"},
			},
		},
		{
			name:           "partition decorator tables",
			sql:            "SELECT * FROM ds.events$20240101",
			defaultProject: "proj",
			want: []domain.TableReference{
				{Project: "proj", Dataset: "ds", Table: "events$20240101"},
			},
		},
		{
			name:           "no references",
			sql:            "SELECT 1",
			defaultProject: "proj",
			want:           nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTableReferences(tt.sql, tt.defaultProject)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractTableReferences() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractTableReferencesIdempotent(t *testing.T) {
	sql := "SELECT * FROM `proj.ds.sales` JOIN other-proj.raw.clicks ON TRUE JOIN orders.items ON TRUE"

	first := ExtractTableReferences(sql, "proj")
	second := ExtractTableReferences(sql, "proj")

	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}
