package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"

	"github.com/doitintl/bq-audit/bqmodels"
	dalIface "github.com/doitintl/bq-audit/dal/iface"
	"github.com/doitintl/bq-audit/domain"
	"github.com/doitintl/bq-audit/logger"
)

const (
	aggregatorWorkers = 4

	columnsDetailedCap = 100
	fieldPathsCap      = 200
	viewSnippetChars   = 1000
	viewSnippetLines   = 20
	partitionSample    = 3
)

// Aggregator enriches extracted table references with catalog metadata.
// Every facet is fetched independently: a failure becomes one report note
// and never stops the remaining facets or references.
type Aggregator struct {
	loggerProvider logger.Provider
	dal            dalIface.Bigquery
}

func NewAggregator(loggerProvider logger.Provider, dal dalIface.Bigquery) *Aggregator {
	return &Aggregator{
		loggerProvider: loggerProvider,
		dal:            dal,
	}
}

type datasetInfo struct {
	location string
	found    bool
}

type tableWork struct {
	index          int
	ref            domain.TableReference
	location       string
	firstOfDataset bool
}

type refResult struct {
	sections []domain.SchemaReportSection
	notes    []string
}

// Aggregate resolves each reference against homeProject, skips external
// and missing-dataset references with a note, and fetches catalog facets
// for the rest over a bounded worker pool. Sections, resolved references,
// and notes all keep input order regardless of completion order.
func (a *Aggregator) Aggregate(ctx context.Context, bq *bigquery.Client, refs []domain.TableReference, homeProject string) ([]domain.SchemaReportSection, []domain.TableReference, []string) {
	l := a.loggerProvider(ctx)

	results := make([]refResult, len(refs))
	resolvedByIndex := make([]*domain.TableReference, len(refs))
	datasets := make(map[string]datasetInfo)

	var work []tableWork

	for i, raw := range refs {
		ref := raw.Resolve(homeProject)

		if ref.Project != homeProject {
			results[i].notes = append(results[i].notes, fmt.Sprintf("Skipping external table: %s", ref))
			continue
		}

		key := ref.DatasetKey()

		info, ok := datasets[key]
		first := false

		if !ok {
			location, found, err := a.dal.GetDatasetLocation(ctx, bq, ref.Project, ref.Dataset)
			if err != nil {
				l.Warningf("dataset lookup for %s failed: %v", key, err)

				found = false
			}

			info = datasetInfo{location: location, found: found}
			datasets[key] = info
			first = found
		}

		if !info.found {
			results[i].notes = append(results[i].notes, fmt.Sprintf("Skipping table: Dataset %s not found in current project.", key))
			continue
		}

		resolved := ref
		resolvedByIndex[i] = &resolved

		work = append(work, tableWork{
			index:          i,
			ref:            ref,
			location:       info.location,
			firstOfDataset: first,
		})
	}

	jobs := make(chan tableWork)

	var wg sync.WaitGroup

	for w := 0; w < aggregatorWorkers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for item := range jobs {
				results[item.index] = a.processTable(ctx, bq, item)
			}
		}()
	}

	for _, item := range work {
		jobs <- item
	}

	close(jobs)
	wg.Wait()

	var (
		sections []domain.SchemaReportSection
		resolved []domain.TableReference
		notes    []string
	)

	for i := range refs {
		if resolvedByIndex[i] != nil {
			resolved = append(resolved, *resolvedByIndex[i])
		}

		sections = append(sections, results[i].sections...)
		notes = append(notes, results[i].notes...)
	}

	return sections, resolved, notes
}

// processTable builds the table's report section plus, for the first table
// of its dataset, the dataset totals sections.
func (a *Aggregator) processTable(ctx context.Context, bq *bigquery.Client, item tableWork) refResult {
	var out refResult

	ref := item.ref
	lines := []string{fmt.Sprintf("Table: %s", ref)}

	note := func(facet bqmodels.Facet, err error) {
		out.notes = append(out.notes, fmt.Sprintf("Error %s for %s: %s", facet, ref, errCause(err)))
	}

	if m := fetch(func() ([]bqmodels.TableBasicRow, error) {
		return a.dal.GetTableBasic(ctx, bq, ref, item.location)
	}); m.Err != nil {
		note(bqmodels.FacetTables, m.Err)
	} else if len(m.Value) > 0 {
		row := m.Value[0]
		if row.TableType.Valid {
			lines = append(lines, fmt.Sprintf("  table_type:     %s", row.TableType.StringVal))
		}

		lines = append(lines, fmt.Sprintf("  created:        %s", bqmodels.NullableTimestamp(row.CreationTime)))
	}

	if m := fetch(func() ([]bqmodels.TableStorageRow, error) {
		return a.dal.GetTableStorage(ctx, bq, ref, item.location)
	}); m.Err != nil {
		note(bqmodels.FacetTableStorage, m.Err)
	} else if len(m.Value) > 0 {
		row := m.Value[0]
		lines = append(lines, fmt.Sprintf("  physical_bytes: %d", bqmodels.NullableInt(row.TotalPhysicalBytes)))
		lines = append(lines, fmt.Sprintf("  logical_bytes:  %d", bqmodels.NullableInt(row.TotalLogicalBytes)))
	}

	if m := fetch(func() ([]bqmodels.PartitionRow, error) {
		return a.dal.GetPartitions(ctx, bq, ref, item.location)
	}); m.Err != nil {
		note(bqmodels.FacetPartitions, m.Err)
	} else if len(m.Value) > 0 {
		lines = append(lines, fmt.Sprintf("  partitions: %d (sample of first %d):", len(m.Value), partitionSample))

		for i, p := range m.Value {
			if i >= partitionSample {
				break
			}

			lines = append(lines, fmt.Sprintf("    partition_id=%s, total_logical_bytes=%d",
				bqmodels.NullableString(p.PartitionID), bqmodels.NullableInt(p.TotalLogicalBytes)))
		}
	} else {
		lines = append(lines, "  partitions: none")
	}

	// Column count and clustering both read the COLUMNS view: one facet,
	// at most one note.
	if m := fetch(func() (int64, error) {
		return a.dal.GetColumnCount(ctx, bq, ref, item.location)
	}); m.Err != nil {
		note(bqmodels.FacetColumns, m.Err)
	} else {
		lines = append(lines, fmt.Sprintf("  columns: %d", m.Value))

		if cm := fetch(func() ([]bqmodels.ClusteringRow, error) {
			return a.dal.GetClustering(ctx, bq, ref, item.location)
		}); cm.Err != nil {
			note(bqmodels.FacetColumns, cm.Err)
		} else if len(cm.Value) > 0 {
			names := make([]string, 0, len(cm.Value))
			for _, c := range cm.Value {
				names = append(names, bqmodels.NullableString(c.ColumnName))
			}

			lines = append(lines, fmt.Sprintf("  clustering: %s", strings.Join(names, ", ")))
		} else {
			lines = append(lines, "  clustering: none")
		}
	}

	if m := fetch(func() ([]bqmodels.TableOptionRow, error) {
		return a.dal.GetTableOptions(ctx, bq, ref, item.location)
	}); m.Err != nil {
		note(bqmodels.FacetTableOptions, m.Err)
	} else if len(m.Value) > 0 {
		lines = append(lines, "  options:")

		for _, o := range m.Value {
			lines = append(lines, fmt.Sprintf("    %s: %s",
				bqmodels.NullableString(o.OptionName), bqmodels.NullableString(o.OptionValue)))
		}
	}

	if m := fetch(func() ([]bqmodels.ColumnDetailRow, error) {
		return a.dal.GetColumnsDetailed(ctx, bq, ref, item.location)
	}); m.Err != nil {
		note(bqmodels.FacetColumnsDetailed, m.Err)
	} else if len(m.Value) > 0 {
		lines = append(lines, "  columns_detailed:")

		for i, c := range m.Value {
			if i >= columnsDetailedCap {
				lines = append(lines, fmt.Sprintf("    ... and %d more columns", len(m.Value)-columnsDetailedCap))
				break
			}

			lines = append(lines, fmt.Sprintf("    %d. %s: %s, nullable=%s, hidden=%s, generated=%s, system=%s",
				bqmodels.NullableInt(c.OrdinalPosition),
				bqmodels.NullableString(c.ColumnName),
				bqmodels.NullableString(c.DataType),
				bqmodels.NullableString(c.IsNullable),
				bqmodels.NullableString(c.IsHidden),
				bqmodels.NullableString(c.IsGenerated),
				bqmodels.NullableString(c.IsSystemDefined)))
		}
	}

	if m := fetch(func() ([]bqmodels.ColumnFieldPathRow, error) {
		return a.dal.GetColumnFieldPaths(ctx, bq, ref, item.location)
	}); m.Err != nil {
		note(bqmodels.FacetColumnFieldPaths, m.Err)
	} else if len(m.Value) > 0 {
		lines = append(lines, "  column_field_paths:")

		for i, p := range m.Value {
			if i >= fieldPathsCap {
				lines = append(lines, fmt.Sprintf("    ... and %d more field paths", len(m.Value)-fieldPathsCap))
				break
			}

			lines = append(lines, fmt.Sprintf("    %s: %s",
				bqmodels.NullableString(p.FieldPath), bqmodels.NullableString(p.DataType)))
		}
	}

	if m := fetch(func() ([]bqmodels.ViewRow, error) {
		return a.dal.GetViewDefinition(ctx, bq, ref, item.location)
	}); m.Err != nil {
		note(bqmodels.FacetViews, m.Err)
	} else if len(m.Value) > 0 {
		if defn := bqmodels.NullableString(m.Value[0].ViewDefinition); defn != "" {
			lines = append(lines, "  view:")
			lines = append(lines, "    view_definition_snippet:")

			if len(defn) > viewSnippetChars {
				defn = defn[:viewSnippetChars] + " ... (truncated)"
			}

			snippetLines := strings.Split(defn, "\n")
			for i, ln := range snippetLines {
				if i >= viewSnippetLines {
					break
				}

				lines = append(lines, "      "+ln)
			}
		}
	}

	if m := fetch(func() ([]bqmodels.MaterializedViewRow, error) {
		return a.dal.GetMaterializedViewInfo(ctx, bq, ref, item.location)
	}); m.Err != nil {
		note(bqmodels.FacetMaterializedView, m.Err)
	} else if len(m.Value) > 0 {
		mv := m.Value[0]
		lines = append(lines, "  materialized_view:")
		lines = append(lines, fmt.Sprintf("    last_refresh_time: %s", bqmodels.NullableTimestamp(mv.LastRefreshTime)))
		lines = append(lines, fmt.Sprintf("    refresh_watermark: %s", bqmodels.NullableTimestamp(mv.RefreshWatermark)))
	}

	if m := fetch(func() (*bigquery.TableMetadata, error) {
		return a.dal.GetTableMetadata(ctx, bq, ref)
	}); m.Err != nil {
		note(bqmodels.FacetAPIDetails, m.Err)
	} else {
		lines = append(lines, renderAPIDetails(m.Value)...)
	}

	out.sections = append(out.sections, domain.SchemaReportSection{Ref: ref, Lines: lines})

	if item.firstOfDataset {
		out.sections, out.notes = a.appendDatasetTotals(ctx, bq, item, out.sections, out.notes)
	}

	return out
}

// appendDatasetTotals adds the dataset-level sections fetched once per
// distinct (project, dataset) pair.
func (a *Aggregator) appendDatasetTotals(ctx context.Context, bq *bigquery.Client, item tableWork, sections []domain.SchemaReportSection, notes []string) ([]domain.SchemaReportSection, []string) {
	ref := item.ref
	key := ref.DatasetKey()

	noteFor := func(facet bqmodels.Facet, err error) {
		notes = append(notes, fmt.Sprintf("Error %s for %s: %s", facet, key, errCause(err)))
	}

	lines := []string{fmt.Sprintf("Dataset: %s", key)}

	if m := fetch(func() (int64, error) {
		return a.dal.GetDatasetTableCount(ctx, bq, ref.Project, ref.Dataset, item.location)
	}); m.Err != nil {
		noteFor(bqmodels.FacetDatasetTotals, m.Err)
	} else {
		lines = append(lines, fmt.Sprintf("  tables:        %d", m.Value))

		if sm := fetch(func() (bqmodels.DatasetStorageTotalsRow, error) {
			return a.dal.GetDatasetStorageTotals(ctx, bq, ref.Project, ref.Dataset, item.location)
		}); sm.Err != nil {
			noteFor(bqmodels.FacetDatasetTotals, sm.Err)
		} else {
			lines = append(lines, fmt.Sprintf("  logical_bytes:  %d", bqmodels.NullableInt(sm.Value.TotalLogicalBytes)))
			lines = append(lines, fmt.Sprintf("  physical_bytes: %d", bqmodels.NullableInt(sm.Value.TotalPhysicalBytes)))
		}
	}

	sections = append(sections, domain.SchemaReportSection{Ref: ref, Lines: lines})

	// API fallback total keeps a dataset size signal in the report even
	// when INFORMATION_SCHEMA storage views are unavailable.
	tables, sumBytes, err := a.dal.GetDatasetAPITotals(ctx, bq, ref.Project, ref.Dataset)

	apiLine := fmt.Sprintf("Dataset API totals: tables=%d, sum_num_bytes=%d", tables, sumBytes)
	if err != nil {
		apiLine = fmt.Sprintf("Dataset API totals error: %s", errCause(err))
	}

	sections = append(sections, domain.SchemaReportSection{Ref: ref, Lines: []string{apiLine}})

	return sections, notes
}

func renderAPIDetails(md *bigquery.TableMetadata) []string {
	if md == nil {
		return nil
	}

	lines := []string{
		"  api_details:",
		fmt.Sprintf("    num_rows: %d", md.NumRows),
		fmt.Sprintf("    num_bytes: %d", md.NumBytes),
	}

	if md.TimePartitioning != nil {
		tp := md.TimePartitioning
		lines = append(lines, "    time_partitioning:")
		lines = append(lines, fmt.Sprintf("      type: %s", tp.Type))
		lines = append(lines, fmt.Sprintf("      field: %s", tp.Field))
		lines = append(lines, fmt.Sprintf("      expiration_ms: %d", tp.Expiration.Milliseconds()))
		lines = append(lines, fmt.Sprintf("      require_partition_filter: %t", md.RequirePartitionFilter))
	}

	if md.RangePartitioning != nil {
		rp := md.RangePartitioning
		lines = append(lines, "    range_partitioning:")
		lines = append(lines, fmt.Sprintf("      field: %s", rp.Field))

		if rp.Range != nil {
			lines = append(lines, fmt.Sprintf("      start: %d end: %d interval: %d",
				rp.Range.Start, rp.Range.End, rp.Range.Interval))
		}
	}

	if md.Clustering != nil && len(md.Clustering.Fields) > 0 {
		lines = append(lines, fmt.Sprintf("    clustering_fields: %v", md.Clustering.Fields))
	}

	if len(md.Labels) > 0 {
		lines = append(lines, fmt.Sprintf("    labels: %v", md.Labels))
	}

	if md.EncryptionConfig != nil {
		lines = append(lines, fmt.Sprintf("    encryption_kms_key: %s", md.EncryptionConfig.KMSKeyName))
	}

	if md.SnapshotDefinition != nil {
		sd := md.SnapshotDefinition
		lines = append(lines, "    snapshot_definition:")

		if sd.BaseTableReference != nil {
			base := sd.BaseTableReference
			lines = append(lines, fmt.Sprintf("      base_table: %s.%s.%s", base.ProjectID, base.DatasetID, base.TableID))
		}

		lines = append(lines, fmt.Sprintf("      snapshot_time: %s", sd.SnapshotTime.UTC().Format("2006-01-02T15:04:05Z")))
	}

	return lines
}

// fetch wraps one facet call into a Maybe so catch-and-continue handling
// is explicit at the call site.
func fetch[T any](fn func() (T, error)) domain.Maybe[T] {
	value, err := fn()
	return domain.Maybe[T]{Value: value, Err: err}
}

// errCause prefers the API error message over the full wrapped chain so
// report notes stay readable.
func errCause(err error) string {
	var gapiErr *googleapi.Error
	if errors.As(err, &gapiErr) && gapiErr.Message != "" {
		return gapiErr.Message
	}

	return err.Error()
}
