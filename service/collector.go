package service

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	dalIface "github.com/doitintl/bq-audit/dal/iface"
	"github.com/doitintl/bq-audit/domain"
	"github.com/doitintl/bq-audit/logger"
)

// Collector fetches recent job history per region. One region failing
// contributes zero records and a warning; the other regions proceed.
type Collector struct {
	loggerProvider logger.Provider
	dal            dalIface.Bigquery
}

func NewCollector(loggerProvider logger.Provider, dal dalIface.Bigquery) *Collector {
	return &Collector{
		loggerProvider: loggerProvider,
		dal:            dal,
	}
}

// Collect fetches every region concurrently and concatenates the results
// in requested region order. It never fails as a whole: per-region errors
// come back as warnings.
func (c *Collector) Collect(ctx context.Context, bq *bigquery.Client, regions []domain.Region, windowDays, limit int) ([]domain.JobRecord, map[domain.Region]int, []string) {
	l := c.loggerProvider(ctx)

	results := make([]domain.Maybe[[]domain.JobRecord], len(regions))

	g, gctx := errgroup.WithContext(ctx)

	for i, region := range regions {
		i, region := i, region

		g.Go(func() error {
			records, err := c.dal.GetJobs(gctx, bq, region, windowDays, limit)
			results[i] = domain.Maybe[[]domain.JobRecord]{Value: records, Err: err}

			return nil
		})
	}

	// Failures land in the per-region slots, never in the group error.
	_ = g.Wait()

	var (
		all      []domain.JobRecord
		warnings []string
		merr     *multierror.Error
	)

	perRegion := make(map[domain.Region]int, len(regions))

	for i, region := range regions {
		if err := results[i].Err; err != nil {
			warnings = append(warnings, fmt.Sprintf("failed fetching jobs from %s: %s", region, err))
			merr = multierror.Append(merr, fmt.Errorf("region %s: %w", region, err))
			perRegion[region] = 0

			continue
		}

		perRegion[region] = len(results[i].Value)
		all = append(all, results[i].Value...)
	}

	if merr != nil {
		l.Warningf("job collection finished with warnings: %s", merr)
	}

	return all, perRegion, warnings
}
