package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"

	"github.com/doitintl/bq-audit/logger"
)

var (
	ErrBigqueryInitialization = errors.New("bigquery initialization error")
)

type BigQueryClient struct {
	projectsBQ map[string]*bigquery.Client
	bq         *bigquery.Client
}

// NewBigQuery builds the home project client plus a per-project client for
// every extra project.
func NewBigQuery(ctx context.Context, log *logger.Logging, project string, projects []string) (*BigQueryClient, error) {
	l := log.Logger(ctx)

	scopes := option.WithScopes(bigquery.Scope)

	bq, err := bigquery.NewClient(ctx, project, scopes)
	if err != nil {
		l.Errorf("%s: %s", ErrBigqueryInitialization, err)
		return nil, ErrBigqueryInitialization
	}

	projectsBQ := map[string]*bigquery.Client{
		project: bq,
	}

	for _, p := range projects {
		if _, ok := projectsBQ[p]; ok {
			continue
		}

		client, err := bigquery.NewClient(ctx, p, scopes)
		if err != nil {
			l.Errorf("%s: %s", ErrBigqueryInitialization, err)
			return nil, ErrBigqueryInitialization
		}

		projectsBQ[p] = client
	}

	return &BigQueryClient{
		bq:         bq,
		projectsBQ: projectsBQ,
	}, nil
}

// Close releases every underlying client.
func (c *BigQueryClient) Close() error {
	var firstErr error

	for _, client := range c.projectsBQ {
		if err := client.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
