package connection

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/doitintl/bq-audit/logger"
)

const (
	// CtxBigqueryKey is how bigquery connections are stored/retrieved.
	CtxBigqueryKey = "app-bigquery"
)

// Connection bundles the clients the audit engine talks through. It is the
// explicit handle components receive instead of a process-wide client.
type Connection struct {
	*BigQueryClient
}

// NewConnection initializes the client connections necessary for one audit
// target project, plus any extra projects that need their own client.
func NewConnection(ctx context.Context, log *logger.Logging, project string, extraProjects ...string) (*Connection, error) {
	bq, err := NewBigQuery(ctx, log, project, extraProjects)
	if err != nil {
		return nil, err
	}

	return &Connection{bq}, nil
}

// Bigquery returns a bigquery connection that was stored in context.
// It returns by default the home project connection, if there was not one
// in the context.
func (c *Connection) Bigquery(ctx context.Context) *bigquery.Client {
	if bq, ok := ctx.Value(CtxBigqueryKey).(*bigquery.Client); ok {
		return bq
	}

	return c.bq
}

// BigqueryForProject returns a bigquery client associated with that project.
// If the project is not in the list, the default bq client is returned and
// the second return argument set to false.
func (c *Connection) BigqueryForProject(projectID string) (*bigquery.Client, bool) {
	if bq, ok := c.projectsBQ[projectID]; ok {
		return bq, true
	}

	return c.bq, false
}

type BigQueryFromContextFun = func(ctx context.Context) *bigquery.Client
