package logger

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// CtxLoggerKey is how request loggers are stored/retrieved.
	CtxLoggerKey = "app-logger"

	// envLogMode switches the sink to the JSON production encoder.
	envLogMode = "BQAUDIT_LOG_MODE"
)

var sink *zap.SugaredLogger

type Provider func(ctx context.Context) ILogger

type Logging struct {
}

// NewLogging initializes the process-wide zap sink. Console encoding by
// default, JSON when BQAUDIT_LOG_MODE=production.
func NewLogging(ctx context.Context) (*Logging, error) {
	cfg := zap.NewDevelopmentConfig()
	if os.Getenv(envLogMode) == "production" {
		cfg = zap.NewProductionConfig()
	}

	cfg.DisableStacktrace = true

	z, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		return nil, err
	}

	sink = z.Sugar()

	return &Logging{}, nil
}

// Logger returns the logger that was stored inside the context.
func (l *Logging) Logger(ctx context.Context) ILogger {
	return FromContext(ctx)
}

// NewLogger sets gin.Context with a new logger, with the related trace id.
func NewLogger(ctx *gin.Context) (*Logger, error) {
	l := newDefaultLogger()

	var h string
	if ctx.Request != nil {
		h = ctx.Request.Header.Get("X-Cloud-Trace-Context")
	}

	if h != "" {
		if i := strings.IndexByte(h, '/'); i > 0 {
			if t := h[:i]; strings.Count(t, "0") != len(t) {
				l.trace = getTrace(l.started, t)
			}
		}
	}

	ctx.Set(CtxLoggerKey, l)

	return l, nil
}

// FromContext returns the logger that was stored in context.
// If there isn't logger stored, returns a new logger.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(CtxLoggerKey).(*Logger); ok {
		return l
	}

	return newDefaultLogger()
}

func getTrace(started time.Time, id string) string {
	return fmt.Sprintf("traces/%d/%s", started.UnixNano(), id)
}

func getSink() *zap.SugaredLogger {
	if sink == nil {
		z, _ := zap.NewDevelopment(zap.AddCallerSkip(2), zap.IncreaseLevel(zapcore.DebugLevel))
		sink = z.Sugar()
	}

	return sink
}
