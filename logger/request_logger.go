package logger

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
)

// Logger stores the needed functionality to print a log.
type Logger struct {
	trace    string
	started  time.Time
	severity zapcore.Level
	labels   map[string]string
}

func newDefaultLogger() *Logger {
	now := time.Now()
	id, _ := uuid.NewRandom()

	return &Logger{
		started:  now,
		trace:    getTrace(now, id.String()),
		severity: zapcore.DebugLevel,
		labels:   make(map[string]string),
	}
}

// Trace returns the trace stored in logger.
func (l *Logger) Trace() string {
	return l.trace
}

// SetLabel allows to optionally specify key/value labels for log entry.
func (l *Logger) SetLabel(key, value string) {
	l.labels[key] = value
}

// SetLabels allows to optionally add additional labels for log entry.
func (l *Logger) SetLabels(labels map[string]string) {
	for key, value := range labels {
		l.SetLabel(key, value)
	}
}

// End emits the summarized request entry at the highest severity the
// request reached.
func (l *Logger) End(ctx *gin.Context) {
	fields := []interface{}{
		"trace", l.trace,
		"status", ctx.Writer.Status(),
		"latency", time.Since(l.started).String(),
		"response_size", ctx.Writer.Size(),
	}

	if ctx.Request != nil {
		fields = append(fields,
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
		)
	}

	for key, value := range l.labels {
		fields = append(fields, key, value)
	}

	msg := "request completed"

	switch {
	case l.severity >= zapcore.ErrorLevel:
		getSink().Errorw(msg, fields...)
	case l.severity >= zapcore.WarnLevel:
		getSink().Warnw(msg, fields...)
	default:
		getSink().Infow(msg, fields...)
	}
}

func logReqEntry(s zapcore.Level, l *Logger, msg string) {
	if s > l.severity {
		l.severity = s
	}

	entry := getSink().With("trace", l.trace)

	switch s {
	case zapcore.DebugLevel:
		entry.Debug(msg)
	case zapcore.InfoLevel:
		entry.Info(msg)
	case zapcore.WarnLevel:
		entry.Warn(msg)
	case zapcore.ErrorLevel:
		entry.Error(msg)
	default:
		entry.Error(msg)
	}
}

func logReq(s zapcore.Level, l *Logger, v ...interface{}) {
	logReqEntry(s, l, fmt.Sprint(v...))
}

func (l *Logger) Debug(v ...interface{}) {
	logReq(zapcore.DebugLevel, l, v...)
}

func (l *Logger) Info(v ...interface{}) {
	logReq(zapcore.InfoLevel, l, v...)
}

func (l *Logger) Print(v ...interface{}) {
	logReq(zapcore.InfoLevel, l, v...)
}

func (l *Logger) Warning(v ...interface{}) {
	logReq(zapcore.WarnLevel, l, v...)
}

func (l *Logger) Error(v ...interface{}) {
	logReq(zapcore.ErrorLevel, l, v...)
}

func (l *Logger) Fatal(v ...interface{}) {
	logReq(zapcore.FatalLevel, l, v...)
	panic(fmt.Sprint(v...))
}

func logReqf(s zapcore.Level, l *Logger, format string, v ...interface{}) {
	logReqEntry(s, l, fmt.Sprintf(format, v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	logReqf(zapcore.DebugLevel, l, format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	logReqf(zapcore.InfoLevel, l, format, v...)
}

func (l *Logger) Printf(format string, v ...interface{}) {
	logReqf(zapcore.InfoLevel, l, format, v...)
}

func (l *Logger) Warningf(format string, v ...interface{}) {
	logReqf(zapcore.WarnLevel, l, format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	logReqf(zapcore.ErrorLevel, l, format, v...)
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	logReqf(zapcore.FatalLevel, l, format, v...)
	panic(fmt.Sprintf(format, v...))
}

func logReqln(s zapcore.Level, l *Logger, v ...interface{}) {
	logReqEntry(s, l, fmt.Sprintln(v...))
}

func (l *Logger) Debugln(v ...interface{}) {
	logReqln(zapcore.DebugLevel, l, v...)
}

func (l *Logger) Infoln(v ...interface{}) {
	logReqln(zapcore.InfoLevel, l, v...)
}

func (l *Logger) Println(v ...interface{}) {
	logReqln(zapcore.InfoLevel, l, v...)
}

func (l *Logger) Warningln(v ...interface{}) {
	logReqln(zapcore.WarnLevel, l, v...)
}

func (l *Logger) Errorln(v ...interface{}) {
	logReqln(zapcore.ErrorLevel, l, v...)
}

func (l *Logger) Fatalln(v ...interface{}) {
	logReqln(zapcore.FatalLevel, l, v...)
	panic(fmt.Sprintln(v...))
}
