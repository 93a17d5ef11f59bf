package repomanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hotelres/internal/logging"
	"github.com/pressly/goose/v3"
)

// gooseLogger sends goose's printf-style output to a logging.Logger.
type gooseLogger struct {
	logger logging.Logger
}

var _ goose.Logger = (*gooseLogger)(nil)

func newGooseLogger(l logging.Logger) *gooseLogger {
	return &gooseLogger{logger: l.With("component", "migrations")}
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.logger.Info(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level and panics; goose expects it not to return.
func (g *gooseLogger) Fatalf(format string, v ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	g.logger.Error(context.Background(), msg)
	panic(msg)
}

func loggerOrDiscard(l logging.Logger) logging.Logger {
	if l == nil {
		return logging.Discard()
	}
	return l
}
