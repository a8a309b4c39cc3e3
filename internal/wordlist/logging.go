package wordlist

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingSource is a decorator that logs every page request.
type LoggingSource struct {
	inner  Source
	logger *zap.Logger
}

// WithLogging wraps a Source with request logging.
func WithLogging(s Source, logger *zap.Logger) Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingSource{inner: s, logger: logger.Named("wordlist")}
}

func (l *LoggingSource) FetchPage(ctx context.Context, req Request) (*Page, error) {
	start := time.Now()
	page, err := l.inner.FetchPage(ctx, req)

	fields := []zap.Field{
		zap.String("level", req.Level),
		zap.String("lang", req.Language),
		zap.Bool("discovery", req.Offset == nil),
		zap.Int("offset", req.OffsetOrZero()),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		l.logger.Warn("page request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	l.logger.Debug("page received", append(fields,
		zap.Int("words", len(page.Words)),
		zap.Int("total", page.Total),
	)...)
	return page, nil
}
