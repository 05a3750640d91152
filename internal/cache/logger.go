package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisLogger struct {
	log *zap.SugaredLogger
}

func (l *redisLogger) Printf(ctx context.Context, format string, v ...interface{}) {
	l.log.Warnf(format, v...)
}

// SetLogger routes go-redis internal messages through zap. The setting is
// process-wide.
func SetLogger(logger *zap.Logger) {
	redis.SetLogger(&redisLogger{log: logger.Sugar()})
}
