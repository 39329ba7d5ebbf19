package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. An unknown level falls back to info and is
// reported once the logger is up.
func New(level string) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.DateTime,
		FullTimestamp:   true,
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		l.SetLevel(logrus.InfoLevel)
		l.WithField("level", level).Warn("unknown log level, using info")
		return l
	}
	l.SetLevel(lvl)
	return l
}
