// Package logger provides the process-wide diagnostic logger.
//
// Diagnostics go to stderr so they never interleave with the lint
// transcript, which owns stdout.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

// Init configures the process-wide logger at the given level. Unknown level
// strings fall back to info.
func Init(level string) {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	log = l
}

func get() *logrus.Logger {
	if log == nil {
		Init("info")
	}
	return log
}

func Debug(args ...any) { get().Debug(args...) }
func Info(args ...any)  { get().Info(args...) }
func Warn(args ...any)  { get().Warn(args...) }
func Error(args ...any) { get().Error(args...) }
func Fatal(args ...any) { get().Fatal(args...) }

func Debugf(format string, args ...any) { get().Debugf(format, args...) }
func Infof(format string, args ...any)  { get().Infof(format, args...) }
func Warnf(format string, args ...any)  { get().Warnf(format, args...) }
func Errorf(format string, args ...any) { get().Errorf(format, args...) }
func Fatalf(format string, args ...any) { get().Fatalf(format, args...) }
