// Package logger provides leveled logging with structured context on top of logrus.
package logger

import (
	"github.com/sirupsen/logrus"
)

// Ctx is the logging context.
type Ctx logrus.Fields

// Logger is the logging interface used throughout xtables.
type Logger interface {
	Warn(msg string, ctx ...Ctx)
	Info(msg string, ctx ...Ctx)
	Debug(msg string, ctx ...Ctx)
}

// Log contains the logger used by the package level logging functions.
var Log Logger = NewLogrusLogger(logrus.StandardLogger())

// NewLogrusLogger returns a Logger writing to the given logrus logger.
func NewLogrusLogger(target *logrus.Logger) Logger {
	return &logrusLogger{target: target}
}

type logrusLogger struct {
	target *logrus.Logger
}

// entry merges all the contexts into a single entry. Later contexts win on duplicate keys.
func (l *logrusLogger) entry(ctx []Ctx) *logrus.Entry {
	fields := logrus.Fields{}
	for _, c := range ctx {
		for k, v := range c {
			fields[k] = v
		}
	}

	return l.target.WithFields(fields)
}

func (l *logrusLogger) Warn(msg string, ctx ...Ctx) {
	l.entry(ctx).Warn(msg)
}

func (l *logrusLogger) Info(msg string, ctx ...Ctx) {
	l.entry(ctx).Info(msg)
}

func (l *logrusLogger) Debug(msg string, ctx ...Ctx) {
	l.entry(ctx).Debug(msg)
}

// Warn logs a message (with optional context) at the WARNING log level.
func Warn(msg string, ctx ...Ctx) {
	Log.Warn(msg, ctx...)
}

// Debug logs a message (with optional context) at the DEBUG log level.
func Debug(msg string, ctx ...Ctx) {
	Log.Debug(msg, ctx...)
}
