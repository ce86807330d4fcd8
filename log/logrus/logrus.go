package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/memocell"
)

var _ memocell.Logger = Logger{}

// Logger adapts a *logrus.Entry to memocell.Logger.
type Logger struct{ E *logrus.Entry }

func (l Logger) Debug(msg string, f memocell.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logger) Info(msg string, f memocell.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f memocell.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f memocell.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
