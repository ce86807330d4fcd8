package zap

import (
	"github.com/unkn0wn-root/memocell"
	"go.uber.org/zap"
)

var _ memocell.Logger = Logger{}

// Logger adapts a *zap.Logger to memocell.Logger.
type Logger struct{ L *zap.Logger }

func (z Logger) Debug(msg string, f memocell.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f memocell.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f memocell.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f memocell.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f memocell.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
