package slogevents

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func capture(opts Options) (*Events, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(l, opts), &buf
}

func countLines(buf *bytes.Buffer, substr string) int {
	n := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}

func TestLogsAllLifecycleEvents(t *testing.T) {
	ev, buf := capture(Options{})

	ev.Computing()
	ev.Computed(true)
	ev.Invalidated()
	ev.Error(errors.New("down"))
	ev.Disposed()

	require.Equal(t, 1, countLines(buf, "memocell.computing"))
	require.Equal(t, 1, countLines(buf, "memocell.computed"))
	require.Equal(t, 1, countLines(buf, "memocell.invalidated"))
	require.Equal(t, 1, countLines(buf, "memocell.producer_error"))
	require.Equal(t, 1, countLines(buf, "memocell.disposed"))
}

func TestComputeSampling(t *testing.T) {
	ev, buf := capture(Options{ComputeEvery: 2})

	for i := 0; i < 4; i++ {
		ev.Computing()
	}
	require.Equal(t, 2, countLines(buf, "memocell.computing"))

	// Unsampled events always log.
	ev.Invalidated()
	require.Equal(t, 1, countLines(buf, "memocell.invalidated"))
}

func TestNilLoggerIsSafe(t *testing.T) {
	ev := New(nil, Options{})
	ev.Computing()
	ev.Computed(false)
	ev.Invalidated()
	ev.Error(errors.New("x"))
	ev.Disposed()
}
