package progress

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/insight-platform/insight-deploy/internal/usecase"
)

// WriterSink prints plain lines without animation, for non-interactive runs
type WriterSink struct {
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
}

// NewWriterSink creates a new writer sink
func NewWriterSink(out, errOut io.Writer, log *slog.Logger) *WriterSink {
	return &WriterSink{out: out, errOut: errOut, log: log}
}

// OnProgress logs the event at debug level
func (w *WriterSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	w.log.DebugContext(ctx, event.Message, "stage", event.Stage)
}

// Info prints to stdout
func (w *WriterSink) Info(message string) {
	fmt.Fprintln(w.out, message)
}

// Error prints to stderr
func (w *WriterSink) Error(message string) {
	fmt.Fprintln(w.errOut, message)
}

var _ usecase.ProgressSink = (*WriterSink)(nil)
