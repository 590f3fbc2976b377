package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/insight-platform/insight-deploy/internal/usecase"
)

// SpinnerProgressReporter implements progress reporting with a spinner
type SpinnerProgressReporter struct {
	spinner *spinner.Spinner
	out     io.Writer
	errOut  io.Writer
	stages  []stageInfo
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter.
// The spinner draws on errOut so stdout only carries result lines.
func NewSpinnerProgressReporter(out, errOut io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(errOut))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
		errOut:  errOut,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.advance(event.Stage)

	if event.Spinner {
		r.spinner.Suffix = fmt.Sprintf(" %s %s", r.stageTrail(), event.Message)
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message. The spinner stays stopped until the next
// spinner event so a confirmation prompt can follow.
func (r *SpinnerProgressReporter) Info(message string) {
	r.Stop()
	fmt.Fprintln(r.out, message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.pause(func() {
		color.New(color.FgRed).Fprintln(r.errOut, message)
	})
}

// Stop halts the spinner, if running
func (r *SpinnerProgressReporter) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

func (r *SpinnerProgressReporter) pause(print func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	print()

	if wasActive {
		r.spinner.Start()
	}
}

// advance closes the running stage when a new one starts
func (r *SpinnerProgressReporter) advance(stage usecase.ExecutionStage) {
	if stage == "" {
		return
	}
	if n := len(r.stages); n > 0 {
		if r.stages[n-1].Stage == stage {
			return
		}
		r.stages[n-1].EndTime = time.Now()
	}
	r.stages = append(r.stages, stageInfo{Stage: stage, StartTime: time.Now()})
}

// stageTrail renders finished stages with their durations, e.g. "✓ signer (12ms) → ● deploy"
func (r *SpinnerProgressReporter) stageTrail() string {
	var display string
	for i, stage := range r.stages {
		if i > 0 {
			display += color.New(color.Faint).Sprint(" → ")
		}
		if stage.EndTime.IsZero() {
			display += color.New(color.FgYellow).Sprintf("● %s", stage.Stage)
			continue
		}
		display += color.New(color.FgGreen).Sprintf("✓ %s", stage.Stage) +
			fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
	}
	return display
}

var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
