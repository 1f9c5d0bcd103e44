package console

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

// Log is where demos report what they do.
type Log interface {
	// Section starts a new titled block of output
	Section(title string)

	// Info prints an informational line
	Info(msg string)

	// Infof prints a formatted informational line
	Infof(format string, args ...any)

	// Warn prints a warning and counts it
	Warn(msg string)

	// Error prints an error and counts it
	Error(msg string)

	// Done reports the outcome of a named step, returning true if it failed
	Done(name string, err error) bool

	// Failed reports whether any error has been logged
	Failed() bool
}

type runLog struct {
	startTime  time.Time
	stepStart  time.Time
	quiet      bool
	warnCount  int
	errorCount int
}

// NewRunLog starts a pterm-backed Log. When quiet is set informational lines
// are dropped; warnings, errors and step results are always shown.
func NewRunLog(quiet bool) *runLog {
	l := &runLog{quiet: quiet}
	l.RunStart()
	return l
}

func formatSeconds(t time.Time) string {
	return fmt.Sprintf("%.1fs", time.Since(t).Seconds())
}

func (l *runLog) RunStart() {
	l.startTime = time.Now()
	l.stepStart = l.startTime
}

func (l *runLog) RunFinish() {
	result := "completed"
	if l.errorCount > 0 {
		result = "FAILED"
	}
	msg := fmt.Sprintf("Run %s in %s (%d Warnings, %d Errors)", result, formatSeconds(l.startTime), l.warnCount, l.errorCount)
	if l.errorCount > 0 {
		pterm.Error.Println(msg)
	} else {
		pterm.Success.Println(msg)
	}
}

func (l *runLog) Section(title string) {
	l.stepStart = time.Now()
	if l.quiet {
		return
	}
	pterm.DefaultSection.Println(title)
}

func (l *runLog) Info(msg string) {
	if l.quiet {
		return
	}
	pterm.Info.Println(msg)
}

func (l *runLog) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *runLog) Warn(msg string) {
	l.warnCount++
	pterm.Warning.Println(msg)
}

func (l *runLog) Error(msg string) {
	l.errorCount++
	pterm.Error.Println(msg)
}

func (l *runLog) Done(name string, err error) bool {
	stepDuration := formatSeconds(l.stepStart)
	if err != nil {
		l.errorCount++
		pterm.Error.Printf("    ✖ %s FAILED (Time: %s)\n", name, stepDuration)
		pterm.Error.Printf("      └─ Cause: %s\n", err)
	} else {
		fmt.Printf("    ✔ %s (Time: %s)\n", name, stepDuration)
	}
	return err != nil
}

func (l *runLog) Failed() bool {
	return l.errorCount > 0
}

func (l *runLog) Warnings() int {
	return l.warnCount
}

func (l *runLog) Errors() int {
	return l.errorCount
}
