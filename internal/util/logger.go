package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// Log logs a message if verbose is true.
func Log(verbose bool, format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// ProgressLogger tracks and prints progress. Log may be called from
// several goroutines.
type ProgressLogger struct {
	mu             sync.Mutex
	out            io.Writer
	totalEvents    uint64
	prefix         string
	suffix         string
	loggedEvents   uint64
	logStep        uint64
	nextEventToLog uint64
	enabled        bool
	startTime      time.Time
}

// NewProgressLogger creates a new progress logger writing to stderr.
func NewProgressLogger(totalEvents uint64, prefix, suffix string, enable bool) *ProgressLogger {
	return NewProgressLoggerTo(os.Stderr, totalEvents, prefix, suffix, enable)
}

// NewProgressLoggerTo creates a progress logger writing to out.
func NewProgressLoggerTo(out io.Writer, totalEvents uint64, prefix, suffix string, enable bool) *ProgressLogger {
	pl := &ProgressLogger{
		out:         out,
		totalEvents: totalEvents,
		prefix:      prefix,
		suffix:      suffix,
		enabled:     enable,
		startTime:   time.Now(),
	}

	percFraction := uint64(20) // 5% steps
	if totalEvents >= 100_000_000 {
		percFraction = 100 // 1% steps for large counts
	}
	pl.logStep = (totalEvents + percFraction - 1) / percFraction
	if pl.logStep == 0 {
		pl.logStep = 1
	}

	if enable {
		pl.nextEventToLog = pl.logStep
		pl.update(false)
	} else {
		pl.nextEventToLog = ^uint64(0)
	}
	return pl
}

// Log increments the counter and updates progress if the step is reached.
func (pl *ProgressLogger) Log() {
	if !pl.enabled {
		return
	}
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.loggedEvents++
	if pl.loggedEvents >= pl.nextEventToLog {
		pl.update(false)
		pl.nextEventToLog += pl.logStep
		if pl.nextEventToLog > pl.totalEvents {
			pl.nextEventToLog = pl.totalEvents
		}
	}
}

// Logged returns the number of events recorded so far.
func (pl *ProgressLogger) Logged() uint64 {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.loggedEvents
}

// Finalize prints the last progress update with the elapsed time.
// It does not force the counter to 100%, so an aborted run reports
// how far it got.
func (pl *ProgressLogger) Finalize() {
	if !pl.enabled {
		return
	}
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.update(true)
}

// update prints the progress status. Caller holds mu (or owns pl).
func (pl *ProgressLogger) update(final bool) {
	perc := uint64(0)
	if pl.totalEvents > 0 {
		perc = min((100*pl.loggedEvents)/pl.totalEvents, 100)
	}
	fmt.Fprintf(pl.out, "\r%s%d%%%s", pl.prefix, perc, pl.suffix)
	if final {
		fmt.Fprintf(pl.out, " (%.2fs) \n", time.Since(pl.startTime).Seconds())
	}
}
