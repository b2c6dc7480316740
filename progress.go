package coursedump

import "sync/atomic"

// ProgressPhase identifies where in the run a progress event was emitted.
type ProgressPhase string

// Progress phases.
const (
	PhaseInit      ProgressPhase = "init"
	PhaseProgress  ProgressPhase = "progress"
	PhaseDone      ProgressPhase = "done"
	PhaseCancelled ProgressPhase = "cancelled"
)

// ProgressEvent reports interaction-loop progress to the collaborator.
// LessonTitle is set only for PhaseProgress events.
type ProgressEvent struct {
	Phase       ProgressPhase
	Completed   int
	Total       int
	LessonTitle string
}

// ProgressFunc receives progress events. Events are fire-and-forget: the
// loop never waits on the receiver and expects no acknowledgment.
type ProgressFunc func(ProgressEvent)

// Stopper signals a cooperative stop request. The interaction loop reads it
// only at lesson boundaries, so a lesson already in progress always runs to
// completion or failure before the stop is honored.
type Stopper interface {
	Stopped() bool
}

// StopFlag is the standard Stopper: an atomic flag the collaborator sets
// asynchronously from outside the loop's call stack.
type StopFlag struct {
	flag atomic.Bool
}

// Stop requests a cooperative stop. Safe to call from any goroutine, any
// number of times.
func (f *StopFlag) Stop() {
	f.flag.Store(true)
}

// Stopped reports whether a stop has been requested.
func (f *StopFlag) Stopped() bool {
	return f.flag.Load()
}
