package observe

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// EventKind identifies which step of an invocation produced an event.
type EventKind string

const (
	KindQuery    EventKind = "query"
	KindDecision EventKind = "decision"
	KindExec     EventKind = "exec"
)

// Event records metadata about a single step of an invocation.
type Event struct {
	Kind      EventKind
	Target    string
	LatencyMs int64
	Success   bool
	// Outcome is a short machine-readable result such as "confirmed",
	// "fail_open" or an error code.
	Outcome string
}

// Observer receives events for logging.
type Observer interface {
	OnEvent(event Event)
}

// LogObserver writes events to an io.Writer, one line each. Every line
// carries the same run ID so a single invocation can be followed.
type LogObserver struct {
	w     io.Writer
	runID string
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w, runID: uuid.NewString()}
}

// RunID returns the identifier stamped on every line.
func (o *LogObserver) RunID() string {
	return o.runID
}

func (o *LogObserver) OnEvent(event Event) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err"
	}
	fmt.Fprintf(o.w, "[%s] ddi_event run=%s kind=%s target=%q latency_ms=%d status=%s outcome=%s\n",
		ts, o.runID, event.Kind, event.Target, event.LatencyMs, status, event.Outcome)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnEvent(Event) {}

// OrNoop returns o, or a NoopObserver when o is nil.
func OrNoop(o Observer) Observer {
	if o == nil {
		return NoopObserver{}
	}
	return o
}
