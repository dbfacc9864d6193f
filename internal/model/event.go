package model

// EventKind distinguishes progress updates from log lines
type EventKind int

const (
	EventProgress EventKind = iota
	EventLog
)

// Event is a single item of the ordered stream a download worker emits
type Event struct {
	Kind    EventKind
	Percent float64 // 0..100, set for EventProgress

	Message  string // set for EventLog
	Terminal bool   // last event of the stream
	Err      error  // failure that ended the download, nil on success
}

// NewProgressEvent creates a progress event
func NewProgressEvent(percent float64) Event {
	return Event{Kind: EventProgress, Percent: percent}
}

// NewTerminalEvent creates the last log event of a stream. err is nil on success.
func NewTerminalEvent(message string, err error) Event {
	return Event{Kind: EventLog, Message: message, Terminal: true, Err: err}
}

// Failed reports whether the event terminated the stream with an error
func (e Event) Failed() bool {
	return e.Terminal && e.Err != nil
}
