package download

import (
	"sync"

	"github.com/ytget/media-downloader/internal/model"
)

// Handle is the caller's view of one running download. Events are delivered
// in emission order; the channel is closed right after the terminal event.
type Handle struct {
	id     string
	events chan model.Event
	done   chan struct{}

	// sendMu serializes channel sends with close; mu guards status and err
	sendMu sync.Mutex
	closed bool

	mu     sync.Mutex
	status model.TaskStatus
	err    error
}

func newHandle(id string, buffer int) *Handle {
	return &Handle{
		id:     id,
		events: make(chan model.Event, buffer),
		done:   make(chan struct{}),
		status: model.TaskStatusPending,
	}
}

// ID returns the unique handle ID
func (h *Handle) ID() string {
	return h.id
}

// Events returns the receive-only end of the worker's event stream
func (h *Handle) Events() <-chan model.Event {
	return h.events
}

// Done is closed once the terminal event has been queued
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Status returns the current task status
func (h *Handle) Status() model.TaskStatus {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status
}

// Err returns the failure that ended the download, if any
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *Handle) setStatus(status model.TaskStatus) {
	h.mu.Lock()
	h.status = status
	h.mu.Unlock()
}

// emit queues a non-terminal event. Events arriving after the terminal one
// are dropped.
func (h *Handle) emit(ev model.Event) bool {
	h.sendMu.Lock()
	defer h.sendMu.Unlock()
	if h.closed {
		return false
	}
	h.events <- ev
	return true
}

// finish queues the terminal event and closes the stream
func (h *Handle) finish(ev model.Event, status model.TaskStatus) {
	h.sendMu.Lock()
	defer h.sendMu.Unlock()
	if h.closed {
		return
	}
	h.mu.Lock()
	h.status = status
	h.err = ev.Err
	h.mu.Unlock()

	h.events <- ev
	h.closed = true
	close(h.events)
	close(h.done)
}
