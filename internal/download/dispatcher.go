package download

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/model"
)

// Dispatcher defaults
const (
	DefaultEventBuffer = 64
	HandleIDPrefix     = "dl-"
)

// Terminal messages emitted by the worker
const (
	MsgDownloadCompleted = "Download complete!"
	MsgDownloadFailedFmt = "Error: %v"
)

// Dispatcher starts one independent background worker per request. There is
// no queue and no admission control: every Start runs immediately.
type Dispatcher struct {
	engine      Engine
	logger      *zap.Logger
	eventBuffer int
}

// NewDispatcher creates a dispatcher backed by the given engine
func NewDispatcher(engine Engine, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		engine:      engine,
		logger:      logger,
		eventBuffer: DefaultEventBuffer,
	}
}

// SetEventBuffer sets the capacity of the event channel of handles started later
func (d *Dispatcher) SetEventBuffer(size int) {
	if size < 1 {
		size = 1
	}
	d.eventBuffer = size
}

// Start runs req on a new worker goroutine and returns immediately. The
// caller must drain Handle.Events until it is closed.
func (d *Dispatcher) Start(req model.DownloadRequest) *Handle {
	h := newHandle(generateHandleID(), d.eventBuffer)
	go d.run(h, req)
	return h
}

// run is the worker body. It always ends with exactly one terminal event.
func (d *Dispatcher) run(h *Handle, req model.DownloadRequest) {
	logger := d.logger.With(
		zap.String("id", h.id),
		zap.String("url", req.URL),
		zap.Stringer("platform", req.Platform),
		zap.Stringer("option", req.Option),
	)

	h.setStatus(model.TaskStatusDownloading)
	logger.Info("download started", zap.Any("options", req.Options.Map()))
	started := time.Now()

	if err := d.invoke(h, req, logger); err != nil {
		logger.Error("download failed", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
		h.finish(model.NewTerminalEvent(fmt.Sprintf(MsgDownloadFailedFmt, err), err), model.TaskStatusError)
		return
	}

	logger.Info("download completed", zap.Duration("elapsed", time.Since(started)))
	h.finish(model.NewTerminalEvent(MsgDownloadCompleted, nil), model.TaskStatusCompleted)
}

// invoke calls the engine once. Panics in the engine or the progress hook are
// converted to errors.
func (d *Dispatcher) invoke(h *Handle, req model.DownloadRequest, logger *zap.Logger) (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		hookMu  sync.Mutex
		hookErr error
	)
	hook := func(report ProgressReport) {
		defer func() {
			if r := recover(); r != nil {
				hookMu.Lock()
				if hookErr == nil {
					hookErr = fmt.Errorf("progress hook: %v", r)
				}
				hookMu.Unlock()
				cancel()
			}
		}()

		if report.Status != StatusDownloading {
			return
		}
		percent := ParsePercent(report.Percent)
		logger.Debug("progress", zap.Float64("percent", percent))
		h.emit(model.NewProgressEvent(percent))
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("download engine panic: %v", r)
		}
	}()

	err = d.engine.Download(ctx, req.URL, req.Options, hook)

	hookMu.Lock()
	defer hookMu.Unlock()
	if hookErr != nil {
		return hookErr
	}
	return err
}

// generateHandleID generates a unique handle ID
func generateHandleID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%s%d", HandleIDPrefix, time.Now().UnixNano())
	}
	return HandleIDPrefix + id.String()
}
