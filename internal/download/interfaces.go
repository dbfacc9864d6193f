package download

import (
	"context"

	"github.com/ytget/media-downloader/internal/model"
)

// ProgressReport is an engine-native progress record
type ProgressReport struct {
	Status  string // engine status, e.g. "downloading", "finished"
	Percent string // percentage text as the engine formats it, e.g. " 42.3%"
}

// ProgressHook receives progress reports while the engine runs. It may be
// called from a goroutine other than the one that invoked Download.
type ProgressHook func(ProgressReport)

// Engine is the external media download capability: given a URL and a
// configuration record it produces a file on disk and reports progress.
type Engine interface {
	Download(ctx context.Context, url string, opts model.DownloadOptions, hook ProgressHook) error
}

// Starter starts background downloads. Implemented by Dispatcher.
type Starter interface {
	Start(req model.DownloadRequest) *Handle
}
