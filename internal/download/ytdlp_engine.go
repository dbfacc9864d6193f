package download

import (
	"context"
	"fmt"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/model"
)

// DefaultProgressInterval is how often yt-dlp progress is sampled
const DefaultProgressInterval = 500 * time.Millisecond

// YTDLPEngine runs downloads through the yt-dlp executable
type YTDLPEngine struct {
	executable       string
	progressInterval time.Duration
	logger           *zap.Logger
}

// NewYTDLPEngine creates an engine. An empty executable means yt-dlp is
// looked up by go-ytdlp (PATH or its cache directory).
func NewYTDLPEngine(executable string, progressInterval time.Duration, logger *zap.Logger) *YTDLPEngine {
	if progressInterval <= 0 {
		progressInterval = DefaultProgressInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &YTDLPEngine{
		executable:       executable,
		progressInterval: progressInterval,
		logger:           logger,
	}
}

// Install makes sure a yt-dlp binary is available, downloading it if needed
func (e *YTDLPEngine) Install(ctx context.Context) error {
	if e.executable != "" {
		return nil
	}
	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to install yt-dlp: %w", err)
	}
	e.logger.Info("yt-dlp ready", zap.String("executable", resolved.Executable), zap.String("version", resolved.Version))
	return nil
}

// Download runs yt-dlp once for url with the given configuration record
func (e *YTDLPEngine) Download(ctx context.Context, url string, opts model.DownloadOptions, hook ProgressHook) error {
	cmd := e.command(opts)

	if hook != nil {
		cmd.ProgressFunc(e.progressInterval, func(update ytdlp.ProgressUpdate) {
			hook(ProgressReport{
				Status:  string(update.Status),
				Percent: update.PercentString(),
			})
		})
	}

	if _, err := cmd.Run(ctx, url); err != nil {
		return fmt.Errorf("yt-dlp: %w", err)
	}
	return nil
}

// command maps the configuration record onto yt-dlp flags
func (e *YTDLPEngine) command(opts model.DownloadOptions) *ytdlp.Command {
	cmd := ytdlp.New().Output(opts.OutputTemplate)

	if e.executable != "" {
		cmd.SetExecutable(e.executable)
	}
	if opts.Format != "" {
		cmd.Format(opts.Format)
	}
	if opts.MergeOutputFormat != "" {
		cmd.MergeOutputFormat(opts.MergeOutputFormat)
	}
	if opts.ExtractAudio {
		cmd.ExtractAudio()
	}
	if opts.AudioFormat != "" {
		cmd.AudioFormat(opts.AudioFormat)
	}
	return cmd
}
