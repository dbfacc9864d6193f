// Command media-dl downloads one URL without the GUI, using the same presets
// and background worker as the desktop app.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/config"
	"github.com/ytget/media-downloader/internal/download"
	"github.com/ytget/media-downloader/internal/logging"
	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/platform"
)

const installTimeout = 2 * time.Minute

func main() {
	os.Exit(run())
}

func run() int {
	env := config.LoadEnv()

	url := flag.String("url", "", "media URL to download")
	platformName := flag.String("platform", model.PlatformYouTube.String(), "youtube, soundcloud or vimeo")
	optionName := flag.String("option", model.OptionHighQualityVideo.String(), "video or audio")
	dir := flag.String("dir", env.DownloadDir, "existing destination folder")
	template := flag.String("template", config.DefaultFilenameTemplate, "output filename template")
	logLevel := flag.String("log-level", env.LogLevel, "log level")
	flag.Parse()

	logger := logging.MustNew(*logLevel)
	defer func() { _ = logger.Sync() }()

	if *url == "" {
		fmt.Fprintln(os.Stderr, "Please enter a URL (-url).")
		return 1
	}
	if *dir == "" {
		downloads, err := platform.GetHomeDownloadsDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Please select a download folder (-dir): %v\n", err)
			return 1
		}
		*dir = downloads
	}
	folder, err := platform.ValidateDirectory(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Please select a download folder (-dir): %v\n", err)
		return 1
	}
	p, err := model.ParsePlatform(*platformName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	o, err := model.ParseFormatOption(*optionName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	res, err := config.ResolveWithTemplate(p, o, folder, *template)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if res.AudioFallback {
		fmt.Printf("%s supports audio only. Downloading audio instead.\n", p)
	}

	engine := download.NewYTDLPEngine(env.YTDLPPath, env.ProgressInterval, logger)
	if env.AutoInstall {
		ctx, cancel := context.WithTimeout(context.Background(), installTimeout)
		err := engine.Install(ctx)
		cancel()
		if err != nil {
			logger.Error("yt-dlp install failed", zap.Error(err))
			return 1
		}
	}

	fmt.Printf("Download started: %s (%s)\n", *url, p)
	h := download.NewDispatcher(engine, logger).Start(model.DownloadRequest{
		URL:      *url,
		Folder:   folder,
		Platform: p,
		Option:   o,
		Options:  res.Options,
	})

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetDescription(p.String()),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)

	for ev := range h.Events() {
		switch ev.Kind {
		case model.EventProgress:
			_ = bar.Set(int(ev.Percent))
		case model.EventLog:
			if ev.Terminal {
				_ = bar.Finish()
			}
			fmt.Println(ev.Message)
		}
	}

	if status := h.Status(); !status.IsFinished() || h.Err() != nil {
		logger.Debug("download did not complete", zap.Stringer("status", status))
		return 1
	}
	return 0
}
