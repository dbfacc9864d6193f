package main

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/config"
	"github.com/ytget/media-downloader/internal/download"
	"github.com/ytget/media-downloader/internal/logging"
	"github.com/ytget/media-downloader/internal/platform"
	"github.com/ytget/media-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.media-downloader"
	AppName = "Media Downloader"

	InstallTimeout = 2 * time.Minute
)

func main() {
	env := config.LoadEnv()
	logger := logging.MustNew(env.LogLevel)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	if env.DownloadDir != "" {
		if err := platform.CreateDirectoryIfNotExists(env.DownloadDir); err != nil {
			logger.Warn("cannot create download directory", zap.String("dir", env.DownloadDir), zap.Error(err))
		} else {
			config.NewSettings(myApp).SetDownloadDirectory(env.DownloadDir)
		}
	}

	engine := download.NewYTDLPEngine(env.YTDLPPath, env.ProgressInterval, logger)
	if env.AutoInstall {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), InstallTimeout)
			defer cancel()
			if err := engine.Install(ctx); err != nil {
				logger.Error("yt-dlp install failed", zap.Error(err))
			}
		}()
	}

	dispatcher := download.NewDispatcher(engine, logger)
	ui.NewRootUI(myWindow, myApp, dispatcher, logger)

	myWindow.ShowAndRun()
}
