package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvLogLevel         = "MEDIA_DL_LOG_LEVEL"
	EnvDownloadDir      = "MEDIA_DL_DOWNLOAD_DIR"
	EnvYTDLPPath        = "MEDIA_DL_YTDLP_PATH"
	EnvAutoInstall      = "MEDIA_DL_AUTO_INSTALL"
	EnvProgressInterval = "MEDIA_DL_PROGRESS_INTERVAL"
)

// Environment defaults
const (
	DefaultLogLevel         = "info"
	DefaultProgressInterval = 500 * time.Millisecond
)

// EnvConfig holds process-level overrides that are not part of user preferences
type EnvConfig struct {
	LogLevel         string
	DownloadDir      string        // preselected destination folder, optional
	YTDLPPath        string        // explicit yt-dlp executable, optional
	AutoInstall      bool          // download yt-dlp when it is not on PATH
	ProgressInterval time.Duration // how often the engine reports progress
}

// LoadEnv reads an optional .env file from the working directory and then
// the process environment. Values already set in the environment win.
func LoadEnv(files ...string) EnvConfig {
	// a missing .env file is the normal case
	_ = godotenv.Load(files...)

	cfg := EnvConfig{
		LogLevel:         strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))),
		DownloadDir:      strings.TrimSpace(os.Getenv(EnvDownloadDir)),
		YTDLPPath:        strings.TrimSpace(os.Getenv(EnvYTDLPPath)),
		ProgressInterval: DefaultProgressInterval,
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if v, err := strconv.ParseBool(os.Getenv(EnvAutoInstall)); err == nil {
		cfg.AutoInstall = v
	}
	if v, err := time.ParseDuration(os.Getenv(EnvProgressInterval)); err == nil && v > 0 {
		cfg.ProgressInterval = v
	}

	return cfg
}
