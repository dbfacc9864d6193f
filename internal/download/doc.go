package download

// Package download runs downloads in the background on top of yt-dlp (via
// github.com/lrstanley/go-ytdlp). Each Start spawns one single-use worker
// that invokes the engine once and reports progress and a terminal log line
// through an ordered event channel.
