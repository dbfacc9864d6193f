package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ytget/media-downloader/internal/model"
)

// Format selectors and containers passed to yt-dlp
const (
	FormatBestVideoAudio = "bestvideo+bestaudio/best"
	FormatBestAudio      = "bestaudio/best"

	ContainerMP4 = "mp4"
	ContainerMP3 = "mp3"
)

// ErrUnsupportedPreset is returned for a (platform, option) pair with no preset
var ErrUnsupportedPreset = errors.New("unsupported platform/option combination")

// preset is one row of the resolver table
type preset struct {
	format        string
	extractAudio  bool
	mergeFormat   string
	audioFormat   string
	audioFallback bool
}

type presetKey struct {
	platform model.Platform
	option   model.FormatOption
}

var (
	videoPreset = preset{format: FormatBestVideoAudio, mergeFormat: ContainerMP4}
	audioPreset = preset{format: FormatBestAudio, extractAudio: true, audioFormat: ContainerMP3}
)

var presets = map[presetKey]preset{
	{model.PlatformYouTube, model.OptionHighQualityVideo}: videoPreset,
	{model.PlatformYouTube, model.OptionAudioOnly}:        audioPreset,
	// SoundCloud hosts audio only; video requests fall back to audio.
	{model.PlatformSoundCloud, model.OptionHighQualityVideo}: {
		format:        FormatBestAudio,
		extractAudio:  true,
		audioFormat:   ContainerMP3,
		audioFallback: true,
	},
	{model.PlatformSoundCloud, model.OptionAudioOnly}:  audioPreset,
	{model.PlatformVimeo, model.OptionHighQualityVideo}: videoPreset,
	{model.PlatformVimeo, model.OptionAudioOnly}:        audioPreset,
}

// Resolution is the outcome of resolving a preset
type Resolution struct {
	Options model.DownloadOptions
	// AudioFallback is set when the platform cannot serve the requested video
	// and audio is downloaded instead. The caller reports it to the user.
	AudioFallback bool
}

// Resolve maps a platform and format option to the download configuration
// for the given destination folder using the default filename template.
func Resolve(platform model.Platform, option model.FormatOption, folder string) (Resolution, error) {
	return ResolveWithTemplate(platform, option, folder, DefaultFilenameTemplate)
}

// ResolveWithTemplate is Resolve with a custom filename template. An empty
// template falls back to DefaultFilenameTemplate.
func ResolveWithTemplate(platform model.Platform, option model.FormatOption, folder, template string) (Resolution, error) {
	p, ok := presets[presetKey{platform, option}]
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %s/%s", ErrUnsupportedPreset, platform, option)
	}
	if template == "" {
		template = DefaultFilenameTemplate
	}

	return Resolution{
		Options: model.DownloadOptions{
			OutputTemplate:    filepath.Join(folder, template),
			Format:            p.format,
			ExtractAudio:      p.extractAudio,
			MergeOutputFormat: p.mergeFormat,
			AudioFormat:       p.audioFormat,
		},
		AudioFallback: p.audioFallback,
	}, nil
}
