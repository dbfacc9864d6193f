package model

import (
	"fmt"
	"strings"
)

// Platform identifies the media site a URL belongs to
type Platform int

const (
	PlatformYouTube Platform = iota
	PlatformSoundCloud
	PlatformVimeo
)

// String returns the display name of the platform
func (p Platform) String() string {
	switch p {
	case PlatformYouTube:
		return "YouTube"
	case PlatformSoundCloud:
		return "SoundCloud"
	case PlatformVimeo:
		return "Vimeo"
	default:
		return fmt.Sprintf("Platform(%d)", int(p))
	}
}

// Platforms returns all platforms in display order
func Platforms() []Platform {
	return []Platform{PlatformYouTube, PlatformSoundCloud, PlatformVimeo}
}

// ParsePlatform accepts a display name or its lowercase form
func ParsePlatform(s string) (Platform, error) {
	name := strings.TrimSpace(s)
	for _, p := range Platforms() {
		if strings.EqualFold(p.String(), name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown platform: %q", s)
}

// FormatOption selects what gets downloaded from the media page
type FormatOption int

const (
	// OptionHighQualityVideo merges the best video and audio streams into MP4
	OptionHighQualityVideo FormatOption = iota
	// OptionAudioOnly extracts the best audio stream as MP3
	OptionAudioOnly
)

// String returns a short identifier of the option
func (o FormatOption) String() string {
	switch o {
	case OptionHighQualityVideo:
		return "video"
	case OptionAudioOnly:
		return "audio"
	default:
		return fmt.Sprintf("FormatOption(%d)", int(o))
	}
}

// FormatOptions returns all options in display order
func FormatOptions() []FormatOption {
	return []FormatOption{OptionHighQualityVideo, OptionAudioOnly}
}

// ParseFormatOption maps "video"/"audio" (case-insensitive) to an option
func ParseFormatOption(s string) (FormatOption, error) {
	name := strings.TrimSpace(s)
	for _, o := range FormatOptions() {
		if strings.EqualFold(o.String(), name) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown format option: %q", s)
}
