package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/media-downloader/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir      = "download_directory"
	KeyPlatform         = "platform"
	KeyFormatOption     = "format_option"
	KeyFilenameTemplate = "filename_template"
	KeyLanguage         = "app_language"
)

// Default values
const (
	DefaultFilenameTemplate = "%(title)s.%(ext)s"
	DefaultLanguage         = "system"
)

// Settings persists the user's last choices between runs
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the last selected folder, or "" if the user
// never picked one. Downloads must not start until a folder is chosen.
func (s *Settings) GetDownloadDirectory() string {
	return s.app.Preferences().String(KeyDownloadDir)
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetPlatform returns the last selected platform
func (s *Settings) GetPlatform() model.Platform {
	name := s.app.Preferences().StringWithFallback(KeyPlatform, model.PlatformYouTube.String())
	p, err := model.ParsePlatform(name)
	if err != nil {
		return model.PlatformYouTube
	}
	return p
}

// SetPlatform stores the selected platform
func (s *Settings) SetPlatform(p model.Platform) {
	s.app.Preferences().SetString(KeyPlatform, p.String())
}

// GetFormatOption returns the last selected format option
func (s *Settings) GetFormatOption() model.FormatOption {
	name := s.app.Preferences().StringWithFallback(KeyFormatOption, model.OptionHighQualityVideo.String())
	o, err := model.ParseFormatOption(name)
	if err != nil {
		return model.OptionHighQualityVideo
	}
	return o
}

// SetFormatOption stores the selected format option
func (s *Settings) SetFormatOption(o model.FormatOption) {
	s.app.Preferences().SetString(KeyFormatOption, o.String())
}

// GetFilenameTemplate returns the filename template
func (s *Settings) GetFilenameTemplate() string {
	template := s.app.Preferences().String(KeyFilenameTemplate)
	if template == "" {
		s.SetFilenameTemplate(DefaultFilenameTemplate)
		return DefaultFilenameTemplate
	}
	return template
}

// SetFilenameTemplate sets the filename template
func (s *Settings) SetFilenameTemplate(template string) {
	if template == "" {
		template = DefaultFilenameTemplate
	}
	s.app.Preferences().SetString(KeyFilenameTemplate, template)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ko":     "한국어",
	}
}
