package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyPlatform             = "platform"
	KeyEnterURL             = "enter_url"
	KeyDownloadOption       = "download_option"
	KeyOptionVideo          = "option_video"
	KeyOptionAudio          = "option_audio"
	KeySelectFolder         = "select_folder"
	KeySelectedFolder       = "selected_folder"
	KeyNone                 = "none"
	KeyStartDownload        = "start_download"
	KeyOpenFolder           = "open_folder"
	KeyPleaseEnterURL       = "please_enter_url"
	KeyPleaseSelectFolder   = "please_select_folder"
	KeyInvalidFolder        = "invalid_folder"
	KeyAudioOnlyPlatform    = "audio_only_platform"
	KeyDownloadStarted      = "download_started"
	KeyDownloadCompleted    = "download_completed"
	KeyErrorOccurred        = "error_occurred"
	KeyErrorOpeningFolder   = "error_opening_folder"
	KeySettings             = "settings"
	KeyFile                 = "file"
	KeyLanguage             = "language"
	KeyFilenameTemplate     = "filename_template"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeySettingsSaved        = "settings_saved"
	KeyUnsupportedSelection = "unsupported_selection"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Format returns the localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ko": "한국어",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "Video/Audio Downloader",
		KeyPlatform:             "Platform:",
		KeyEnterURL:             "Enter URL...",
		KeyDownloadOption:       "Download option:",
		KeyOptionVideo:          "High quality video (MP4)",
		KeyOptionAudio:          "Audio only (MP3)",
		KeySelectFolder:         "Select download folder",
		KeySelectedFolder:       "Selected folder: %s",
		KeyNone:                 "none",
		KeyStartDownload:        "Start download",
		KeyOpenFolder:           "Open folder",
		KeyPleaseEnterURL:       "Please enter a URL.",
		KeyPleaseSelectFolder:   "Please select a download folder.",
		KeyInvalidFolder:        "Invalid folder: %v",
		KeyAudioOnlyPlatform:    "%s supports audio only. Downloading audio instead.",
		KeyDownloadStarted:      "Download started: %s (%s)",
		KeyDownloadCompleted:    "Download complete!",
		KeyErrorOccurred:        "Error: %v",
		KeyErrorOpeningFolder:   "Error opening folder: %v",
		KeySettings:             "Settings",
		KeyFile:                 "File",
		KeyLanguage:             "Language",
		KeyFilenameTemplate:     "Filename template",
		KeySave:                 "Save",
		KeyCancel:               "Cancel",
		KeySettingsSaved:        "Settings saved successfully!",
		KeyUnsupportedSelection: "Unsupported selection: %v",
	}

	l.texts["ko"] = map[string]string{
		KeyAppTitle:             "동영상/오디오 다운로더",
		KeyPlatform:             "플랫폼 선택:",
		KeyEnterURL:             "URL을 입력하세요...",
		KeyDownloadOption:       "다운로드 옵션:",
		KeyOptionVideo:          "고화질 동영상 (MP4)",
		KeyOptionAudio:          "오디오만 (MP3)",
		KeySelectFolder:         "다운로드 폴더 선택",
		KeySelectedFolder:       "선택된 폴더: %s",
		KeyNone:                 "없음",
		KeyStartDownload:        "다운로드 시작",
		KeyOpenFolder:           "폴더 열기",
		KeyPleaseEnterURL:       "URL을 입력하세요.",
		KeyPleaseSelectFolder:   "다운로드 폴더를 선택하세요.",
		KeyInvalidFolder:        "잘못된 폴더: %v",
		KeyAudioOnlyPlatform:    "%s은 오디오만 지원됩니다. 오디오로 다운로드합니다.",
		KeyDownloadStarted:      "다운로드 시작: %s (%s)",
		KeyDownloadCompleted:    "다운로드 완료!",
		KeyErrorOccurred:        "오류 발생: %v",
		KeyErrorOpeningFolder:   "폴더 열기 오류: %v",
		KeySettings:             "설정",
		KeyFile:                 "파일",
		KeyLanguage:             "언어",
		KeyFilenameTemplate:     "파일 이름 템플릿",
		KeySave:                 "저장",
		KeyCancel:               "취소",
		KeySettingsSaved:        "설정이 저장되었습니다!",
		KeyUnsupportedSelection: "지원되지 않는 선택: %v",
	}
}
