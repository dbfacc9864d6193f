package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/config"
	"github.com/ytget/media-downloader/internal/download"
	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/platform"
)

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	session      *Session
	logger       *zap.Logger

	platformLabel  *widget.Label
	platformSelect *widget.Select
	urlEntry       *widget.Entry
	optionLabel    *widget.Label
	optionSelect   *widget.Select
	folderBtn      *widget.Button
	folderLabel    *widget.Label
	openFolderBtn  *widget.Button
	progressBar    *widget.ProgressBar
	downloadBtn    *widget.Button

	logLines binding.StringList
	logList  *widget.List
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, starter download.Starter, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger,
		logLines:     binding.NewStringList(),
	}
	ui.session = NewSession(starter, ui, localization, logger)
	ui.session.SetPlatform(settings.GetPlatform())
	ui.session.SetOption(settings.GetFormatOption())
	ui.session.SetFilenameTemplate(settings.GetFilenameTemplate())

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.restoreFolder()

	logger.Debug("root UI initialized")
	return ui
}

// Session returns the session driving this window
func (ui *RootUI) Session() *Session {
	return ui.session
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.platformLabel = widget.NewLabel(ui.localization.GetText(KeyPlatform))
	ui.platformSelect = widget.NewSelect(platformNames(), ui.onPlatformChanged)
	ui.platformSelect.SetSelectedIndex(int(ui.settings.GetPlatform()))

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.optionLabel = widget.NewLabel(ui.localization.GetText(KeyDownloadOption))
	ui.optionSelect = widget.NewSelect(ui.optionLabels(), nil)
	ui.optionSelect.SetSelectedIndex(int(ui.settings.GetFormatOption()))
	ui.optionSelect.OnChanged = ui.onOptionChanged

	ui.folderBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeySelectFolder), ui.onSelectFolder)
	ui.folderLabel = widget.NewLabel(ui.localization.Format(KeySelectedFolder, ui.localization.GetText(KeyNone)))
	ui.openFolderBtn = widget.NewButton(ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)
	ui.openFolderBtn.Disable()

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = 100

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyStartDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.logList = widget.NewListWithData(
		ui.logLines,
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Wrapping = fyne.TextWrapWord
			return label
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)

	form := container.NewVBox(
		ui.platformLabel,
		ui.platformSelect,
		ui.urlEntry,
		ui.optionLabel,
		ui.optionSelect,
		ui.folderBtn,
		container.NewBorder(nil, nil, nil, ui.openFolderBtn, ui.folderLabel),
		ui.progressBar,
		ui.downloadBtn,
	)

	ui.window.SetContent(container.NewBorder(form, nil, nil, nil, ui.logList))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		item := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		item.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// restoreFolder reselects the folder saved by a previous run if it still exists
func (ui *RootUI) restoreFolder() {
	dir := ui.settings.GetDownloadDirectory()
	if dir == "" {
		return
	}
	if err := ui.session.SelectFolder(dir); err != nil {
		ui.logger.Warn("saved download folder is not usable", zap.String("folder", dir), zap.Error(err))
		return
	}
	ui.showFolder(ui.session.Folder())
}

// AppendLog adds a line to the log panel. Safe to call from any goroutine.
func (ui *RootUI) AppendLog(line string) {
	fyne.Do(func() {
		_ = ui.logLines.Append(line)
		if n := ui.logLines.Length(); n > MaxLogLines {
			lines, err := ui.logLines.Get()
			if err == nil {
				_ = ui.logLines.Set(lines[n-MaxLogLines:])
			}
		}
		if ui.logList != nil {
			ui.logList.ScrollToBottom()
		}
	})
}

// SetProgress updates the progress bar. Safe to call from any goroutine.
func (ui *RootUI) SetProgress(percent float64) {
	fyne.Do(func() {
		ui.progressBar.SetValue(percent)
	})
}

// onDownloadClick handles the start button and Enter in the URL field
func (ui *RootUI) onDownloadClick() {
	if _, ok := ui.session.StartDownload(ui.urlEntry.Text); ok {
		ui.progressBar.SetValue(0)
	}
}

func (ui *RootUI) onPlatformChanged(string) {
	idx := ui.platformSelect.SelectedIndex()
	if idx < 0 {
		return
	}
	p := model.Platforms()[idx]
	ui.session.SetPlatform(p)
	ui.settings.SetPlatform(p)
}

func (ui *RootUI) onOptionChanged(string) {
	idx := ui.optionSelect.SelectedIndex()
	if idx < 0 {
		return
	}
	o := model.FormatOptions()[idx]
	ui.session.SetOption(o)
	ui.settings.SetFormatOption(o)
}

// onSelectFolder opens the folder picker at the current folder, or at the
// user's Downloads directory when none is selected
func (ui *RootUI) onSelectFolder() {
	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.AppendLog(ui.localization.Format(KeyInvalidFolder, err))
			return
		}
		if uri == nil {
			// cancelled
			return
		}
		ui.onFolderSelected(uri.Path())
	}, ui.window)

	if start := ui.pickerStart(); start != "" {
		if location, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			picker.SetLocation(location)
		}
	}
	picker.Show()
}

// pickerStart returns an existing directory to open the folder picker in
func (ui *RootUI) pickerStart() string {
	if folder := ui.session.Folder(); folder != "" {
		return folder
	}
	downloads, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return ""
	}
	if _, err := platform.ValidateDirectory(downloads); err != nil {
		return ""
	}
	return downloads
}

// onFolderSelected applies a folder chosen by the user
func (ui *RootUI) onFolderSelected(path string) {
	if err := ui.session.SelectFolder(path); err != nil {
		ui.AppendLog(ui.localization.Format(KeyInvalidFolder, err))
		return
	}
	ui.settings.SetDownloadDirectory(ui.session.Folder())
	ui.showFolder(ui.session.Folder())
}

func (ui *RootUI) showFolder(folder string) {
	ui.folderLabel.SetText(ui.localization.Format(KeySelectedFolder, folder))
	ui.openFolderBtn.Enable()
}

func (ui *RootUI) onOpenFolder() {
	folder := ui.session.Folder()
	if folder == "" {
		return
	}
	if err := platform.OpenFolder(folder); err != nil {
		ui.logger.Warn("failed to open folder", zap.String("folder", folder), zap.Error(err))
		ui.AppendLog(ui.localization.Format(KeyErrorOpeningFolder, err))
	}
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies settings that affect the running window
func (ui *RootUI) onSettingsSaved() {
	ui.session.SetFilenameTemplate(ui.settings.GetFilenameTemplate())
	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(lang)
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.platformLabel.SetText(ui.localization.GetText(KeyPlatform))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.optionLabel.SetText(ui.localization.GetText(KeyDownloadOption))
	ui.folderBtn.SetText(IconFolder + " " + ui.localization.GetText(KeySelectFolder))
	ui.openFolderBtn.SetText(ui.localization.GetText(KeyOpenFolder))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyStartDownload))

	selected := ui.optionSelect.SelectedIndex()
	ui.optionSelect.Options = ui.optionLabels()
	if selected >= 0 {
		ui.optionSelect.SetSelectedIndex(selected)
	}
	ui.optionSelect.Refresh()

	folder := ui.session.Folder()
	if folder == "" {
		folder = ui.localization.GetText(KeyNone)
	}
	ui.folderLabel.SetText(ui.localization.Format(KeySelectedFolder, folder))
}

// optionLabels returns localized labels in model.FormatOptions order
func (ui *RootUI) optionLabels() []string {
	labels := make([]string, 0, len(model.FormatOptions()))
	for _, o := range model.FormatOptions() {
		switch o {
		case model.OptionAudioOnly:
			labels = append(labels, ui.localization.GetText(KeyOptionAudio))
		default:
			labels = append(labels, ui.localization.GetText(KeyOptionVideo))
		}
	}
	return labels
}

func platformNames() []string {
	names := make([]string, 0, len(model.Platforms()))
	for _, p := range model.Platforms() {
		names = append(names, p.String())
	}
	return names
}
