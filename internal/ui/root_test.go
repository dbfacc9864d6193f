package ui

import (
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/config"
	"github.com/ytget/media-downloader/internal/download"
	"github.com/ytget/media-downloader/internal/model"
)

func newTestRootUI(t *testing.T, engine download.Engine) (*RootUI, *countingStarter) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := app.NewWindow("test")

	starter := &countingStarter{inner: download.NewDispatcher(engine, zap.NewNop())}
	return NewRootUI(window, app, starter, zap.NewNop()), starter
}

func logLength(ui *RootUI) func() bool {
	return func() bool { return ui.logLines.Length() > 0 }
}

func TestRootUI_EmptyURLLogsPrompt(t *testing.T) {
	ui, starter := newTestRootUI(t, &scriptedEngine{})

	test.Tap(ui.downloadBtn)

	require.Eventually(t, logLength(ui), time.Second, 10*time.Millisecond)
	lines, err := ui.logLines.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"Please enter a URL."}, lines)
	assert.Equal(t, 0, starter.started)
}

func TestRootUI_FolderSelectionIsPersisted(t *testing.T) {
	ui, _ := newTestRootUI(t, &scriptedEngine{})
	dir := t.TempDir()

	ui.onFolderSelected(dir)

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, ui.session.Folder())
	assert.Equal(t, abs, ui.settings.GetDownloadDirectory())
	assert.Equal(t, "Selected folder: "+abs, ui.folderLabel.Text)
	assert.False(t, ui.openFolderBtn.Disabled())
}

func TestRootUI_DownloadUpdatesProgress(t *testing.T) {
	ui, starter := newTestRootUI(t, &scriptedEngine{percents: []string{"42%"}})
	ui.onFolderSelected(t.TempDir())

	ui.urlEntry.SetText("https://youtu.be/abc")
	test.Tap(ui.downloadBtn)
	ui.session.Wait()

	require.Eventually(t, func() bool { return ui.logLines.Length() == 2 }, time.Second, 10*time.Millisecond)
	lines, _ := ui.logLines.Get()
	assert.Equal(t, "Download complete!", lines[1])
	assert.Equal(t, 1, starter.started)
	assert.InDelta(t, 42.0, ui.progressBar.Value, 0.001)
}

func TestRootUI_SelectionsUpdateSession(t *testing.T) {
	ui, _ := newTestRootUI(t, &scriptedEngine{})

	ui.platformSelect.SetSelectedIndex(int(model.PlatformVimeo))
	ui.optionSelect.SetSelectedIndex(int(model.OptionAudioOnly))

	assert.Equal(t, model.PlatformVimeo, ui.settings.GetPlatform())
	assert.Equal(t, model.OptionAudioOnly, ui.settings.GetFormatOption())
}

func TestRootUI_LanguageChangeRelabels(t *testing.T) {
	ui, _ := newTestRootUI(t, &scriptedEngine{})

	ui.onLanguageChange("ko")

	assert.Equal(t, "다운로드 시작", ui.downloadBtn.Text)
	assert.Equal(t, "선택된 폴더: 없음", ui.folderLabel.Text)
	assert.Equal(t, []string{"고화질 동영상 (MP4)", "오디오만 (MP3)"}, ui.optionSelect.Options)
	assert.Equal(t, "ko", ui.settings.GetLanguage())
}

func TestRootUI_RestoresSavedFolder(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)
	dir := t.TempDir()
	config.NewSettings(app).SetDownloadDirectory(dir)

	ui := NewRootUI(app.NewWindow("test"), app, download.NewDispatcher(&scriptedEngine{}, nil), nil)

	abs, _ := filepath.Abs(dir)
	assert.Equal(t, abs, ui.session.Folder())
}

func TestRootUI_PickerStartsAtSelectedFolder(t *testing.T) {
	ui, _ := newTestRootUI(t, &scriptedEngine{})
	dir := t.TempDir()

	ui.onFolderSelected(dir)

	abs, _ := filepath.Abs(dir)
	assert.Equal(t, abs, ui.pickerStart())
}
