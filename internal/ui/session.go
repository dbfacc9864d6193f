package ui

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/config"
	"github.com/ytget/media-downloader/internal/download"
	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/platform"
)

// View is what the session needs from the window. Implementations must be
// safe to call from any goroutine.
type View interface {
	AppendLog(line string)
	SetProgress(percent float64)
}

// Session holds the user's current choices and the downloads started from
// them. Each StartDownload spawns an independent worker.
type Session struct {
	starter      download.Starter
	view         View
	localization *Localization
	logger       *zap.Logger

	mu       sync.Mutex
	folder   string
	platform model.Platform
	option   model.FormatOption
	template string
	active   map[string]*download.Handle

	drains sync.WaitGroup
}

// NewSession creates a session with no folder selected
func NewSession(starter download.Starter, view View, localization *Localization, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		starter:      starter,
		view:         view,
		localization: localization,
		logger:       logger,
		platform:     model.PlatformYouTube,
		option:       model.OptionHighQualityVideo,
		template:     config.DefaultFilenameTemplate,
		active:       make(map[string]*download.Handle),
	}
}

// SelectFolder sets the destination folder. It must be an existing directory.
func (s *Session) SelectFolder(path string) error {
	absPath, err := platform.ValidateDirectory(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.folder = absPath
	s.mu.Unlock()

	s.logger.Info("download folder selected", zap.String("folder", absPath))
	return nil
}

// Folder returns the selected folder, or "" if none
func (s *Session) Folder() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.folder
}

// SetPlatform sets the selected platform
func (s *Session) SetPlatform(p model.Platform) {
	s.mu.Lock()
	s.platform = p
	s.mu.Unlock()
}

// SetOption sets the selected format option
func (s *Session) SetOption(o model.FormatOption) {
	s.mu.Lock()
	s.option = o
	s.mu.Unlock()
}

// SetFilenameTemplate sets the output filename pattern
func (s *Session) SetFilenameTemplate(template string) {
	s.mu.Lock()
	s.template = template
	s.mu.Unlock()
}

// ActiveCount returns the number of started downloads that have not finished yet
func (s *Session) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, h := range s.active {
		if h.Status().IsActive() {
			n++
		}
	}
	return n
}

// StartDownload validates input, resolves the configuration and starts a
// worker. It returns false when nothing was started; the reason has been
// written to the log.
func (s *Session) StartDownload(rawURL string) (*download.Handle, bool) {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		s.view.AppendLog(s.localization.GetText(KeyPleaseEnterURL))
		return nil, false
	}

	s.mu.Lock()
	folder, p, o, template := s.folder, s.platform, s.option, s.template
	s.mu.Unlock()

	if folder == "" {
		s.view.AppendLog(s.localization.GetText(KeyPleaseSelectFolder))
		return nil, false
	}

	res, err := config.ResolveWithTemplate(p, o, folder, template)
	if err != nil {
		s.logger.Error("failed to resolve preset", zap.Error(err))
		s.view.AppendLog(s.localization.Format(KeyUnsupportedSelection, err))
		return nil, false
	}
	if res.AudioFallback {
		s.view.AppendLog(s.localization.Format(KeyAudioOnlyPlatform, p))
	}

	s.view.AppendLog(s.localization.Format(KeyDownloadStarted, url, p))

	h := s.starter.Start(model.DownloadRequest{
		URL:      url,
		Folder:   folder,
		Platform: p,
		Option:   o,
		Options:  res.Options,
	})

	s.mu.Lock()
	s.active[h.ID()] = h
	s.mu.Unlock()

	s.drains.Add(1)
	go s.relay(h)

	return h, true
}

// Wait blocks until every started download has delivered its last event
func (s *Session) Wait() {
	s.drains.Wait()
}

// relay forwards one handle's events to the view in emission order
func (s *Session) relay(h *download.Handle) {
	defer s.drains.Done()
	defer func() {
		s.mu.Lock()
		delete(s.active, h.ID())
		s.mu.Unlock()
	}()

	for ev := range h.Events() {
		switch ev.Kind {
		case model.EventProgress:
			s.view.SetProgress(ev.Percent)
		case model.EventLog:
			s.view.AppendLog(s.eventText(ev))
		}
	}
}

// eventText localizes terminal messages; other log lines pass through
func (s *Session) eventText(ev model.Event) string {
	if !ev.Terminal {
		return ev.Message
	}
	if ev.Err != nil {
		return s.localization.Format(KeyErrorOccurred, ev.Err)
	}
	return s.localization.GetText(KeyDownloadCompleted)
}
