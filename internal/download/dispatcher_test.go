package download

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/model"
)

// fakeEngine replays scripted progress reports and returns err
type fakeEngine struct {
	mu      sync.Mutex
	calls   int
	gotURL  string
	gotOpts model.DownloadOptions

	reports []ProgressReport
	err     error
	panicV  any
}

func (f *fakeEngine) Download(ctx context.Context, url string, opts model.DownloadOptions, hook ProgressHook) error {
	f.mu.Lock()
	f.calls++
	f.gotURL = url
	f.gotOpts = opts
	f.mu.Unlock()

	for _, r := range f.reports {
		hook(r)
	}
	if f.panicV != nil {
		panic(f.panicV)
	}
	return f.err
}

func (f *fakeEngine) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func collect(t *testing.T, h *Handle) []model.Event {
	t.Helper()
	var events []model.Event
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-h.Events():
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatal("timed out waiting for events")
			return nil
		}
	}
}

func testRequest() model.DownloadRequest {
	return model.DownloadRequest{
		URL:      "https://youtu.be/abc",
		Folder:   "/tmp/out",
		Platform: model.PlatformYouTube,
		Option:   model.OptionAudioOnly,
		Options: model.DownloadOptions{
			OutputTemplate: "/tmp/out/%(title)s.%(ext)s",
			Format:         "bestaudio/best",
			ExtractAudio:   true,
			AudioFormat:    "mp3",
		},
	}
}

func TestDispatcher_Success(t *testing.T) {
	engine := &fakeEngine{
		reports: []ProgressReport{
			{Status: "downloading", Percent: "10%"},
			{Status: "downloading", Percent: " 42.5%"},
			{Status: "finished", Percent: "100%"},
			{Status: "downloading", Percent: "100%"},
		},
	}
	d := NewDispatcher(engine, zap.NewNop())
	req := testRequest()

	h := d.Start(req)
	events := collect(t, h)

	require.Len(t, events, 4)
	assert.Equal(t, model.NewProgressEvent(10), events[0])
	assert.Equal(t, model.NewProgressEvent(42.5), events[1])
	assert.Equal(t, model.NewProgressEvent(100), events[2])

	last := events[3]
	assert.Equal(t, model.EventLog, last.Kind)
	assert.True(t, last.Terminal)
	assert.NoError(t, last.Err)
	assert.Equal(t, MsgDownloadCompleted, last.Message)

	assert.Equal(t, 1, engine.callCount())
	assert.Equal(t, req.URL, engine.gotURL)
	assert.Equal(t, req.Options, engine.gotOpts)
	assert.Equal(t, model.TaskStatusCompleted, h.Status())
	assert.NoError(t, h.Err())

	select {
	case <-h.Done():
	default:
		t.Error("Done should be closed after the terminal event")
	}
}

func TestDispatcher_EngineError(t *testing.T) {
	engine := &fakeEngine{
		reports: []ProgressReport{{Status: "downloading", Percent: "5%"}},
		err:     errors.New("unsupported URL"),
	}
	d := NewDispatcher(engine, zap.NewNop())

	h := d.Start(testRequest())
	events := collect(t, h)

	require.Len(t, events, 2)
	assert.Equal(t, model.EventProgress, events[0].Kind)

	last := events[1]
	assert.True(t, last.Failed())
	assert.Contains(t, last.Message, "Error")
	assert.Contains(t, last.Message, "unsupported URL")
	assert.Equal(t, model.TaskStatusError, h.Status())
	assert.EqualError(t, h.Err(), "unsupported URL")

	logEvents := 0
	for _, ev := range events {
		if ev.Kind == model.EventLog {
			logEvents++
		}
	}
	assert.Equal(t, 1, logEvents)
}

func TestDispatcher_EnginePanicIsReported(t *testing.T) {
	engine := &fakeEngine{panicV: "boom"}
	d := NewDispatcher(engine, nil)

	h := d.Start(testRequest())
	events := collect(t, h)

	require.Len(t, events, 1)
	assert.True(t, events[0].Failed())
	assert.True(t, strings.Contains(events[0].Message, "boom"))
}

func TestDispatcher_IgnoresNonDownloadingStatus(t *testing.T) {
	engine := &fakeEngine{
		reports: []ProgressReport{
			{Status: "starting", Percent: "0%"},
			{Status: "post_processing", Percent: "100%"},
			{Status: "error", Percent: "17%"},
		},
	}
	d := NewDispatcher(engine, zap.NewNop())

	events := collect(t, d.Start(testRequest()))

	require.Len(t, events, 1)
	assert.True(t, events[0].Terminal)
}

func TestDispatcher_MalformedProgressDefaultsToZero(t *testing.T) {
	engine := &fakeEngine{
		reports: []ProgressReport{
			{Status: "downloading", Percent: ""},
			{Status: "downloading", Percent: "garbage"},
		},
	}
	d := NewDispatcher(engine, zap.NewNop())

	events := collect(t, d.Start(testRequest()))

	require.Len(t, events, 3)
	assert.Equal(t, 0.0, events[0].Percent)
	assert.Equal(t, 0.0, events[1].Percent)
	assert.False(t, events[2].Failed())
}

// lateEngine keeps a hook around and fires it after Download returned
type lateEngine struct {
	hook ProgressHook
}

func (l *lateEngine) Download(ctx context.Context, url string, opts model.DownloadOptions, hook ProgressHook) error {
	l.hook = hook
	return nil
}

func TestDispatcher_LateProgressDropped(t *testing.T) {
	engine := &lateEngine{}
	d := NewDispatcher(engine, zap.NewNop())

	h := d.Start(testRequest())
	events := collect(t, h)
	require.Len(t, events, 1)

	// must neither panic on the closed channel nor deliver anything
	assert.NotPanics(t, func() {
		engine.hook(ProgressReport{Status: "downloading", Percent: "50%"})
	})
	_, ok := <-h.Events()
	assert.False(t, ok)
}

func TestDispatcher_IndependentHandles(t *testing.T) {
	engine := &fakeEngine{reports: []ProgressReport{{Status: "downloading", Percent: "1%"}}}
	d := NewDispatcher(engine, zap.NewNop())

	h1 := d.Start(testRequest())
	h2 := d.Start(testRequest())
	assert.NotEqual(t, h1.ID(), h2.ID())

	assert.Len(t, collect(t, h1), 2)
	assert.Len(t, collect(t, h2), 2)
	assert.Equal(t, 2, engine.callCount())
}

func TestDispatcher_SmallBufferKeepsOrder(t *testing.T) {
	reports := make([]ProgressReport, 0, 50)
	for i := 1; i <= 50; i++ {
		reports = append(reports, ProgressReport{Status: "downloading", Percent: strings.Repeat(" ", i%3) + strconv.Itoa(i) + "%"})
	}
	engine := &fakeEngine{reports: reports}
	d := NewDispatcher(engine, zap.NewNop())
	d.SetEventBuffer(1)

	events := collect(t, d.Start(testRequest()))

	require.Len(t, events, 51)
	for i := 0; i < 50; i++ {
		assert.Equal(t, float64(i+1), events[i].Percent)
	}
	assert.True(t, events[50].Terminal)
}

func TestGenerateHandleID(t *testing.T) {
	id1 := generateHandleID()
	id2 := generateHandleID()

	if id1 == id2 {
		t.Error("Expected different handle IDs")
	}

	if !strings.HasPrefix(id1, HandleIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", HandleIDPrefix, id1)
	}

	// prefix + 36 chars for UUID
	if len(id1) != len(HandleIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(HandleIDPrefix)+36, len(id1), id1)
	}
}
