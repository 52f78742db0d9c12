package source

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Francexi/browserhost/internal/engine"
	"github.com/Francexi/browserhost/internal/infrastructure/logging"
	"github.com/Francexi/browserhost/internal/infrastructure/monitoring"
	"github.com/Francexi/browserhost/internal/registry"
	"github.com/Francexi/browserhost/internal/shared/types"
)

// Notification events delivered to embedded content.
const (
	EventVisibleChanged = "sourceVisibleChanged"
	EventActiveChanged  = "sourceActiveChanged"
)

// Config wires a Source's collaborators.
type Config struct {
	Logger       *logging.Logger
	Dispatcher   *engine.Dispatcher
	Engine       engine.Engine
	Registry     *registry.Registry
	Capabilities types.Capabilities
	Metrics      *monitoring.Metrics
}

// Frame is the render-side surface the compositor draws each frame.
type Frame struct {
	Width  int
	Height int
	Data   []byte
}

// Source is one embedded-content instance. It registers itself on
// construction and stays discoverable until Close.
type Source struct {
	id     string
	logger *logging.Logger

	dispatcher *engine.Dispatcher
	eng        engine.Engine
	reg        *registry.Registry
	caps       types.Capabilities
	metrics    *monitoring.Metrics

	// browser is mutated only inside engine-thread tasks; the mutex makes
	// handle capture race-free for submitters on other threads.
	browserMu sync.Mutex
	browser   engine.Browser

	mu            sync.Mutex
	settings      types.Settings
	pendingCreate bool
	isShowing     bool
	isActive      bool
	firstUpdate   bool
	resetFrame    bool

	frameMu sync.Mutex
	frame   *Frame

	audioMu     sync.Mutex
	audioTracks map[int][]float32
}

// New constructs a Source and registers it. Browser creation is deferred to
// the first Tick after an Update sets a configuration, so construction stays
// cheap and batched settings can land first.
func New(cfg Config) *Source {
	s := &Source{
		id:          uuid.New().String(),
		logger:      cfg.Logger,
		dispatcher:  cfg.Dispatcher,
		eng:         cfg.Engine,
		reg:         cfg.Registry,
		caps:        cfg.Capabilities,
		metrics:     cfg.Metrics,
		firstUpdate: true,
		audioTracks: make(map[int][]float32),
	}
	if s.logger == nil {
		s.logger = logging.NewDefault()
	}

	s.reg.Register(s)
	return s
}

// ID implements registry.Member.
func (s *Source) ID() string { return s.id }

// DispatchEvent implements registry.Member: forwards a named JSON event to
// the embedded content, fire-and-forget.
func (s *Source) DispatchEvent(name string, payload []byte) {
	body := string(payload)
	s.ExecuteOnBrowser(func(b engine.Browser) {
		b.SendMessage(engine.MsgDispatchEvent, name, body)
	}, true)
}

// ExecuteOnBrowser runs fn against the browser handle on the engine thread.
// Async submission captures the handle by value and is dropped when no
// browser exists; sync submission blocks until the engine thread has run fn
// (or returns immediately if the engine thread is unavailable).
func (s *Source) ExecuteOnBrowser(fn engine.BrowserFunc, async bool) {
	if !async {
		s.dispatcher.Run(func() {
			if b := s.handle(); b != nil {
				fn(b)
			}
		})
		return
	}

	b := s.handle()
	if b == nil {
		return
	}
	s.dispatcher.Post(func() { fn(b) })
}

func (s *Source) handle() engine.Browser {
	s.browserMu.Lock()
	defer s.browserMu.Unlock()
	return s.browser
}

// Update applies a settings blob. A nil blob re-runs the teardown/recreate
// path with the current snapshot (the refresh gesture). An unchanged blob
// clears only render-side and audio resources, never the browser — redundant
// saves from settings UIs must not churn engine processes.
func (s *Source) Update(blob types.Blob) {
	if blob != nil {
		s.mu.Lock()
		next, changed := Reconcile(s.settings, blob, s.caps)
		if !changed {
			s.mu.Unlock()
			s.clearFrame()
			s.clearAudio()
			return
		}
		s.settings = next
		s.mu.Unlock()
	}

	s.destroyBrowser(true)
	s.clearFrame()
	s.clearAudio()

	s.mu.Lock()
	if !s.settings.ShutdownOnHidden || s.isShowing {
		s.pendingCreate = true
	}
	s.firstUpdate = false
	s.mu.Unlock()
}

// Tick materializes a pending creation. Called once per host frame on the
// render thread.
func (s *Source) Tick() {
	s.mu.Lock()
	pending := s.pendingCreate
	s.mu.Unlock()

	if pending && s.createBrowser() {
		s.mu.Lock()
		s.pendingCreate = false
		s.mu.Unlock()
	}

	if s.caps.SharedTexture {
		s.mu.Lock()
		if !s.settings.FPSCustom {
			s.resetFrame = true
		}
		s.mu.Unlock()
	}
}

// Render runs the per-frame render-side work. Painting the frame texture is
// the compositor's job; here only external frame pacing is driven.
func (s *Source) Render() {
	s.signalBeginFrame()
}

func (s *Source) signalBeginFrame() {
	s.mu.Lock()
	fire := s.resetFrame
	s.resetFrame = false
	s.mu.Unlock()

	if !fire {
		return
	}
	s.ExecuteOnBrowser(func(b engine.Browser) {
		b.SendExternalBeginFrame()
	}, true)
}

// createBrowser submits the creation task and reports whether submission
// succeeded. Creation itself runs on the engine thread and stores the handle.
func (s *Source) createBrowser() bool {
	return s.dispatcher.Run(func() {
		s.mu.Lock()
		st := s.settings
		showing := s.isShowing
		s.mu.Unlock()

		frameRate := st.FPS
		if s.caps.SharedTexture && !st.FPSCustom {
			frameRate = 0 // externally paced
		}

		b, err := s.eng.CreateBrowser(engine.CreateParams{
			URL:                st.URL,
			Width:              st.Width,
			Height:             st.Height,
			FrameRate:          frameRate,
			DisableWebSecurity: st.IsLocal && s.caps.LocalFileURL,
			MuteAudio:          st.RerouteAudio,
			InjectCSS:          st.CSS,
			Client:             s,
		})
		if err != nil {
			s.logger.Warn("browser creation failed",
				zap.String("instance", s.id),
				zap.String("url", st.URL),
				zap.Error(err))
			return
		}

		s.browserMu.Lock()
		s.browser = b
		s.browserMu.Unlock()

		if s.metrics != nil {
			s.metrics.BrowsersCreated.Inc()
		}

		sendBrowserVisibility(b, showing)
	})
}

// destroyBrowser detaches the client callback first so the engine never
// calls back into a half-destroyed instance, then closes the handle. The
// local handle slot is cleared immediately; queued tasks holding the old
// value no-op against the closed browser.
func (s *Source) destroyBrowser(async bool) {
	metrics := s.metrics
	s.ExecuteOnBrowser(func(b engine.Browser) {
		b.DetachClient()
		b.WasHidden(true)
		b.Close()
		if metrics != nil {
			metrics.BrowsersDestroyed.Inc()
		}
	}, async)

	s.browserMu.Lock()
	s.browser = nil
	s.browserMu.Unlock()
}

// SetShowing reacts to host visibility. Under the shutdown-when-hidden
// policy visibility drives the browser's existence; otherwise it is only
// forwarded as a message plus a notification event.
func (s *Source) SetShowing(showing bool) {
	s.mu.Lock()
	s.isShowing = showing
	shutdown := s.settings.ShutdownOnHidden
	fpsCustom := s.settings.FPSCustom
	s.mu.Unlock()

	if shutdown {
		if showing {
			s.Update(nil)
		} else {
			s.destroyBrowser(true)
		}
		return
	}

	s.ExecuteOnBrowser(func(b engine.Browser) {
		b.SendMessage(engine.MsgVisibility, showing)
		sendBrowserVisibility(b, showing)
	}, true)

	if err := s.reg.Dispatch(EventVisibleChanged, map[string]bool{"visible": showing}, s); err != nil {
		s.logger.Warn("event dispatch failed", zap.Error(err))
	}

	if s.caps.SharedTexture && showing && !fpsCustom {
		s.mu.Lock()
		s.resetFrame = false
		s.mu.Unlock()
	}
}

// SetActive reacts to the source becoming program-active. Lifecycle state is
// unaffected; restart-on-active issues a cache-bypassing reload.
func (s *Source) SetActive(active bool) {
	s.mu.Lock()
	s.isActive = active
	restart := s.settings.RestartOnActive
	s.mu.Unlock()

	s.ExecuteOnBrowser(func(b engine.Browser) {
		b.SendMessage(engine.MsgActive, active)
	}, true)

	if err := s.reg.Dispatch(EventActiveChanged, map[string]bool{"active": active}, s); err != nil {
		s.logger.Warn("event dispatch failed", zap.Error(err))
	}

	if active && restart {
		s.Refresh()
	}
}

// Refresh reloads the page ignoring caches. No lifecycle state changes.
func (s *Source) Refresh() {
	s.ExecuteOnBrowser(func(b engine.Browser) {
		b.ReloadIgnoreCache()
	}, true)
}

// SendFocus forwards a focus change, fire-and-forget.
func (s *Source) SendFocus(focus bool) {
	s.ExecuteOnBrowser(func(b engine.Browser) {
		b.SendFocus(focus)
	}, true)
}

// Close destroys the browser synchronously, releases render-side resources
// and removes the instance from the registry. The Source must not be used
// afterwards.
func (s *Source) Close() {
	s.destroyBrowser(false)
	s.clearFrame()
	s.reg.Unregister(s.id)
}

// Snapshot is a copy of observable instance state for the control API.
type Snapshot struct {
	ID            string         `json:"id"`
	Settings      types.Settings `json:"settings"`
	PendingCreate bool           `json:"pending_create"`
	IsShowing     bool           `json:"is_showing"`
	IsActive      bool           `json:"is_active"`
	HasBrowser    bool           `json:"has_browser"`
}

// Snapshot returns a copy of the instance's observable state.
func (s *Source) Snapshot() Snapshot {
	s.mu.Lock()
	snap := Snapshot{
		ID:            s.id,
		Settings:      s.settings,
		PendingCreate: s.pendingCreate,
		IsShowing:     s.isShowing,
		IsActive:      s.isActive,
	}
	s.mu.Unlock()

	snap.HasBrowser = s.handle() != nil
	return snap
}

// Frame returns the most recent rendered frame, or nil.
func (s *Source) Frame() *Frame {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()
	return s.frame
}

func (s *Source) clearFrame() {
	s.frameMu.Lock()
	s.frame = nil
	s.frameMu.Unlock()
}

// clearAudio empties the per-track audio buffers on the engine thread, where
// the audio callbacks run.
func (s *Source) clearAudio() {
	s.dispatcher.Post(func() {
		s.audioMu.Lock()
		s.audioTracks = make(map[int][]float32)
		s.audioMu.Unlock()
	})
}

// sendBrowserVisibility pushes visibility into the engine object itself:
// hiding stops rendering, showing resumes it and forces a repaint.
func sendBrowserVisibility(b engine.Browser, visible bool) {
	if visible {
		b.WasHidden(false)
		b.Invalidate()
	} else {
		b.WasHidden(true)
	}
	b.SendMessage(engine.MsgVisibility, visible)
}

// OnFrame implements engine.Client.
func (s *Source) OnFrame(width, height int, data []byte) {
	s.frameMu.Lock()
	s.frame = &Frame{Width: width, Height: height, Data: data}
	s.frameMu.Unlock()
}

// OnAudioFrame implements engine.Client.
func (s *Source) OnAudioFrame(track int, channels int, samples []float32) {
	s.audioMu.Lock()
	s.audioTracks[track] = append(s.audioTracks[track], samples...)
	s.audioMu.Unlock()
}

// OnConsoleMessage implements engine.Client.
func (s *Source) OnConsoleMessage(level, message string) {
	s.logger.Debug("page console",
		zap.String("instance", s.id),
		zap.String("level", level),
		zap.String("message", message))
}
