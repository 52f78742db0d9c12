package source

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Francexi/browserhost/internal/engine"
	"github.com/Francexi/browserhost/internal/infrastructure/logging"
	"github.com/Francexi/browserhost/internal/input"
	"github.com/Francexi/browserhost/internal/registry"
	"github.com/Francexi/browserhost/internal/shared/types"
)

type recordedMessage struct {
	name string
	args []interface{}
}

type fakeBrowser struct {
	mu       sync.Mutex
	params   engine.CreateParams
	messages []recordedMessage
	keys     []engine.KeyEvent
	reloads  int
	hiddens  []bool
	detached bool
	closed   bool

	detachedBeforeClose bool
}

func (f *fakeBrowser) SendMessage(name string, args ...interface{}) {
	f.mu.Lock()
	f.messages = append(f.messages, recordedMessage{name: name, args: args})
	f.mu.Unlock()
}

func (f *fakeBrowser) SendKeyEvent(e engine.KeyEvent) {
	f.mu.Lock()
	f.keys = append(f.keys, e)
	f.mu.Unlock()
}

func (f *fakeBrowser) SendMouseClick(engine.MouseEvent, int32, bool, int) {}
func (f *fakeBrowser) SendMouseMove(engine.MouseEvent, bool)             {}
func (f *fakeBrowser) SendMouseWheel(engine.MouseEvent, int, int)        {}
func (f *fakeBrowser) SendFocus(bool)                                    {}
func (f *fakeBrowser) SendExternalBeginFrame()                           {}
func (f *fakeBrowser) Invalidate()                                       {}

func (f *fakeBrowser) WasHidden(hidden bool) {
	f.mu.Lock()
	f.hiddens = append(f.hiddens, hidden)
	f.mu.Unlock()
}

func (f *fakeBrowser) ReloadIgnoreCache() {
	f.mu.Lock()
	f.reloads++
	f.mu.Unlock()
}

func (f *fakeBrowser) DetachClient() {
	f.mu.Lock()
	f.detached = true
	f.mu.Unlock()
}

func (f *fakeBrowser) Close() {
	f.mu.Lock()
	f.closed = true
	f.detachedBeforeClose = f.detached
	f.mu.Unlock()
}

func (f *fakeBrowser) messageNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.messages))
	for i, m := range f.messages {
		out[i] = m.name
	}
	return out
}

type fakeEngine struct {
	mu      sync.Mutex
	created []*fakeBrowser
}

func (f *fakeEngine) CreateBrowser(p engine.CreateParams) (engine.Browser, error) {
	b := &fakeBrowser{params: p}
	f.mu.Lock()
	f.created = append(f.created, b)
	f.mu.Unlock()
	return b, nil
}

func (f *fakeEngine) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

func (f *fakeEngine) last() *fakeBrowser {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.created) == 0 {
		return nil
	}
	return f.created[len(f.created)-1]
}

type fixture struct {
	source     *Source
	eng        *fakeEngine
	dispatcher *engine.Dispatcher
	reg        *registry.Registry
}

func newFixture(t *testing.T, caps types.Capabilities) *fixture {
	t.Helper()

	d := engine.NewDispatcher(zap.NewNop())
	t.Cleanup(d.Shutdown)

	eng := &fakeEngine{}
	reg := registry.New()

	s := New(Config{
		Logger:       &logging.Logger{Logger: zap.NewNop()},
		Dispatcher:   d,
		Engine:       eng,
		Registry:     reg,
		Capabilities: caps,
	})

	return &fixture{source: s, eng: eng, dispatcher: d, reg: reg}
}

// barrier waits until every async task posted so far has run.
func (f *fixture) barrier() {
	f.dispatcher.Run(func() {})
}

func TestConstructRegistersWithoutCreating(t *testing.T) {
	f := newFixture(t, types.Capabilities{})

	assert.Equal(t, 1, f.reg.Len())
	f.source.Tick()
	assert.Equal(t, 0, f.eng.count(), "no configuration, no creation")
}

func TestDuplicateUpdateCreatesExactlyOnce(t *testing.T) {
	f := newFixture(t, types.Capabilities{LocalFileURL: true})

	f.source.Update(remoteBlob())
	f.source.Tick()
	require.Equal(t, 1, f.eng.count())

	f.source.Update(remoteBlob())
	f.source.Tick()
	assert.Equal(t, 1, f.eng.count(), "identical settings must not recreate the browser")
	assert.False(t, f.eng.last().closed, "identical settings must not destroy the browser")
}

func TestUnchangedUpdateClearsRenderResources(t *testing.T) {
	f := newFixture(t, types.Capabilities{LocalFileURL: true})

	f.source.Update(remoteBlob())
	f.source.Tick()
	f.source.OnFrame(800, 600, make([]byte, 800*600*4))
	require.NotNil(t, f.source.Frame())

	f.source.Update(remoteBlob())
	assert.Nil(t, f.source.Frame(), "no-op save doubles as a render-resource refresh")
	assert.Equal(t, 1, f.eng.count())
}

func TestChangedUpdateDestroysAndRecreates(t *testing.T) {
	f := newFixture(t, types.Capabilities{LocalFileURL: true})

	f.source.Update(remoteBlob())
	f.source.Tick()
	first := f.eng.last()

	blob := remoteBlob()
	blob["width"] = 1920
	f.source.Update(blob)
	f.barrier()
	assert.True(t, first.closed, "changed settings must destroy the old browser")

	f.source.Tick()
	assert.Equal(t, 2, f.eng.count())
	assert.Equal(t, 1920, f.eng.last().params.Width)
}

func TestShutdownWhenHiddenDefersCreation(t *testing.T) {
	f := newFixture(t, types.Capabilities{LocalFileURL: true})

	blob := remoteBlob()
	blob["shutdown"] = true
	f.source.Update(blob)

	f.source.Tick()
	require.Equal(t, 0, f.eng.count(), "hidden source must not create under shutdown policy")

	f.source.SetShowing(true)
	f.source.Tick()
	assert.Equal(t, 1, f.eng.count(), "showing the source must create exactly once")

	f.source.SetShowing(false)
	f.barrier()
	assert.True(t, f.eng.last().closed, "hiding must destroy under shutdown policy")
}

func TestSetShowingForwardsVisibility(t *testing.T) {
	f := newFixture(t, types.Capabilities{LocalFileURL: true})

	f.source.Update(remoteBlob())
	f.source.Tick()

	f.source.SetShowing(true)
	f.barrier()

	names := f.eng.last().messageNames()
	assert.Contains(t, names, engine.MsgVisibility)
	assert.Contains(t, names, engine.MsgDispatchEvent)

	b := f.eng.last()
	b.mu.Lock()
	defer b.mu.Unlock()
	var event recordedMessage
	for _, m := range b.messages {
		if m.name == engine.MsgDispatchEvent {
			event = m
		}
	}
	require.Len(t, event.args, 2)
	assert.Equal(t, EventVisibleChanged, event.args[0])
	assert.JSONEq(t, `{"visible":true}`, event.args[1].(string))
}

func TestSetActiveForwardsAndOptionallyRestarts(t *testing.T) {
	f := newFixture(t, types.Capabilities{LocalFileURL: true})

	f.source.Update(remoteBlob())
	f.source.Tick()

	f.source.SetActive(true)
	f.barrier()
	assert.Contains(t, f.eng.last().messageNames(), engine.MsgActive)
	assert.Equal(t, 0, f.eng.last().reloads)

	blob := remoteBlob()
	blob["restart_when_active"] = true
	f.source.Update(blob)
	f.source.Tick()

	f.source.SetActive(true)
	f.barrier()
	assert.Equal(t, 1, f.eng.last().reloads, "restart-on-active must reload")
}

func TestKeyDownWithTextProducesRawAndCharEvents(t *testing.T) {
	f := newFixture(t, types.Capabilities{LocalFileURL: true})

	f.source.Update(remoteBlob())
	f.source.Tick()

	f.source.SendKeyClick(types.KeyEvent{
		NativeKeysym:   0x65, // physical e key
		NativeScancode: 26,
		Text:           "é",
	}, false)
	f.barrier()

	b := f.eng.last()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.Len(t, b.keys, 2, "down-event with text must produce raw + char events")

	raw, ch := b.keys[0], b.keys[1]
	assert.Equal(t, engine.KeyRawDown, raw.Type)
	assert.Equal(t, input.VKE, raw.VirtualKey)
	assert.Equal(t, 'é', raw.Character)

	assert.Equal(t, engine.KeyChar, ch.Type)
	assert.Equal(t, input.VirtualKeyFromRune('é'), ch.VirtualKey,
		"char event code must be re-derived from the decoded character")
	assert.Equal(t, raw.NativeKeyCode, ch.NativeKeyCode)
}

func TestKeyUpProducesSingleEvent(t *testing.T) {
	f := newFixture(t, types.Capabilities{LocalFileURL: true})

	f.source.Update(remoteBlob())
	f.source.Tick()

	f.source.SendKeyClick(types.KeyEvent{NativeKeysym: 0x65, Text: "e"}, true)
	f.barrier()

	b := f.eng.last()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.Len(t, b.keys, 1, "up-event must not synthesize a char event")
	assert.Equal(t, engine.KeyUp, b.keys[0].Type)
}

func TestCloseDetachesClientBeforeDestroy(t *testing.T) {
	f := newFixture(t, types.Capabilities{LocalFileURL: true})

	f.source.Update(remoteBlob())
	f.source.Tick()
	b := f.eng.last()

	f.source.Close()

	b.mu.Lock()
	defer b.mu.Unlock()
	assert.True(t, b.closed)
	assert.True(t, b.detachedBeforeClose, "client must be detached before the browser closes")
	assert.Equal(t, 0, f.reg.Len(), "closed instance must leave the registry")
}

func TestExternalPacingOnlyWithSharedTexture(t *testing.T) {
	blob := remoteBlob()
	blob["fps_custom"] = false

	f := newFixture(t, types.Capabilities{LocalFileURL: true, SharedTexture: true})
	f.source.Update(blob)
	f.source.Tick()
	assert.Equal(t, 0, f.eng.last().params.FrameRate, "non-custom fps must be externally paced")

	f = newFixture(t, types.Capabilities{LocalFileURL: true})
	f.source.Update(blob)
	f.source.Tick()
	assert.Equal(t, 30, f.eng.last().params.FrameRate)
}

func TestLocalSourceRelaxesWebSecurityAndMutesReroutedAudio(t *testing.T) {
	f := newFixture(t, types.Capabilities{LocalFileURL: true})

	blob := remoteBlob()
	blob["is_local_file"] = true
	blob["local_file"] = "/srv/overlays/scoreboard.html"
	blob["reroute_audio"] = true
	f.source.Update(blob)
	f.source.Tick()

	p := f.eng.last().params
	assert.True(t, p.DisableWebSecurity)
	assert.True(t, p.MuteAudio)
	assert.Equal(t, "file:///srv/overlays/scoreboard.html", p.URL)
}

func TestDriverFrameTicksAttachedSources(t *testing.T) {
	f := newFixture(t, types.Capabilities{LocalFileURL: true})

	driver := NewDriver(60, &logging.Logger{Logger: zap.NewNop()})
	driver.Attach(f.source)

	f.source.Update(remoteBlob())
	driver.Frame()
	assert.Equal(t, 1, f.eng.count(), "driver frame must materialize pending creation")

	driver.Detach(f.source.ID())
	assert.Empty(t, driver.List())
}
