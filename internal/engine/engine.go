package engine

import (
	"github.com/Francexi/browserhost/internal/input"
)

// Process message names understood by the embedded content.
const (
	MsgVisibility    = "Visibility"
	MsgActive        = "Active"
	MsgDispatchEvent = "DispatchJSEvent"
)

// KeyEventType distinguishes the injected keyboard event kinds.
type KeyEventType int

const (
	KeyRawDown KeyEventType = iota
	KeyUp
	KeyChar
)

// KeyEvent is a fully-translated keyboard event ready for injection.
type KeyEvent struct {
	Type          KeyEventType
	VirtualKey    input.VKey
	NativeKeyCode uint32
	Modifiers     uint32
	Character     rune
}

// MouseEvent is a pointer event ready for injection.
type MouseEvent struct {
	X         int32
	Y         int32
	Modifiers uint32
}

// CreateParams are the construction-time browser parameters. Most of them
// cannot be changed on a live browser, which is why reconfiguration goes
// through destroy/recreate.
type CreateParams struct {
	URL    string
	Width  int
	Height int

	// FrameRate in frames per second; 0 means externally paced via
	// SendExternalBeginFrame.
	FrameRate int

	// DisableWebSecurity is set for local sources so file content can reach
	// remote APIs.
	DisableWebSecurity bool

	// MuteAudio is set when audio is rerouted to the host mixer so the
	// engine does not also play it.
	MuteAudio bool

	// InjectCSS is applied to every loaded page.
	InjectCSS string

	// Client receives callbacks from the browser. May be detached later.
	Client Client
}

// Client receives callbacks from a live browser. Implementations must
// tolerate calls racing their own teardown; browsers detach the client
// before destruction.
type Client interface {
	// OnFrame delivers a rendered frame buffer.
	OnFrame(width, height int, data []byte)

	// OnAudioFrame delivers planar audio for one track.
	OnAudioFrame(track int, channels int, samples []float32)

	// OnConsoleMessage mirrors the page's console output.
	OnConsoleMessage(level, message string)
}

// Browser is an opaque handle to one embedded browser session. All methods
// must be called on the engine thread, i.e. from inside dispatcher tasks.
type Browser interface {
	// SendMessage delivers a named process message to the embedded content.
	SendMessage(name string, args ...interface{})

	SendKeyEvent(e KeyEvent)
	SendMouseClick(e MouseEvent, button int32, up bool, clickCount int)
	SendMouseMove(e MouseEvent, leave bool)
	SendMouseWheel(e MouseEvent, dx, dy int)
	SendFocus(focus bool)

	// SendExternalBeginFrame requests one frame when externally paced.
	SendExternalBeginFrame()

	// WasHidden pauses or resumes rendering.
	WasHidden(hidden bool)

	// Invalidate forces a repaint of the view.
	Invalidate()

	// ReloadIgnoreCache reloads the page bypassing caches.
	ReloadIgnoreCache()

	// DetachClient severs the client callback so a half-destroyed owner is
	// never called back into.
	DetachClient()

	// Close destroys the browser. The handle is invalid afterwards.
	Close()
}

// Engine creates browser sessions. Implementations live behind the
// dispatcher; CreateBrowser is only ever called from the engine thread.
type Engine interface {
	CreateBrowser(p CreateParams) (Browser, error)
}

// BrowserFunc is a unit of work operating on a captured browser handle.
type BrowserFunc func(b Browser)
