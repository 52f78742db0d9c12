package source

import (
	"unicode/utf8"

	"github.com/Francexi/browserhost/internal/engine"
	"github.com/Francexi/browserhost/internal/input"
	"github.com/Francexi/browserhost/internal/shared/types"
)

// Input events are forwarded fire-and-forget so the host's input path never
// blocks on engine-thread latency.

// SendMouseClick forwards a button press or release.
func (s *Source) SendMouseClick(ev types.MouseEvent, button types.MouseButton, up bool, clickCount int) {
	e := engine.MouseEvent{X: ev.X, Y: ev.Y, Modifiers: ev.Modifiers}
	s.ExecuteOnBrowser(func(b engine.Browser) {
		b.SendMouseClick(e, int32(button), up, clickCount)
	}, true)
}

// SendMouseMove forwards pointer motion, or a leave notification.
func (s *Source) SendMouseMove(ev types.MouseEvent, leave bool) {
	e := engine.MouseEvent{X: ev.X, Y: ev.Y, Modifiers: ev.Modifiers}
	s.ExecuteOnBrowser(func(b engine.Browser) {
		b.SendMouseMove(e, leave)
	}, true)
}

// SendMouseWheel forwards scroll deltas.
func (s *Source) SendMouseWheel(ev types.MouseEvent, dx, dy int) {
	e := engine.MouseEvent{X: ev.X, Y: ev.Y, Modifiers: ev.Modifiers}
	s.ExecuteOnBrowser(func(b engine.Browser) {
		b.SendMouseWheel(e, dx, dy)
	}, true)
}

// SendKeyClick forwards a keyboard event. A down-event carrying decoded text
// additionally produces a synthetic character event, because physical key
// and typed character diverge under IMEs and dead keys and the engine needs
// both representations. The character event's code is re-derived by running
// the decoded character back through the translator.
func (s *Source) SendKeyClick(ev types.KeyEvent, keyUp bool) {
	vkey := input.VirtualKeyFromKeysym(input.Keysym(ev.NativeKeysym))

	raw := engine.KeyEvent{
		Type:          engine.KeyRawDown,
		VirtualKey:    vkey,
		NativeKeyCode: ev.NativeScancode,
		Modifiers:     ev.NativeModifiers,
	}
	if keyUp {
		raw.Type = engine.KeyUp
	}
	if ev.Text != "" {
		r, _ := utf8.DecodeRuneInString(ev.Text)
		if r != utf8.RuneError {
			raw.Character = r
		}
	}

	text := ev.Text
	s.ExecuteOnBrowser(func(b engine.Browser) {
		b.SendKeyEvent(raw)
		if text != "" && !keyUp {
			ch := raw
			ch.Type = engine.KeyChar
			ch.VirtualKey = input.VirtualKeyFromRune(raw.Character)
			b.SendKeyEvent(ch)
		}
	}, true)
}
