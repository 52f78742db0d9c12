package types

// MouseButton identifies which mouse button a click event refers to.
type MouseButton int32

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// MouseEvent carries pointer position and active modifier flags.
type MouseEvent struct {
	X         int32
	Y         int32
	Modifiers uint32
}

// KeyEvent is a raw host keyboard event before translation. NativeKeysym is
// the platform key symbol (X11 keysym); Text carries decoded characters when
// the platform produced any (IME, dead keys).
type KeyEvent struct {
	NativeKeysym    uint32
	NativeScancode  uint32
	NativeModifiers uint32
	Text            string
}
