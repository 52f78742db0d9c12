package input

// VKey is a canonical, platform-independent virtual-key code. Values follow
// the Windows virtual-key numbering, which is what embedded browser engines
// expect in injected keyboard events.
type VKey uint32

const (
	VKUnknown VKey = 0

	VKBack       VKey = 0x08
	VKTab        VKey = 0x09
	VKClear      VKey = 0x0C
	VKReturn     VKey = 0x0D
	VKShift      VKey = 0x10
	VKControl    VKey = 0x11
	VKMenu       VKey = 0x12 // alt
	VKPause      VKey = 0x13
	VKCapital    VKey = 0x14
	VKKana       VKey = 0x15
	VKHangul     VKey = 0x15
	VKHanja      VKey = 0x19
	VKKanji      VKey = 0x19
	VKEscape     VKey = 0x1B
	VKConvert    VKey = 0x1C
	VKNonConvert VKey = 0x1D
	VKSpace      VKey = 0x20
	VKPrior      VKey = 0x21 // page up
	VKNext       VKey = 0x22 // page down
	VKEnd        VKey = 0x23
	VKHome       VKey = 0x24
	VKLeft       VKey = 0x25
	VKUp         VKey = 0x26
	VKRight      VKey = 0x27
	VKDown       VKey = 0x28
	VKSelect     VKey = 0x29
	VKPrint      VKey = 0x2A
	VKExecute    VKey = 0x2B
	VKSnapshot   VKey = 0x2C
	VKInsert     VKey = 0x2D
	VKDelete     VKey = 0x2E
	VKHelp       VKey = 0x2F

	VK0 VKey = 0x30
	VK1 VKey = 0x31
	VK2 VKey = 0x32
	VK3 VKey = 0x33
	VK4 VKey = 0x34
	VK5 VKey = 0x35
	VK6 VKey = 0x36
	VK7 VKey = 0x37
	VK8 VKey = 0x38
	VK9 VKey = 0x39

	VKA VKey = 0x41
	VKB VKey = 0x42
	VKC VKey = 0x43
	VKD VKey = 0x44
	VKE VKey = 0x45
	VKF VKey = 0x46
	VKG VKey = 0x47
	VKH VKey = 0x48
	VKI VKey = 0x49
	VKJ VKey = 0x4A
	VKK VKey = 0x4B
	VKL VKey = 0x4C
	VKM VKey = 0x4D
	VKN VKey = 0x4E
	VKO VKey = 0x4F
	VKP VKey = 0x50
	VKQ VKey = 0x51
	VKR VKey = 0x52
	VKS VKey = 0x53
	VKT VKey = 0x54
	VKU VKey = 0x55
	VKV VKey = 0x56
	VKW VKey = 0x57
	VKX VKey = 0x58
	VKY VKey = 0x59
	VKZ VKey = 0x5A

	VKLWin VKey = 0x5B
	VKRWin VKey = 0x5C
	VKApps VKey = 0x5D

	VKNumpad0   VKey = 0x60
	VKNumpad1   VKey = 0x61
	VKNumpad2   VKey = 0x62
	VKNumpad3   VKey = 0x63
	VKNumpad4   VKey = 0x64
	VKNumpad5   VKey = 0x65
	VKNumpad6   VKey = 0x66
	VKNumpad7   VKey = 0x67
	VKNumpad8   VKey = 0x68
	VKNumpad9   VKey = 0x69
	VKMultiply  VKey = 0x6A
	VKAdd       VKey = 0x6B
	VKSeparator VKey = 0x6C
	VKSubtract  VKey = 0x6D
	VKDecimal   VKey = 0x6E
	VKDivide    VKey = 0x6F

	VKF1  VKey = 0x70
	VKF2  VKey = 0x71
	VKF3  VKey = 0x72
	VKF4  VKey = 0x73
	VKF5  VKey = 0x74
	VKF6  VKey = 0x75
	VKF7  VKey = 0x76
	VKF8  VKey = 0x77
	VKF9  VKey = 0x78
	VKF10 VKey = 0x79
	VKF11 VKey = 0x7A
	VKF12 VKey = 0x7B
	VKF13 VKey = 0x7C
	VKF14 VKey = 0x7D
	VKF15 VKey = 0x7E
	VKF16 VKey = 0x7F
	VKF17 VKey = 0x80
	VKF18 VKey = 0x81
	VKF19 VKey = 0x82
	VKF20 VKey = 0x83
	VKF21 VKey = 0x84
	VKF22 VKey = 0x85
	VKF23 VKey = 0x86
	VKF24 VKey = 0x87

	VKNumLock VKey = 0x90
	VKScroll  VKey = 0x91

	// POSIX-specific codes placed in ranges Windows leaves unassigned.
	VKWLAN              VKey = 0x97
	VKPower             VKey = 0x98
	VKBrightnessDown    VKey = 0xD8
	VKBrightnessUp      VKey = 0xD9
	VKKbdBrightnessDown VKey = 0xDA
	VKKbdBrightnessUp   VKey = 0xE8

	VKBrowserBack      VKey = 0xA6
	VKBrowserForward   VKey = 0xA7
	VKBrowserRefresh   VKey = 0xA8
	VKBrowserStop      VKey = 0xA9
	VKBrowserSearch    VKey = 0xAA
	VKBrowserFavorites VKey = 0xAB
	VKBrowserHome      VKey = 0xAC
	VKVolumeMute       VKey = 0xAD
	VKVolumeDown       VKey = 0xAE
	VKVolumeUp         VKey = 0xAF
	VKMediaNextTrack   VKey = 0xB0
	VKMediaPrevTrack   VKey = 0xB1
	VKMediaStop        VKey = 0xB2
	VKMediaPlayPause   VKey = 0xB3
	VKMediaLaunchMail  VKey = 0xB4
	VKMediaLaunchApp1  VKey = 0xB6
	VKMediaLaunchApp2  VKey = 0xB7

	VKOEM1      VKey = 0xBA // ;:
	VKOEMPlus   VKey = 0xBB // =+
	VKOEMComma  VKey = 0xBC // ,<
	VKOEMMinus  VKey = 0xBD // -_
	VKOEMPeriod VKey = 0xBE // .>
	VKOEM2      VKey = 0xBF // /?
	VKOEM3      VKey = 0xC0 // `~
	VKOEM4      VKey = 0xDB // [{
	VKOEM5      VKey = 0xDC // \|
	VKOEM6      VKey = 0xDD // ]}
	VKOEM7      VKey = 0xDE // '"
	VKOEM8      VKey = 0xDF
	VKOEM102    VKey = 0xE2 // international backslash on 102-key boards

	// AltGr and Compose have no Windows code; unused slots are borrowed,
	// matching Firefox on Linux.
	VKAltGr   VKey = 0xE1
	VKCompose VKey = 0xE6
)
