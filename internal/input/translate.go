package input

// VirtualKeyFromKeysym maps a native key symbol to its canonical virtual-key
// code. Total function: symbols without a canonical equivalent return
// VKUnknown. Safe for concurrent use; no state.
func VirtualKeyFromKeysym(sym Keysym) VKey {
	// Contiguous blocks first.
	switch {
	case sym >= Sym0 && sym <= Sym9:
		return VK0 + VKey(sym-Sym0)
	case sym >= SymUpperA && sym <= SymUpperZ:
		return VKA + VKey(sym-SymUpperA)
	case sym >= SymLowerA && sym <= SymLowerZ:
		return VKA + VKey(sym-SymLowerA)
	case sym >= SymKP0 && sym <= SymKP9:
		return VKNumpad0 + VKey(sym-SymKP0)
	case sym >= SymF1 && sym <= SymF24:
		return VKF1 + VKey(sym-SymF1)
	case sym >= SymKPF1 && sym <= SymKPF4:
		return VKF1 + VKey(sym-SymKPF1)
	}

	switch sym {
	case SymBackSpace:
		return VKBack
	case SymDelete, SymKPDelete:
		return VKDelete
	case SymTab, SymKPTab, SymISOLeftTab, Sym3270BackTab:
		return VKTab
	case SymLinefeed, SymReturn, SymKPEnter, SymISOEnter:
		return VKReturn
	case SymClear, SymKPBegin: // numpad 5 without num lock
		return VKClear
	case SymKPSpace, SymSpace:
		return VKSpace
	case SymHome, SymKPHome:
		return VKHome
	case SymEnd, SymKPEnd:
		return VKEnd
	case SymPageUp, SymKPPageUp:
		return VKPrior
	case SymPageDown, SymKPPageDown:
		return VKNext
	case SymLeft, SymKPLeft:
		return VKLeft
	case SymRight, SymKPRight:
		return VKRight
	case SymDown, SymKPDown:
		return VKDown
	case SymUp, SymKPUp:
		return VKUp
	case SymEscape:
		return VKEscape
	case SymKanaLock, SymKanaShift:
		return VKKana
	case SymHangul:
		return VKHangul
	case SymHangulHanja:
		return VKHanja
	case SymKanji:
		return VKKanji
	case SymHenkan:
		return VKConvert
	case SymMuhenkan:
		return VKNonConvert

	// Shifted digit-row symbols map to the unshifted digit's key.
	case SymParenRight:
		return VK0
	case SymExclam:
		return VK1
	case SymAt:
		return VK2
	case SymNumberSign:
		return VK3
	case SymDollar:
		return VK4
	case SymPercent:
		return VK5
	case SymAsciiCircum:
		return VK6
	case SymAmpersand:
		return VK7
	case SymAsterisk:
		return VK8
	case SymParenLeft:
		return VK9

	case SymKPMultiply:
		return VKMultiply
	case SymKPAdd:
		return VKAdd
	case SymKPSeparator:
		return VKSeparator
	case SymKPSubtract:
		return VKSubtract
	case SymKPDecimal:
		return VKDecimal
	case SymKPDivide:
		return VKDivide
	case SymKPEqual, SymEqual, SymPlus:
		return VKOEMPlus
	case SymComma, SymLess:
		return VKOEMComma
	case SymMinus, SymUnderscore:
		return VKOEMMinus
	case SymGreater, SymPeriod:
		return VKOEMPeriod
	case SymColon, SymSemicolon:
		return VKOEM1
	case SymQuestion, SymSlash:
		return VKOEM2
	case SymAsciiTilde, SymGrave:
		return VKOEM3
	case SymBracketLeft, SymBraceLeft:
		return VKOEM4
	case SymBackslash, SymBar:
		return VKOEM5
	case SymBracketRight, SymBraceRight:
		return VKOEM6
	case SymApostrophe, SymQuoteDbl:
		return VKOEM7
	case SymISOLevel5Shift:
		return VKOEM8
	case SymShiftL, SymShiftR:
		return VKShift
	case SymControlL, SymControlR:
		return VKControl
	case SymMetaL, SymMetaR, SymAltL, SymAltR:
		return VKMenu
	case SymISOLevel3Shift:
		return VKAltGr
	case SymMultiKey:
		return VKCompose
	case SymPause:
		return VKPause
	case SymCapsLock:
		return VKCapital
	case SymNumLock:
		return VKNumLock
	case SymScrollLock:
		return VKScroll
	case SymSelect:
		return VKSelect
	case SymPrint:
		return VKPrint
	case SymExecute:
		return VKExecute
	case SymInsert, SymKPInsert:
		return VKInsert
	case SymHelp:
		return VKHelp
	case SymSuperL:
		return VKLWin
	case SymSuperR:
		return VKRWin
	case SymMenu:
		return VKApps

	// International backslash key on 102-key boards (also ugrave on the
	// Canadian multilingual layout).
	case SymGuillemotL, SymGuillemotR, SymDegree, SymLowerUgrave, SymUpperUgrave, SymBrokenBar:
		return VKOEM102

	// evdev maps F13-F18 on Microsoft Ergonomic keyboards to these vendor
	// symbols; map them back.
	case SymXFTools:
		return VKF13
	case SymXFLaunch5:
		return VKF14
	case SymXFLaunch6:
		return VKF15
	case SymXFLaunch7:
		return VKF16
	case SymXFLaunch8:
		return VKF17
	case SymXFLaunch9:
		return VKF18

	case SymXFRefresh, SymXFHistory, SymXFOpenURL, SymXFAddFavorite, SymXFGo, SymXFZoomIn, SymXFZoomOut:
		return VKUnknown

	case SymXFBack:
		return VKBrowserBack
	case SymXFForward:
		return VKBrowserForward
	case SymXFReload:
		return VKBrowserRefresh
	case SymXFStop:
		return VKBrowserStop
	case SymXFSearch:
		return VKBrowserSearch
	case SymXFFavorites:
		return VKBrowserFavorites
	case SymXFHomePage:
		return VKBrowserHome
	case SymXFAudioMute:
		return VKVolumeMute
	case SymXFAudioLowerVolume:
		return VKVolumeDown
	case SymXFAudioRaiseVolume:
		return VKVolumeUp
	case SymXFAudioNext:
		return VKMediaNextTrack
	case SymXFAudioPrev:
		return VKMediaPrevTrack
	case SymXFAudioStop:
		return VKMediaStop
	case SymXFAudioPlay:
		return VKMediaPlayPause
	case SymXFMail:
		return VKMediaLaunchMail
	case SymXFLaunchA: // F3 on an Apple keyboard
		return VKMediaLaunchApp1
	case SymXFLaunchB, SymXFCalculator: // F4 on an Apple keyboard
		return VKMediaLaunchApp2
	case SymXFWLAN:
		return VKWLAN
	case SymXFPowerOff:
		return VKPower
	case SymXFMonBrightnessDown:
		return VKBrightnessDown
	case SymXFMonBrightnessUp:
		return VKBrightnessUp
	case SymXFKbdBrightnessDown:
		return VKKbdBrightnessDown
	case SymXFKbdBrightnessUp:
		return VKKbdBrightnessUp
	}

	return VKUnknown
}

// VirtualKeyFromRune derives a virtual-key code for a decoded character, used
// when synthesizing char events after a raw key-down. Latin-1 keysyms equal
// their codepoint, so the rune can go straight through the translator.
func VirtualKeyFromRune(r rune) VKey {
	return VirtualKeyFromKeysym(Keysym(r))
}
