package input

// Keysym is a platform-native key symbol (X11 keysym numbering). Latin-1
// symbols equal their character codepoint, which is what lets a decoded
// character be fed back through the translator for synthetic char events.
type Keysym uint32

// Latin-1 block.
const (
	SymSpace        Keysym = 0x0020
	SymExclam       Keysym = 0x0021
	SymQuoteDbl     Keysym = 0x0022
	SymNumberSign   Keysym = 0x0023
	SymDollar       Keysym = 0x0024
	SymPercent      Keysym = 0x0025
	SymAmpersand    Keysym = 0x0026
	SymApostrophe   Keysym = 0x0027
	SymParenLeft    Keysym = 0x0028
	SymParenRight   Keysym = 0x0029
	SymAsterisk     Keysym = 0x002A
	SymPlus         Keysym = 0x002B
	SymComma        Keysym = 0x002C
	SymMinus        Keysym = 0x002D
	SymPeriod       Keysym = 0x002E
	SymSlash        Keysym = 0x002F
	Sym0            Keysym = 0x0030
	Sym9            Keysym = 0x0039
	SymColon        Keysym = 0x003A
	SymSemicolon    Keysym = 0x003B
	SymLess         Keysym = 0x003C
	SymEqual        Keysym = 0x003D
	SymGreater      Keysym = 0x003E
	SymQuestion     Keysym = 0x003F
	SymAt           Keysym = 0x0040
	SymUpperA       Keysym = 0x0041
	SymUpperZ       Keysym = 0x005A
	SymBracketLeft  Keysym = 0x005B
	SymBackslash    Keysym = 0x005C
	SymBracketRight Keysym = 0x005D
	SymAsciiCircum  Keysym = 0x005E
	SymUnderscore   Keysym = 0x005F
	SymGrave        Keysym = 0x0060
	SymLowerA       Keysym = 0x0061
	SymLowerZ       Keysym = 0x007A
	SymBraceLeft    Keysym = 0x007B
	SymBar          Keysym = 0x007C
	SymBraceRight   Keysym = 0x007D
	SymAsciiTilde   Keysym = 0x007E
	SymBrokenBar    Keysym = 0x00A6
	SymGuillemotL   Keysym = 0x00AB
	SymDegree       Keysym = 0x00B0
	SymGuillemotR   Keysym = 0x00BB
	SymUpperUgrave  Keysym = 0x00D9
	SymLowerUgrave  Keysym = 0x00F9
)

// Function and editing keys.
const (
	SymBackSpace  Keysym = 0xFF08
	SymTab        Keysym = 0xFF09
	SymLinefeed   Keysym = 0xFF0A
	SymClear      Keysym = 0xFF0B
	SymReturn     Keysym = 0xFF0D
	SymPause      Keysym = 0xFF13
	SymScrollLock Keysym = 0xFF14
	SymEscape     Keysym = 0xFF1B
	SymMultiKey   Keysym = 0xFF20
	SymKanji      Keysym = 0xFF21
	SymMuhenkan   Keysym = 0xFF22
	SymHenkan     Keysym = 0xFF23
	SymKanaLock   Keysym = 0xFF2D
	SymKanaShift  Keysym = 0xFF2E
	SymHangul     Keysym = 0xFF31
	SymHangulHanja Keysym = 0xFF34

	SymHome     Keysym = 0xFF50
	SymLeft     Keysym = 0xFF51
	SymUp       Keysym = 0xFF52
	SymRight    Keysym = 0xFF53
	SymDown     Keysym = 0xFF54
	SymPageUp   Keysym = 0xFF55
	SymPageDown Keysym = 0xFF56
	SymEnd      Keysym = 0xFF57
	SymSelect   Keysym = 0xFF60
	SymPrint    Keysym = 0xFF61
	SymExecute  Keysym = 0xFF62
	SymInsert   Keysym = 0xFF63
	SymMenu     Keysym = 0xFF67
	SymHelp     Keysym = 0xFF6A
	SymNumLock  Keysym = 0xFF7F
	SymDelete   Keysym = 0xFFFF

	SymKPSpace     Keysym = 0xFF80
	SymKPTab       Keysym = 0xFF89
	SymKPEnter     Keysym = 0xFF8D
	SymKPF1        Keysym = 0xFF91
	SymKPF4        Keysym = 0xFF94
	SymKPHome      Keysym = 0xFF95
	SymKPLeft      Keysym = 0xFF96
	SymKPUp        Keysym = 0xFF97
	SymKPRight     Keysym = 0xFF98
	SymKPDown      Keysym = 0xFF99
	SymKPPageUp    Keysym = 0xFF9A
	SymKPPageDown  Keysym = 0xFF9B
	SymKPEnd       Keysym = 0xFF9C
	SymKPBegin     Keysym = 0xFF9D
	SymKPInsert    Keysym = 0xFF9E
	SymKPDelete    Keysym = 0xFF9F
	SymKPMultiply  Keysym = 0xFFAA
	SymKPAdd       Keysym = 0xFFAB
	SymKPSeparator Keysym = 0xFFAC
	SymKPSubtract  Keysym = 0xFFAD
	SymKPDecimal   Keysym = 0xFFAE
	SymKPDivide    Keysym = 0xFFAF
	SymKP0         Keysym = 0xFFB0
	SymKP9         Keysym = 0xFFB9
	SymKPEqual     Keysym = 0xFFBD

	SymF1  Keysym = 0xFFBE
	SymF24 Keysym = 0xFFD5

	SymShiftL    Keysym = 0xFFE1
	SymShiftR    Keysym = 0xFFE2
	SymControlL  Keysym = 0xFFE3
	SymControlR  Keysym = 0xFFE4
	SymCapsLock  Keysym = 0xFFE5
	SymMetaL     Keysym = 0xFFE7
	SymMetaR     Keysym = 0xFFE8
	SymAltL      Keysym = 0xFFE9
	SymAltR      Keysym = 0xFFEA
	SymSuperL    Keysym = 0xFFEB
	SymSuperR    Keysym = 0xFFEC

	SymISOLevel3Shift Keysym = 0xFE03
	SymISOLevel5Shift Keysym = 0xFE11
	SymISOLeftTab     Keysym = 0xFE20
	SymISOEnter       Keysym = 0xFE34
	Sym3270BackTab    Keysym = 0xFD05
)

// Vendor (XF86) multimedia, browser and power symbols.
const (
	SymXFMonBrightnessUp   Keysym = 0x1008FF02
	SymXFMonBrightnessDown Keysym = 0x1008FF03
	SymXFKbdBrightnessUp   Keysym = 0x1008FF05
	SymXFKbdBrightnessDown Keysym = 0x1008FF06
	SymXFAudioLowerVolume  Keysym = 0x1008FF11
	SymXFAudioMute         Keysym = 0x1008FF12
	SymXFAudioRaiseVolume  Keysym = 0x1008FF13
	SymXFAudioPlay         Keysym = 0x1008FF14
	SymXFAudioStop         Keysym = 0x1008FF15
	SymXFAudioPrev         Keysym = 0x1008FF16
	SymXFAudioNext         Keysym = 0x1008FF17
	SymXFHomePage          Keysym = 0x1008FF18
	SymXFMail              Keysym = 0x1008FF19
	SymXFSearch            Keysym = 0x1008FF1B
	SymXFCalculator        Keysym = 0x1008FF1D
	SymXFBack              Keysym = 0x1008FF26
	SymXFForward           Keysym = 0x1008FF27
	SymXFStop              Keysym = 0x1008FF28
	SymXFRefresh           Keysym = 0x1008FF29
	SymXFPowerOff          Keysym = 0x1008FF2A
	SymXFFavorites         Keysym = 0x1008FF30
	SymXFHistory           Keysym = 0x1008FF37
	SymXFOpenURL           Keysym = 0x1008FF38
	SymXFAddFavorite       Keysym = 0x1008FF39
	SymXFLaunch5           Keysym = 0x1008FF45
	SymXFLaunch6           Keysym = 0x1008FF46
	SymXFLaunch7           Keysym = 0x1008FF47
	SymXFLaunch8           Keysym = 0x1008FF48
	SymXFLaunch9           Keysym = 0x1008FF49
	SymXFLaunchA           Keysym = 0x1008FF4A
	SymXFLaunchB           Keysym = 0x1008FF4B
	SymXFGo                Keysym = 0x1008FF5F
	SymXFReload            Keysym = 0x1008FF73
	SymXFTools             Keysym = 0x1008FF81
	SymXFZoomIn            Keysym = 0x1008FF8B
	SymXFZoomOut           Keysym = 0x1008FF8C
	SymXFWLAN              Keysym = 0x1008FF95
)
