// Package input translates raw keyboard events into the small, layout
// independent vocabulary understood by the widget toolkit.
//
// Key codes and modifier bits carry SDL's numeric values, so the SDL layer
// converts its keysym fields with a plain cast.
package input

// Keycode is a virtual key code with SDL_Keycode numbering.
type Keycode int32

// Key codes the translator cares about.
const (
	KeyUnknown     Keycode = 0
	KeyBackspace   Keycode = 0x08
	KeyTab         Keycode = 0x09
	KeyReturn      Keycode = 0x0d
	KeyEscape      Keycode = 0x1b
	KeySpace       Keycode = 0x20
	KeyQ           Keycode = 'q'
	KeyHome        Keycode = 0x4000004a
	KeyPageUp      Keycode = 0x4000004b
	KeyEnd         Keycode = 0x4000004d
	KeyPageDown    Keycode = 0x4000004e
	KeyRight       Keycode = 0x4000004f
	KeyLeft        Keycode = 0x40000050
	KeyDown        Keycode = 0x40000051
	KeyUp          Keycode = 0x40000052
	KeyKPEnter     Keycode = 0x40000058
	KeyReturn2     Keycode = 0x4000009e
	KeyKPBackspace Keycode = 0x400000bb
)

// Mod is a modifier bitmask with SDL_Keymod numbering.
type Mod uint16

// Modifier bits.
const (
	ModLShift Mod = 0x0001
	ModRShift Mod = 0x0002
	ModLCtrl  Mod = 0x0040
	ModRCtrl  Mod = 0x0080
	ModLAlt   Mod = 0x0100
	ModRAlt   Mod = 0x0200
	ModCaps   Mod = 0x2000

	ModShift = ModLShift | ModRShift
	ModCtrl  = ModLCtrl | ModRCtrl
	ModAlt   = ModLAlt | ModRAlt
)

// Signal is an abstract navigation or action intent.
type Signal uint8

// Signals, None being the default for unmapped keys.
const (
	None Signal = iota
	Up
	Down
	Left
	Right
	Accept
	Back
	PageUp
	PageDown
	Home
	End
)

var signalNames = [...]string{
	None:     "none",
	Up:       "up",
	Down:     "down",
	Left:     "left",
	Right:    "right",
	Accept:   "accept",
	Back:     "back",
	PageUp:   "pgup",
	PageDown: "pgdn",
	Home:     "home",
	End:      "end",
}

func (s Signal) String() string {
	if int(s) < len(signalNames) {
		return signalNames[s]
	}
	return "signal(?)"
}

// EventType tells presses, auto-repeats and releases apart.
type EventType uint8

const (
	Press EventType = iota
	Hold
	Release
)

func (t EventType) String() string {
	switch t {
	case Press:
		return "press"
	case Hold:
		return "hold"
	case Release:
		return "release"
	}
	return "type(?)"
}

// KeyEvent is a raw key-down or key-up as reported by the windowing system.
type KeyEvent struct {
	Sym    Keycode
	Mod    Mod
	Down   bool
	Repeat bool
}

// Event is a translated key event.
type Event struct {
	Type  EventType
	Input Signal
	// Value is the printable character for the key, 0 if there is none.
	Value rune
	Mods  Mod
}

// SignalFor maps a key code to its signal.
func SignalFor(sym Keycode) Signal {
	switch sym {
	case KeyReturn, KeyReturn2, KeyKPEnter:
		return Accept
	case KeyBackspace, KeyKPBackspace, KeyEscape:
		return Back
	case KeyUp:
		return Up
	case KeyDown:
		return Down
	case KeyLeft:
		return Left
	case KeyRight:
		return Right
	case KeyPageUp:
		return PageUp
	case KeyPageDown:
		return PageDown
	case KeyHome:
		return Home
	case KeyEnd:
		return End
	}
	return None
}

var shifted = map[rune]rune{
	'`':  '~',
	'1':  '!',
	'2':  '@',
	'3':  '#',
	'4':  '$',
	'5':  '%',
	'6':  '^',
	'7':  '&',
	'8':  '*',
	'9':  '(',
	'0':  ')',
	'-':  '_',
	'=':  '+',
	'[':  '{',
	']':  '}',
	'\\': '|',
	';':  ':',
	'\'': '"',
	',':  '<',
	'.':  '>',
	'/':  '?',
}

// CharFor returns the character a key produces under mod, or 0 when the key
// code lies outside the 8-bit range.
func CharFor(sym Keycode, mod Mod) rune {
	if sym == 0 || sym&^0xff != 0 {
		return 0
	}
	c := rune(sym)
	shift := mod&ModShift != 0
	caps := mod&ModCaps != 0
	if c >= 'a' && c <= 'z' {
		if shift != caps {
			c &= 0xdf
		}
		return c
	}
	if shift {
		if s, ok := shifted[c]; ok {
			return s
		}
	}
	return c
}

// Translate converts a raw key event. The second result is false when the
// event carries neither a signal nor a character and must be dropped.
func Translate(ev KeyEvent) (Event, bool) {
	out := Event{
		Input: SignalFor(ev.Sym),
		Value: CharFor(ev.Sym, ev.Mod),
		Mods:  ev.Mod,
	}
	switch {
	case !ev.Down:
		out.Type = Release
	case ev.Repeat:
		out.Type = Hold
	default:
		out.Type = Press
	}
	if out.Input == None && out.Value == 0 {
		return Event{}, false
	}
	return out, true
}

// IsQuit reports whether ev is the Ctrl+Q quit chord.
func IsQuit(ev KeyEvent) bool {
	return ev.Down && !ev.Repeat && ev.Sym == KeyQ && ev.Mod&ModCtrl != 0
}
