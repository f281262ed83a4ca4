package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharFor_LetterCaseIsShiftXorCaps(t *testing.T) {
	mods := []struct {
		mod   Mod
		upper bool
	}{
		{0, false},
		{ModLShift, true},
		{ModRShift, true},
		{ModCaps, true},
		{ModLShift | ModCaps, false},
		{ModRShift | ModCaps, false},
		{ModLShift | ModRShift, true},
		{ModCtrl, false},
	}
	for c := 'a'; c <= 'z'; c++ {
		for _, m := range mods {
			got := CharFor(Keycode(c), m.mod)
			want := c
			if m.upper {
				want = c - 'a' + 'A'
			}
			assert.Equalf(t, want, got, "key %q mod %#x", c, m.mod)
		}
	}
}

func TestCharFor_ShiftSymbols(t *testing.T) {
	table := map[rune]rune{
		'`': '~', '1': '!', '2': '@', '3': '#', '4': '$', '5': '%', '6': '^',
		'7': '&', '8': '*', '9': '(', '0': ')', '-': '_', '=': '+', '[': '{',
		']': '}', '\\': '|', ';': ':', '\'': '"', ',': '<', '.': '>', '/': '?',
	}
	for in, want := range table {
		assert.Equalf(t, want, CharFor(Keycode(in), ModLShift), "shift+%q", in)
		assert.Equalf(t, in, CharFor(Keycode(in), 0), "plain %q", in)
		// Caps lock alone never substitutes symbols.
		assert.Equalf(t, in, CharFor(Keycode(in), ModCaps), "caps+%q", in)
	}
}

func TestCharFor_UnlistedKeysPassThroughUnderShift(t *testing.T) {
	for _, c := range []rune{' ', '\r', '\t', '!', '~', 'A', 0x7f, 0xe9} {
		assert.Equalf(t, c, CharFor(Keycode(c), ModShift), "shift+%#x", c)
	}
}

func TestCharFor_WideKeycodesHaveNoCharacter(t *testing.T) {
	for _, k := range []Keycode{KeyUnknown, KeyUp, KeyHome, KeyKPEnter, 0x100} {
		assert.Zero(t, CharFor(k, ModShift))
	}
}

func TestSignalFor(t *testing.T) {
	cases := map[Keycode]Signal{
		KeyReturn:      Accept,
		KeyReturn2:     Accept,
		KeyKPEnter:     Accept,
		KeyBackspace:   Back,
		KeyKPBackspace: Back,
		KeyEscape:      Back,
		KeyUp:          Up,
		KeyDown:        Down,
		KeyLeft:        Left,
		KeyRight:       Right,
		KeyPageUp:      PageUp,
		KeyPageDown:    PageDown,
		KeyHome:        Home,
		KeyEnd:         End,
		'a':            None,
		KeyTab:         None,
	}
	for k, want := range cases {
		assert.Equalf(t, want, SignalFor(k), "key %#x", k)
	}
}

func TestTranslate_EventTypes(t *testing.T) {
	ev, ok := Translate(KeyEvent{Sym: 'x', Down: true})
	require.True(t, ok)
	assert.Equal(t, Press, ev.Type)

	ev, ok = Translate(KeyEvent{Sym: 'x', Down: true, Repeat: true})
	require.True(t, ok)
	assert.Equal(t, Hold, ev.Type)

	ev, ok = Translate(KeyEvent{Sym: 'x'})
	require.True(t, ok)
	assert.Equal(t, Release, ev.Type)
}

func TestTranslate_NavigationKeyCarriesModifiers(t *testing.T) {
	ev, ok := Translate(KeyEvent{Sym: KeyDown, Mod: ModLCtrl, Down: true})
	require.True(t, ok)
	assert.Equal(t, Event{Type: Press, Input: Down, Mods: ModLCtrl}, ev)
}

func TestTranslate_DropsEventsWithNothingToSay(t *testing.T) {
	for _, k := range []Keycode{KeyUnknown, 0x400000e1, 0x40000039} {
		_, ok := Translate(KeyEvent{Sym: k, Down: true})
		assert.Falsef(t, ok, "key %#x", k)
	}
}

func TestTranslate_ReturnYieldsSignalAndCharacter(t *testing.T) {
	ev, ok := Translate(KeyEvent{Sym: KeyReturn, Down: true})
	require.True(t, ok)
	assert.Equal(t, Accept, ev.Input)
	assert.Equal(t, '\r', ev.Value)
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit(KeyEvent{Sym: KeyQ, Mod: ModRCtrl, Down: true}))
	assert.False(t, IsQuit(KeyEvent{Sym: KeyQ, Down: true}))
	assert.False(t, IsQuit(KeyEvent{Sym: KeyQ, Mod: ModLCtrl, Down: true, Repeat: true}))
	assert.False(t, IsQuit(KeyEvent{Sym: KeyQ, Mod: ModLCtrl}))
}

func TestSignalString(t *testing.T) {
	assert.Equal(t, "pgdn", PageDown.String())
	assert.Equal(t, "signal(?)", Signal(200).String())
	assert.Equal(t, "hold", Hold.String())
}
