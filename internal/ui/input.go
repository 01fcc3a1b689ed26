package ui

import "github.com/gdamore/tcell/v2"

// KeyToken translates a key press into a command token: arrows and w/a/s/d
// move, Escape, Ctrl-C and q exit. Other keys return their character, or ""
// when they have none.
func KeyToken(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "exit"
	case tcell.KeyUp:
		return "w"
	case tcell.KeyDown:
		return "s"
	case tcell.KeyLeft:
		return "a"
	case tcell.KeyRight:
		return "d"
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return "exit"
		default:
			return string(ev.Rune())
		}
	}
	return ""
}
