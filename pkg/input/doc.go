// Package input translates raw remote-control key codes into symbolic actions.
//
// The translation is a fixed lookup through a [Table]. [DefaultTable] holds the
// standard set-top-box mapping:
//
//	48-57     digit:<n>          black
//	403-406   colorKey:<color>   red, green, yellow, blue
//	27        exit               black
//	10        confirm            black
//	151       asterisk           black
//	520       hash               black
//	37-40     navigate:<dir>     black
//	116       menu               light green
//	117       info               light blue
//	other     unhandled          black
//
// A [Dispatcher] resolves codes against a table and forwards the result to the
// single registered [Handler]:
//
//	d := input.NewDispatcher(nil)
//	d.Register(func(label input.Label, highlight graphics.Color) {
//	    text.SetValue(string(label))
//	    surface.SetBackground(highlight)
//	    surface.Repaint()
//	})
//	d.Dispatch(input.CodeRed)
//
// Dispatch is total. Unknown codes are a normal outcome and resolve to
// "unhandled".
package input
