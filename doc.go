// Package vt100 implements an in-memory, VT100/VT220-compatible terminal
// state machine: a character-driven parser and a grid of styled cells,
// with no I/O of its own.
//
// # Quick Start
//
// A Screen implements the Listener capabilities a Stream dispatches to,
// so attaching one to the other is enough to drive a terminal:
//
//	screen := vt100.NewScreen(80, 24)
//	stream := vt100.NewStream(vt100.WithListener(screen))
//	stream.FeedString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(screen.Display()[0]) // "Hello World!" padded with spaces to 80 columns
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Stream]: the parser/dispatcher, a five-state machine over
//     C0 controls, ESC sequences, CSI sequences, and charset
//     designations. It owns no screen state of its own.
//   - [Screen]: the grid, cursor, scroll margins, modes, tab stops,
//     and charset state that most listeners care about.
//   - [Cell]: one immutable, styled grid position.
//   - [Cursor]: the drawing position and the style template applied
//     to newly drawn cells.
//
// # Listeners
//
// Stream dispatches named events to every attached listener. Each event
// has its own single-method interface (e.g. [CursorUpListener]); a
// listener only needs to implement the capabilities it cares about, and
// events it doesn't handle are silently skipped for that listener.
// Multiple listeners may be attached and are called in attach order.
//
//	stream.Attach(myLogger) // myLogger only implements BellListener
//
// # Byte input
//
// Stream consumes tokens (strings), not raw bytes, since a single
// user-perceived character may be a base rune plus combining marks. Use
// [Decoder] to turn a byte stream into tokens, trying an ordered list of
// encodings and folding zero-width combining runes into the preceding
// token:
//
//	dec := vt100.NewDecoder() // utf-8, falling back to iso-8859-1
//	stream.Feed(dec.Decode(rawBytes))
//
// # Modes
//
// Standard ECMA-48 modes and DEC private modes (introduced by CSI ? ...
// h/l) share one namespace internally; private mode numbers are shifted
// left by [PrivateModeShift] so the two never collide. [Screen.Modes]
// returns the already-shifted view.
//
// # Colors
//
// Cell foreground/background colors are the fixed palette names (e.g.
// [ColorRed]), not RGB values. Use [ResolveRGBA] to map a name to an RGB
// value for rendering.
package vt100
