package vt100

// parserState is the Stream's current position in its five-state
// machine, which implements the VT100 grammar directly rather than
// delegating to an external parsing library.
type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateArguments
	stateSharp
	stateCharset
)

// Stream is the character-driven parser/dispatcher. It owns no screen
// state; it only recognizes control/escape/CSI/sharp/charset sequences
// and dispatches named events to attached listeners.
type Stream struct {
	listeners []interface{}

	state parserState

	params      []int
	curParam    int
	curParamSet bool
	private     bool
	charsetMode byte

	aborted bool
}

// StreamOption configures a Stream at construction time using the
// standard functional-options pattern.
type StreamOption func(*Stream)

// WithListener attaches l at construction time, equivalent to calling
// Attach after NewStream.
func WithListener(l interface{}) StreamOption {
	return func(s *Stream) { s.Attach(l) }
}

// NewStream returns a Stream in its initial ground state with no
// attached listeners.
func NewStream(opts ...StreamOption) *Stream {
	s := &Stream{state: stateGround}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach registers l to receive subsequent events. Listeners are called
// in attach order.
func (s *Stream) Attach(l interface{}) {
	s.listeners = append(s.listeners, l)
}

// Feed parses data one token at a time, dispatching events as
// recognized. Each token is one user-perceived character as produced
// by the caller's decoding layer (see decode.go for the byte-oriented
// adapter): ordinarily a single rune, but possibly a base rune plus
// combining marks already clustered together.
func (s *Stream) Feed(tokens []string) {
	for _, tok := range tokens {
		s.feedOne(tok)
	}
}

// FeedString is a convenience wrapper over Feed for plain, already
// decoded text with no combining marks: each rune is its own token.
func (s *Stream) FeedString(data string) {
	tokens := make([]string, 0, len(data))
	for _, r := range data {
		tokens = append(tokens, string(r))
	}
	s.Feed(tokens)
}

// single returns (rune, true) when tok is exactly one code point —
// the only shape control codes, digits, and final bytes ever take.
// A multi-rune grapheme cluster can never match a control/escape
// mapping, so it always falls through to draw.
func single(tok string) (rune, bool) {
	rs := []rune(tok)
	if len(rs) != 1 {
		return 0, false
	}
	return rs[0], true
}

func (s *Stream) feedOne(tok string) {
	switch s.state {
	case stateGround:
		s.feedGround(tok)
	case stateEscape:
		s.feedEscape(tok)
	case stateArguments:
		s.feedArguments(tok)
	case stateSharp:
		s.feedSharp(tok)
	case stateCharset:
		s.feedCharset(tok)
	}
}

func (s *Stream) feedGround(tok string) {
	if ch, ok := single(tok); ok && ch <= 0xFF {
		if name, ok := basicEvents[byte(ch)]; ok {
			s.dispatch(name, nil, 0)
			return
		}
		switch byte(ch) {
		case ESC:
			s.state = stateEscape
			return
		case CSI:
			s.resetArguments()
			s.state = stateArguments
			return
		case NUL, DEL:
			return
		}
	}
	s.dispatchDraw(tok)
}

func (s *Stream) feedEscape(tok string) {
	ch, ok := single(tok)
	if !ok {
		s.state = stateGround
		s.debug("escape", nil, 0)
		return
	}
	switch ch {
	case '#':
		s.state = stateSharp
		return
	case '[':
		s.resetArguments()
		s.state = stateArguments
		return
	case '(', ')':
		s.charsetMode = byte(ch)
		s.state = stateCharset
		return
	}
	s.state = stateGround
	if ch > 0xFF {
		s.debug("escape", nil, 0)
		return
	}
	if name, ok := escapeEvents[byte(ch)]; ok {
		s.dispatch(name, nil, 0)
		return
	}
	s.debug("escape", nil, byte(ch))
}

func (s *Stream) feedSharp(tok string) {
	s.state = stateGround
	if ch, ok := single(tok); ok && ch <= 0xFF {
		if name, ok := sharpEvents[byte(ch)]; ok {
			s.dispatch(name, nil, 0)
			return
		}
		s.debug("sharp", nil, byte(ch))
		return
	}
	s.debug("sharp", nil, 0)
}

func (s *Stream) feedCharset(tok string) {
	s.state = stateGround
	ch, ok := single(tok)
	if !ok || ch > 0xFF {
		return
	}
	s.dispatchSetCharset(byte(ch), s.charsetMode)
}

func (s *Stream) feedArguments(tok string) {
	ch, isSingle := single(tok)
	if isSingle && ch <= 0xFF {
		if name, ok := basicEvents[byte(ch)]; ok {
			s.dispatch(name, nil, 0)
			return
		}
		switch byte(ch) {
		case '?':
			if len(s.params) == 0 && !s.curParamSet {
				s.private = true
				return
			}
		case ' ':
			return
		case CAN, SUB:
			s.resetArguments()
			s.state = stateGround
			s.dispatchDraw(tok)
			return
		}
		if ch >= '0' && ch <= '9' {
			s.curParam = s.curParam*10 + int(ch-'0')
			if s.curParam > maxParamValue {
				s.curParam = maxParamValue
			}
			s.curParamSet = true
			return
		}
		if ch == ';' {
			// `;` always pushes, defaulting an empty parameter to 0 (e.g.
			// the leading parameter in "CSI ;5H"); the no-params guard
			// only applies when finishing the sequence at the final byte.
			s.pushParam()
			return
		}
	}
	s.state = stateGround
	if !isSingle || ch > 0xFF {
		s.debug("csi", s.finishParams(), 0)
		s.resetArguments()
		return
	}
	s.pushFinalParam()
	params := s.params
	private := s.private
	aborted := s.aborted
	s.resetArguments()
	if aborted {
		s.debug("csi", params, byte(ch))
		return
	}
	if name, ok := csiEvents[byte(ch)]; ok {
		s.dispatchCSI(name, params, private)
		return
	}
	s.debug("csi", params, byte(ch))
}

// pushParam unconditionally pushes the current parameter (0 if no
// digits were seen since the last push), used by the `;` separator.
func (s *Stream) pushParam() {
	if len(s.params) >= maxParams {
		s.aborted = true
		return
	}
	s.params = append(s.params, s.curParam)
	s.curParam = 0
	s.curParamSet = false
}

// pushFinalParam pushes the trailing parameter when the sequence ends,
// but only if one is actually present — an empty parameter list (e.g.
// plain "CSI H") must stay empty rather than gain a spurious 0.
func (s *Stream) pushFinalParam() {
	if !s.curParamSet && len(s.params) == 0 {
		return
	}
	s.pushParam()
}

func (s *Stream) finishParams() []int {
	s.pushFinalParam()
	return s.params
}

func (s *Stream) resetArguments() {
	s.params = nil
	s.curParam = 0
	s.curParamSet = false
	s.private = false
	s.aborted = false
}
