package vt100

import (
	"reflect"
	"testing"
)

type recordingListener struct {
	events   []string
	debugs   []string
	lastLine int
	lastCol  int
	lastUp   int
}

func (r *recordingListener) Draw(ch string)    { r.events = append(r.events, "draw:"+ch) }
func (r *recordingListener) Bell()             { r.events = append(r.events, "bell") }
func (r *recordingListener) CarriageReturn()   { r.events = append(r.events, "cr") }
func (r *recordingListener) Linefeed()         { r.events = append(r.events, "lf") }
func (r *recordingListener) Reset()            { r.events = append(r.events, "reset") }
func (r *recordingListener) CursorUp(n int)    { r.events = append(r.events, "up"); r.lastUp = n }
func (r *recordingListener) CursorPosition(line, col int) {
	r.events = append(r.events, "position")
	r.lastLine, r.lastCol = line, col
}
func (r *recordingListener) SetMode(m []int, private bool) {
	r.events = append(r.events, "set_mode")
}
func (r *recordingListener) Debug(name string, params []int, b byte) {
	r.debugs = append(r.debugs, name)
}

func TestStreamBasicControlsDispatch(t *testing.T) {
	r := &recordingListener{}
	s := NewStream(WithListener(r))
	s.FeedString("A\aB\rC\n")

	want := []string{"draw:A", "bell", "draw:B", "cr", "draw:C", "lf"}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("events = %v, want %v", r.events, want)
	}
}

func TestStreamEscapeDispatch(t *testing.T) {
	r := &recordingListener{}
	s := NewStream(WithListener(r))
	s.FeedString("\x1bc")

	if len(r.events) != 1 || r.events[0] != "reset" {
		t.Errorf("events = %v, want [reset]", r.events)
	}
}

func TestStreamCSIDispatch(t *testing.T) {
	r := &recordingListener{}
	s := NewStream(WithListener(r))
	s.FeedString("\x1b[5A")

	if len(r.events) != 1 || r.events[0] != "up" {
		t.Errorf("events = %v, want [up]", r.events)
	}
}

func TestStreamLeadingEmptyParamDefaultsToZero(t *testing.T) {
	r := &recordingListener{}
	s := NewStream(WithListener(r))
	s.FeedString("\x1b[;5H")

	if len(r.events) != 1 || r.events[0] != "position" {
		t.Fatalf("events = %v, want [position]", r.events)
	}
	// Row parameter was empty (defaults to 0, reinterpreted as 1);
	// column parameter was 5.
	if r.lastLine != 0 || r.lastCol != 5 {
		t.Errorf("line, col = %d, %d, want 0, 5", r.lastLine, r.lastCol)
	}
}

func TestStreamPrivateModeDispatch(t *testing.T) {
	r := &recordingListener{}
	s := NewStream(WithListener(r))
	s.FeedString("\x1b[?25h")

	if len(r.events) != 1 || r.events[0] != "set_mode" {
		t.Errorf("events = %v, want [set_mode]", r.events)
	}
}

func TestStreamUnrecognizedFinalByteDebugs(t *testing.T) {
	r := &recordingListener{}
	s := NewStream(WithListener(r))
	s.FeedString("\x1b[5Z")

	if len(r.debugs) != 1 || r.debugs[0] != "csi" {
		t.Errorf("debugs = %v, want [csi]", r.debugs)
	}
}

func TestStreamEmbeddedControlDoesNotResetParams(t *testing.T) {
	r := &recordingListener{}
	s := NewStream(WithListener(r))
	// A bell embedded mid-CSI-sequence must not reset the parameter buffer.
	s.FeedString("\x1b[5\a A")

	want := []string{"bell", "up"}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("events = %v, want %v", r.events, want)
	}
	if r.lastUp != 5 {
		t.Errorf("cursor_up param = %d, want 5", r.lastUp)
	}
}

func TestMultipleListenersCalledInAttachOrder(t *testing.T) {
	var order []string
	first := &orderListener{name: "first", order: &order}
	second := &orderListener{name: "second", order: &order}

	s := NewStream(WithListener(first), WithListener(second))
	s.FeedString("\a")

	want := []string{"first", "second"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("dispatch order = %v, want %v", order, want)
	}
}

type orderListener struct {
	name  string
	order *[]string
}

func (l *orderListener) Bell() { *l.order = append(*l.order, l.name) }

func TestMissingHandlerIsSilentlyIgnored(t *testing.T) {
	s := NewStream(WithListener(&struct{}{}))
	// Must not panic even though the attached listener implements no
	// capability at all.
	s.FeedString("Hello\a\x1b[5A")
}

func TestParamOverflowDebugs(t *testing.T) {
	r := &recordingListener{}
	s := NewStream(WithListener(r))

	seq := "\x1b["
	for i := 0; i < 20; i++ {
		seq += "1;"
	}
	seq += "A"
	s.FeedString(seq)

	if len(r.debugs) == 0 {
		t.Error("expected a debug event for parameter overflow")
	}
}
