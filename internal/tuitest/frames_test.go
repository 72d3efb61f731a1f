package tuitest

import "testing"

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[Hfirst   \r\n\x1b[1mbold\x1b[0m\r\n\r\n\x1b[2J\x1b[Hsecond")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d: %#v", len(frames), frames)
	}
	if frames[0].Plain != "first\nbold" {
		t.Fatalf("first frame: %q", frames[0].Plain)
	}
	if frames[1].Plain != "second" || frames[1].Index != 1 {
		t.Fatalf("second frame: %+v", frames[1])
	}
}

func TestRecordingSearch(t *testing.T) {
	rec := &Recording{Raw: []byte("\x1b[2JSumm\x1b[31mary\x1b[0m ready\x1b[2Jlater")}
	rec.Frames = parseFrames(rec.Raw)
	if !rec.Contains("Summary ready") {
		t.Fatal("Contains should ignore styling escapes")
	}
	frame, ok := rec.LastFrameWith("ready")
	if !ok || frame.Index != 0 {
		t.Fatalf("LastFrameWith: %+v ok=%v", frame, ok)
	}
	if _, ok := rec.LastFrameWith("absent"); ok {
		t.Fatal("unexpected match")
	}
	if last, _ := rec.FinalFrame(); last.Plain != "later" {
		t.Fatalf("final frame: %q", last.Plain)
	}
}

func TestTerminalResponderAnswersCursorQuery(t *testing.T) {
	var out recorder
	tr := newTerminalResponder(&out)
	tr.Process([]byte("abc\x1b[6"))
	tr.Process([]byte("n tail"))
	if string(out) != "\x1b[1;1R" {
		t.Fatalf("unexpected response %q", string(out))
	}
}

type recorder []byte

func (r *recorder) Write(p []byte) (int, error) {
	*r = append(*r, p...)
	return len(p), nil
}
