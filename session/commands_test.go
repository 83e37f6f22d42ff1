package session

import "testing"

func TestOkRecognizesSuccessTokens(t *testing.T) {
	cases := map[string]bool{
		"ok":        true,
		"OK":        true,
		"ok,done":   true,
		"":          true,
		"E01 error": false,
		"e02":       false,
	}
	for reply, want := range cases {
		if got := ok(reply); got != want {
			t.Errorf("ok(%q) = %v, want %v", reply, got, want)
		}
	}
}

func TestZOffsetReplyRegexMatchesGetAndEquals(t *testing.T) {
	cases := map[string]string{
		"zoffset:15":      "15",
		"zoffset=-50":     "-50",
		"ok zoffset:0 done": "0",
	}
	for reply, want := range cases {
		m := zOffsetReply.FindStringSubmatch(reply)
		if m == nil {
			t.Fatalf("zOffsetReply did not match %q", reply)
		}
		if m[1] != want {
			t.Errorf("zOffsetReply(%q) = %q, want %q", reply, m[1], want)
		}
	}
}

func TestJogRejectsInvalidAxis(t *testing.T) {
	s := NewSession(0)
	if _, err := s.Jog("w", 10); err != ErrInvalidAxis {
		t.Errorf("Jog with invalid axis: err = %v, want ErrInvalidAxis", err)
	}
}
