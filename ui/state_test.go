package ui

import "testing"

func TestStateRoundTrip(t *testing.T) {
	in := State{SelectedProjectID: "p1", ActiveTab: "tasks"}
	out := DecodeState(EncodeState(in))
	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestDecodeStateTotal(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"garbage":   "not json at all",
		"truncated": `{"selectedProjectId":"p1"`,
		"wrongType": `{"activeTab":42}`,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if got := DecodeState(token); got != (State{}) {
				t.Fatalf("DecodeState(%q) = %+v, want zero state", token, got)
			}
		})
	}
}

func TestEncodeStateOmitsEmptyFields(t *testing.T) {
	if got := EncodeState(State{}); got != "{}" {
		t.Fatalf("EncodeState(zero) = %q, want {}", got)
	}
}
