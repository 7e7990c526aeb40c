package blockkit

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSectionMarshalShape(t *testing.T) {
	out, err := json.Marshal(Section("hello"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"section","text":{"type":"mrkdwn","text":"hello"}}`
	if string(out) != want {
		t.Fatalf("section JSON = %s, want %s", out, want)
	}
}

func TestDividerOmitsEmptyFields(t *testing.T) {
	out, err := json.Marshal(Divider())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"type":"divider"}` {
		t.Fatalf("divider JSON = %s", out)
	}
}

func TestContextElementsFlattened(t *testing.T) {
	out, err := json.Marshal(Context("one", "two"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"context","elements":[{"type":"mrkdwn","text":"one"},{"type":"mrkdwn","text":"two"}]}`
	if string(out) != want {
		t.Fatalf("context JSON = %s, want %s", out, want)
	}
}

func TestButtonMarshalKeepsNestedText(t *testing.T) {
	out, err := json.Marshal(StyledButton("go", "Go", "primary"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `"text":{"type":"plain_text","text":"Go"}`) {
		t.Fatalf("button text not nested: %s", s)
	}
	if !strings.Contains(s, `"style":"primary"`) || !strings.Contains(s, `"action_id":"go"`) {
		t.Fatalf("button fields missing: %s", s)
	}
}

func TestHomeViewEnvelope(t *testing.T) {
	view := HomeView(`{"activeTab":"tasks"}`, []Block{Section("body")})
	out, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `"type":"home"`) {
		t.Fatalf("view type missing: %s", s)
	}
	if !strings.Contains(s, `"private_metadata":"{\"activeTab\":\"tasks\"}"`) {
		t.Fatalf("metadata token missing: %s", s)
	}
}

func TestModalViewEnvelope(t *testing.T) {
	view := ModalView("cb", "Title", nil)
	if view.Type != "modal" || view.CallbackID != "cb" {
		t.Fatalf("modal envelope wrong: %+v", view)
	}
	if view.Submit == nil || view.Close == nil {
		t.Fatalf("modal buttons missing")
	}
}
