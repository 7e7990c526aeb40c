package ui

import "encoding/json"

// State is the selection carried across view round trips. It is serialized
// into the view's private metadata and read back from the next interaction
// payload; callers treat the token as opaque outside this encode/decode pair.
type State struct {
	SelectedProjectID string `json:"selectedProjectId,omitempty"`
	ActiveTab         string `json:"activeTab,omitempty"`
}

// EncodeState serializes the state into the opaque token.
func EncodeState(s State) string {
	out, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// DecodeState parses a token produced by EncodeState. Decoding is total: a
// missing or malformed token yields the zero state, never an error.
func DecodeState(token string) State {
	var s State
	if token == "" {
		return State{}
	}
	if err := json.Unmarshal([]byte(token), &s); err != nil {
		return State{}
	}
	return s
}
