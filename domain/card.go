package domain

// CardStatus is the closed status enumeration of the update-card family.
type CardStatus string

const (
	CardActive    CardStatus = "active"
	CardPaused    CardStatus = "paused"
	CardCompleted CardStatus = "completed"
	CardPending   CardStatus = "pending"
)

// CardMeta carries the optional display metadata of a card. Empty fields are
// omitted from the rendered output rather than shown blank.
type CardMeta struct {
	Owner  string     `json:"owner,omitempty"`
	Date   string     `json:"date,omitempty"`
	Status CardStatus `json:"status,omitempty"`
}

// ActionConfirm is an optional confirmation dialog descriptor.
type ActionConfirm struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Action describes a button affordance on a card. Purely descriptive; the
// interaction router interprets the id.
type Action struct {
	ID      string         `json:"id"`
	Text    string         `json:"text"`
	Style   string         `json:"style,omitempty"`
	Confirm *ActionConfirm `json:"confirm,omitempty"`
}

// Card is the generic update unit rendered by the card builder family.
type Card struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Meta     CardMeta `json:"meta"`
	Actions  []Action `json:"actions,omitempty"`
}
