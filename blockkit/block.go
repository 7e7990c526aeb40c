package blockkit

import "encoding/json"

// Block type discriminators understood by the rendering surface.
const (
	TypeSection = "section"
	TypeContext = "context"
	TypeActions = "actions"
	TypeDivider = "divider"
	TypeInput   = "input"
)

// Text object types.
const (
	TextMarkdown = "mrkdwn"
	TextPlain    = "plain_text"
)

// Text is a mrkdwn or plain_text object embedded in blocks and elements.
type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Option is one entry of an overflow or select menu.
type Option struct {
	Text  *Text  `json:"text"`
	Value string `json:"value"`
}

// Confirm describes an optional confirmation dialog attached to an element.
type Confirm struct {
	Title   *Text `json:"title"`
	Text    *Text `json:"text"`
	Confirm *Text `json:"confirm"`
	Deny    *Text `json:"deny"`
}

// Element is an interactive component: a button, an overflow menu, or a
// context text fragment. Fields are populated per element type; the structure
// is an open document node, not validated beyond what the platform requires.
type Element struct {
	Type        string   `json:"type"`
	ActionID    string   `json:"action_id,omitempty"`
	Text        *Text    `json:"text,omitempty"`
	Value       string   `json:"value,omitempty"`
	Style       string   `json:"style,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Confirm     *Confirm `json:"confirm,omitempty"`
	Placeholder *Text    `json:"placeholder,omitempty"`
	Multiline   bool     `json:"multiline,omitempty"`
}

// MarshalJSON flattens text-typed elements (context fragments) into bare
// text objects, matching the platform wire shape; interactive elements are
// emitted as-is.
func (e Element) MarshalJSON() ([]byte, error) {
	if (e.Type == TextMarkdown || e.Type == TextPlain) && e.Text != nil {
		return json.Marshal(Text{Type: e.Type, Text: e.Text.Text})
	}
	type plain Element
	return json.Marshal(plain(e))
}

// Block is a single visual unit of a view. The Type field selects which of
// the remaining fields are meaningful.
type Block struct {
	Type      string    `json:"type"`
	BlockID   string    `json:"block_id,omitempty"`
	Text      *Text     `json:"text,omitempty"`
	Elements  []Element `json:"elements,omitempty"`
	Accessory *Element  `json:"accessory,omitempty"`
	Label     *Text     `json:"label,omitempty"`
	Element   *Element  `json:"element,omitempty"`
	Optional  bool      `json:"optional,omitempty"`
}

// View is a full page document handed to the platform client. Views are
// immutable after construction and carry selection state round trips in
// PrivateMetadata as an opaque token.
type View struct {
	Type            string  `json:"type"`
	Title           *Text   `json:"title,omitempty"`
	Submit          *Text   `json:"submit,omitempty"`
	Close           *Text   `json:"close,omitempty"`
	CallbackID      string  `json:"callback_id,omitempty"`
	PrivateMetadata string  `json:"private_metadata,omitempty"`
	Blocks          []Block `json:"blocks"`
}

// Markdown returns a mrkdwn text object.
func Markdown(text string) *Text {
	return &Text{Type: TextMarkdown, Text: text}
}

// Plain returns a plain_text object.
func Plain(text string) *Text {
	return &Text{Type: TextPlain, Text: text}
}

// Section builds a section block with mrkdwn text.
func Section(text string) Block {
	return Block{Type: TypeSection, Text: Markdown(text)}
}

// SectionWith builds a section block with an accessory element attached.
func SectionWith(text string, accessory Element) Block {
	return Block{Type: TypeSection, Text: Markdown(text), Accessory: &accessory}
}

// Divider builds a divider block.
func Divider() Block {
	return Block{Type: TypeDivider}
}

// Context builds a context block from mrkdwn fragments, one element per
// fragment, preserving order.
func Context(fragments ...string) Block {
	elements := make([]Element, 0, len(fragments))
	for _, f := range fragments {
		elements = append(elements, Element{Type: TextMarkdown, Text: &Text{Type: TextMarkdown, Text: f}})
	}
	return Block{Type: TypeContext, Elements: elements}
}

// Actions builds an actions block from the provided elements in order.
func Actions(elements ...Element) Block {
	return Block{Type: TypeActions, Elements: elements}
}

// Button builds an unstyled button element.
func Button(actionID, label string) Element {
	return Element{Type: "button", ActionID: actionID, Text: Plain(label)}
}

// StyledButton builds a button carrying a style ("primary" or "danger").
func StyledButton(actionID, label, style string) Element {
	return Element{Type: "button", ActionID: actionID, Text: Plain(label), Style: style}
}

// Overflow builds an overflow menu element with the provided options.
func Overflow(actionID string, options ...Option) Element {
	return Element{Type: "overflow", ActionID: actionID, Options: options}
}

// OverflowOption builds one overflow option pair.
func OverflowOption(label, value string) Option {
	return Option{Text: Plain(label), Value: value}
}

// NewConfirm builds a confirmation dialog with default button captions.
func NewConfirm(title, text string) *Confirm {
	return &Confirm{
		Title:   Plain(title),
		Text:    Plain(text),
		Confirm: Plain("Confirm"),
		Deny:    Plain("Cancel"),
	}
}

// Input builds an input block wrapping a single form element.
func Input(blockID, label string, element Element, optional bool) Block {
	return Block{
		Type:     TypeInput,
		BlockID:  blockID,
		Label:    Plain(label),
		Element:  &element,
		Optional: optional,
	}
}

// TextInput builds a plain text input element.
func TextInput(actionID, placeholder string, multiline bool) Element {
	e := Element{Type: "plain_text_input", ActionID: actionID, Multiline: multiline}
	if placeholder != "" {
		e.Placeholder = Plain(placeholder)
	}
	return e
}

// StaticSelect builds a static select menu element.
func StaticSelect(actionID, placeholder string, options ...Option) Element {
	e := Element{Type: "static_select", ActionID: actionID, Options: options}
	if placeholder != "" {
		e.Placeholder = Plain(placeholder)
	}
	return e
}

// HomeView wraps blocks into a "home" view with the given opaque state token.
func HomeView(metadata string, blocks []Block) View {
	return View{Type: "home", PrivateMetadata: metadata, Blocks: blocks}
}

// ModalView wraps blocks into a modal view.
func ModalView(callbackID, title string, blocks []Block) View {
	return View{
		Type:       "modal",
		CallbackID: callbackID,
		Title:      Plain(title),
		Submit:     Plain("Submit"),
		Close:      Plain("Cancel"),
		Blocks:     blocks,
	}
}
