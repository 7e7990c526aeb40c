package transport

// EventEnvelope is the outer payload of the Slack Events API. A
// url_verification request carries only Challenge; event_callback wraps the
// inner event.
type EventEnvelope struct {
	Type      string `json:"type"`
	Challenge string `json:"challenge,omitempty"`
	TeamID    string `json:"team_id,omitempty"`
	Event     Event  `json:"event"`
}

// Event is the inner event of an event_callback envelope. Only the fields the
// service acts on are decoded.
type Event struct {
	Type string `json:"type"`
	User string `json:"user"`
	Tab  string `json:"tab,omitempty"`
}

// InteractionPayload is the decoded `payload` form field of an interactivity
// request. It covers both block_actions and view_submission shapes.
type InteractionPayload struct {
	Type      string              `json:"type"`
	TriggerID string              `json:"trigger_id"`
	User      InteractionUser     `json:"user"`
	View      *InteractionView    `json:"view,omitempty"`
	Actions   []InteractionAction `json:"actions,omitempty"`
}

type InteractionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// InteractionView carries the originating view. PrivateMetadata holds the
// encoded selection state; State holds submitted input values.
type InteractionView struct {
	CallbackID      string    `json:"callback_id"`
	PrivateMetadata string    `json:"private_metadata"`
	State           ViewState `json:"state"`
}

type ViewState struct {
	Values map[string]map[string]ViewStateValue `json:"values"`
}

type ViewStateValue struct {
	Type           string          `json:"type"`
	Value          string          `json:"value,omitempty"`
	SelectedOption *SelectedOption `json:"selected_option,omitempty"`
}

type SelectedOption struct {
	Value string `json:"value"`
}

// Input returns the submitted value under a block id, whichever input shape
// produced it.
func (s ViewState) Input(blockID string) string {
	for _, value := range s.Values[blockID] {
		if value.SelectedOption != nil {
			return value.SelectedOption.Value
		}
		if value.Value != "" {
			return value.Value
		}
	}
	return ""
}

// InteractionAction is one action of a block_actions payload. Buttons carry
// Value; overflow menus and selects carry SelectedOption.
type InteractionAction struct {
	ActionID       string          `json:"action_id"`
	BlockID        string          `json:"block_id"`
	Value          string          `json:"value,omitempty"`
	SelectedOption *SelectedOption `json:"selected_option,omitempty"`
}

// EffectiveValue normalizes the two action value shapes.
func (a InteractionAction) EffectiveValue() string {
	if a.SelectedOption != nil {
		return a.SelectedOption.Value
	}
	return a.Value
}

// AuthLoginRequest exchanges the admin key for an API token.
type AuthLoginRequest struct {
	AdminKey string `json:"admin_key"`
}

// UpsertUserRequest enrolls or updates a tracked user.
type UpsertUserRequest struct {
	SlackUserID string `json:"slack_user_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	CadenceDays int    `json:"cadence_days,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}
