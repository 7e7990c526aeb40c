package ui

import "strings"

// Intent is the closed set of interaction intents recovered from inbound
// action identifiers. Dispatch logic switches on the concrete type instead of
// re-parsing identifier strings.
type Intent interface {
	isIntent()
}

// OpenProjectIntent selects a project from the navigation list.
type OpenProjectIntent struct {
	ProjectID string
}

// SelectTabIntent switches the active tab of the current view.
type SelectTabIntent struct {
	Tab string
}

// TaskMenuIntent is an overflow-menu operation on a task.
type TaskMenuIntent struct {
	TaskID string
	Op     string
}

// RiskMenuIntent is an overflow-menu operation on a risk.
type RiskMenuIntent struct {
	RiskID string
	Op     string
}

// CardActionIntent is a button press on an update card. Value carries the
// card id the button was attached to.
type CardActionIntent struct {
	ActionID string
	CardID   string
}

// ToggleIntent flips a collapsible region.
type ToggleIntent struct {
	ID string
}

// NewProjectIntent, NewTaskIntent and NewRiskIntent request creation flows.
type NewProjectIntent struct{}
type NewTaskIntent struct{}
type NewRiskIntent struct{}

// ShareUpdateIntent is the call to action on a cadence prompt message.
type ShareUpdateIntent struct{}

// UnknownIntent preserves identifiers the parser does not recognize so the
// caller can log them.
type UnknownIntent struct {
	ActionID string
}

func (OpenProjectIntent) isIntent() {}
func (SelectTabIntent) isIntent()   {}
func (TaskMenuIntent) isIntent()    {}
func (RiskMenuIntent) isIntent()    {}
func (CardActionIntent) isIntent()  {}
func (ToggleIntent) isIntent()      {}
func (NewProjectIntent) isIntent()  {}
func (NewTaskIntent) isIntent()     {}
func (NewRiskIntent) isIntent()     {}
func (ShareUpdateIntent) isIntent() {}
func (UnknownIntent) isIntent()     {}

// ParseAction recovers an intent from an action identifier and its value.
// For overflow menus the value is the selected option value; for card action
// buttons it is the card id.
func ParseAction(actionID, value string) Intent {
	switch actionID {
	case ActionNewProject:
		return NewProjectIntent{}
	case ActionNewTask:
		return NewTaskIntent{}
	case ActionNewRisk:
		return NewRiskIntent{}
	case ActionShareUpdate:
		return ShareUpdateIntent{}
	}

	switch {
	case strings.HasPrefix(actionID, PrefixTab):
		return SelectTabIntent{Tab: strings.TrimPrefix(actionID, PrefixTab)}
	case strings.HasPrefix(actionID, PrefixNavOpen):
		return OpenProjectIntent{ProjectID: strings.TrimPrefix(actionID, PrefixNavOpen)}
	case strings.HasPrefix(actionID, PrefixTaskMenu):
		return TaskMenuIntent{TaskID: strings.TrimPrefix(actionID, PrefixTaskMenu), Op: value}
	case strings.HasPrefix(actionID, PrefixRiskMenu):
		return RiskMenuIntent{RiskID: strings.TrimPrefix(actionID, PrefixRiskMenu), Op: value}
	case strings.HasPrefix(actionID, PrefixCardAction):
		return CardActionIntent{ActionID: strings.TrimPrefix(actionID, PrefixCardAction), CardID: value}
	case strings.HasPrefix(actionID, PrefixToggle):
		return ToggleIntent{ID: strings.TrimPrefix(actionID, PrefixToggle)}
	}

	return UnknownIntent{ActionID: actionID}
}
