// Package ui translates domain records into Block Kit view payloads. Every
// function here is a pure mapping; selection state travels in an opaque
// token attached to the produced view and is never held by the package.
package ui

import "github.com/pulsebot/backend/domain"

// Icons used across builders.
const (
	IconDefault  = "📋"
	IconProject  = "📁"
	IconTask     = "✅"
	IconRisk     = "⚠️"
	IconUpdates  = "📊"
	IconInbox    = "📭"
	IconOwner    = "👤"
	IconCalendar = "📅"
)

// Fixed action identifiers. The interaction router matches on these values,
// so builders must reference them instead of inlining literals.
const (
	ActionNewProject  = "new_project"
	ActionNewTask     = "new_task"
	ActionNewRisk     = "new_risk"
	ActionHeaderMenu  = "header_menu"
	ActionManageUsers = "admin_manage_users"
	ActionSettings    = "admin_settings"
	ActionShareUpdate = "share_update"
)

// Action identifier prefixes. Identifiers built from a prefix plus a record
// id let the router recover intent and target by prefix-stripping.
const (
	PrefixTab        = "tab_"
	PrefixNavOpen    = "nav_open_"
	PrefixTaskMenu   = "task_menu_"
	PrefixRiskMenu   = "risk_menu_"
	PrefixCardAction = "card_action_"
	PrefixToggle     = "toggle_"
)

// Overflow menu operation values shared by the task and risk card builders.
const (
	MenuOpen         = "open"
	MenuEdit         = "edit"
	MenuChangeStatus = "status"
	MenuArchive      = "archive"
	MenuClose        = "close"
)

// Block identifiers for stable lookup in tests and interaction payloads.
const (
	BlockIDNavigation = "navigation"
	BlockIDTabBar     = "tab_bar"
	BlockIDAdminStats = "admin_stats"
)

var taskStatusEmoji = map[domain.TaskStatus]string{
	domain.TaskToDo:       "⚪",
	domain.TaskInProgress: "🔵",
	domain.TaskBlocked:    "🔴",
	domain.TaskDone:       "✅",
}

var taskPriorityEmoji = map[domain.TaskPriority]string{
	domain.PriorityLow:      "🟢",
	domain.PriorityMedium:   "🟡",
	domain.PriorityHigh:     "🟠",
	domain.PriorityCritical: "🔴",
}

var cardStatusEmoji = map[domain.CardStatus]string{
	domain.CardActive:    "🟢",
	domain.CardPaused:    "🟡",
	domain.CardCompleted: "✅",
	domain.CardPending:   "🟠",
}

// TaskStatusEmoji returns the glyph for a task status, defaulting to the
// neutral circle for values outside the enumeration.
func TaskStatusEmoji(status domain.TaskStatus) string {
	if e, ok := taskStatusEmoji[status]; ok {
		return e
	}
	return "⚪"
}

// TaskPriorityEmoji returns the glyph for a task priority.
func TaskPriorityEmoji(priority domain.TaskPriority) string {
	if e, ok := taskPriorityEmoji[priority]; ok {
		return e
	}
	return "⚪"
}

// CardStatusEmoji maps a card status to its glyph. The mapping is total:
// unrecognized or absent statuses render the neutral circle, never an empty
// string.
func CardStatusEmoji(status domain.CardStatus) string {
	if e, ok := cardStatusEmoji[status]; ok {
		return e
	}
	return "⚪"
}
