package domain

import "time"

// User is a tracked workspace member who receives cadence prompts.
type User struct {
	ID           string     `json:"id"`
	SlackUserID  string     `json:"slack_user_id"`
	DisplayName  string     `json:"display_name"`
	Email        string     `json:"email,omitempty"`
	Timezone     string     `json:"timezone"`
	CadenceDays  int        `json:"cadence_days"`
	LastPromptAt *time.Time `json:"last_prompt_at,omitempty"`
	NextDueAt    *time.Time `json:"next_due_at,omitempty"`
	IsActive     bool       `json:"is_active"`
}

// DueFor reports whether the user should be prompted at the given instant.
func (u *User) DueFor(now time.Time) bool {
	if u == nil || !u.IsActive {
		return false
	}
	return u.NextDueAt == nil || !u.NextDueAt.After(now)
}
