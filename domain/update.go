package domain

import "time"

// RAG is the red/amber/green health rating attached to an update.
type RAG string

const (
	RAGRed   RAG = "red"
	RAGAmber RAG = "amber"
	RAGGreen RAG = "green"
)

// Update is a submitted progress report from a prompted user.
type Update struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	PromptedAt  time.Time  `json:"prompted_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	ProgressPct *int       `json:"progress_pct,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Blockers    string     `json:"blockers,omitempty"`
	ETADate     *time.Time `json:"eta_date,omitempty"`
	RAG         RAG        `json:"rag,omitempty"`
	RawText     string     `json:"raw_text,omitempty"`
	Source      string     `json:"source"`
}

// Answered reports whether the user has responded to the prompt.
func (u *Update) Answered() bool {
	return u != nil && u.RespondedAt != nil
}
