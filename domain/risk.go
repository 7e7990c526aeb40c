package domain

// RiskLevel grades likelihood and impact.
type RiskLevel string

const (
	LevelLow      RiskLevel = "Low"
	LevelMedium   RiskLevel = "Medium"
	LevelHigh     RiskLevel = "High"
	LevelCritical RiskLevel = "Critical"
)

// RiskStatus is the closed risk state enumeration.
type RiskStatus string

const (
	RiskOpen      RiskStatus = "Open"
	RiskMitigated RiskStatus = "Mitigated"
	RiskClosed    RiskStatus = "Closed"
)

// Risk is a tracked hazard attached to a project. Likelihood is graded
// Low..High; impact may additionally be Critical.
type Risk struct {
	ID             string     `json:"id"`
	ProjectID      string     `json:"project_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Likelihood     RiskLevel  `json:"likelihood"`
	Impact         RiskLevel  `json:"impact"`
	Owner          string     `json:"owner"`
	Status         RiskStatus `json:"status"`
	MitigationPlan string     `json:"mitigation_plan,omitempty"`
}
