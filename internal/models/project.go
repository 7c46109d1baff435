package models

import "time"

type ProjectStatus string

// Statuses accepted when creating or updating a project. Statistics
// queries match the stored string literally, so rows written through
// other channels keep whatever vocabulary they arrived with.
const (
	ProjectStatusPlanning   ProjectStatus = "PLANNING"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
	ProjectStatusOnHold     ProjectStatus = "ON_HOLD"
)

// ValidProjectStatus reports whether s is one of the accepted statuses.
func ValidProjectStatus(s string) bool {
	switch ProjectStatus(s) {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}

type Project struct {
	ID               uint64    `gorm:"primarykey" json:"id"`
	Name             string    `gorm:"type:varchar(255);index;not null" json:"name"`
	Description      string    `gorm:"type:text" json:"description"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Status           string    `gorm:"type:varchar(20);not null" json:"status"`
	FixedCostMonthly float64   `gorm:"not null;default:0" json:"fixed_cost_monthly"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	Sprints []Sprint        `gorm:"foreignKey:ProjectID" json:"sprints,omitempty"`
	Members []ProjectMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
	Costs   []CostRecord    `gorm:"foreignKey:ProjectID" json:"costs,omitempty"`
	Tasks   []Task          `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}
