package models

import "time"

// Task status is a free-form string. The frontends in circulation use
// lowercase values (todo, in_progress, done, completed) and the
// aggregation queries match those literals per call site.
type Task struct {
	ID             uint64     `gorm:"primarykey" json:"id"`
	ProjectID      uint64     `gorm:"index;not null" json:"project_id"`
	SprintID       *uint64    `gorm:"index" json:"sprint_id"`
	Title          string     `gorm:"type:varchar(255);not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	Status         string     `gorm:"type:varchar(50);index" json:"status"`
	Priority       string     `gorm:"type:varchar(20)" json:"priority"`
	AssigneeID     *uint64    `gorm:"index" json:"assignee_id"`
	EstimatedHours float64    `gorm:"not null;default:0" json:"estimated_hours"`
	ActualHours    float64    `gorm:"not null;default:0" json:"actual_hours"`
	DueDate        *time.Time `json:"due_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations
	Project  Project     `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Sprint   *Sprint     `gorm:"foreignKey:SprintID" json:"sprint,omitempty"`
	Assignee *TeamMember `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
}
