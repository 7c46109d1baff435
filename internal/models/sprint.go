package models

import "time"

type Sprint struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	ProjectID uint64    `gorm:"index;not null" json:"project_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `gorm:"type:varchar(20)" json:"status"`
	Velocity  *float64  `json:"velocity"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Tasks   []Task  `gorm:"foreignKey:SprintID" json:"tasks,omitempty"`
}
