package models

import "time"

// ProjectMember links a TeamMember to a Project with an allocation.
type ProjectMember struct {
	ID                   uint64     `gorm:"primarykey" json:"id"`
	ProjectID            uint64     `gorm:"index;not null" json:"project_id"`
	MemberID             uint64     `gorm:"index;not null" json:"member_id"`
	AllocationPercentage float64    `json:"allocation_percentage"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`

	// Relations
	Project Project    `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Member  TeamMember `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}
