package models

import "time"

type TeamMember struct {
	ID            uint64     `gorm:"primarykey" json:"id"`
	Name          string     `gorm:"type:varchar(255);not null" json:"name"`
	Role          string     `gorm:"type:varchar(100)" json:"role"`
	MonthlySalary float64    `json:"monthly_salary"`
	JoinDate      time.Time  `json:"join_date"`
	LeaveDate     *time.Time `json:"leave_date"`
	CreatedAt     time.Time  `json:"created_at"`

	// Relations
	Projects []ProjectMember `gorm:"foreignKey:MemberID" json:"projects,omitempty"`
	Tasks    []Task          `gorm:"foreignKey:AssigneeID" json:"tasks,omitempty"`
}
