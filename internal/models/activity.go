package models

import "time"

// Activity is an immutable log entry describing a user-attributed
// change. Rows are only ever appended; nothing updates or deletes them.
type Activity struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"index;not null" json:"user_id"`
	Type      string    `gorm:"type:varchar(50)" json:"type"`
	Content   string    `gorm:"type:varchar(500)" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
