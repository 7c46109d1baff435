package models

import "time"

type User struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Username       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"type:varchar(255);not null" json:"-"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser    bool      `gorm:"not null;default:false" json:"is_superuser"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Activities []Activity `gorm:"foreignKey:UserID" json:"-"`
}
