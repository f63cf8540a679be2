package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact belongs to exactly one user; every read and write must filter by
// the owning username.
type Contact struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	FirstName string  `gorm:"not null;size:100"`
	LastName  *string `gorm:"size:100"`
	Email     *string `gorm:"size:100"`
	Phone     *string `gorm:"size:20"`
	Username  string  `gorm:"not null;size:100;index"`
	User      User    `gorm:"foreignKey:Username;references:Username"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Contact) TableName() string { return "contacts" }
