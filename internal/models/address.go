package models

import (
	"time"

	"gorm.io/gorm"
)

// Address hangs off a contact. Access requires the full User -> Contact ->
// Address ownership chain to hold, so lookups always carry the contact id.
type Address struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"`
	Street     *string `gorm:"size:255"`
	City       *string `gorm:"size:100"`
	Province   *string `gorm:"size:100"`
	Country    string  `gorm:"not null;size:100"`
	PostalCode string  `gorm:"not null;size:10"`
	ContactID  uint    `gorm:"not null;index"`
	Contact    Contact `gorm:"foreignKey:ContactID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Address) TableName() string { return "addresses" }
