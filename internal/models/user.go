package models

import "time"

// User is the authentication principal. The username is the identity key and
// the token column holds the static bearer credential issued on login.
type User struct {
	Username  string  `gorm:"primaryKey;size:100" json:"username"`
	Password  string  `gorm:"not null;size:100" json:"-"`
	Name      string  `gorm:"not null;size:100" json:"name"`
	Token     *string `gorm:"size:100;index" json:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
