// Package testutil provides a hermetic in-memory database and seed helpers
// shared by the service and route tests.
package testutil

import (
	"testing"

	"github.com/aris220/contact-management-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB opens a fresh in-memory sqlite database with the full schema migrated.
// Every call returns an isolated database.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Contact{}, &models.Address{}); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}

	return db
}

// SeedUser creates a user with a bcrypt-hashed password and a stored bearer
// token of the form "<username>-token".
func SeedUser(tb testing.TB, db *gorm.DB, username, password string) *models.User {
	tb.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		tb.Fatalf("hash password: %v", err)
	}

	token := username + "-token"
	u := &models.User{
		Username: username,
		Password: string(hash),
		Name:     username,
		Token:    &token,
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedContact(tb testing.TB, db *gorm.DB, username, firstName string) *models.Contact {
	tb.Helper()

	c := &models.Contact{
		FirstName: firstName,
		Username:  username,
	}
	if err := db.Create(c).Error; err != nil {
		tb.Fatalf("seed contact: %v", err)
	}
	return c
}

func SeedAddress(tb testing.TB, db *gorm.DB, contactID uint, country, postalCode string) *models.Address {
	tb.Helper()

	street := "street"
	city := "city"
	a := &models.Address{
		Street:     &street,
		City:       &city,
		Country:    country,
		PostalCode: postalCode,
		ContactID:  contactID,
	}
	if err := db.Create(a).Error; err != nil {
		tb.Fatalf("seed address: %v", err)
	}
	return a
}
