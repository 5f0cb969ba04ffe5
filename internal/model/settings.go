package model

import "time"

// Settings is the company profile read at receipt-render time. Single-row
// table: ID is always 1. CompanyLogo is an opaque base64 data URI; the
// settings service enforces a 2MB soft limit but never decodes or validates
// the image itself.
type Settings struct {
	ID             int    `gorm:"primaryKey"`
	CompanyName    string `gorm:"not null"`
	CompanyAddress string
	CompanyLogo    string `gorm:"type:text"`
	UpdatedAt      time.Time
}

// DefaultSettings mirrors the profile a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		ID:             1,
		CompanyName:    "Your Brand Name",
		CompanyAddress: "123 Fashion Street, Dhaka, Bangladesh",
	}
}
