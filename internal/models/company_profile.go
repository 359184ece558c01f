package models

import "gorm.io/gorm"

// CompanyProfile is a saved company profile. Saving is gated by the
// subscriber's plan; the tax engine itself works on request-scoped copies
// and never touches these records.
type CompanyProfile struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null"`
	User          *User  `gorm:"foreignKey:UserID"`
	Name          string `gorm:"not null"`
	LegalForm     string `gorm:"not null"`
	Canton        string `gorm:"not null"`
	Revenue       float64
	Profit        float64
	Employees     int
	Industry      string
	VATRegistered bool
}
