package models

import (
	"gorm.io/gorm"
)

// AnalysisHistory keeps the outcome of one health-score run so the
// dashboard can chart score and savings over time.
type AnalysisHistory struct {
	gorm.Model
	UserID           uint   `gorm:"index;not null"`
	Reference        string `gorm:"uniqueIndex;not null"` // uuid handed back to the client
	CompanyName      string
	Canton           string
	HealthScore      int
	Grade            string
	PotentialSavings float64
	Result           JSON `gorm:"type:jsonb"`
}
