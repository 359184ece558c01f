package repositories

import (
	"taxpilot/internal/models"

	"gorm.io/gorm"
)

// AnalysisRepository persists health-score runs.
type AnalysisRepository interface {
	Create(record *models.AnalysisHistory) error
	ListByUser(userID uint, limit int) ([]models.AnalysisHistory, error)
}

type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new AnalysisRepository
func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(record *models.AnalysisHistory) error {
	if err := r.db.Create(record).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *analysisRepository) ListByUser(userID uint, limit int) ([]models.AnalysisHistory, error) {
	var records []models.AnalysisHistory
	q := r.db.Where("user_id = ?", userID).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return records, nil
}
