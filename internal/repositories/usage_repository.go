package repositories

import (
	"time"

	"taxpilot/internal/models"

	"gorm.io/gorm"
)

// UsageRepository records gated actions and derives monthly counters.
type UsageRepository interface {
	Record(log *models.UsageLog) error
	CountSince(userID uint, action string, since time.Time) (int64, error)
	ListSince(userID uint, since time.Time) ([]models.UsageLog, error)
}

type usageRepository struct {
	db *gorm.DB
}

// NewUsageRepository creates a new UsageRepository
func NewUsageRepository(db *gorm.DB) UsageRepository {
	return &usageRepository{db: db}
}

func (r *usageRepository) Record(log *models.UsageLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *usageRepository) CountSince(userID uint, action string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.UsageLog{}).
		Where("user_id = ? AND action = ? AND created_at >= ?", userID, action, since).
		Count(&count).Error
	if err != nil {
		return 0, ErrDatabaseOperation
	}
	return count, nil
}

func (r *usageRepository) ListSince(userID uint, since time.Time) ([]models.UsageLog, error) {
	var logs []models.UsageLog
	err := r.db.
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at asc").
		Find(&logs).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return logs, nil
}
