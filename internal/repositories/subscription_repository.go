package repositories

import (
	"taxpilot/internal/models"

	"gorm.io/gorm"
)

// SubscriptionRepository manages subscription records mirrored from the
// billing provider.
type SubscriptionRepository interface {
	GetByUserID(userID uint) (*models.Subscription, error)
	GetByStripeSubscriptionID(id string) (*models.Subscription, error)
	Upsert(sub *models.Subscription) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetByUserID(userID uint) (*models.Subscription, error) {
	var sub models.Subscription
	if err := r.db.Where("user_id = ?", userID).First(&sub).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrSubscriptionNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &sub, nil
}

func (r *subscriptionRepository) GetByStripeSubscriptionID(id string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := r.db.Where("stripe_subscription_id = ?", id).First(&sub).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrSubscriptionNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &sub, nil
}

func (r *subscriptionRepository) Upsert(sub *models.Subscription) error {
	var existing models.Subscription
	err := r.db.Where("user_id = ?", sub.UserID).First(&existing).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		if err := r.db.Create(sub).Error; err != nil {
			return ErrDatabaseOperation
		}
		return nil
	case err != nil:
		return ErrDatabaseOperation
	}

	sub.ID = existing.ID
	sub.CreatedAt = existing.CreatedAt
	if err := r.db.Save(sub).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}
