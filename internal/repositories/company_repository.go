package repositories

import (
	"taxpilot/internal/models"

	"gorm.io/gorm"
)

// CompanyProfileRepository manages saved company profiles.
type CompanyProfileRepository interface {
	Create(profile *models.CompanyProfile) error
	GetByID(id uint) (*models.CompanyProfile, error)
	ListByUser(userID uint) ([]*models.CompanyProfile, error)
	CountByUser(userID uint) (int64, error)
	Update(profile *models.CompanyProfile) error
	Delete(id uint) error
}

type companyProfileRepository struct {
	db *gorm.DB
}

// NewCompanyProfileRepository creates a new CompanyProfileRepository
func NewCompanyProfileRepository(db *gorm.DB) CompanyProfileRepository {
	return &companyProfileRepository{db: db}
}

func (r *companyProfileRepository) Create(profile *models.CompanyProfile) error {
	if err := r.db.Create(profile).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *companyProfileRepository) GetByID(id uint) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	if err := r.db.First(&profile, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &profile, nil
}

func (r *companyProfileRepository) ListByUser(userID uint) ([]*models.CompanyProfile, error) {
	var profiles []*models.CompanyProfile
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&profiles).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return profiles, nil
}

func (r *companyProfileRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CompanyProfile{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, ErrDatabaseOperation
	}
	return count, nil
}

func (r *companyProfileRepository) Update(profile *models.CompanyProfile) error {
	if err := r.db.Save(profile).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *companyProfileRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.CompanyProfile{}, id).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}
