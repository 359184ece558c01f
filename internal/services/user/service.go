package user

import (
	"errors"

	"taxpilot/internal/models"
	"taxpilot/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FullName       string `json:"fullName"`
	CompanyName    string `json:"companyName"`
	SwissCompanyID string `json:"swissCompanyId"`
	Canton         string `json:"canton"`
	Municipality   string `json:"municipality"`
}

type Service interface {
	GetByID(id uint) (*models.User, error)
	Register(input *RegisterInput) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
}

type service struct {
	repo repositories.UserRepository
}

func NewService(repo repositories.UserRepository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) GetByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *service) Register(input *RegisterInput) (*models.User, error) {
	if input.Email == "" {
		return nil, errors.New("email is required")
	}

	existing, _ := s.repo.GetByEmail(input.Email)
	if existing != nil {
		return nil, repositories.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Email:          input.Email,
		Password:       string(hashedPassword),
		FullName:       input.FullName,
		CompanyName:    input.CompanyName,
		SwissCompanyID: input.SwissCompanyID,
		Canton:         input.Canton,
		Municipality:   input.Municipality,
		Role:           "user",
		Status:         "active",
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) Update(user *models.User) error {
	return s.repo.Update(user)
}

func (s *service) Delete(id uint) error {
	return s.repo.Delete(id)
}
