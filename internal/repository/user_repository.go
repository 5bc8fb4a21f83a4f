package repository

import (
	"time"

	"vendor_risk_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.Preload("Company").First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByVerificationToken(token string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email_verification_token = ?", token).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByResetToken(token string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("password_reset_token = ?", token).First(&user).Error
	return &user, err
}

// FindInCompany resolves an assignee, refusing IDs outside the tenant.
func (r *UserRepository) FindInCompany(id uint, companyID string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("id = ? AND company_id = ?", id, companyID).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).
		Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}

func (r *UserRepository) FindCompanyByName(name string) (*model.Company, error) {
	var company model.Company
	err := r.DB.Where("name = ?", name).First(&company).Error
	return &company, err
}

func (r *UserRepository) CreateCompany(company *model.Company) error {
	return r.DB.Create(company).Error
}
