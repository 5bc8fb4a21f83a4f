package repository

import (
	"vendor_risk_backend/internal/model"

	"gorm.io/gorm"
)

type TemplateRepository struct {
	DB *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

func (r *TemplateRepository) Create(template *model.AssessmentTemplate) error {
	return r.DB.Create(template).Error
}

func (r *TemplateRepository) FindByID(id string) (*model.AssessmentTemplate, error) {
	var template model.AssessmentTemplate
	err := r.DB.First(&template, "id = ?", id).Error
	return &template, err
}

func (r *TemplateRepository) List(category string, activeOnly bool) ([]model.AssessmentTemplate, error) {
	var templates []model.AssessmentTemplate
	query := r.DB.Model(&model.AssessmentTemplate{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("is_default desc, created_at desc").Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) Update(template *model.AssessmentTemplate) error {
	return r.DB.Save(template).Error
}

func (r *TemplateRepository) Delete(id string) error {
	return r.DB.Delete(&model.AssessmentTemplate{}, "id = ?", id).Error
}

func (r *TemplateRepository) CountDefaults() (int64, error) {
	var count int64
	err := r.DB.Model(&model.AssessmentTemplate{}).Where("is_default = ?", true).Count(&count).Error
	return count, err
}
