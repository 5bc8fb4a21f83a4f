package service

import (
	"encoding/json"
	"errors"

	"vendor_risk_backend/internal/model"
	"vendor_risk_backend/internal/repository"
	"vendor_risk_backend/internal/riskscoring"
	"vendor_risk_backend/internal/util"

	"gorm.io/gorm"
)

type TemplateService struct {
	TemplateRepo *repository.TemplateRepository
}

func NewTemplateService(templateRepo *repository.TemplateRepository) *TemplateService {
	return &TemplateService{TemplateRepo: templateRepo}
}

type TemplateInput struct {
	Name        string                   `json:"name" binding:"required"`
	Description string                   `json:"description"`
	Category    model.AssessmentCategory `json:"category" binding:"required"`
	Questions   riskscoring.Template     `json:"questions"`
	RiskWeights riskscoring.Weights      `json:"riskWeights"`
}

func (s *TemplateService) Create(input TemplateInput, createdByID uint) (*model.AssessmentTemplate, error) {
	questions, err := json.Marshal(input.Questions)
	if err != nil {
		return nil, err
	}
	weights, err := json.Marshal(input.RiskWeights)
	if err != nil {
		return nil, err
	}

	template := &model.AssessmentTemplate{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Questions:   questions,
		RiskWeights: weights,
		IsActive:    true,
		CreatedByID: &createdByID,
	}
	if err := s.TemplateRepo.Create(template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) Get(id string) (*model.AssessmentTemplate, error) {
	template, err := s.TemplateRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTemplateNotFound
	}
	return template, err
}

func (s *TemplateService) List(category string, activeOnly bool) ([]model.AssessmentTemplate, error) {
	return s.TemplateRepo.List(category, activeOnly)
}

// Update rejects edits to the built-in defaults. A company that wants a
// variant clones the default into a new template instead.
func (s *TemplateService) Update(id string, input TemplateInput) (*model.AssessmentTemplate, error) {
	template, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if template.IsDefault {
		return nil, util.ErrTemplateImmutable
	}

	questions, err := json.Marshal(input.Questions)
	if err != nil {
		return nil, err
	}
	weights, err := json.Marshal(input.RiskWeights)
	if err != nil {
		return nil, err
	}

	template.Name = input.Name
	template.Description = input.Description
	template.Category = input.Category
	template.Questions = questions
	template.RiskWeights = weights
	if err := s.TemplateRepo.Update(template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) Deactivate(id string) error {
	template, err := s.Get(id)
	if err != nil {
		return err
	}
	if template.IsDefault {
		return util.ErrTemplateImmutable
	}

	template.IsActive = false
	return s.TemplateRepo.Update(template)
}

// Clone copies a template, built-in or not, into a new editable one.
func (s *TemplateService) Clone(id, name string, createdByID uint) (*model.AssessmentTemplate, error) {
	src, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	clone := &model.AssessmentTemplate{
		Name:        name,
		Description: src.Description,
		Category:    src.Category,
		Questions:   src.Questions,
		RiskWeights: src.RiskWeights,
		IsActive:    true,
		CreatedByID: &createdByID,
	}
	if err := s.TemplateRepo.Create(clone); err != nil {
		return nil, err
	}
	return clone, nil
}
