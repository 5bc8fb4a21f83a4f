package repository

import (
	"time"

	"vendor_risk_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// AssessmentFilter narrows a company's assessment listing.
type AssessmentFilter struct {
	Status   string
	VendorID string
}

func (r *AssessmentRepository) Create(assessment *model.Assessment) error {
	return r.DB.Create(assessment).Error
}

// companyScoped joins assessments to the calling company's vendors so a
// tenant can never read another tenant's assessments.
func (r *AssessmentRepository) companyScoped(companyID string) *gorm.DB {
	return r.DB.Model(&model.Assessment{}).
		Joins("JOIN vendors ON vendors.id = assessments.vendor_id").
		Where("vendors.company_id = ?", companyID)
}

func (r *AssessmentRepository) FindByID(id, companyID string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.companyScoped(companyID).
		Preload("Vendor").Preload("Template").Preload("AssignedTo").Preload("CreatedBy").
		Where("assessments.id = ?", id).
		First(&assessment).Error
	return &assessment, err
}

func (r *AssessmentRepository) List(companyID string, filter AssessmentFilter, page, limit int) ([]model.Assessment, int64, error) {
	var assessments []model.Assessment
	var total int64

	query := r.companyScoped(companyID)
	if filter.Status != "" {
		query = query.Where("assessments.status = ?", filter.Status)
	}
	if filter.VendorID != "" {
		query = query.Where("assessments.vendor_id = ?", filter.VendorID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Vendor").Preload("Template").Preload("AssignedTo").
		Order("assessments.created_at desc").
		Offset(offset).Limit(limit).
		Find(&assessments).Error
	return assessments, total, err
}

func (r *AssessmentRepository) Update(assessment *model.Assessment) error {
	return r.DB.Save(assessment).Error
}

func (r *AssessmentRepository) Delete(id string) error {
	return r.DB.Delete(&model.Assessment{}, "id = ?", id).Error
}

func (r *AssessmentRepository) CountByStatus(companyID string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}
	var rows []row
	err := r.companyScoped(companyID).
		Select("assessments.status as `key`, count(*) as `count`").
		Group("assessments.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// FindOverdue returns assessments past their due date that are not yet completed.
func (r *AssessmentRepository) FindOverdue(companyID string, now time.Time) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.companyScoped(companyID).
		Where("assessments.due_date IS NOT NULL AND assessments.due_date < ?", now).
		Where("assessments.status IN ?", []model.AssessmentStatus{model.AssessmentDraft, model.AssessmentInProgress}).
		Preload("Vendor").
		Order("assessments.due_date asc").
		Find(&assessments).Error
	return assessments, err
}

func (r *AssessmentRepository) CreateDocument(doc *model.AssessmentDocument) error {
	return r.DB.Create(doc).Error
}

func (r *AssessmentRepository) FindDocuments(assessmentID string) ([]model.AssessmentDocument, error) {
	var docs []model.AssessmentDocument
	err := r.DB.Where("assessment_id = ?", assessmentID).
		Order("created_at desc").
		Find(&docs).Error
	return docs, err
}

func (r *AssessmentRepository) FindDocumentByID(id string) (*model.AssessmentDocument, error) {
	var doc model.AssessmentDocument
	err := r.DB.First(&doc, "id = ?", id).Error
	return &doc, err
}

func (r *AssessmentRepository) DeleteDocument(id string) error {
	return r.DB.Delete(&model.AssessmentDocument{}, "id = ?", id).Error
}
