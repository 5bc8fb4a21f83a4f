package repository

import (
	"time"

	"vendor_risk_backend/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	DB *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

func (r *DashboardRepository) CountVendors(companyID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Vendor{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (r *DashboardRepository) CountAssessments(companyID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Assessment{}).
		Joins("JOIN vendors ON vendors.id = assessments.vendor_id").
		Where("vendors.company_id = ?", companyID).
		Count(&count).Error
	return count, err
}

// AverageRiskScore averages completed assessment scores across the company.
// Returns 0 when no assessment has been scored yet.
func (r *DashboardRepository) AverageRiskScore(companyID string) (float64, error) {
	var avg *float64
	err := r.DB.Model(&model.Assessment{}).
		Joins("JOIN vendors ON vendors.id = assessments.vendor_id").
		Where("vendors.company_id = ? AND assessments.risk_score IS NOT NULL", companyID).
		Select("AVG(assessments.risk_score)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

// RecentAssessments returns the latest completed assessments for the activity feed.
func (r *DashboardRepository) RecentAssessments(companyID string, limit int) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.DB.Model(&model.Assessment{}).
		Joins("JOIN vendors ON vendors.id = assessments.vendor_id").
		Where("vendors.company_id = ?", companyID).
		Preload("Vendor").Preload("Template").
		Order("assessments.updated_at desc").
		Limit(limit).
		Find(&assessments).Error
	return assessments, err
}

// VendorsCreatedSince counts vendors onboarded after the cutoff, for trend cards.
func (r *DashboardRepository) VendorsCreatedSince(companyID string, cutoff time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Vendor{}).
		Where("company_id = ? AND created_at >= ?", companyID, cutoff).
		Count(&count).Error
	return count, err
}
