package repository

import (
	"vendor_risk_backend/internal/model"

	"gorm.io/gorm"
)

type VendorRepository struct {
	DB *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{DB: db}
}

// VendorFilter narrows a company's vendor listing.
type VendorFilter struct {
	Search     string
	Status     string
	RiskLevel  string
	VendorType string
}

func (r *VendorRepository) Create(vendor *model.Vendor) error {
	return r.DB.Create(vendor).Error
}

func (r *VendorRepository) FindByID(id, companyID string) (*model.Vendor, error) {
	var vendor model.Vendor
	err := r.DB.Preload("CreatedBy").
		Where("id = ? AND company_id = ?", id, companyID).
		First(&vendor).Error
	return &vendor, err
}

func (r *VendorRepository) List(companyID string, filter VendorFilter, page, limit int) ([]model.Vendor, int64, error) {
	var vendors []model.Vendor
	var total int64

	query := r.DB.Model(&model.Vendor{}).Where("company_id = ?", companyID)

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ? OR contact_email LIKE ?", like, like, like)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.RiskLevel != "" {
		query = query.Where("risk_level = ?", filter.RiskLevel)
	}
	if filter.VendorType != "" {
		query = query.Where("vendor_type = ?", filter.VendorType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&vendors).Error
	return vendors, total, err
}

func (r *VendorRepository) Update(vendor *model.Vendor) error {
	return r.DB.Save(vendor).Error
}

func (r *VendorRepository) UpdateRiskLevel(id string, level model.RiskBand) error {
	return r.DB.Model(&model.Vendor{}).Where("id = ?", id).Update("risk_level", level).Error
}

func (r *VendorRepository) Delete(id, companyID string) error {
	return r.DB.Where("id = ? AND company_id = ?", id, companyID).
		Delete(&model.Vendor{}).Error
}

func (r *VendorRepository) CountByStatus(companyID string) (map[string]int64, error) {
	return r.countGrouped(companyID, "status")
}

func (r *VendorRepository) CountByRiskLevel(companyID string) (map[string]int64, error) {
	return r.countGrouped(companyID, "risk_level")
}

func (r *VendorRepository) countGrouped(companyID, column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}
	var rows []row
	err := r.DB.Model(&model.Vendor{}).
		Select(column+" as `key`, count(*) as `count`").
		Where("company_id = ?", companyID).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		if row.Key != "" {
			counts[row.Key] = row.Count
		}
	}
	return counts, nil
}
