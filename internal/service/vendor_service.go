package service

import (
	"errors"

	"vendor_risk_backend/internal/model"
	"vendor_risk_backend/internal/repository"
	"vendor_risk_backend/internal/util"

	"gorm.io/gorm"
)

type VendorService struct {
	VendorRepo *repository.VendorRepository
}

func NewVendorService(vendorRepo *repository.VendorRepository) *VendorService {
	return &VendorService{VendorRepo: vendorRepo}
}

type VendorInput struct {
	Name                string           `json:"name" binding:"required"`
	ContactEmail        string           `json:"contactEmail" binding:"required,email"`
	ContactPhone        string           `json:"contactPhone"`
	Website             string           `json:"website"`
	Address             string           `json:"address"`
	Description         string           `json:"description"`
	Services            []string         `json:"services"`
	VendorType          model.VendorType `json:"vendorType" binding:"required"`
	BusinessCriticality model.RiskBand   `json:"businessCriticality"`
}

func (s *VendorService) Create(input VendorInput, companyID string, createdByID uint) (*model.Vendor, error) {
	vendor := &model.Vendor{
		Name:                input.Name,
		ContactEmail:        input.ContactEmail,
		ContactPhone:        input.ContactPhone,
		Website:             input.Website,
		Address:             input.Address,
		Description:         input.Description,
		VendorType:          input.VendorType,
		Status:              model.VendorActive,
		BusinessCriticality: input.BusinessCriticality,
		CompanyID:           companyID,
		CreatedByID:         createdByID,
	}
	if err := vendor.SetServices(input.Services); err != nil {
		return nil, err
	}

	if err := s.VendorRepo.Create(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *VendorService) Get(id, companyID string) (*model.Vendor, error) {
	vendor, err := s.VendorRepo.FindByID(id, companyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrVendorNotFound
	}
	return vendor, err
}

func (s *VendorService) List(companyID string, filter repository.VendorFilter, page, limit int) ([]model.Vendor, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return s.VendorRepo.List(companyID, filter, page, limit)
}

func (s *VendorService) Update(id, companyID string, input VendorInput) (*model.Vendor, error) {
	vendor, err := s.Get(id, companyID)
	if err != nil {
		return nil, err
	}

	vendor.Name = input.Name
	vendor.ContactEmail = input.ContactEmail
	vendor.ContactPhone = input.ContactPhone
	vendor.Website = input.Website
	vendor.Address = input.Address
	vendor.Description = input.Description
	vendor.VendorType = input.VendorType
	vendor.BusinessCriticality = input.BusinessCriticality
	if err := vendor.SetServices(input.Services); err != nil {
		return nil, err
	}

	if err := s.VendorRepo.Update(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *VendorService) UpdateStatus(id, companyID string, status model.VendorStatus) (*model.Vendor, error) {
	vendor, err := s.Get(id, companyID)
	if err != nil {
		return nil, err
	}

	vendor.Status = status
	if err := s.VendorRepo.Update(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *VendorService) Delete(id, companyID string) error {
	if _, err := s.Get(id, companyID); err != nil {
		return err
	}
	return s.VendorRepo.Delete(id, companyID)
}
