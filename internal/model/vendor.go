package model

import "encoding/json"

type VendorType string

const (
	VendorGeneral    VendorType = "GENERAL"
	VendorTechnology VendorType = "TECHNOLOGY"
	VendorFinancial  VendorType = "FINANCIAL"
	VendorHealthcare VendorType = "HEALTHCARE"
	VendorLegal      VendorType = "LEGAL"
	VendorConsulting VendorType = "CONSULTING"
	VendorOther      VendorType = "OTHER"
)

type VendorStatus string

const (
	VendorActive      VendorStatus = "ACTIVE"
	VendorInactive    VendorStatus = "INACTIVE"
	VendorUnderReview VendorStatus = "UNDER_REVIEW"
	VendorTerminated  VendorStatus = "TERMINATED"
)

// RiskBand holds a vendor's assigned risk level or business
// criticality. Values match the classifier's LOW/MEDIUM/HIGH/CRITICAL
// bands.
type RiskBand string

const (
	RiskLow      RiskBand = "LOW"
	RiskMedium   RiskBand = "MEDIUM"
	RiskHigh     RiskBand = "HIGH"
	RiskCritical RiskBand = "CRITICAL"
)

// swagger:model Vendor
type Vendor struct {
	UUIDBase
	Name                string          `gorm:"size:255;not null;index" json:"name"`
	ContactEmail        string          `gorm:"size:255" json:"contactEmail,omitempty"`
	ContactPhone        string          `gorm:"size:50" json:"contactPhone,omitempty"`
	Website             string          `gorm:"size:255" json:"website,omitempty"`
	Address             string          `gorm:"size:500" json:"address,omitempty"`
	Description         string          `gorm:"type:text" json:"description,omitempty"`
	Services            json.RawMessage `gorm:"type:json" json:"services,omitempty"` // JSON: []string
	VendorType          VendorType      `gorm:"size:20;not null;default:'GENERAL';index" json:"vendorType"`
	Status              VendorStatus    `gorm:"size:20;not null;default:'ACTIVE';index" json:"status"`
	RiskLevel           RiskBand        `gorm:"size:20;index" json:"riskLevel,omitempty"`
	BusinessCriticality RiskBand        `gorm:"size:20" json:"businessCriticality,omitempty"`

	CompanyID   string   `gorm:"index;type:varchar(36);not null" json:"companyId"`
	Company     *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	CreatedByID uint     `gorm:"index;type:bigint unsigned" json:"createdById"`
	CreatedBy   *User    `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`

	Assessments []Assessment `gorm:"foreignKey:VendorID" json:"assessments,omitempty"`
}

func (Vendor) TableName() string {
	return "vendors"
}

// SetServices stores the service list as a JSON column.
func (v *Vendor) SetServices(services []string) error {
	if services == nil {
		v.Services = nil
		return nil
	}
	raw, err := json.Marshal(services)
	if err != nil {
		return err
	}
	v.Services = raw
	return nil
}

// GetServices decodes the service list, returning nil when unset.
func (v *Vendor) GetServices() ([]string, error) {
	if len(v.Services) == 0 {
		return nil, nil
	}
	var services []string
	if err := json.Unmarshal(v.Services, &services); err != nil {
		return nil, err
	}
	return services, nil
}
