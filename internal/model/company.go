package model

type CompanySize string

const (
	CompanySmall      CompanySize = "SMALL"
	CompanyMedium     CompanySize = "MEDIUM"
	CompanyLarge      CompanySize = "LARGE"
	CompanyEnterprise CompanySize = "ENTERPRISE"
)

// Company is the tenant boundary: every vendor and assessment belongs
// to exactly one company and all queries are scoped by it.
// swagger:model Company
type Company struct {
	UUIDBase
	Name     string      `gorm:"size:255;not null;index" json:"name"`
	Domain   string      `gorm:"size:255" json:"domain,omitempty"`
	Industry string      `gorm:"size:100" json:"industry,omitempty"`
	Size     CompanySize `gorm:"size:20" json:"size,omitempty"`
	Address  string      `gorm:"size:500" json:"address,omitempty"`
	Phone    string      `gorm:"size:50" json:"phone,omitempty"`
	Website  string      `gorm:"size:255" json:"website,omitempty"`
}

func (Company) TableName() string {
	return "companies"
}
