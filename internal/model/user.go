package model

import "time"

type UserRole string

const (
	Admin              UserRole = "ADMIN"
	ComplianceOfficer  UserRole = "COMPLIANCE_OFFICER"
	ProcurementManager UserRole = "PROCUREMENT_MANAGER"
)

// swagger:model User
type User struct {
	BaseModel
	Email     string   `gorm:"size:100;unique;not null" json:"email"`
	Password  string   `gorm:"size:100;not null" json:"-"`
	FirstName string   `gorm:"size:100;not null" json:"firstName"`
	LastName  string   `gorm:"size:100;not null" json:"lastName"`
	Role      UserRole `gorm:"type:enum('ADMIN','COMPLIANCE_OFFICER','PROCUREMENT_MANAGER');default:'COMPLIANCE_OFFICER'" json:"role"`
	CompanyID string   `gorm:"index;type:varchar(36);not null" json:"companyId"`
	Company   *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	IsEmailVerified          bool       `gorm:"default:false" json:"isEmailVerified"`
	EmailVerificationToken   string     `gorm:"size:100;index" json:"-"`
	EmailVerificationExpires *time.Time `json:"-"`
	PasswordResetToken       string     `gorm:"size:100;index" json:"-"`
	PasswordResetExpires     *time.Time `json:"-"`

	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// FullName is used in assignment listings and email greetings.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
