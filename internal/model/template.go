package model

import "encoding/json"

type AssessmentCategory string

const (
	CategoryGeneral       AssessmentCategory = "GENERAL"
	CategoryCybersecurity AssessmentCategory = "CYBERSECURITY"
	CategoryFinancial     AssessmentCategory = "FINANCIAL"
	CategoryOperational   AssessmentCategory = "OPERATIONAL"
	CategoryCompliance    AssessmentCategory = "COMPLIANCE"
	CategoryReputational  AssessmentCategory = "REPUTATIONAL"
)

// AssessmentTemplate is the scoring contract for one reusable form.
// Questions holds the section/question schema and RiskWeights the
// per-section and per-question weight tables, both as JSON documents
// decoded by the riskscoring package at submission time. Published
// templates are treated as immutable by the scoring path; edits only
// affect future assessments.
// swagger:model AssessmentTemplate
type AssessmentTemplate struct {
	UUIDBase
	Name        string             `gorm:"size:255;not null" json:"name"`
	Description string             `gorm:"type:text" json:"description,omitempty"`
	Category    AssessmentCategory `gorm:"size:20;not null;index" json:"category"`
	Questions   json.RawMessage    `gorm:"type:json;not null" json:"questions"`
	RiskWeights json.RawMessage    `gorm:"type:json;not null" json:"riskWeights"`
	IsActive    bool               `gorm:"default:true;index" json:"isActive"`
	IsDefault   bool               `gorm:"default:false" json:"isDefault"` // seeded built-in, not editable

	CreatedByID *uint `gorm:"index;type:bigint unsigned" json:"createdById,omitempty"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
}

func (AssessmentTemplate) TableName() string {
	return "assessment_templates"
}
