package model

import (
	"encoding/json"
	"time"
)

type AssessmentStatus string

const (
	AssessmentDraft      AssessmentStatus = "DRAFT"
	AssessmentInProgress AssessmentStatus = "IN_PROGRESS"
	AssessmentCompleted  AssessmentStatus = "COMPLETED"
	AssessmentReviewed   AssessmentStatus = "REVIEWED"
	AssessmentApproved   AssessmentStatus = "APPROVED"
	AssessmentRejected   AssessmentStatus = "REJECTED"
)

// Assessment is one questionnaire run against one vendor. Responses
// and RiskScore are only set once the response set is submitted; the
// score is recomputed from scratch on every submission, never patched.
// swagger:model Assessment
type Assessment struct {
	UUIDBase
	VendorID   string              `gorm:"index;type:varchar(36);not null" json:"vendorId"`
	Vendor     *Vendor             `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	TemplateID string              `gorm:"index;type:varchar(36);not null" json:"templateId"`
	Template   *AssessmentTemplate `gorm:"foreignKey:TemplateID" json:"template,omitempty"`

	Status      AssessmentStatus `gorm:"size:20;not null;default:'DRAFT';index" json:"status"`
	Responses   json.RawMessage  `gorm:"type:json" json:"responses,omitempty"`
	RiskScore   *int             `json:"riskScore,omitempty"`
	DueDate     *time.Time       `json:"dueDate,omitempty"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`

	AssignedToID *uint `gorm:"index;type:bigint unsigned" json:"assignedToId,omitempty"`
	AssignedTo   *User `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`
	CreatedByID  uint  `gorm:"index;type:bigint unsigned" json:"createdById"`
	CreatedBy    *User `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// AssessmentDocument is a piece of supporting evidence (contract,
// certificate, audit report) attached to an assessment.
// swagger:model AssessmentDocument
type AssessmentDocument struct {
	UUIDBase
	AssessmentID string `gorm:"index;type:varchar(36);not null" json:"assessmentId"`
	FileName     string `gorm:"size:255;not null" json:"fileName"`
	ObjectKey    string `gorm:"size:500;not null" json:"-"` // storage backend key
	ContentType  string `gorm:"size:100" json:"contentType"`
	Size         int64  `json:"size"`
	URL          string `gorm:"size:500" json:"url"`

	UploadedByID uint  `gorm:"index;type:bigint unsigned" json:"uploadedById"`
	UploadedBy   *User `gorm:"foreignKey:UploadedByID" json:"uploadedBy,omitempty"`
}

func (AssessmentDocument) TableName() string {
	return "assessment_documents"
}
