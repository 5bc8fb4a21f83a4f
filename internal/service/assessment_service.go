package service

import (
	"encoding/json"
	"errors"
	"time"

	"vendor_risk_backend/internal/model"
	"vendor_risk_backend/internal/repository"
	"vendor_risk_backend/internal/riskscoring"
	"vendor_risk_backend/internal/util"
	"vendor_risk_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AssessmentService struct {
	AssessmentRepo *repository.AssessmentRepository
	VendorRepo     *repository.VendorRepository
	TemplateRepo   *repository.TemplateRepository
	UserRepo       *repository.UserRepository
	Mail           *MailService
	Logger         *zap.Logger

	// Rules and Scale pin the scoring behavior; DefaultRules and the
	// legacy scale unless overridden at wiring time.
	Rules riskscoring.Rules
	Scale riskscoring.ScaleMode
}

func NewAssessmentService(
	assessmentRepo *repository.AssessmentRepository,
	vendorRepo *repository.VendorRepository,
	templateRepo *repository.TemplateRepository,
	userRepo *repository.UserRepository,
	mail *MailService,
	logger *zap.Logger,
) *AssessmentService {
	return &AssessmentService{
		AssessmentRepo: assessmentRepo,
		VendorRepo:     vendorRepo,
		TemplateRepo:   templateRepo,
		UserRepo:       userRepo,
		Mail:           mail,
		Logger:         logger,
		Rules:          riskscoring.DefaultRules(),
		Scale:          riskscoring.ScaleLegacy,
	}
}

type AssessmentInput struct {
	VendorID     string     `json:"vendorId" binding:"required"`
	TemplateID   string     `json:"templateId" binding:"required"`
	DueDate      *time.Time `json:"dueDate"`
	AssignedToID *uint      `json:"assignedToId"`
}

func (s *AssessmentService) Create(input AssessmentInput, companyID string, createdByID uint) (*model.Assessment, error) {
	vendor, err := s.VendorRepo.FindByID(input.VendorID, companyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrVendorNotFound
	} else if err != nil {
		return nil, err
	}

	if _, err := s.TemplateRepo.FindByID(input.TemplateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTemplateNotFound
		}
		return nil, err
	}

	assessment := &model.Assessment{
		VendorID:     input.VendorID,
		TemplateID:   input.TemplateID,
		Status:       model.AssessmentDraft,
		DueDate:      input.DueDate,
		AssignedToID: input.AssignedToID,
		CreatedByID:  createdByID,
	}

	var assignee *model.User
	if input.AssignedToID != nil {
		assignee, err = s.UserRepo.FindInCompany(*input.AssignedToID, companyID)
		if err != nil {
			return nil, util.ErrAssigneeNotFound
		}
	}

	if err := s.AssessmentRepo.Create(assessment); err != nil {
		return nil, err
	}

	if assignee != nil {
		go s.Mail.SendAssessmentNotification(assignee.Email, assignee.FirstName, vendor.Name)
	}
	return assessment, nil
}

func (s *AssessmentService) Get(id, companyID string) (*model.Assessment, error) {
	assessment, err := s.AssessmentRepo.FindByID(id, companyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	return assessment, err
}

func (s *AssessmentService) List(companyID string, filter repository.AssessmentFilter, page, limit int) ([]model.Assessment, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return s.AssessmentRepo.List(companyID, filter, page, limit)
}

type AssessmentUpdateInput struct {
	Status       model.AssessmentStatus `json:"status"`
	DueDate      *time.Time             `json:"dueDate"`
	AssignedToID *uint                  `json:"assignedToId"`
}

func (s *AssessmentService) Update(id, companyID string, input AssessmentUpdateInput) (*model.Assessment, error) {
	assessment, err := s.Get(id, companyID)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		assessment.Status = input.Status
	}
	if input.DueDate != nil {
		assessment.DueDate = input.DueDate
	}
	if input.AssignedToID != nil {
		if _, err := s.UserRepo.FindInCompany(*input.AssignedToID, companyID); err != nil {
			return nil, util.ErrAssigneeNotFound
		}
		assessment.AssignedToID = input.AssignedToID
	}

	if err := s.AssessmentRepo.Update(assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

func (s *AssessmentService) Delete(id, companyID string) error {
	if _, err := s.Get(id, companyID); err != nil {
		return err
	}
	return s.AssessmentRepo.Delete(id)
}

// SubmitResult carries the scoring outcome back to the handler.
// ValidationErrors is set instead of Assessment when the response set
// fails validation.
type SubmitResult struct {
	Assessment       *model.Assessment `json:"assessment,omitempty"`
	RiskScore        int               `json:"riskScore"`
	RiskLevel        riskscoring.Level `json:"riskLevel"`
	ValidationErrors []string          `json:"validationErrors,omitempty"`
}

// SubmitResponses validates a response set against the assessment's
// template, scores it, and completes the assessment in one step. The
// vendor's risk level is refreshed from the new score.
func (s *AssessmentService) SubmitResponses(id, companyID string, rawResponses json.RawMessage) (*SubmitResult, error) {
	assessment, err := s.Get(id, companyID)
	if err != nil {
		return nil, err
	}

	template, err := s.TemplateRepo.FindByID(assessment.TemplateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTemplateNotFound
		}
		return nil, err
	}

	var questions riskscoring.Template
	if err := json.Unmarshal(template.Questions, &questions); err != nil {
		return nil, err
	}
	var weights riskscoring.Weights
	if err := json.Unmarshal(template.RiskWeights, &weights); err != nil {
		return nil, err
	}

	var responses riskscoring.ResponseSet
	if err := json.Unmarshal(rawResponses, &responses); err != nil {
		return nil, util.ErrInvalidResponses
	}

	if result := riskscoring.Validate(responses, questions); !result.IsValid {
		return &SubmitResult{ValidationErrors: result.Errors}, util.ErrInvalidResponses
	}

	score := riskscoring.Calculate(responses, weights, s.Rules, s.Scale)
	level := riskscoring.Classify(score)

	now := time.Now()
	assessment.Responses = rawResponses
	assessment.RiskScore = &score
	assessment.Status = model.AssessmentCompleted
	assessment.CompletedAt = &now
	if err := s.AssessmentRepo.Update(assessment); err != nil {
		return nil, err
	}

	if level != riskscoring.LevelUnknown {
		if err := s.VendorRepo.UpdateRiskLevel(assessment.VendorID, model.RiskBand(level)); err != nil {
			s.Logger.Error("failed to update vendor risk level",
				zap.String("vendorId", assessment.VendorID),
				zap.Error(err))
		}
	}

	monitoring.AssessmentsScored.WithLabelValues(string(level)).Inc()
	s.Logger.Info("assessment scored",
		zap.String("assessmentId", assessment.ID),
		zap.Int("riskScore", score),
		zap.String("riskLevel", string(level)))

	return &SubmitResult{
		Assessment: assessment,
		RiskScore:  score,
		RiskLevel:  level,
	}, nil
}

// Overdue lists assessments past their due date and still open.
func (s *AssessmentService) Overdue(companyID string) ([]model.Assessment, error) {
	return s.AssessmentRepo.FindOverdue(companyID, time.Now())
}
