package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"vendor_risk_backend/internal/model"
	"vendor_risk_backend/internal/repository"
	"vendor_risk_backend/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DocumentService manages evidence files attached to assessments.
type DocumentService struct {
	AssessmentRepo *repository.AssessmentRepository
	Storage        *StorageService
	Logger         *zap.Logger
}

func NewDocumentService(assessmentRepo *repository.AssessmentRepository, storage *StorageService, logger *zap.Logger) *DocumentService {
	return &DocumentService{
		AssessmentRepo: assessmentRepo,
		Storage:        storage,
		Logger:         logger,
	}
}

// Upload sniffs the file's MIME type, stores it under a fresh object
// key, and records the document row against the assessment.
func (s *DocumentService) Upload(ctx context.Context, assessmentID, companyID string, header *multipart.FileHeader, uploadedByID uint) (*model.AssessmentDocument, error) {
	assessment, err := s.AssessmentRepo.FindByID(assessmentID, companyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	} else if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sniff := make([]byte, 512)
	n, err := file.Read(sniff)
	if err != nil && err != io.EOF {
		return nil, err
	}
	contentType, err := util.ValidateMimeType(bytes.NewReader(sniff[:n]), util.AllowedDocumentTypes)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("assessments/%s/%s%s", assessment.ID, uuid.New().String(), filepath.Ext(header.Filename))
	reader := io.MultiReader(bytes.NewReader(sniff[:n]), file)
	url, err := s.Storage.Upload(ctx, objectKey, reader, header.Size, contentType)
	if err != nil {
		return nil, err
	}

	doc := &model.AssessmentDocument{
		AssessmentID: assessment.ID,
		FileName:     header.Filename,
		ObjectKey:    objectKey,
		ContentType:  contentType,
		Size:         header.Size,
		URL:          url,
		UploadedByID: uploadedByID,
	}
	if err := s.AssessmentRepo.CreateDocument(doc); err != nil {
		// Orphaned object; remove it so storage does not drift from the DB.
		if delErr := s.Storage.Delete(ctx, objectKey); delErr != nil {
			s.Logger.Warn("failed to clean up orphaned upload",
				zap.String("objectKey", objectKey),
				zap.Error(delErr))
		}
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) List(assessmentID, companyID string) ([]model.AssessmentDocument, error) {
	if _, err := s.AssessmentRepo.FindByID(assessmentID, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentNotFound
		}
		return nil, err
	}
	return s.AssessmentRepo.FindDocuments(assessmentID)
}

func (s *DocumentService) Delete(ctx context.Context, documentID, companyID string) error {
	doc, err := s.AssessmentRepo.FindDocumentByID(documentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrDocumentNotFound
	} else if err != nil {
		return err
	}

	// Tenant check via the owning assessment.
	if _, err := s.AssessmentRepo.FindByID(doc.AssessmentID, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrDocumentNotFound
		}
		return err
	}

	if err := s.Storage.Delete(ctx, doc.ObjectKey); err != nil {
		s.Logger.Warn("failed to delete stored object",
			zap.String("objectKey", doc.ObjectKey),
			zap.Error(err))
	}
	return s.AssessmentRepo.DeleteDocument(documentID)
}
