package util

import "errors"

var (
	ErrEmailRegistered     = errors.New("email already exists")
	ErrEmailNotVerified    = errors.New("email not verified")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrVendorNotFound      = errors.New("vendor not found")
	ErrTemplateNotFound    = errors.New("assessment template not found")
	ErrTemplateImmutable   = errors.New("built-in templates cannot be modified")
	ErrAssessmentNotFound  = errors.New("assessment not found")
	ErrInvalidResponses    = errors.New("responses failed validation")
	ErrAssigneeNotFound    = errors.New("assignee not found in company")
	ErrDocumentNotFound    = errors.New("document not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
