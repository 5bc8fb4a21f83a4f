package controller

import (
	"encoding/json"
	"errors"
	"strconv"

	"vendor_risk_backend/internal/repository"
	"vendor_risk_backend/internal/service"
	"vendor_risk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
	DocumentService   *service.DocumentService
}

func NewAssessmentController(assessmentService *service.AssessmentService, documentService *service.DocumentService) *AssessmentController {
	return &AssessmentController{
		AssessmentService: assessmentService,
		DocumentService:   documentService,
	}
}

// CreateAssessment godoc
// @Summary Create an assessment
// @Description Opens a draft assessment of a vendor against a template
// @Tags assessments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.AssessmentInput true "Assessment details"
// @Success 201 {object} util.Response{data=model.Assessment} "Created"
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 404 {object} util.Response "Vendor or template not found"
// @Router /api/assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.AssessmentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.AssessmentService.Create(input, claims.CompanyID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrVendorNotFound), errors.Is(err, util.ErrTemplateNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAssigneeNotFound):
			util.BadRequest(ctx, "assignee not found in company")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, assessment)
}

// ListAssessments godoc
// @Summary List assessments
// @Tags assessments
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   status query string false "Assessment status filter"
// @Param   vendorId query string false "Vendor filter"
// @Success 200 {object} util.PageResponse{data=[]model.Assessment} "Success"
// @Router /api/assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	filter := repository.AssessmentFilter{
		Status:   ctx.Query("status"),
		VendorID: ctx.Query("vendorId"),
	}

	assessments, total, err := c.AssessmentService.List(claims.CompanyID, filter, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithPage(ctx, assessments, total, page, limit)
}

// GetAssessment godoc
// @Summary Get an assessment
// @Tags assessments
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Assessment ID"
// @Success 200 {object} util.Response{data=model.Assessment} "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/assessments/{id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	assessment, err := c.AssessmentService.Get(ctx.Param("id"), claims.CompanyID)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assessment)
}

// UpdateAssessment godoc
// @Summary Update an assessment
// @Description Changes status, due date or assignee
// @Tags assessments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Assessment ID"
// @Param   body body service.AssessmentUpdateInput true "Fields to update"
// @Success 200 {object} util.Response{data=model.Assessment} "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/assessments/{id} [put]
func (c *AssessmentController) UpdateAssessment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.AssessmentUpdateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.AssessmentService.Update(ctx.Param("id"), claims.CompanyID, input)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssessmentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAssigneeNotFound):
			util.BadRequest(ctx, "assignee not found in company")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, assessment)
}

// DeleteAssessment godoc
// @Summary Delete an assessment
// @Tags assessments
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Assessment ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/assessments/{id} [delete]
func (c *AssessmentController) DeleteAssessment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AssessmentService.Delete(ctx.Param("id"), claims.CompanyID); err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

type SubmitResponsesRequest struct {
	Responses json.RawMessage `json:"responses" binding:"required"`
}

// SubmitResponses godoc
// @Summary Submit questionnaire responses
// @Description Validates the response set, computes the risk score, and completes the assessment
// @Tags assessments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Assessment ID"
// @Param   body body SubmitResponsesRequest true "Question ID to response map"
// @Success 200 {object} util.Response{data=service.SubmitResult} "Scored"
// @Failure 400 {object} util.Response{data=service.SubmitResult} "Validation failed"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/assessments/{id}/responses [post]
func (c *AssessmentController) SubmitResponses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitResponsesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AssessmentService.SubmitResponses(ctx.Param("id"), claims.CompanyID, req.Responses)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssessmentNotFound), errors.Is(err, util.ErrTemplateNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidResponses):
			if result != nil && len(result.ValidationErrors) > 0 {
				ctx.JSON(400, util.Response{
					Code:    400,
					Message: "validation failed",
					Data:    result,
				})
			} else {
				util.BadRequest(ctx, "invalid responses payload")
			}
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// ListOverdue godoc
// @Summary List overdue assessments
// @Tags assessments
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Assessment} "Success"
// @Router /api/assessments/overdue [get]
func (c *AssessmentController) ListOverdue(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	assessments, err := c.AssessmentService.Overdue(claims.CompanyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assessments)
}

// UploadDocument godoc
// @Summary Attach an evidence document
// @Description Uploads a file to configured storage and records it against the assessment
// @Tags assessments
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Assessment ID"
// @Param   file formData file true "Document file"
// @Success 201 {object} util.Response{data=model.AssessmentDocument} "Created"
// @Failure 400 {object} util.Response "Unsupported file type"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/assessments/{id}/documents [post]
func (c *AssessmentController) UploadDocument(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	doc, err := c.DocumentService.Upload(ctx.Request.Context(), ctx.Param("id"), claims.CompanyID, header, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssessmentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrUnsupportedFileType):
			util.BadRequest(ctx, "unsupported file type")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, doc)
}

// ListDocuments godoc
// @Summary List an assessment's documents
// @Tags assessments
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Assessment ID"
// @Success 200 {object} util.Response{data=[]model.AssessmentDocument} "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/assessments/{id}/documents [get]
func (c *AssessmentController) ListDocuments(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	docs, err := c.DocumentService.List(ctx.Param("id"), claims.CompanyID)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, docs)
}

// DeleteDocument godoc
// @Summary Remove an evidence document
// @Tags assessments
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Assessment ID"
// @Param   documentId path string true "Document ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/assessments/{id}/documents/{documentId} [delete]
func (c *AssessmentController) DeleteDocument(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.DocumentService.Delete(ctx.Request.Context(), ctx.Param("documentId"), claims.CompanyID); err != nil {
		if errors.Is(err, util.ErrDocumentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
