package controller

import (
	"errors"

	"vendor_risk_backend/internal/service"
	"vendor_risk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TemplateController struct {
	TemplateService *service.TemplateService
}

func NewTemplateController(templateService *service.TemplateService) *TemplateController {
	return &TemplateController{TemplateService: templateService}
}

// ListTemplates godoc
// @Summary List assessment templates
// @Description Returns built-in and custom templates, optionally filtered by category
// @Tags templates
// @Produce  json
// @Security ApiKeyAuth
// @Param   category query string false "Assessment category filter"
// @Param   activeOnly query bool false "Only active templates" default(true)
// @Success 200 {object} util.Response{data=[]model.AssessmentTemplate} "Success"
// @Router /api/templates [get]
func (c *TemplateController) ListTemplates(ctx *gin.Context) {
	activeOnly := ctx.DefaultQuery("activeOnly", "true") == "true"
	templates, err := c.TemplateService.List(ctx.Query("category"), activeOnly)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, templates)
}

// GetTemplate godoc
// @Summary Get a template
// @Tags templates
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Template ID"
// @Success 200 {object} util.Response{data=model.AssessmentTemplate} "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/templates/{id} [get]
func (c *TemplateController) GetTemplate(ctx *gin.Context) {
	template, err := c.TemplateService.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrTemplateNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, template)
}

// CreateTemplate godoc
// @Summary Create a custom template
// @Tags templates
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.TemplateInput true "Template definition"
// @Success 201 {object} util.Response{data=model.AssessmentTemplate} "Created"
// @Failure 400 {object} util.Response "Invalid request"
// @Router /api/templates [post]
func (c *TemplateController) CreateTemplate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.TemplateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	template, err := c.TemplateService.Create(input, claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, template)
}

// UpdateTemplate godoc
// @Summary Update a custom template
// @Description Built-in default templates cannot be edited
// @Tags templates
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Template ID"
// @Param   body body service.TemplateInput true "Template definition"
// @Success 200 {object} util.Response{data=model.AssessmentTemplate} "Success"
// @Failure 403 {object} util.Response "Template is read-only"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/templates/{id} [put]
func (c *TemplateController) UpdateTemplate(ctx *gin.Context) {
	var input service.TemplateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	template, err := c.TemplateService.Update(ctx.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTemplateNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrTemplateImmutable):
			util.Error(ctx, 403, "built-in templates cannot be modified")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, template)
}

// DeactivateTemplate godoc
// @Summary Deactivate a custom template
// @Tags templates
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Template ID"
// @Success 200 {object} util.Response "Success"
// @Failure 403 {object} util.Response "Template is read-only"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/templates/{id} [delete]
func (c *TemplateController) DeactivateTemplate(ctx *gin.Context) {
	if err := c.TemplateService.Deactivate(ctx.Param("id")); err != nil {
		switch {
		case errors.Is(err, util.ErrTemplateNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrTemplateImmutable):
			util.Error(ctx, 403, "built-in templates cannot be deactivated")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deactivated": true})
}

type CloneTemplateRequest struct {
	Name string `json:"name" binding:"required"`
}

// CloneTemplate godoc
// @Summary Clone a template
// @Description Copies any template, including built-ins, into a new editable one
// @Tags templates
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Source template ID"
// @Param   body body CloneTemplateRequest true "Name for the clone"
// @Success 201 {object} util.Response{data=model.AssessmentTemplate} "Created"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/templates/{id}/clone [post]
func (c *TemplateController) CloneTemplate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CloneTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	clone, err := c.TemplateService.Clone(ctx.Param("id"), req.Name, claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrTemplateNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, clone)
}
