package controller

import (
	"errors"
	"strconv"

	"vendor_risk_backend/internal/model"
	"vendor_risk_backend/internal/repository"
	"vendor_risk_backend/internal/service"
	"vendor_risk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VendorController struct {
	VendorService *service.VendorService
}

func NewVendorController(vendorService *service.VendorService) *VendorController {
	return &VendorController{VendorService: vendorService}
}

// CreateVendor godoc
// @Summary Create a vendor
// @Tags vendors
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.VendorInput true "Vendor details"
// @Success 201 {object} util.Response{data=model.Vendor} "Created"
// @Failure 400 {object} util.Response "Invalid request"
// @Router /api/vendors [post]
func (c *VendorController) CreateVendor(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.VendorInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	vendor, err := c.VendorService.Create(input, claims.CompanyID, claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, vendor)
}

// ListVendors godoc
// @Summary List vendors
// @Description Paginated vendor listing with search and filters, scoped to the caller's company
// @Tags vendors
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Match against name, description or contact email"
// @Param   status query string false "Vendor status filter"
// @Param   riskLevel query string false "Risk level filter"
// @Param   vendorType query string false "Vendor type filter"
// @Success 200 {object} util.PageResponse{data=[]model.Vendor} "Success"
// @Router /api/vendors [get]
func (c *VendorController) ListVendors(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	filter := repository.VendorFilter{
		Search:     ctx.Query("search"),
		Status:     ctx.Query("status"),
		RiskLevel:  ctx.Query("riskLevel"),
		VendorType: ctx.Query("vendorType"),
	}

	vendors, total, err := c.VendorService.List(claims.CompanyID, filter, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithPage(ctx, vendors, total, page, limit)
}

// GetVendor godoc
// @Summary Get a vendor
// @Tags vendors
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Vendor ID"
// @Success 200 {object} util.Response{data=model.Vendor} "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/vendors/{id} [get]
func (c *VendorController) GetVendor(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	vendor, err := c.VendorService.Get(ctx.Param("id"), claims.CompanyID)
	if err != nil {
		if errors.Is(err, util.ErrVendorNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, vendor)
}

// UpdateVendor godoc
// @Summary Update a vendor
// @Tags vendors
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Vendor ID"
// @Param   body body service.VendorInput true "Vendor details"
// @Success 200 {object} util.Response{data=model.Vendor} "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/vendors/{id} [put]
func (c *VendorController) UpdateVendor(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.VendorInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	vendor, err := c.VendorService.Update(ctx.Param("id"), claims.CompanyID, input)
	if err != nil {
		if errors.Is(err, util.ErrVendorNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, vendor)
}

type VendorStatusRequest struct {
	Status model.VendorStatus `json:"status" binding:"required,oneof=ACTIVE INACTIVE UNDER_REVIEW TERMINATED"`
}

// UpdateVendorStatus godoc
// @Summary Change a vendor's lifecycle status
// @Tags vendors
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Vendor ID"
// @Param   body body VendorStatusRequest true "New status"
// @Success 200 {object} util.Response{data=model.Vendor} "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/vendors/{id}/status [patch]
func (c *VendorController) UpdateVendorStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req VendorStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	vendor, err := c.VendorService.UpdateStatus(ctx.Param("id"), claims.CompanyID, req.Status)
	if err != nil {
		if errors.Is(err, util.ErrVendorNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, vendor)
}

// DeleteVendor godoc
// @Summary Delete a vendor
// @Tags vendors
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Vendor ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/vendors/{id} [delete]
func (c *VendorController) DeleteVendor(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.VendorService.Delete(ctx.Param("id"), claims.CompanyID); err != nil {
		if errors.Is(err, util.ErrVendorNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
