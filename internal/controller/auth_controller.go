package controller

import (
	"errors"

	"vendor_risk_backend/internal/model"
	"vendor_risk_backend/internal/service"
	"vendor_risk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Role        string `json:"role" binding:"omitempty,oneof=ADMIN COMPLIANCE_OFFICER PROCUREMENT_MANAGER"`
	CompanyName string `json:"companyName" binding:"required"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account under the named company and sends a verification email
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "Registration details"
// @Success 201 {object} util.Response{data=object} "Created"
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 409 {object} util.Response "Email already registered"
// @Failure 500 {object} util.Response "Internal error"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(service.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        model.UserRole(req.Role),
		CompanyName: req.CompanyName,
	})
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, 409, "email already registered")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID, "email": user.Email})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Login credentials"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Email not verified"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrEmailNotVerified) {
			util.Error(ctx, 403, "email not verified")
			return
		}
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"role":      user.Role,
			"companyId": user.CompanyID,
		},
	})
}

// VerifyEmail godoc
// @Summary Verify email address
// @Description Activates the account belonging to the verification token
// @Tags auth
// @Produce  json
// @Param   token query string true "Verification token"
// @Success 200 {object} util.Response "Success"
// @Failure 400 {object} util.Response "Invalid or expired token"
// @Router /api/auth/verify-email [get]
func (c *AuthController) VerifyEmail(ctx *gin.Context) {
	token := ctx.Query("token")
	if token == "" {
		util.BadRequest(ctx, "token is required")
		return
	}

	if err := c.AuthService.VerifyEmail(token); err != nil {
		util.Error(ctx, 400, "invalid or expired token")
		return
	}
	util.Success(ctx, gin.H{"verified": true})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Sends a reset link if the email is registered; always returns 200
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body ForgotPasswordRequest true "Account email"
// @Success 200 {object} util.Response "Success"
// @Router /api/auth/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	c.AuthService.ForgotPassword(req.Email)
	util.Success(ctx, gin.H{"sent": true})
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// ResetPassword godoc
// @Summary Reset password
// @Description Sets a new password using a reset token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} util.Response "Success"
// @Failure 400 {object} util.Response "Invalid or expired token"
// @Router /api/auth/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.ResetPassword(req.Token, req.Password); err != nil {
		util.Error(ctx, 400, "invalid or expired token")
		return
	}
	util.Success(ctx, gin.H{"reset": true})
}

// GetProfile godoc
// @Summary Get current user profile
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"id":              user.ID,
		"email":           user.Email,
		"firstName":       user.FirstName,
		"lastName":        user.LastName,
		"fullName":        user.FullName(),
		"role":            user.Role,
		"companyId":       user.CompanyID,
		"company":         user.Company,
		"isEmailVerified": user.IsEmailVerified,
		"createdAt":       user.CreatedAt,
	})
}
