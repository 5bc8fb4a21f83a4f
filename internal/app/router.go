package app

import (
	"vendor_risk_backend/docs"
	"vendor_risk_backend/internal/config"
	"vendor_risk_backend/internal/middleware"
	"vendor_risk_backend/internal/model"

	"vendor_risk_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/auth/verify-email", c.auth.VerifyEmail)
		public.POST("/auth/forgot-password", c.auth.ForgotPassword)
		public.POST("/auth/reset-password", c.auth.ResetPassword)
	}

	// Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.GET("/dashboard/overview", c.dashboard.GetOverview)

		vendors := authGroup.Group("/vendors")
		{
			vendors.GET("", c.vendor.ListVendors)
			vendors.GET("/:id", c.vendor.GetVendor)
			vendors.POST("", c.vendor.CreateVendor)
			vendors.PUT("/:id", c.vendor.UpdateVendor)
			vendors.PATCH("/:id/status", c.vendor.UpdateVendorStatus)
			vendors.DELETE("/:id", middleware.RoleMiddleware(model.Admin, model.ComplianceOfficer), c.vendor.DeleteVendor)
		}

		templates := authGroup.Group("/templates")
		{
			templates.GET("", c.template.ListTemplates)
			templates.GET("/:id", c.template.GetTemplate)
			templates.POST("/:id/clone", c.template.CloneTemplate)

			// Authoring is restricted to compliance staff.
			restricted := templates.Group("")
			restricted.Use(middleware.RoleMiddleware(model.Admin, model.ComplianceOfficer))
			{
				restricted.POST("", c.template.CreateTemplate)
				restricted.PUT("/:id", c.template.UpdateTemplate)
				restricted.DELETE("/:id", c.template.DeactivateTemplate)
			}
		}

		assessments := authGroup.Group("/assessments")
		{
			assessments.GET("", c.assessment.ListAssessments)
			assessments.GET("/overdue", c.assessment.ListOverdue)
			assessments.GET("/:id", c.assessment.GetAssessment)
			assessments.POST("", c.assessment.CreateAssessment)
			assessments.PUT("/:id", c.assessment.UpdateAssessment)
			assessments.POST("/:id/responses", c.assessment.SubmitResponses)
			assessments.POST("/:id/documents", c.assessment.UploadDocument)
			assessments.GET("/:id/documents", c.assessment.ListDocuments)
			assessments.DELETE("/:id/documents/:documentId", c.assessment.DeleteDocument)
			assessments.DELETE("/:id", middleware.RoleMiddleware(model.Admin, model.ComplianceOfficer), c.assessment.DeleteAssessment)
		}
	}
}
