package controller

import (
	"vendor_risk_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, redisClient *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: redisClient}
}

// Health godoc
// @Summary Liveness and dependency check
// @Tags health
// @Produce  json
// @Success 200 {object} util.Response{data=object} "Healthy"
// @Failure 503 {object} util.Response{data=object} "Degraded"
// @Router /api/health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	status := gin.H{
		"service":  "ok",
		"database": "ok",
		"redis":    "ok",
	}
	healthy := true

	if sqlDB, err := c.DB.DB(); err != nil || sqlDB.Ping() != nil {
		status["database"] = "unreachable"
		healthy = false
	}

	if c.Redis == nil {
		status["redis"] = "disabled"
	} else if err := c.Redis.Ping(ctx.Request.Context()).Err(); err != nil {
		status["redis"] = "unreachable"
		healthy = false
	}

	if !healthy {
		ctx.JSON(503, util.Response{Code: 503, Message: "degraded", Data: status})
		return
	}
	util.Success(ctx, status)
}
