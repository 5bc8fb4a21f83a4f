package service

import (
	"context"
	"encoding/json"
	"time"

	"vendor_risk_backend/internal/model"
	"vendor_risk_backend/internal/repository"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const dashboardCacheTTL = 5 * time.Minute

type DashboardService struct {
	DashboardRepo  *repository.DashboardRepository
	VendorRepo     *repository.VendorRepository
	AssessmentRepo *repository.AssessmentRepository
	Redis          *redis.Client
	Logger         *zap.Logger
}

func NewDashboardService(
	dashboardRepo *repository.DashboardRepository,
	vendorRepo *repository.VendorRepository,
	assessmentRepo *repository.AssessmentRepository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		DashboardRepo:  dashboardRepo,
		VendorRepo:     vendorRepo,
		AssessmentRepo: assessmentRepo,
		Redis:          redisClient,
		Logger:         logger,
	}
}

// Overview is the landing-page summary for one company.
type Overview struct {
	TotalVendors        int64              `json:"totalVendors"`
	TotalAssessments    int64              `json:"totalAssessments"`
	AverageRiskScore    float64            `json:"averageRiskScore"`
	VendorsByStatus     map[string]int64   `json:"vendorsByStatus"`
	VendorsByRiskLevel  map[string]int64   `json:"vendorsByRiskLevel"`
	AssessmentsByStatus map[string]int64   `json:"assessmentsByStatus"`
	VendorsAddedLast30d int64              `json:"vendorsAddedLast30d"`
	RecentAssessments   []model.Assessment `json:"recentAssessments"`
}

// GetOverview serves from Redis when a fresh copy exists; the cache is
// per company and expires rather than being invalidated on writes.
func (s *DashboardService) GetOverview(ctx context.Context, companyID string) (*Overview, error) {
	cacheKey := "dashboard:overview:" + companyID

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var overview Overview
			if err := json.Unmarshal([]byte(cached), &overview); err == nil {
				return &overview, nil
			}
		}
	}

	overview, err := s.buildOverview(companyID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(overview); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, raw, dashboardCacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache dashboard overview", zap.Error(err))
			}
		}
	}

	return overview, nil
}

func (s *DashboardService) buildOverview(companyID string) (*Overview, error) {
	totalVendors, err := s.DashboardRepo.CountVendors(companyID)
	if err != nil {
		return nil, err
	}
	totalAssessments, err := s.DashboardRepo.CountAssessments(companyID)
	if err != nil {
		return nil, err
	}
	avgScore, err := s.DashboardRepo.AverageRiskScore(companyID)
	if err != nil {
		return nil, err
	}
	vendorsByStatus, err := s.VendorRepo.CountByStatus(companyID)
	if err != nil {
		return nil, err
	}
	vendorsByRisk, err := s.VendorRepo.CountByRiskLevel(companyID)
	if err != nil {
		return nil, err
	}
	assessmentsByStatus, err := s.AssessmentRepo.CountByStatus(companyID)
	if err != nil {
		return nil, err
	}
	recent, err := s.DashboardRepo.RecentAssessments(companyID, 5)
	if err != nil {
		return nil, err
	}
	addedLast30d, err := s.DashboardRepo.VendorsCreatedSince(companyID, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalVendors:        totalVendors,
		TotalAssessments:    totalAssessments,
		AverageRiskScore:    avgScore,
		VendorsByStatus:     vendorsByStatus,
		VendorsByRiskLevel:  vendorsByRisk,
		AssessmentsByStatus: assessmentsByStatus,
		VendorsAddedLast30d: addedLast30d,
		RecentAssessments:   recent,
	}, nil
}
