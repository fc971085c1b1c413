package usecase

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/metrics"
	analyticsdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/analytics"
)

type AnalyticsUsecase interface {
	TopInfluencers(ctx context.Context, actor domain.Actor) ([]domain.InfluencerRanking, error)
	Contribution(ctx context.Context, actor domain.Actor, campaignID, influencerID string) (*domain.ContributionView, error)
	RecomputeMetrics(ctx context.Context, campaignID string) (*domain.CampaignMetrics, error)
	GetCampaignMetrics(ctx context.Context, actor domain.Actor, campaignID string) (*domain.CampaignMetrics, error)
	BrandDashboard(ctx context.Context, actor domain.Actor) (*analyticsdto.DashboardOutput, error)
}

type DefaultAnalyticsUsecase struct {
	campaignRepo      domain.CampaignRepository
	participationRepo domain.ParticipationRepository
	influencerRepo    domain.InfluencerRepository
	rankingRepo       domain.RankingRepository
	metricsRepo       domain.MetricsRepository
	paymentRepo       domain.PaymentRepository
	rankingCache      domain.RankingCache
	cacheTTL          time.Duration
	Metrics           *metrics.CampaignMetrics
}

func NewDefaultAnalyticsUsecase(
	campaignRepo domain.CampaignRepository,
	participationRepo domain.ParticipationRepository,
	influencerRepo domain.InfluencerRepository,
	rankingRepo domain.RankingRepository,
	metricsRepo domain.MetricsRepository,
	paymentRepo domain.PaymentRepository,
	rankingCache domain.RankingCache,
	cacheTTL time.Duration,
	campaignMetrics *metrics.CampaignMetrics,
) *DefaultAnalyticsUsecase {
	return &DefaultAnalyticsUsecase{
		campaignRepo:      campaignRepo,
		participationRepo: participationRepo,
		influencerRepo:    influencerRepo,
		rankingRepo:       rankingRepo,
		metricsRepo:       metricsRepo,
		paymentRepo:       paymentRepo,
		rankingCache:      rankingCache,
		cacheTTL:          cacheTTL,
		Metrics:           campaignMetrics,
	}
}
