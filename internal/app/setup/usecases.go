package setup

import (
	analyticsUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/analytics"
	attributionUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/attribution"
	campaignUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/campaign"
	contentUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/content"
	paymentUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/payment"
)

type UseCases struct {
	CampaignUsecase    campaignUsecase.CampaignUsecase
	AnalyticsUsecase   *analyticsUsecase.DefaultAnalyticsUsecase
	ContentUsecase     contentUsecase.ContentUsecase
	AttributionUsecase attributionUsecase.AttributionUsecase
	PaymentUsecase     paymentUsecase.PaymentUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	repos := deps.Repositories
	return &UseCases{
		CampaignUsecase: campaignUsecase.NewDefaultCampaignUsecase(
			repos.CampaignRepo,
			repos.ParticipationRepo,
			repos.InfluencerRepo,
			repos.MetricsRepo,
			deps.RankingCache,
			deps.Publisher,
			deps.Audit,
			deps.Metrics,
		),
		AnalyticsUsecase: analyticsUsecase.NewDefaultAnalyticsUsecase(
			repos.CampaignRepo,
			repos.ParticipationRepo,
			repos.InfluencerRepo,
			repos.RankingRepo,
			repos.MetricsRepo,
			repos.PaymentRepo,
			deps.RankingCache,
			deps.Config.Redis.TTL,
			deps.Metrics,
		),
		ContentUsecase: contentUsecase.NewDefaultContentUsecase(
			repos.ContentRepo,
			repos.CampaignRepo,
			repos.ParticipationRepo,
			deps.Publisher,
			deps.Audit,
			deps.Metrics,
		),
		AttributionUsecase: attributionUsecase.NewDefaultAttributionUsecase(
			repos.ProductRepo,
			repos.OrderRepo,
			repos.InfluencerRepo,
			repos.ParticipationRepo,
			repos.CampaignRepo,
			deps.RankingCache,
			deps.Publisher,
			deps.Audit,
			deps.Metrics,
		),
		PaymentUsecase: paymentUsecase.NewDefaultPaymentUsecase(
			repos.PaymentRepo,
			repos.CampaignRepo,
			repos.ParticipationRepo,
			deps.Audit,
			deps.Metrics,
		),
	}
}
