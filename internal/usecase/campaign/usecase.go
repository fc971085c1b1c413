package usecase

import (
	"context"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	campaigndto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/campaign"
	nanoid "github.com/jaevor/go-nanoid"
)

type CampaignUsecase interface {
	CreateCampaign(ctx context.Context, actor domain.Actor, input *campaigndto.CreateCampaignInput) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, actor domain.Actor, campaignID string) (*domain.Campaign, error)
	ListBrandCampaigns(ctx context.Context, actor domain.Actor, input *campaigndto.ListCampaignsInput) (*campaigndto.ListCampaignsOutput, error)

	ActivateCampaign(ctx context.Context, actor domain.Actor, campaignID string) (*domain.Campaign, error)
	ChangeCampaignStatus(ctx context.Context, actor domain.Actor, campaignID string, status domain.CampaignStatus) (*domain.Campaign, error)
	CompleteCampaign(ctx context.Context, actor domain.Actor, campaignID string) (*campaigndto.CascadeOutput, error)
	CancelCampaign(ctx context.Context, actor domain.Actor, campaignID string) (*campaigndto.CascadeOutput, error)
	CompletedProgressAlerts(ctx context.Context, actor domain.Actor) ([]*domain.Campaign, error)

	Apply(ctx context.Context, actor domain.Actor, campaignID string) (*domain.Participation, error)
	Invite(ctx context.Context, actor domain.Actor, campaignID, influencerID string) (*domain.Participation, error)
	ApproveParticipation(ctx context.Context, actor domain.Actor, campaignID, influencerID string) (*domain.Participation, error)
	AcceptInvite(ctx context.Context, actor domain.Actor, campaignID string) (*domain.Participation, error)
	GetParticipations(ctx context.Context, actor domain.Actor, campaignID string) ([]*domain.Participation, error)

	AddDeliverable(ctx context.Context, actor domain.Actor, input *campaigndto.AddDeliverableInput) (*domain.Participation, error)
	CompleteDeliverable(ctx context.Context, actor domain.Actor, campaignID string, index int) (*domain.Participation, error)
	UpdateProgress(ctx context.Context, actor domain.Actor, input *campaigndto.UpdateProgressInput) (*domain.Participation, error)
	UpdateParticipationMetrics(ctx context.Context, actor domain.Actor, input *campaigndto.UpdateMetricsInput) (*domain.Participation, error)
}

type DefaultCampaignUsecase struct {
	campaignRepo      domain.CampaignRepository
	participationRepo domain.ParticipationRepository
	influencerRepo    domain.InfluencerRepository
	metricsRepo       domain.MetricsRepository
	rankingCache      domain.RankingCache
	publisher         usecase.EventPublisher
	audit             domain.StatusChangeLogger
	Metrics           *metrics.CampaignMetrics
	referralCode      func() string
}

func NewDefaultCampaignUsecase(
	campaignRepo domain.CampaignRepository,
	participationRepo domain.ParticipationRepository,
	influencerRepo domain.InfluencerRepository,
	metricsRepo domain.MetricsRepository,
	rankingCache domain.RankingCache,
	publisher usecase.EventPublisher,
	audit domain.StatusChangeLogger,
	campaignMetrics *metrics.CampaignMetrics,
) *DefaultCampaignUsecase {
	referralCode, err := nanoid.CustomASCII(usecase.ReferralAlphabet, usecase.ReferralCodeLength)
	if err != nil {
		panic(err)
	}
	return &DefaultCampaignUsecase{
		campaignRepo:      campaignRepo,
		participationRepo: participationRepo,
		influencerRepo:    influencerRepo,
		metricsRepo:       metricsRepo,
		rankingCache:      rankingCache,
		publisher:         publisher,
		audit:             audit,
		Metrics:           campaignMetrics,
		referralCode:      referralCode,
	}
}
