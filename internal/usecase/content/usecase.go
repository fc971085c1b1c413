package usecase

import (
	"context"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	contentdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/content"
	nanoid "github.com/jaevor/go-nanoid"
)

type ContentUsecase interface {
	CreateContent(ctx context.Context, actor domain.Actor, input *contentdto.CreateContentInput) (*domain.CampaignContent, error)
	GetContent(ctx context.Context, actor domain.Actor, contentID string) (*domain.CampaignContent, error)
	SubmitContent(ctx context.Context, actor domain.Actor, contentID string) (*domain.CampaignContent, error)
	ReviewContent(ctx context.Context, actor domain.Actor, input *contentdto.ReviewContentInput) (*domain.CampaignContent, error)
	PublishContent(ctx context.Context, actor domain.Actor, contentID, postURL string) (*domain.CampaignContent, error)
	TrackInteraction(ctx context.Context, input *contentdto.TrackInteractionInput) error
}

type DefaultContentUsecase struct {
	contentRepo       domain.ContentRepository
	campaignRepo      domain.CampaignRepository
	participationRepo domain.ParticipationRepository
	publisher         usecase.EventPublisher
	audit             domain.StatusChangeLogger
	Metrics           *metrics.CampaignMetrics
	trackingID        func() string
}

func NewDefaultContentUsecase(
	contentRepo domain.ContentRepository,
	campaignRepo domain.CampaignRepository,
	participationRepo domain.ParticipationRepository,
	publisher usecase.EventPublisher,
	audit domain.StatusChangeLogger,
	campaignMetrics *metrics.CampaignMetrics,
) *DefaultContentUsecase {
	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		panic(err)
	}
	return &DefaultContentUsecase{
		contentRepo:       contentRepo,
		campaignRepo:      campaignRepo,
		participationRepo: participationRepo,
		publisher:         publisher,
		audit:             audit,
		Metrics:           campaignMetrics,
		trackingID:        idGenerator,
	}
}
