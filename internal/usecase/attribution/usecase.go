package usecase

import (
	"context"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	orderdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/order"
	nanoid "github.com/jaevor/go-nanoid"
)

type AttributionUsecase interface {
	RegisterInfluencer(ctx context.Context, actor domain.Actor, input *orderdto.RegisterInfluencerInput) (*domain.Influencer, error)
	CreateProduct(ctx context.Context, actor domain.Actor, input *orderdto.CreateProductInput) (*domain.Product, error)

	PlaceOrder(ctx context.Context, actor domain.Actor, input *orderdto.PlaceOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	CancelOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)

	MarkCommissionPaid(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	CancelAttribution(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	InfluencerCommissions(ctx context.Context, actor domain.Actor) (*domain.CommissionTotals, error)
}

type DefaultAttributionUsecase struct {
	productRepo       domain.ProductRepository
	orderRepo         domain.OrderRepository
	influencerRepo    domain.InfluencerRepository
	participationRepo domain.ParticipationRepository
	campaignRepo      domain.CampaignRepository
	rankingCache      domain.RankingCache
	publisher         usecase.EventPublisher
	audit             domain.StatusChangeLogger
	Metrics           *metrics.CampaignMetrics
	referralCode      func() string
}

func NewDefaultAttributionUsecase(
	productRepo domain.ProductRepository,
	orderRepo domain.OrderRepository,
	influencerRepo domain.InfluencerRepository,
	participationRepo domain.ParticipationRepository,
	campaignRepo domain.CampaignRepository,
	rankingCache domain.RankingCache,
	publisher usecase.EventPublisher,
	audit domain.StatusChangeLogger,
	campaignMetrics *metrics.CampaignMetrics,
) *DefaultAttributionUsecase {
	referralCode, err := nanoid.CustomASCII(usecase.ReferralAlphabet, usecase.ReferralCodeLength)
	if err != nil {
		panic(err)
	}
	return &DefaultAttributionUsecase{
		productRepo:       productRepo,
		orderRepo:         orderRepo,
		influencerRepo:    influencerRepo,
		participationRepo: participationRepo,
		campaignRepo:      campaignRepo,
		rankingCache:      rankingCache,
		publisher:         publisher,
		audit:             audit,
		Metrics:           campaignMetrics,
		referralCode:      referralCode,
	}
}
