package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	paymentdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/payment"
	nanoid "github.com/jaevor/go-nanoid"
)

type PaymentUsecase interface {
	RecordPayment(ctx context.Context, actor domain.Actor, input *paymentdto.RecordPaymentInput) (*domain.CampaignPayment, error)
	UpdatePaymentStatus(ctx context.Context, actor domain.Actor, paymentID string, status domain.PaymentStatus) (*domain.CampaignPayment, error)
	GetPayments(ctx context.Context, actor domain.Actor, campaignID, influencerID string) ([]*domain.CampaignPayment, error)
	TotalPaid(ctx context.Context, campaignID, influencerID string) (float64, error)
}

type DefaultPaymentUsecase struct {
	paymentRepo       domain.PaymentRepository
	campaignRepo      domain.CampaignRepository
	participationRepo domain.ParticipationRepository
	audit             domain.StatusChangeLogger
	Metrics           *metrics.CampaignMetrics
	idGenerator       func() string
}

func NewDefaultPaymentUsecase(
	paymentRepo domain.PaymentRepository,
	campaignRepo domain.CampaignRepository,
	participationRepo domain.ParticipationRepository,
	audit domain.StatusChangeLogger,
	campaignMetrics *metrics.CampaignMetrics,
) *DefaultPaymentUsecase {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		panic(err)
	}
	return &DefaultPaymentUsecase{
		paymentRepo:       paymentRepo,
		campaignRepo:      campaignRepo,
		participationRepo: participationRepo,
		audit:             audit,
		Metrics:           campaignMetrics,
		idGenerator:       idGenerator,
	}
}

// RecordPayment registers a pending payout from the brand to an influencer
// of one of its campaigns.
func (uc *DefaultPaymentUsecase) RecordPayment(ctx context.Context, actor domain.Actor, input *paymentdto.RecordPaymentInput) (*domain.CampaignPayment, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	campaign, err := usecase.OwnedCampaign(uc.campaignRepo, actor, input.CampaignID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.participationRepo.GetParticipation(campaign.ID, input.InfluencerID); err != nil {
		return nil, err
	}

	now := time.Now()
	payment := &domain.CampaignPayment{
		ID:           uc.idGenerator(),
		CampaignID:   campaign.ID,
		BrandID:      campaign.BrandID,
		InfluencerID: input.InfluencerID,
		Amount:       input.Amount,
		Status:       domain.PaymentPending,
		Method:       strings.TrimSpace(input.Method),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.paymentRepo.CreatePayment(payment); err != nil {
		return nil, err
	}

	uc.Metrics.RecordPayment(string(payment.Status))
	usecase.RecordStatusChange(ctx, uc.audit, actor, "payment", payment.ID, "", string(payment.Status))
	return payment, nil
}

func (uc *DefaultPaymentUsecase) UpdatePaymentStatus(ctx context.Context, actor domain.Actor, paymentID string, status domain.PaymentStatus) (*domain.CampaignPayment, error) {
	if err := usecase.RequireRole(actor, domain.RoleBrand, domain.RoleAdmin); err != nil {
		return nil, err
	}
	payment, err := uc.paymentRepo.GetPaymentByID(paymentID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && payment.BrandID != actor.ID {
		return nil, fmt.Errorf("%w: payment %s", domain.ErrNotFound, paymentID)
	}

	oldStatus := payment.Status
	if err := payment.TransitionTo(status, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.paymentRepo.UpdatePaymentStatus(paymentID, oldStatus, status, payment.PaidAt); err != nil {
		return nil, err
	}

	uc.Metrics.RecordPayment(string(status))
	usecase.RecordStatusChange(ctx, uc.audit, actor, "payment", payment.ID, string(oldStatus), string(status))
	return payment, nil
}

func (uc *DefaultPaymentUsecase) GetPayments(ctx context.Context, actor domain.Actor, campaignID, influencerID string) ([]*domain.CampaignPayment, error) {
	if actor.Role == domain.RoleInfluencer {
		if actor.ID != influencerID {
			return nil, fmt.Errorf("%w: payments", domain.ErrNotFound)
		}
		return uc.paymentRepo.GetPayments(campaignID, influencerID)
	}
	if _, err := usecase.OwnedCampaign(uc.campaignRepo, actor, campaignID); err != nil {
		return nil, err
	}
	return uc.paymentRepo.GetPayments(campaignID, influencerID)
}

// TotalPaid sums the completed payments of a campaign and influencer pair.
func (uc *DefaultPaymentUsecase) TotalPaid(ctx context.Context, campaignID, influencerID string) (float64, error) {
	return uc.paymentRepo.SumPayments(campaignID, influencerID, domain.PaymentCompleted)
}
