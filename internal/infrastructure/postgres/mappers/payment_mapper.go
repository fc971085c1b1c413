package mappers

import (
	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/models"
)

func ToDomainPayment(model *models.CampaignPaymentModel) *domain.CampaignPayment {
	return &domain.CampaignPayment{
		ID:           model.ID,
		CampaignID:   model.CampaignID,
		BrandID:      model.BrandID,
		InfluencerID: model.InfluencerID,
		Amount:       model.Amount,
		Status:       domain.PaymentStatus(model.Status),
		Method:       model.Method,
		PaidAt:       model.PaidAt,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMPayment(payment *domain.CampaignPayment) *models.CampaignPaymentModel {
	return &models.CampaignPaymentModel{
		ID:           payment.ID,
		CampaignID:   payment.CampaignID,
		BrandID:      payment.BrandID,
		InfluencerID: payment.InfluencerID,
		Amount:       payment.Amount,
		Status:       string(payment.Status),
		Method:       payment.Method,
		PaidAt:       payment.PaidAt,
		CreatedAt:    payment.CreatedAt,
		UpdatedAt:    payment.UpdatedAt,
	}
}
