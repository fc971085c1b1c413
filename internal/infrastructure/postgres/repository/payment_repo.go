package repository

import (
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) CreatePayment(payment *domain.CampaignPayment) error {
	model := mappers.ToGORMPayment(payment)
	if err := r.DB.Omit("Campaign").Create(model).Error; err != nil {
		return storeError("create payment", err)
	}
	payment.CreatedAt = model.CreatedAt
	payment.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DefaultPaymentRepository) GetPaymentByID(paymentID string) (*domain.CampaignPayment, error) {
	var model models.CampaignPaymentModel
	if err := r.DB.First(&model, "id = ?", paymentID).Error; err != nil {
		return nil, storeError("get payment", err)
	}
	return mappers.ToDomainPayment(&model), nil
}

// UpdatePaymentStatus only applies when the stored status is still oldStatus.
func (r *DefaultPaymentRepository) UpdatePaymentStatus(paymentID string, oldStatus, newStatus domain.PaymentStatus, paidAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     string(newStatus),
		"updated_at": time.Now(),
	}
	if paidAt != nil {
		updates["paid_at"] = *paidAt
	}

	res := r.DB.Model(&models.CampaignPaymentModel{}).
		Where("id = ? AND status = ?", paymentID, string(oldStatus)).
		Updates(updates)
	if res.Error != nil {
		return storeError("update payment status", res.Error)
	}
	if res.RowsAffected == 0 {
		return storeError("update payment status", versionMiss(r.DB, &models.CampaignPaymentModel{}, paymentID))
	}
	return nil
}

func (r *DefaultPaymentRepository) SumPayments(campaignID, influencerID string, status domain.PaymentStatus) (float64, error) {
	var sum float64
	if err := r.DB.Model(&models.CampaignPaymentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("campaign_id = ? AND influencer_id = ? AND status = ?", campaignID, influencerID, string(status)).
		Scan(&sum).Error; err != nil {
		return 0, storeError("sum payments", err)
	}
	return sum, nil
}

func (r *DefaultPaymentRepository) GetPayments(campaignID, influencerID string) ([]*domain.CampaignPayment, error) {
	var paymentModels []models.CampaignPaymentModel
	if err := r.DB.
		Where("campaign_id = ? AND influencer_id = ?", campaignID, influencerID).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, storeError("get payments", err)
	}

	payments := make([]*domain.CampaignPayment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = mappers.ToDomainPayment(&paymentModels[i])
	}
	return payments, nil
}
