package repository

import (
	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultMetricsRepository struct {
	DB *gorm.DB
}

func NewDefaultMetricsRepository(db *gorm.DB) *DefaultMetricsRepository {
	return &DefaultMetricsRepository{DB: db}
}

func (r *DefaultMetricsRepository) CollectRollupInput(campaignID string) (*domain.RollupInput, error) {
	input, err := collectRollupInput(r.DB, campaignID)
	if err != nil {
		return nil, storeError("collect rollup input", err)
	}
	return input, nil
}

func collectRollupInput(db *gorm.DB, campaignID string) (*domain.RollupInput, error) {
	input := &domain.RollupInput{CampaignID: campaignID}

	participations, err := findParticipations(db, campaignID, domain.ContributingStatuses)
	if err != nil {
		return nil, err
	}
	input.Participations = participations

	if err := db.Model(&models.ContentModel{}).
		Select("COALESCE(SUM(views), 0)").
		Where("campaign_id = ? AND status = ?", campaignID, string(domain.ContentPublished)).
		Scan(&input.ContentViews).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("attribution_campaign = ? AND status <> ?", campaignID, string(domain.OrderCancelled)).
		Scan(&input.AttributedRevenue).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.CampaignPaymentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("campaign_id = ? AND status = ?", campaignID, string(domain.PaymentCompleted)).
		Scan(&input.CompletedPayments).Error; err != nil {
		return nil, err
	}

	return input, nil
}

func (r *DefaultMetricsRepository) SaveCampaignMetrics(metrics *domain.CampaignMetrics) error {
	return storeError("save campaign metrics", saveCampaignMetrics(r.DB, metrics))
}

func (r *DefaultMetricsRepository) GetCampaignMetrics(campaignID string) (*domain.CampaignMetrics, error) {
	var model models.CampaignMetricsModel
	if err := r.DB.First(&model, "campaign_id = ?", campaignID).Error; err != nil {
		return nil, storeError("get campaign metrics", err)
	}
	return mappers.ToDomainCampaignMetrics(&model), nil
}

func (r *DefaultMetricsRepository) GetFullProgressCampaigns(brandID string) ([]*domain.Campaign, error) {
	var campaignModels []models.CampaignModel
	if err := r.DB.Model(&models.CampaignModel{}).
		Joins("JOIN campaign_metrics_models ON campaign_metrics_models.campaign_id = campaign_models.id").
		Where("campaign_models.brand_id = ?", brandID).
		Where("campaign_models.status = ?", string(domain.CampaignActive)).
		Where("campaign_metrics_models.overall_progress >= ?", 100).
		Order("campaign_models.id").
		Find(&campaignModels).Error; err != nil {
		return nil, storeError("full progress campaigns", err)
	}

	campaigns := make([]*domain.Campaign, len(campaignModels))
	for i := range campaignModels {
		campaigns[i] = mappers.ToDomainCampaign(&campaignModels[i])
	}
	return campaigns, nil
}
