package mappers

import (
	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/models"
	"github.com/lib/pq"
)

func ToDomainCampaign(model *models.CampaignModel) *domain.Campaign {
	return &domain.Campaign{
		ID:               model.ID,
		BrandID:          model.BrandID,
		Title:            model.Title,
		Description:      model.Description,
		Status:           domain.CampaignStatus(model.Status),
		StartDate:        model.StartDate,
		EndDate:          model.EndDate,
		Budget:           model.Budget,
		RequiredChannels: []string(model.RequiredChannels),
		MinFollowers:     model.MinFollowers,
		CommissionRate:   model.CommissionRate,
		Version:          model.Version,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMCampaign(campaign *domain.Campaign) *models.CampaignModel {
	return &models.CampaignModel{
		ID:               campaign.ID,
		BrandID:          campaign.BrandID,
		Title:            campaign.Title,
		Description:      campaign.Description,
		Status:           string(campaign.Status),
		StartDate:        campaign.StartDate,
		EndDate:          campaign.EndDate,
		Budget:           campaign.Budget,
		RequiredChannels: pq.StringArray(campaign.RequiredChannels),
		MinFollowers:     campaign.MinFollowers,
		CommissionRate:   campaign.CommissionRate,
		Version:          campaign.Version,
		CreatedAt:        campaign.CreatedAt,
		UpdatedAt:        campaign.UpdatedAt,
	}
}

func ToDomainCampaignMetrics(model *models.CampaignMetricsModel) *domain.CampaignMetrics {
	return &domain.CampaignMetrics{
		CampaignID:       model.CampaignID,
		Reach:            model.Reach,
		Impressions:      model.Impressions,
		EngagementRate:   model.EngagementRate,
		ConversionRate:   model.ConversionRate,
		Clicks:           model.Clicks,
		Conversions:      model.Conversions,
		Revenue:          model.Revenue,
		Spend:            model.Spend,
		ROI:              model.ROI,
		OverallProgress:  model.OverallProgress,
		PerformanceScore: model.PerformanceScore,
		ComputedAt:       model.ComputedAt,
	}
}

func ToGORMCampaignMetrics(metrics *domain.CampaignMetrics) *models.CampaignMetricsModel {
	return &models.CampaignMetricsModel{
		CampaignID:       metrics.CampaignID,
		Reach:            metrics.Reach,
		Impressions:      metrics.Impressions,
		EngagementRate:   metrics.EngagementRate,
		ConversionRate:   metrics.ConversionRate,
		Clicks:           metrics.Clicks,
		Conversions:      metrics.Conversions,
		Revenue:          metrics.Revenue,
		Spend:            metrics.Spend,
		ROI:              metrics.ROI,
		OverallProgress:  metrics.OverallProgress,
		PerformanceScore: metrics.PerformanceScore,
		ComputedAt:       metrics.ComputedAt,
	}
}

func ToDomainInfluencer(model *models.InfluencerModel) *domain.Influencer {
	return &domain.Influencer{
		ID:             model.ID,
		Name:           model.Name,
		Email:          model.Email,
		Followers:      model.Followers,
		Channels:       []string(model.Channels),
		ReferralCode:   model.ReferralCode,
		CommissionRate: model.CommissionRate,
		CreatedAt:      model.CreatedAt,
	}
}

func ToGORMInfluencer(influencer *domain.Influencer) *models.InfluencerModel {
	return &models.InfluencerModel{
		ID:             influencer.ID,
		Name:           influencer.Name,
		Email:          influencer.Email,
		Followers:      influencer.Followers,
		Channels:       pq.StringArray(influencer.Channels),
		ReferralCode:   influencer.ReferralCode,
		CommissionRate: influencer.CommissionRate,
		CreatedAt:      influencer.CreatedAt,
	}
}
