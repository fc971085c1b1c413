package mappers

import (
	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/models"
	"github.com/lib/pq"
)

func ToDomainContent(model *models.ContentModel) *domain.CampaignContent {
	return &domain.CampaignContent{
		ID:           model.ID,
		CampaignID:   model.CampaignID,
		BrandID:      model.BrandID,
		InfluencerID: model.InfluencerID,
		Title:        model.Title,
		Body:         model.Body,
		ProductIDs:   []string(model.ProductIDs),
		Status:       domain.ContentStatus(model.Status),
		Feedback:     model.Feedback,
		PostURL:      model.PostURL,
		PublishedAt:  model.PublishedAt,
		Performance: domain.ContentPerformance{
			Views:     model.Views,
			Clicks:    model.Clicks,
			AddToCart: model.AddToCart,
			Purchases: model.Purchases,
			Shares:    model.Shares,
			Likes:     model.Likes,
			Comments:  model.Comments,
		},
		Version:   model.Version,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMContent(content *domain.CampaignContent) *models.ContentModel {
	return &models.ContentModel{
		ID:           content.ID,
		CampaignID:   content.CampaignID,
		BrandID:      content.BrandID,
		InfluencerID: content.InfluencerID,
		Title:        content.Title,
		Body:         content.Body,
		ProductIDs:   pq.StringArray(content.ProductIDs),
		Status:       string(content.Status),
		Feedback:     content.Feedback,
		PostURL:      content.PostURL,
		PublishedAt:  content.PublishedAt,
		Views:        content.Performance.Views,
		Clicks:       content.Performance.Clicks,
		AddToCart:    content.Performance.AddToCart,
		Purchases:    content.Performance.Purchases,
		Shares:       content.Performance.Shares,
		Likes:        content.Performance.Likes,
		Comments:     content.Performance.Comments,
		Version:      content.Version,
		CreatedAt:    content.CreatedAt,
		UpdatedAt:    content.UpdatedAt,
	}
}

func ToGORMTracking(event *domain.ContentTracking) *models.ContentTrackingModel {
	model := &models.ContentTrackingModel{
		ID:         event.ID,
		ContentID:  event.ContentID,
		SessionID:  event.SessionID,
		Type:       string(event.Type),
		OccurredAt: event.OccurredAt,
	}
	if event.ProductID != "" {
		model.ProductID = &event.ProductID
	}
	return model
}
