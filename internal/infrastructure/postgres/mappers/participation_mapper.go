package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/models"
)

func ToDomainParticipation(model *models.ParticipationModel) (*domain.Participation, error) {
	var deliverables []domain.Deliverable
	if model.Deliverables != "" {
		if err := json.Unmarshal([]byte(model.Deliverables), &deliverables); err != nil {
			return nil, fmt.Errorf("decode deliverables of participation %s: %w", model.ID, err)
		}
	}
	return &domain.Participation{
		ID:           model.ID,
		CampaignID:   model.CampaignID,
		InfluencerID: model.InfluencerID,
		Status:       domain.ParticipationStatus(model.Status),
		Progress:     model.Progress,
		Metrics: domain.InfluencerMetrics{
			EngagementRate:  model.EngagementRate,
			Reach:           model.Reach,
			Clicks:          model.Clicks,
			Conversions:     model.Conversions,
			TimelinessScore: model.TimelinessScore,
		},
		Revenue:      model.Revenue,
		ReferralCode: model.ReferralCode,
		Deliverables: deliverables,
		Version:      model.Version,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}

func ToGORMParticipation(p *domain.Participation) (*models.ParticipationModel, error) {
	deliverables := p.Deliverables
	if deliverables == nil {
		deliverables = []domain.Deliverable{}
	}
	raw, err := json.Marshal(deliverables)
	if err != nil {
		return nil, fmt.Errorf("encode deliverables of participation %s: %w", p.ID, err)
	}
	return &models.ParticipationModel{
		ID:              p.ID,
		CampaignID:      p.CampaignID,
		InfluencerID:    p.InfluencerID,
		Status:          string(p.Status),
		Progress:        p.Progress,
		EngagementRate:  p.Metrics.EngagementRate,
		Reach:           p.Metrics.Reach,
		Clicks:          p.Metrics.Clicks,
		Conversions:     p.Metrics.Conversions,
		TimelinessScore: p.Metrics.TimelinessScore,
		Revenue:         p.Revenue,
		ReferralCode:    p.ReferralCode,
		Deliverables:    string(raw),
		Version:         p.Version,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}
