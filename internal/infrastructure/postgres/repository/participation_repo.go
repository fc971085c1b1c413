package repository

import (
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultParticipationRepository struct {
	DB *gorm.DB
}

func NewDefaultParticipationRepository(db *gorm.DB) *DefaultParticipationRepository {
	return &DefaultParticipationRepository{DB: db}
}

func (r *DefaultParticipationRepository) CreateParticipation(p *domain.Participation) error {
	model, err := mappers.ToGORMParticipation(p)
	if err != nil {
		return err
	}
	if model.Version == 0 {
		model.Version = 1
	}
	if err := r.DB.Omit("Campaign", "Influencer").Create(model).Error; err != nil {
		return storeError("create participation", err)
	}
	p.Version = model.Version
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DefaultParticipationRepository) GetParticipation(campaignID, influencerID string) (*domain.Participation, error) {
	var model models.ParticipationModel
	if err := r.DB.First(&model, "campaign_id = ? AND influencer_id = ?", campaignID, influencerID).Error; err != nil {
		return nil, storeError("get participation", err)
	}
	return mappers.ToDomainParticipation(&model)
}

func (r *DefaultParticipationRepository) GetParticipationByReferralCode(code string) (*domain.Participation, error) {
	var model models.ParticipationModel
	if err := r.DB.First(&model, "referral_code = ?", code).Error; err != nil {
		return nil, storeError("get participation by referral code", err)
	}
	return mappers.ToDomainParticipation(&model)
}

func (r *DefaultParticipationRepository) GetParticipationsByCampaign(campaignID string, statuses []domain.ParticipationStatus) ([]*domain.Participation, error) {
	participations, err := findParticipations(r.DB, campaignID, statuses)
	if err != nil {
		return nil, storeError("participations by campaign", err)
	}
	return participations, nil
}

func findParticipations(db *gorm.DB, campaignID string, statuses []domain.ParticipationStatus) ([]*domain.Participation, error) {
	query := db.Model(&models.ParticipationModel{}).Where("campaign_id = ?", campaignID)
	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = string(s)
		}
		query = query.Where("status IN ?", values)
	}

	var participationModels []models.ParticipationModel
	if err := query.Order("influencer_id").Find(&participationModels).Error; err != nil {
		return nil, err
	}

	participations := make([]*domain.Participation, 0, len(participationModels))
	for i := range participationModels {
		p, err := mappers.ToDomainParticipation(&participationModels[i])
		if err != nil {
			return nil, err
		}
		participations = append(participations, p)
	}
	return participations, nil
}

func (r *DefaultParticipationRepository) UpdateParticipation(p *domain.Participation) error {
	model, err := mappers.ToGORMParticipation(p)
	if err != nil {
		return err
	}

	res := r.DB.Model(&models.ParticipationModel{}).
		Where("id = ? AND version = ?", p.ID, p.Version).
		Updates(map[string]interface{}{
			"status":           model.Status,
			"progress":         model.Progress,
			"engagement_rate":  model.EngagementRate,
			"reach":            model.Reach,
			"clicks":           model.Clicks,
			"conversions":      model.Conversions,
			"timeliness_score": model.TimelinessScore,
			"deliverables":     model.Deliverables,
			"version":          gorm.Expr("version + 1"),
			"updated_at":       time.Now(),
		})
	if res.Error != nil {
		return storeError("update participation", res.Error)
	}
	if res.RowsAffected == 0 {
		return storeError("update participation", versionMiss(r.DB, &models.ParticipationModel{}, p.ID))
	}
	p.Version++
	return nil
}
