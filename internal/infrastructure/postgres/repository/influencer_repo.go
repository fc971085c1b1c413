package repository

import (
	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultInfluencerRepository struct {
	DB *gorm.DB
}

func NewDefaultInfluencerRepository(db *gorm.DB) *DefaultInfluencerRepository {
	return &DefaultInfluencerRepository{DB: db}
}

// SaveInfluencer upserts the profile. The referral code is kept once issued.
func (r *DefaultInfluencerRepository) SaveInfluencer(influencer *domain.Influencer) error {
	model := mappers.ToGORMInfluencer(influencer)
	if err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "followers", "channels", "commission_rate", "updated_at"}),
	}).Create(model).Error; err != nil {
		return storeError("save influencer", err)
	}
	return nil
}

func (r *DefaultInfluencerRepository) GetInfluencerByID(influencerID string) (*domain.Influencer, error) {
	var model models.InfluencerModel
	if err := r.DB.First(&model, "id = ?", influencerID).Error; err != nil {
		return nil, storeError("get influencer", err)
	}
	return mappers.ToDomainInfluencer(&model), nil
}

func (r *DefaultInfluencerRepository) GetInfluencerByReferralCode(code string) (*domain.Influencer, error) {
	var model models.InfluencerModel
	if err := r.DB.First(&model, "referral_code = ?", code).Error; err != nil {
		return nil, storeError("get influencer by referral code", err)
	}
	return mappers.ToDomainInfluencer(&model), nil
}
