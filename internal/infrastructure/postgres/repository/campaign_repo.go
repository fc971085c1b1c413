package repository

import (
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultCampaignRepository struct {
	DB *gorm.DB
}

func NewDefaultCampaignRepository(db *gorm.DB) *DefaultCampaignRepository {
	return &DefaultCampaignRepository{DB: db}
}

func (r *DefaultCampaignRepository) CreateCampaign(campaign *domain.Campaign) error {
	model := mappers.ToGORMCampaign(campaign)
	if model.Version == 0 {
		model.Version = 1
	}
	if err := r.DB.Create(model).Error; err != nil {
		return storeError("create campaign", err)
	}
	campaign.Version = model.Version
	campaign.CreatedAt = model.CreatedAt
	campaign.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DefaultCampaignRepository) GetCampaignByID(campaignID string) (*domain.Campaign, error) {
	var model models.CampaignModel
	if err := r.DB.First(&model, "id = ?", campaignID).Error; err != nil {
		return nil, storeError("get campaign", err)
	}
	return mappers.ToDomainCampaign(&model), nil
}

func (r *DefaultCampaignRepository) GetCampaigns(filter domain.CampaignFilter) ([]*domain.Campaign, int64, error) {
	var (
		campaignModels []models.CampaignModel
		total          int64
	)

	baseQuery := r.DB.Model(&models.CampaignModel{})
	if filter.BrandID != "" {
		baseQuery = baseQuery.Where("brand_id = ?", filter.BrandID)
	}
	if filter.Status != nil {
		baseQuery = baseQuery.Where("status = ?", string(*filter.Status))
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, storeError("count campaigns", err)
	}

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if err := baseQuery.
		Order("created_at DESC, id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&campaignModels).Error; err != nil {
		return nil, 0, storeError("find campaigns", err)
	}

	campaigns := make([]*domain.Campaign, len(campaignModels))
	for i := range campaignModels {
		campaigns[i] = mappers.ToDomainCampaign(&campaignModels[i])
	}
	return campaigns, total, nil
}

func (r *DefaultCampaignRepository) GetCampaignIDsByBrand(brandID string) ([]string, error) {
	var ids []string
	if err := r.DB.Model(&models.CampaignModel{}).
		Where("brand_id = ?", brandID).
		Pluck("id", &ids).Error; err != nil {
		return nil, storeError("campaign ids by brand", err)
	}
	return ids, nil
}

func (r *DefaultCampaignRepository) GetActiveCampaignIDs() ([]string, error) {
	var ids []string
	if err := r.DB.Model(&models.CampaignModel{}).
		Where("status = ?", string(domain.CampaignActive)).
		Pluck("id", &ids).Error; err != nil {
		return nil, storeError("active campaign ids", err)
	}
	return ids, nil
}

func (r *DefaultCampaignRepository) CountCampaignsByStatus(brandID string) ([]domain.StatusCount, float64, error) {
	var rows []struct {
		Status string
		Count  int64
		Budget float64
	}
	if err := r.DB.Model(&models.CampaignModel{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(budget), 0) AS budget").
		Where("brand_id = ?", brandID).
		Group("status").
		Order("status").
		Scan(&rows).Error; err != nil {
		return nil, 0, storeError("count campaigns by status", err)
	}

	counts := make([]domain.StatusCount, len(rows))
	var totalBudget float64
	for i, row := range rows {
		counts[i] = domain.StatusCount{Status: domain.CampaignStatus(row.Status), Count: row.Count}
		totalBudget += row.Budget
	}
	return counts, totalBudget, nil
}

func (r *DefaultCampaignRepository) UpdateCampaignStatus(campaignID string, expectedVersion int64, status domain.CampaignStatus) error {
	return storeError("update campaign status", updateCampaignStatus(r.DB, campaignID, expectedVersion, status))
}

func updateCampaignStatus(db *gorm.DB, campaignID string, expectedVersion int64, status domain.CampaignStatus) error {
	res := db.Model(&models.CampaignModel{}).
		Where("id = ? AND version = ?", campaignID, expectedVersion).
		Updates(map[string]interface{}{
			"status":     string(status),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return versionMiss(db, &models.CampaignModel{}, campaignID)
	}
	return nil
}

// ApplyCascade runs the campaign status write, the participation status
// writes and the metrics recompute as one unit of work.
func (r *DefaultCampaignRepository) ApplyCascade(cascade domain.CampaignCascade) (*domain.CampaignMetrics, error) {
	var metrics *domain.CampaignMetrics
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := updateCampaignStatus(tx, cascade.CampaignID, cascade.ExpectedVersion, cascade.NewStatus); err != nil {
			return err
		}

		if len(cascade.FromStatuses) > 0 {
			from := make([]string, len(cascade.FromStatuses))
			for i, s := range cascade.FromStatuses {
				from[i] = string(s)
			}
			if err := tx.Model(&models.ParticipationModel{}).
				Where("campaign_id = ? AND status IN ?", cascade.CampaignID, from).
				Updates(map[string]interface{}{
					"status":     string(cascade.ParticipationStatus),
					"version":    gorm.Expr("version + 1"),
					"updated_at": time.Now(),
				}).Error; err != nil {
				return err
			}
		}

		if !cascade.RecomputeMetrics {
			return nil
		}
		input, err := collectRollupInput(tx, cascade.CampaignID)
		if err != nil {
			return err
		}
		rolled := domain.RollupCampaignMetrics(*input, time.Now())
		if err := saveCampaignMetrics(tx, &rolled); err != nil {
			return err
		}
		metrics = &rolled
		return nil
	})
	if err != nil {
		return nil, storeError("apply campaign cascade", err)
	}
	return metrics, nil
}

func saveCampaignMetrics(db *gorm.DB, metrics *domain.CampaignMetrics) error {
	model := mappers.ToGORMCampaignMetrics(metrics)
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "campaign_id"}},
		UpdateAll: true,
	}).Create(model).Error
}
