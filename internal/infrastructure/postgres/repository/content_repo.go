package repository

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultContentRepository struct {
	DB *gorm.DB
}

func NewDefaultContentRepository(db *gorm.DB) *DefaultContentRepository {
	return &DefaultContentRepository{DB: db}
}

func (r *DefaultContentRepository) CreateContent(content *domain.CampaignContent) error {
	model := mappers.ToGORMContent(content)
	if model.Version == 0 {
		model.Version = 1
	}
	if err := r.DB.Omit("Campaign").Create(model).Error; err != nil {
		return storeError("create content", err)
	}
	content.Version = model.Version
	content.CreatedAt = model.CreatedAt
	content.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DefaultContentRepository) GetContentByID(contentID string) (*domain.CampaignContent, error) {
	var model models.ContentModel
	if err := r.DB.First(&model, "id = ?", contentID).Error; err != nil {
		return nil, storeError("get content", err)
	}
	return mappers.ToDomainContent(&model), nil
}

func (r *DefaultContentRepository) UpdateContentReview(content *domain.CampaignContent) error {
	res := r.DB.Model(&models.ContentModel{}).
		Where("id = ? AND version = ?", content.ID, content.Version).
		Updates(map[string]interface{}{
			"status":       string(content.Status),
			"feedback":     content.Feedback,
			"post_url":     content.PostURL,
			"published_at": content.PublishedAt,
			"version":      gorm.Expr("version + 1"),
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return storeError("update content review", res.Error)
	}
	if res.RowsAffected == 0 {
		return storeError("update content review", versionMiss(r.DB, &models.ContentModel{}, content.ID))
	}
	content.Version++
	return nil
}

func (r *DefaultContentRepository) AppendTracking(event *domain.ContentTracking) error {
	column, ok := event.Type.CounterColumn()
	if !ok {
		return fmt.Errorf("%w: unknown tracking type %q", domain.ErrValidation, event.Type)
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Content").Create(mappers.ToGORMTracking(event)).Error; err != nil {
			return err
		}
		res := tx.Model(&models.ContentModel{}).
			Where("id = ? AND status = ?", event.ContentID, string(domain.ContentPublished)).
			UpdateColumn(column, gorm.Expr(column+" + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvalidTransition
		}
		return nil
	})
	return storeError("append tracking", err)
}
