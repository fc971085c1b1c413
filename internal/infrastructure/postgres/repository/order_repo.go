package repository

import (
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

func (r *DefaultProductRepository) CreateProduct(product *domain.Product) error {
	model := mappers.ToGORMProduct(product)
	if err := r.DB.Create(model).Error; err != nil {
		return storeError("create product", err)
	}
	product.CreatedAt = model.CreatedAt
	return nil
}

func (r *DefaultProductRepository) GetProductsByIDs(productIDs []string) (map[string]*domain.Product, error) {
	catalog := make(map[string]*domain.Product, len(productIDs))
	if len(productIDs) == 0 {
		return catalog, nil
	}

	var productModels []models.ProductModel
	if err := r.DB.Where("id IN ?", productIDs).Find(&productModels).Error; err != nil {
		return nil, storeError("get products", err)
	}
	for i := range productModels {
		catalog[productModels[i].ID] = mappers.ToDomainProduct(&productModels[i])
	}
	return catalog, nil
}

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	model := mappers.ToGORMOrder(order)
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		if a := order.Attribution; a != nil && a.CampaignID != "" {
			return bumpParticipationRevenue(tx, a.CampaignID, a.InfluencerID, order.TotalAmount, 1)
		}
		return nil
	})
	if err != nil {
		return storeError("create order", err)
	}
	order.CreatedAt = model.CreatedAt
	order.UpdatedAt = model.UpdatedAt
	return nil
}

func bumpParticipationRevenue(tx *gorm.DB, campaignID, influencerID string, amount float64, conversions int) error {
	return tx.Model(&models.ParticipationModel{}).
		Where("campaign_id = ? AND influencer_id = ?", campaignID, influencerID).
		Updates(map[string]interface{}{
			"revenue":     gorm.Expr("GREATEST(revenue + ?, 0)", amount),
			"conversions": gorm.Expr("GREATEST(conversions + ?, 0)", conversions),
			"updated_at":  time.Now(),
		}).Error
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var model models.OrderModel
	if err := r.DB.Preload("Items").First(&model, "id = ?", orderID).Error; err != nil {
		return nil, storeError("get order", err)
	}
	return mappers.ToDomainOrder(&model), nil
}

func (r *DefaultOrderRepository) CancelOrder(orderID string) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var model models.OrderModel
		if err := tx.First(&model, "id = ?", orderID).Error; err != nil {
			return err
		}
		if model.Status == string(domain.OrderCancelled) {
			return domain.ErrInvalidTransition
		}

		res := tx.Model(&models.OrderModel{}).
			Where("id = ? AND status = ?", orderID, model.Status).
			Updates(map[string]interface{}{
				"status":     string(domain.OrderCancelled),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrVersionConflict
		}

		if model.AttributionStatus == nil {
			return nil
		}
		if *model.AttributionStatus == string(domain.AttributionPending) {
			if err := tx.Model(&models.OrderModel{}).
				Where("id = ?", orderID).
				Update("attribution_status", string(domain.AttributionCancelled)).Error; err != nil {
				return err
			}
		}
		if model.AttributionCampaign != nil && model.AttributionInfluencer != nil {
			return bumpParticipationRevenue(tx, *model.AttributionCampaign, *model.AttributionInfluencer, -model.TotalAmount, -1)
		}
		return nil
	})
	return storeError("cancel order", err)
}

func (r *DefaultOrderRepository) UpdateAttributionStatus(orderID string, oldStatus, newStatus domain.AttributionStatus) error {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND attribution_status = ?", orderID, string(oldStatus)).
		Updates(map[string]interface{}{
			"attribution_status": string(newStatus),
			"updated_at":         time.Now(),
		})
	if res.Error != nil {
		return storeError("update attribution status", res.Error)
	}
	if res.RowsAffected == 0 {
		return storeError("update attribution status", versionMiss(r.DB, &models.OrderModel{}, orderID))
	}
	return nil
}

func (r *DefaultOrderRepository) GetCommissionTotals(influencerID string) (*domain.CommissionTotals, error) {
	totals := &domain.CommissionTotals{InfluencerID: influencerID}

	var rows []struct {
		Status string
		Amount float64
		Orders int64
	}
	if err := r.DB.Model(&models.OrderModel{}).
		Select("attribution_status AS status, COALESCE(SUM(commission_amount), 0) AS amount, COUNT(*) AS orders").
		Where("attribution_influencer = ?", influencerID).
		Where("attribution_status IN ?", []string{string(domain.AttributionPending), string(domain.AttributionPaid)}).
		Group("attribution_status").
		Scan(&rows).Error; err != nil {
		return nil, storeError("commission totals", err)
	}

	for _, row := range rows {
		switch domain.AttributionStatus(row.Status) {
		case domain.AttributionPending:
			totals.Pending = row.Amount
		case domain.AttributionPaid:
			totals.Paid = row.Amount
		}
		totals.Orders += row.Orders
	}
	return totals, nil
}
