package mappers

import (
	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	items := make([]domain.OrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		}
	}
	order := &domain.Order{
		ID:          model.ID,
		CustomerID:  model.CustomerID,
		Items:       items,
		TotalAmount: model.TotalAmount,
		Status:      domain.OrderStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
	if model.AttributionInfluencer != nil {
		order.Attribution = &domain.Attribution{
			ReferralCode:     deref(model.ReferralCode),
			InfluencerID:     *model.AttributionInfluencer,
			CampaignID:       deref(model.AttributionCampaign),
			CommissionRate:   derefFloat(model.CommissionRate),
			CommissionAmount: derefFloat(model.CommissionAmount),
			Status:           domain.AttributionStatus(deref(model.AttributionStatus)),
		}
	}
	return order
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	items := make([]models.OrderItemModel, len(order.Items))
	for i, item := range order.Items {
		items[i] = models.OrderItemModel{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		}
	}
	model := &models.OrderModel{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		Items:       items,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
	if a := order.Attribution; a != nil {
		status := string(a.Status)
		model.ReferralCode = &a.ReferralCode
		model.AttributionInfluencer = &a.InfluencerID
		model.CommissionRate = &a.CommissionRate
		model.CommissionAmount = &a.CommissionAmount
		model.AttributionStatus = &status
		if a.CampaignID != "" {
			model.AttributionCampaign = &a.CampaignID
		}
	}
	return model
}

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:        model.ID,
		BrandID:   model.BrandID,
		Name:      model.Name,
		Price:     model.Price,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMProduct(product *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:        product.ID,
		BrandID:   product.BrandID,
		Name:      product.Name,
		Price:     product.Price,
		CreatedAt: product.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
