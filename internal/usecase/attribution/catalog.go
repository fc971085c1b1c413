package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	orderdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/order"
	"github.com/google/uuid"
)

// RegisterInfluencer creates or refreshes the caller's influencer profile.
// The referral code is issued once and kept on later updates.
func (uc *DefaultAttributionUsecase) RegisterInfluencer(ctx context.Context, actor domain.Actor, input *orderdto.RegisterInfluencerInput) (*domain.Influencer, error) {
	if err := usecase.RequireRole(actor, domain.RoleInfluencer); err != nil {
		return nil, err
	}

	channels := make([]string, 0, len(input.Channels))
	for _, ch := range input.Channels {
		if ch = strings.TrimSpace(ch); ch != "" {
			channels = append(channels, ch)
		}
	}
	influencer := &domain.Influencer{
		ID:             actor.ID,
		Name:           strings.TrimSpace(input.Name),
		Email:          strings.TrimSpace(input.Email),
		Followers:      input.Followers,
		Channels:       channels,
		CommissionRate: input.CommissionRate,
		CreatedAt:      time.Now(),
	}
	if err := influencer.Validate(); err != nil {
		return nil, err
	}

	existing, err := uc.influencerRepo.GetInfluencerByID(actor.ID)
	switch {
	case err == nil:
		influencer.ReferralCode = existing.ReferralCode
		influencer.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrNotFound):
		influencer.ReferralCode = uc.referralCode()
	default:
		return nil, err
	}

	if err := uc.influencerRepo.SaveInfluencer(influencer); err != nil {
		return nil, err
	}
	return influencer, nil
}

func (uc *DefaultAttributionUsecase) CreateProduct(ctx context.Context, actor domain.Actor, input *orderdto.CreateProductInput) (*domain.Product, error) {
	if err := usecase.RequireRole(actor, domain.RoleBrand); err != nil {
		return nil, err
	}
	product := &domain.Product{
		ID:        uuid.New().String(),
		BrandID:   actor.ID,
		Name:      strings.TrimSpace(input.Name),
		Price:     input.Price,
		CreatedAt: time.Now(),
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := uc.productRepo.CreateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}
