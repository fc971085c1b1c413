package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	publisher "github.com/LavaJover/shvark-campaign-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	contentdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/content"
	"github.com/google/uuid"
)

// CreateContent drafts a piece of content for a campaign the influencer is
// actively part of.
func (uc *DefaultContentUsecase) CreateContent(ctx context.Context, actor domain.Actor, input *contentdto.CreateContentInput) (*domain.CampaignContent, error) {
	if err := usecase.RequireRole(actor, domain.RoleInfluencer); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: content title is required", domain.ErrValidation)
	}

	campaign, err := uc.campaignRepo.GetCampaignByID(input.CampaignID)
	if err != nil {
		return nil, err
	}
	p, err := uc.participationRepo.GetParticipation(campaign.ID, actor.ID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.ParticipationActive {
		return nil, fmt.Errorf("%w: participation is %s", domain.ErrInvalidTransition, p.Status)
	}

	productIDs := input.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}
	now := time.Now()
	content := &domain.CampaignContent{
		ID:           uuid.New().String(),
		CampaignID:   campaign.ID,
		BrandID:      campaign.BrandID,
		InfluencerID: actor.ID,
		Title:        strings.TrimSpace(input.Title),
		Body:         input.Body,
		ProductIDs:   productIDs,
		Status:       domain.ContentDraft,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.contentRepo.CreateContent(content); err != nil {
		return nil, err
	}
	usecase.RecordStatusChange(ctx, uc.audit, actor, "content", content.ID, "", string(content.Status))
	return content, nil
}

// GetContent is visible to its author and to the owning brand.
func (uc *DefaultContentUsecase) GetContent(ctx context.Context, actor domain.Actor, contentID string) (*domain.CampaignContent, error) {
	if actor.ID == "" {
		return nil, domain.ErrUnauthorized
	}
	content, err := uc.contentRepo.GetContentByID(contentID)
	if err != nil {
		return nil, err
	}
	if !visibleTo(content, actor) {
		return nil, fmt.Errorf("%w: content %s", domain.ErrNotFound, contentID)
	}
	return content, nil
}

func visibleTo(content *domain.CampaignContent, actor domain.Actor) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleBrand:
		return content.BrandID == actor.ID
	case domain.RoleInfluencer:
		return content.InfluencerID == actor.ID
	}
	return false
}

func (uc *DefaultContentUsecase) SubmitContent(ctx context.Context, actor domain.Actor, contentID string) (*domain.CampaignContent, error) {
	content, err := uc.authoredContent(actor, contentID)
	if err != nil {
		return nil, err
	}
	return uc.transition(ctx, actor, content, func(c *domain.CampaignContent) error {
		return c.Submit()
	})
}

// ReviewContent approves or rejects submitted content. The feedback is
// stored as given, a default text is used when it is blank.
func (uc *DefaultContentUsecase) ReviewContent(ctx context.Context, actor domain.Actor, input *contentdto.ReviewContentInput) (*domain.CampaignContent, error) {
	if err := usecase.RequireRole(actor, domain.RoleBrand, domain.RoleAdmin); err != nil {
		return nil, err
	}
	content, err := uc.contentRepo.GetContentByID(input.ContentID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && content.BrandID != actor.ID {
		return nil, fmt.Errorf("%w: content %s", domain.ErrNotFound, input.ContentID)
	}

	var apply func(c *domain.CampaignContent) error
	switch input.Action {
	case contentdto.ReviewApprove:
		apply = func(c *domain.CampaignContent) error { return c.Approve(input.Feedback) }
	case contentdto.ReviewReject:
		apply = func(c *domain.CampaignContent) error { return c.Reject(input.Feedback) }
	default:
		return nil, fmt.Errorf("%w: unknown review action %q", domain.ErrValidation, input.Action)
	}

	reviewed, err := uc.transition(ctx, actor, content, apply)
	if err != nil {
		return nil, err
	}

	event := publisher.ContentReviewedEvent{
		ContentID:    reviewed.ID,
		CampaignID:   reviewed.CampaignID,
		InfluencerID: reviewed.InfluencerID,
		Status:       string(reviewed.Status),
		Feedback:     reviewed.Feedback,
		OccurredAt:   reviewed.UpdatedAt,
	}
	usecase.Publish(uc.publisher, "content_review", func(p usecase.EventPublisher) error {
		return p.PublishContentReviewed(event)
	})
	return reviewed, nil
}

func (uc *DefaultContentUsecase) PublishContent(ctx context.Context, actor domain.Actor, contentID, postURL string) (*domain.CampaignContent, error) {
	if strings.TrimSpace(postURL) == "" {
		return nil, fmt.Errorf("%w: post url is required", domain.ErrValidation)
	}
	content, err := uc.authoredContent(actor, contentID)
	if err != nil {
		return nil, err
	}
	return uc.transition(ctx, actor, content, func(c *domain.CampaignContent) error {
		return c.Publish(postURL, time.Now())
	})
}

func (uc *DefaultContentUsecase) authoredContent(actor domain.Actor, contentID string) (*domain.CampaignContent, error) {
	if err := usecase.RequireRole(actor, domain.RoleInfluencer); err != nil {
		return nil, err
	}
	content, err := uc.contentRepo.GetContentByID(contentID)
	if err != nil {
		return nil, err
	}
	if content.InfluencerID != actor.ID {
		return nil, fmt.Errorf("%w: content %s", domain.ErrNotFound, contentID)
	}
	return content, nil
}

// transition applies a state change to content and persists it against the
// version that was read.
func (uc *DefaultContentUsecase) transition(
	ctx context.Context,
	actor domain.Actor,
	content *domain.CampaignContent,
	apply func(c *domain.CampaignContent) error,
) (*domain.CampaignContent, error) {
	oldStatus := content.Status
	if err := apply(content); err != nil {
		return nil, err
	}
	if err := uc.contentRepo.UpdateContentReview(content); err != nil {
		return nil, err
	}
	content.UpdatedAt = time.Now()

	uc.Metrics.RecordContentReview(string(content.Status))
	usecase.RecordStatusChange(ctx, uc.audit, actor, "content", content.ID, string(oldStatus), string(content.Status))
	return content, nil
}
