package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	contentdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/content"
)

// TrackInteraction records a public interaction with published content and
// bumps the matching counter.
func (uc *DefaultContentUsecase) TrackInteraction(ctx context.Context, input *contentdto.TrackInteractionInput) error {
	kind := domain.TrackingType(strings.TrimSpace(input.Type))
	if _, ok := kind.CounterColumn(); !ok {
		return fmt.Errorf("%w: unknown interaction type %q", domain.ErrValidation, input.Type)
	}
	if strings.TrimSpace(input.ContentID) == "" {
		return fmt.Errorf("%w: content id is required", domain.ErrValidation)
	}

	content, err := uc.contentRepo.GetContentByID(input.ContentID)
	if err != nil {
		return err
	}
	if content.Status != domain.ContentPublished {
		return fmt.Errorf("%w: content %s is %s", domain.ErrInvalidTransition, content.ID, content.Status)
	}

	event := &domain.ContentTracking{
		ID:         uc.trackingID(),
		ContentID:  content.ID,
		ProductID:  input.ProductID,
		SessionID:  input.SessionID,
		Type:       kind,
		OccurredAt: time.Now(),
	}
	if err := uc.contentRepo.AppendTracking(event); err != nil {
		uc.Metrics.RecordError("track_interaction")
		return err
	}
	uc.Metrics.RecordContentInteraction(string(kind))
	return nil
}
