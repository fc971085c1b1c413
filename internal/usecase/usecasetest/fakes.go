package usecasetest

import (
	"context"
	"sync"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	publisher "github.com/LavaJover/shvark-campaign-service/internal/infrastructure/kafka"
)

// RankingCache keeps rankings in a map and counts invalidations per brand.
type RankingCache struct {
	mu            sync.Mutex
	entries       map[string][]domain.InfluencerRanking
	Invalidations map[string]int
	Hits          int
}

func NewRankingCache() *RankingCache {
	return &RankingCache{
		entries:       map[string][]domain.InfluencerRanking{},
		Invalidations: map[string]int{},
	}
}

func (c *RankingCache) GetRankings(_ context.Context, brandID string) ([]domain.InfluencerRanking, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rankings, ok := c.entries[brandID]
	if ok {
		c.Hits++
	}
	return append([]domain.InfluencerRanking(nil), rankings...), ok, nil
}

func (c *RankingCache) SetRankings(_ context.Context, brandID string, rankings []domain.InfluencerRanking, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[brandID] = append([]domain.InfluencerRanking{}, rankings...)
	return nil
}

func (c *RankingCache) Invalidate(_ context.Context, brandID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, brandID)
	c.Invalidations[brandID]++
	return nil
}

func (c *RankingCache) InvalidationCount(brandID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Invalidations[brandID]
}

// Publisher records events instead of sending them. Events are published
// from background goroutines, so readers should poll.
type Publisher struct {
	mu             sync.Mutex
	campaignStatus []publisher.CampaignStatusEvent
	contentReviews []publisher.ContentReviewedEvent
	attributions   []publisher.OrderAttributedEvent
}

func (p *Publisher) PublishCampaignStatus(event publisher.CampaignStatusEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.campaignStatus = append(p.campaignStatus, event)
	return nil
}

func (p *Publisher) PublishContentReviewed(event publisher.ContentReviewedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.contentReviews = append(p.contentReviews, event)
	return nil
}

func (p *Publisher) PublishOrderAttributed(event publisher.OrderAttributedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attributions = append(p.attributions, event)
	return nil
}

func (p *Publisher) CampaignStatusEvents() []publisher.CampaignStatusEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publisher.CampaignStatusEvent(nil), p.campaignStatus...)
}

func (p *Publisher) ContentReviewedEvents() []publisher.ContentReviewedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publisher.ContentReviewedEvent(nil), p.contentReviews...)
}

func (p *Publisher) OrderAttributedEvents() []publisher.OrderAttributedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publisher.OrderAttributedEvent(nil), p.attributions...)
}

// Seed helpers write records straight into the store.

func (s *Store) SeedCampaign(c *domain.Campaign) *domain.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.Version == 0 {
		c.Version = 1
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	s.campaigns[c.ID] = copyCampaign(c)
	return c
}

func (s *Store) SeedParticipation(p *domain.Participation) *domain.Participation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Version == 0 {
		p.Version = 1
	}
	if p.ID == "" {
		p.ID = p.CampaignID + ":" + p.InfluencerID
	}
	s.participations[p.ID] = copyParticipation(p)
	return p
}

func (s *Store) SeedInfluencer(i *domain.Influencer) *domain.Influencer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := *i
	s.influencers[i.ID] = &out
	return i
}

func (s *Store) SeedProduct(p *domain.Product) *domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := *p
	s.products[p.ID] = &out
	return p
}

func (s *Store) SeedContent(c *domain.CampaignContent) *domain.CampaignContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.Version == 0 {
		c.Version = 1
	}
	s.contents[c.ID] = copyContent(c)
	return c
}

func (s *Store) SeedPayment(p *domain.CampaignPayment) *domain.CampaignPayment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := *p
	s.payments[p.ID] = &out
	return p
}

func (s *Store) SeedMetrics(m *domain.CampaignMetrics) *domain.CampaignMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := *m
	s.metrics[m.CampaignID] = &out
	return m
}

// NewCampaign returns a valid draft campaign owned by brandID.
func NewCampaign(id, brandID string) *domain.Campaign {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Campaign{
		ID:               id,
		BrandID:          brandID,
		Title:            "Campaign " + id,
		Status:           domain.CampaignDraft,
		StartDate:        start,
		EndDate:          start.AddDate(0, 1, 0),
		Budget:           1000,
		RequiredChannels: []string{"instagram"},
		CommissionRate:   10,
		CreatedAt:        start,
	}
}
