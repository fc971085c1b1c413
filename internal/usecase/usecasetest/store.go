// Package usecasetest provides in-memory stand-ins for the repositories,
// cache and event publisher so usecases can be tested without Postgres,
// Redis or Kafka.
package usecasetest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
)

// Store implements every repository interface of the domain package over
// maps. Records are copied on the way in and out, like rows of a database.
type Store struct {
	mu sync.Mutex

	campaigns      map[string]*domain.Campaign
	participations map[string]*domain.Participation
	influencers    map[string]*domain.Influencer
	metrics        map[string]*domain.CampaignMetrics
	payments       map[string]*domain.CampaignPayment
	products       map[string]*domain.Product
	orders         map[string]*domain.Order
	contents       map[string]*domain.CampaignContent
	trackings      []*domain.ContentTracking
	changes        []domain.StatusChange

	// Errors makes the named method fail with the given error.
	Errors map[string]error
}

func NewStore() *Store {
	return &Store{
		campaigns:      map[string]*domain.Campaign{},
		participations: map[string]*domain.Participation{},
		influencers:    map[string]*domain.Influencer{},
		metrics:        map[string]*domain.CampaignMetrics{},
		payments:       map[string]*domain.CampaignPayment{},
		products:       map[string]*domain.Product{},
		orders:         map[string]*domain.Order{},
		contents:       map[string]*domain.CampaignContent{},
		Errors:         map[string]error{},
	}
}

func (s *Store) fail(method string) error {
	if err, ok := s.Errors[method]; ok {
		return fmt.Errorf("%s: %w: %w", method, domain.ErrStoreFailure, err)
	}
	return nil
}

func copyCampaign(c *domain.Campaign) *domain.Campaign {
	out := *c
	out.RequiredChannels = append([]string(nil), c.RequiredChannels...)
	return &out
}

func copyParticipation(p *domain.Participation) *domain.Participation {
	out := *p
	out.Deliverables = append([]domain.Deliverable(nil), p.Deliverables...)
	return &out
}

func copyOrder(o *domain.Order) *domain.Order {
	out := *o
	out.Items = append([]domain.OrderItem(nil), o.Items...)
	if o.Attribution != nil {
		a := *o.Attribution
		out.Attribution = &a
	}
	return &out
}

func copyContent(c *domain.CampaignContent) *domain.CampaignContent {
	out := *c
	out.ProductIDs = append([]string(nil), c.ProductIDs...)
	return &out
}

// campaigns

func (s *Store) CreateCampaign(campaign *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CreateCampaign"); err != nil {
		return err
	}
	if _, ok := s.campaigns[campaign.ID]; ok {
		return domain.ErrAlreadyExists
	}
	if campaign.Version == 0 {
		campaign.Version = 1
	}
	s.campaigns[campaign.ID] = copyCampaign(campaign)
	return nil
}

func (s *Store) GetCampaignByID(campaignID string) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetCampaignByID"); err != nil {
		return nil, err
	}
	c, ok := s.campaigns[campaignID]
	if !ok {
		return nil, fmt.Errorf("campaign %s: %w", campaignID, domain.ErrNotFound)
	}
	return copyCampaign(c), nil
}

func (s *Store) GetCampaigns(filter domain.CampaignFilter) ([]*domain.Campaign, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetCampaigns"); err != nil {
		return nil, 0, err
	}
	var matched []*domain.Campaign
	for _, c := range s.campaigns {
		if filter.BrandID != "" && c.BrandID != filter.BrandID {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		matched = append(matched, copyCampaign(c))
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start < 0 {
		start = 0
	}
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if filter.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *Store) GetCampaignIDsByBrand(brandID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetCampaignIDsByBrand"); err != nil {
		return nil, err
	}
	var ids []string
	for id, c := range s.campaigns {
		if c.BrandID == brandID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) GetActiveCampaignIDs() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetActiveCampaignIDs"); err != nil {
		return nil, err
	}
	var ids []string
	for id, c := range s.campaigns {
		if c.Status == domain.CampaignActive {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) CountCampaignsByStatus(brandID string) ([]domain.StatusCount, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CountCampaignsByStatus"); err != nil {
		return nil, 0, err
	}
	counts := map[domain.CampaignStatus]int64{}
	var budget float64
	for _, c := range s.campaigns {
		if c.BrandID != brandID {
			continue
		}
		counts[c.Status]++
		budget += c.Budget
	}
	out := make([]domain.StatusCount, 0, len(counts))
	for status, n := range counts {
		out = append(out, domain.StatusCount{Status: status, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out, budget, nil
}

func (s *Store) UpdateCampaignStatus(campaignID string, expectedVersion int64, status domain.CampaignStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("UpdateCampaignStatus"); err != nil {
		return err
	}
	c, ok := s.campaigns[campaignID]
	if !ok {
		return domain.ErrNotFound
	}
	if c.Version != expectedVersion {
		return domain.ErrVersionConflict
	}
	c.Status = status
	c.Version++
	c.UpdatedAt = time.Now()
	return nil
}

func (s *Store) ApplyCascade(cascade domain.CampaignCascade) (*domain.CampaignMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("ApplyCascade"); err != nil {
		return nil, err
	}
	c, ok := s.campaigns[cascade.CampaignID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if c.Version != cascade.ExpectedVersion {
		return nil, domain.ErrVersionConflict
	}

	from := map[domain.ParticipationStatus]bool{}
	for _, st := range cascade.FromStatuses {
		from[st] = true
	}
	c.Status = cascade.NewStatus
	c.Version++
	for _, p := range s.participations {
		if p.CampaignID == c.ID && from[p.Status] {
			p.Status = cascade.ParticipationStatus
			p.Version++
		}
	}

	if !cascade.RecomputeMetrics {
		return nil, nil
	}
	rolled := domain.RollupCampaignMetrics(s.rollupInput(c.ID), time.Now())
	saved := rolled
	s.metrics[c.ID] = &saved
	return &rolled, nil
}

// participations

func (s *Store) CreateParticipation(p *domain.Participation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CreateParticipation"); err != nil {
		return err
	}
	for _, existing := range s.participations {
		if existing.CampaignID == p.CampaignID && existing.InfluencerID == p.InfluencerID {
			return domain.ErrAlreadyExists
		}
	}
	if p.Version == 0 {
		p.Version = 1
	}
	s.participations[p.ID] = copyParticipation(p)
	return nil
}

func (s *Store) GetParticipation(campaignID, influencerID string) (*domain.Participation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetParticipation"); err != nil {
		return nil, err
	}
	for _, p := range s.participations {
		if p.CampaignID == campaignID && p.InfluencerID == influencerID {
			return copyParticipation(p), nil
		}
	}
	return nil, fmt.Errorf("participation: %w", domain.ErrNotFound)
}

func (s *Store) GetParticipationByReferralCode(code string) (*domain.Participation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetParticipationByReferralCode"); err != nil {
		return nil, err
	}
	for _, p := range s.participations {
		if p.ReferralCode == code {
			return copyParticipation(p), nil
		}
	}
	return nil, fmt.Errorf("participation code: %w", domain.ErrNotFound)
}

func (s *Store) GetParticipationsByCampaign(campaignID string, statuses []domain.ParticipationStatus) ([]*domain.Participation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetParticipationsByCampaign"); err != nil {
		return nil, err
	}
	return s.participationsOf(campaignID, statuses), nil
}

func (s *Store) participationsOf(campaignID string, statuses []domain.ParticipationStatus) []*domain.Participation {
	allowed := map[domain.ParticipationStatus]bool{}
	for _, st := range statuses {
		allowed[st] = true
	}
	out := []*domain.Participation{}
	for _, p := range s.participations {
		if p.CampaignID != campaignID {
			continue
		}
		if len(allowed) > 0 && !allowed[p.Status] {
			continue
		}
		out = append(out, copyParticipation(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InfluencerID < out[j].InfluencerID })
	return out
}

func (s *Store) UpdateParticipation(p *domain.Participation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("UpdateParticipation"); err != nil {
		return err
	}
	stored, ok := s.participations[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Version != p.Version {
		return domain.ErrVersionConflict
	}
	p.Version++
	updated := copyParticipation(p)
	updated.Revenue = stored.Revenue
	updated.ReferralCode = stored.ReferralCode
	s.participations[p.ID] = updated
	return nil
}

// influencers

func (s *Store) SaveInfluencer(influencer *domain.Influencer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("SaveInfluencer"); err != nil {
		return err
	}
	out := *influencer
	out.Channels = append([]string(nil), influencer.Channels...)
	if existing, ok := s.influencers[influencer.ID]; ok && existing.ReferralCode != "" {
		out.ReferralCode = existing.ReferralCode
	}
	s.influencers[influencer.ID] = &out
	return nil
}

func (s *Store) GetInfluencerByID(influencerID string) (*domain.Influencer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetInfluencerByID"); err != nil {
		return nil, err
	}
	i, ok := s.influencers[influencerID]
	if !ok {
		return nil, fmt.Errorf("influencer %s: %w", influencerID, domain.ErrNotFound)
	}
	out := *i
	return &out, nil
}

func (s *Store) GetInfluencerByReferralCode(code string) (*domain.Influencer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetInfluencerByReferralCode"); err != nil {
		return nil, err
	}
	for _, i := range s.influencers {
		if i.ReferralCode == code {
			out := *i
			return &out, nil
		}
	}
	return nil, fmt.Errorf("influencer code: %w", domain.ErrNotFound)
}

// metrics and rankings

func (s *Store) rollupInput(campaignID string) domain.RollupInput {
	in := domain.RollupInput{
		CampaignID:     campaignID,
		Participations: s.participationsOf(campaignID, domain.ContributingStatuses),
	}
	for _, c := range s.contents {
		if c.CampaignID == campaignID && c.Status == domain.ContentPublished {
			in.ContentViews += c.Performance.Views
		}
	}
	for _, o := range s.orders {
		if o.Status == domain.OrderCancelled || o.Attribution == nil || o.Attribution.CampaignID != campaignID {
			continue
		}
		in.AttributedRevenue += o.TotalAmount
	}
	for _, p := range s.payments {
		if p.CampaignID == campaignID && p.Status == domain.PaymentCompleted {
			in.CompletedPayments += p.Amount
		}
	}
	return in
}

func (s *Store) CollectRollupInput(campaignID string) (*domain.RollupInput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CollectRollupInput"); err != nil {
		return nil, err
	}
	if _, ok := s.campaigns[campaignID]; !ok {
		return nil, domain.ErrNotFound
	}
	in := s.rollupInput(campaignID)
	return &in, nil
}

func (s *Store) SaveCampaignMetrics(metrics *domain.CampaignMetrics) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("SaveCampaignMetrics"); err != nil {
		return err
	}
	out := *metrics
	s.metrics[metrics.CampaignID] = &out
	return nil
}

func (s *Store) GetCampaignMetrics(campaignID string) (*domain.CampaignMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetCampaignMetrics"); err != nil {
		return nil, err
	}
	m, ok := s.metrics[campaignID]
	if !ok {
		return nil, fmt.Errorf("metrics %s: %w", campaignID, domain.ErrNotFound)
	}
	out := *m
	return &out, nil
}

func (s *Store) GetFullProgressCampaigns(brandID string) ([]*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetFullProgressCampaigns"); err != nil {
		return nil, err
	}
	out := []*domain.Campaign{}
	for id, c := range s.campaigns {
		if c.BrandID != brandID || c.Status != domain.CampaignActive {
			continue
		}
		if m, ok := s.metrics[id]; ok && m.OverallProgress >= 100 {
			out = append(out, copyCampaign(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetInfluencerRankings(brandID string, campaignIDs []string, limit int) ([]domain.InfluencerRanking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetInfluencerRankings"); err != nil {
		return nil, err
	}
	inScope := map[string]bool{}
	for _, id := range campaignIDs {
		inScope[id] = true
	}
	type acc struct {
		revenue   float64
		campaigns map[string]bool
	}
	byInfluencer := map[string]*acc{}
	for _, p := range s.participations {
		if !inScope[p.CampaignID] || !p.Status.Contributing() {
			continue
		}
		a, ok := byInfluencer[p.InfluencerID]
		if !ok {
			a = &acc{campaigns: map[string]bool{}}
			byInfluencer[p.InfluencerID] = a
		}
		a.revenue += p.Revenue
		a.campaigns[p.CampaignID] = true
	}
	out := make([]domain.InfluencerRanking, 0, len(byInfluencer))
	for id, a := range byInfluencer {
		var name string
		if i, ok := s.influencers[id]; ok {
			name = i.Name
		}
		out = append(out, domain.InfluencerRanking{
			InfluencerID:  id,
			Name:          name,
			TotalRevenue:  a.revenue,
			CampaignCount: int64(len(a.campaigns)),
		})
	}
	return domain.SortRankings(out, limit), nil
}

// payments

func (s *Store) CreatePayment(payment *domain.CampaignPayment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CreatePayment"); err != nil {
		return err
	}
	out := *payment
	s.payments[payment.ID] = &out
	return nil
}

func (s *Store) GetPaymentByID(paymentID string) (*domain.CampaignPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetPaymentByID"); err != nil {
		return nil, err
	}
	p, ok := s.payments[paymentID]
	if !ok {
		return nil, fmt.Errorf("payment %s: %w", paymentID, domain.ErrNotFound)
	}
	out := *p
	return &out, nil
}

func (s *Store) UpdatePaymentStatus(paymentID string, oldStatus, newStatus domain.PaymentStatus, paidAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("UpdatePaymentStatus"); err != nil {
		return err
	}
	p, ok := s.payments[paymentID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Status != oldStatus {
		return domain.ErrVersionConflict
	}
	p.Status = newStatus
	p.PaidAt = paidAt
	return nil
}

func (s *Store) SumPayments(campaignID, influencerID string, status domain.PaymentStatus) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("SumPayments"); err != nil {
		return 0, err
	}
	var sum float64
	for _, p := range s.payments {
		if p.CampaignID == campaignID && p.InfluencerID == influencerID && p.Status == status {
			sum += p.Amount
		}
	}
	return sum, nil
}

func (s *Store) GetPayments(campaignID, influencerID string) ([]*domain.CampaignPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetPayments"); err != nil {
		return nil, err
	}
	out := []*domain.CampaignPayment{}
	for _, p := range s.payments {
		if p.CampaignID != campaignID {
			continue
		}
		if influencerID != "" && p.InfluencerID != influencerID {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// products and orders

func (s *Store) CreateProduct(product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CreateProduct"); err != nil {
		return err
	}
	out := *product
	s.products[product.ID] = &out
	return nil
}

func (s *Store) GetProductsByIDs(productIDs []string) (map[string]*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetProductsByIDs"); err != nil {
		return nil, err
	}
	out := make(map[string]*domain.Product, len(productIDs))
	for _, id := range productIDs {
		if p, ok := s.products[id]; ok {
			cp := *p
			out[id] = &cp
		}
	}
	return out, nil
}

func (s *Store) bumpRevenue(campaignID, influencerID string, amount float64, conversions int64) {
	for _, p := range s.participations {
		if p.CampaignID == campaignID && p.InfluencerID == influencerID {
			p.Revenue += amount
			if p.Revenue < 0 {
				p.Revenue = 0
			}
			p.Metrics.Conversions += conversions
			if p.Metrics.Conversions < 0 {
				p.Metrics.Conversions = 0
			}
		}
	}
}

func (s *Store) CreateOrder(order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CreateOrder"); err != nil {
		return err
	}
	s.orders[order.ID] = copyOrder(order)
	if a := order.Attribution; a != nil && a.CampaignID != "" {
		s.bumpRevenue(a.CampaignID, a.InfluencerID, order.TotalAmount, 1)
	}
	return nil
}

func (s *Store) GetOrderByID(orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetOrderByID"); err != nil {
		return nil, err
	}
	o, ok := s.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	return copyOrder(o), nil
}

func (s *Store) CancelOrder(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CancelOrder"); err != nil {
		return err
	}
	o, ok := s.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if o.Status == domain.OrderCancelled {
		return domain.ErrInvalidTransition
	}
	o.Status = domain.OrderCancelled
	if a := o.Attribution; a != nil {
		if a.Status == domain.AttributionPending {
			a.Status = domain.AttributionCancelled
		}
		if a.CampaignID != "" {
			s.bumpRevenue(a.CampaignID, a.InfluencerID, -o.TotalAmount, -1)
		}
	}
	return nil
}

func (s *Store) UpdateAttributionStatus(orderID string, oldStatus, newStatus domain.AttributionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("UpdateAttributionStatus"); err != nil {
		return err
	}
	o, ok := s.orders[orderID]
	if !ok || o.Attribution == nil {
		return domain.ErrNotFound
	}
	if o.Attribution.Status != oldStatus {
		return domain.ErrVersionConflict
	}
	o.Attribution.Status = newStatus
	return nil
}

func (s *Store) GetCommissionTotals(influencerID string) (*domain.CommissionTotals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetCommissionTotals"); err != nil {
		return nil, err
	}
	totals := &domain.CommissionTotals{InfluencerID: influencerID}
	for _, o := range s.orders {
		a := o.Attribution
		if a == nil || a.InfluencerID != influencerID {
			continue
		}
		switch a.Status {
		case domain.AttributionPending:
			totals.Pending += a.CommissionAmount
		case domain.AttributionPaid:
			totals.Paid += a.CommissionAmount
		default:
			continue
		}
		totals.Orders++
	}
	return totals, nil
}

// content

func (s *Store) CreateContent(content *domain.CampaignContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CreateContent"); err != nil {
		return err
	}
	if content.Version == 0 {
		content.Version = 1
	}
	s.contents[content.ID] = copyContent(content)
	return nil
}

func (s *Store) GetContentByID(contentID string) (*domain.CampaignContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetContentByID"); err != nil {
		return nil, err
	}
	c, ok := s.contents[contentID]
	if !ok {
		return nil, fmt.Errorf("content %s: %w", contentID, domain.ErrNotFound)
	}
	return copyContent(c), nil
}

func (s *Store) UpdateContentReview(content *domain.CampaignContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("UpdateContentReview"); err != nil {
		return err
	}
	stored, ok := s.contents[content.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Version != content.Version {
		return domain.ErrVersionConflict
	}
	stored.Status = content.Status
	stored.Feedback = content.Feedback
	stored.PostURL = content.PostURL
	stored.PublishedAt = content.PublishedAt
	stored.Version++
	content.Version++
	return nil
}

func (s *Store) AppendTracking(event *domain.ContentTracking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("AppendTracking"); err != nil {
		return err
	}
	c, ok := s.contents[event.ContentID]
	if !ok {
		return domain.ErrNotFound
	}
	if c.Status != domain.ContentPublished {
		return domain.ErrInvalidTransition
	}
	out := *event
	s.trackings = append(s.trackings, &out)
	c.Performance.Apply(event.Type)
	return nil
}

// Trackings returns the stored interaction events in insertion order.
func (s *Store) Trackings() []*domain.ContentTracking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.ContentTracking(nil), s.trackings...)
}

// audit

func (s *Store) LogStatusChange(_ context.Context, change domain.StatusChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("LogStatusChange"); err != nil {
		return err
	}
	s.changes = append(s.changes, change)
	return nil
}

func (s *Store) StatusChanges() []domain.StatusChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.StatusChange(nil), s.changes...)
}
