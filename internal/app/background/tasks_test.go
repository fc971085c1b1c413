package background

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	contentUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/content"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase/usecasetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls atomic.Int32
}

func (r *countingRefresher) RefreshActiveCampaigns(context.Context) (int, error) {
	r.calls.Add(1)
	return 1, nil
}

type channelSubscriber struct {
	mu     sync.Mutex
	topics []string
	ch     chan domain.Message
}

func (s *channelSubscriber) Subscribe(topic, groupID string) (<-chan domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = append(s.topics, topic+"/"+groupID)
	return s.ch, nil
}

func newTracker(store *usecasetest.Store) *contentUsecase.DefaultContentUsecase {
	store.SeedContent(&domain.CampaignContent{ID: "content-1", Status: domain.ContentPublished})
	store.SeedContent(&domain.CampaignContent{ID: "content-2", Status: domain.ContentDraft})
	return contentUsecase.NewDefaultContentUsecase(store, store, store, nil, nil, nil)
}

func TestHandleTrackingMessage(t *testing.T) {
	store := usecasetest.NewStore()
	bt := NewBackgroundTasks(&countingRefresher{}, newTracker(store), nil)
	ctx := context.Background()

	bt.HandleTrackingMessage(ctx, domain.Message{Value: []byte(`{"content_id":"content-1","type":"view","session_id":"s1"}`)})
	bt.HandleTrackingMessage(ctx, domain.Message{Value: []byte(`{not json`)})
	bt.HandleTrackingMessage(ctx, domain.Message{Value: []byte(`{"content_id":"content-2","type":"view"}`)})
	bt.HandleTrackingMessage(ctx, domain.Message{Value: []byte(`{"content_id":"content-1","type":"teleport"}`)})

	content, err := store.GetContentByID("content-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), content.Performance.Views)
	require.Len(t, store.Trackings(), 1)
	assert.Equal(t, "s1", store.Trackings()[0].SessionID)
}

func TestStartAll(t *testing.T) {
	store := usecasetest.NewStore()
	refresher := &countingRefresher{}
	sub := &channelSubscriber{ch: make(chan domain.Message, 2)}

	bt := NewBackgroundTasks(refresher, newTracker(store), sub)
	bt.RollupInterval = 10 * time.Millisecond
	bt.TrackingTopic = "content-tracking"
	bt.GroupID = "campaign-service"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bt.StartAll(ctx)

	sub.ch <- domain.Message{Value: []byte(`{"content_id":"content-1","type":"click"}`)}
	sub.ch <- domain.Message{Value: []byte(`{"content_id":"content-1","type":"click"}`)}

	require.Eventually(t, func() bool { return len(store.Trackings()) == 2 }, time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return refresher.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	sub.mu.Lock()
	assert.Equal(t, []string{"content-tracking/campaign-service"}, sub.topics)
	sub.mu.Unlock()
	close(sub.ch)
}
