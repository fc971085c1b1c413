package setup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-campaign-service/internal/config"
	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/cache"
	publisher "github.com/LavaJover/shvark-campaign-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.CampaignConfig
	DB           *gorm.DB
	Redis        *redis.Client
	Kafka        *publisher.DefaultKafkaPublisher
	Publisher    usecase.EventPublisher
	Subscriber   domain.SubscriberPort
	RankingCache domain.RankingCache
	Audit        domain.StatusChangeLogger
	Metrics      *metrics.CampaignMetrics
	Repositories *Repositories
}

type Repositories struct {
	CampaignRepo      domain.CampaignRepository
	ParticipationRepo domain.ParticipationRepository
	InfluencerRepo    domain.InfluencerRepository
	MetricsRepo       domain.MetricsRepository
	RankingRepo       domain.RankingRepository
	PaymentRepo       domain.PaymentRepository
	ProductRepo       domain.ProductRepository
	OrderRepo         domain.OrderRepository
	ContentRepo       domain.ContentRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		CampaignRepo:      repository.NewDefaultCampaignRepository(db),
		ParticipationRepo: repository.NewDefaultParticipationRepository(db),
		InfluencerRepo:    repository.NewDefaultInfluencerRepository(db),
		MetricsRepo:       repository.NewDefaultMetricsRepository(db),
		RankingRepo:       repository.NewDefaultRankingRepository(db),
		PaymentRepo:       repository.NewDefaultPaymentRepository(db),
		ProductRepo:       repository.NewDefaultProductRepository(db),
		OrderRepo:         repository.NewDefaultOrderRepository(db),
		ContentRepo:       repository.NewDefaultContentRepository(db),
	}
}

// InitializeDependencies connects the stores. Kafka and Redis are optional;
// without them events are dropped and rankings are computed on every call.
func InitializeDependencies(ctx context.Context, cfg *config.CampaignConfig, reg prometheus.Registerer) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)

	deps := &Dependencies{
		Config:       cfg,
		DB:           db,
		Audit:        logger.NewPGStatusChangeLogger(db),
		Metrics:      metrics.NewCampaignMetrics(reg),
		Repositories: NewRepositories(db),
	}

	if cfg.KafkaService.Enabled() {
		brokers := cfg.KafkaService.Brokers()
		deps.Kafka = publisher.NewDefaultKafkaPublisher(brokers, publisher.Topics{
			Campaign: cfg.KafkaService.Topics.Campaign,
			Content:  cfg.KafkaService.Topics.Content,
			Order:    cfg.KafkaService.Topics.Order,
		})
		deps.Publisher = deps.Kafka
		deps.Subscriber = publisher.NewDefaultKafkaSubscriber(ctx, brokers)
		slog.Info("kafka enabled", "brokers", brokers)
	} else {
		slog.Warn("kafka is not configured, domain events are disabled")
	}

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		deps.Redis = client
		deps.RankingCache = cache.NewRedisRankingCache(client)
	} else {
		slog.Warn("redis is not configured, ranking cache is disabled")
	}

	return deps, nil
}

// Ready pings every configured store.
func (d *Dependencies) Ready(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if d.Redis != nil {
		if err := d.Redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

func (d *Dependencies) Close() {
	if d.Kafka != nil {
		if err := d.Kafka.Close(); err != nil {
			slog.Error("failed to close kafka writer", "error", err.Error())
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err.Error())
		}
	}
	if sqlDB, err := d.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
