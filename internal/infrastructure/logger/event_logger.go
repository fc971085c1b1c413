package logger

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"gorm.io/gorm"
)

type StatusChangeEvent struct {
	ID         uint   `gorm:"primaryKey"`
	EntityType string `gorm:"index:idx_status_change_entity"`
	EntityID   string `gorm:"index:idx_status_change_entity"`
	ActorID    string
	OldStatus  string
	NewStatus  string
	RequestID  string
	Timestamp  time.Time `gorm:"index"`
}

type PGStatusChangeLogger struct {
	db *gorm.DB
}

func NewPGStatusChangeLogger(db *gorm.DB) *PGStatusChangeLogger {
	return &PGStatusChangeLogger{db: db}
}

func (l *PGStatusChangeLogger) LogStatusChange(ctx context.Context, change domain.StatusChange) error {
	event := StatusChangeEvent{
		EntityType: change.EntityType,
		EntityID:   change.EntityID,
		ActorID:    change.ActorID,
		OldStatus:  change.OldStatus,
		NewStatus:  change.NewStatus,
		RequestID:  change.RequestID,
		Timestamp:  change.Timestamp,
	}
	return l.db.WithContext(ctx).Create(&event).Error
}
