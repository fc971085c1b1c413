package repository

import (
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"gorm.io/gorm"
)

// storeError translates gorm errors into domain sentinels.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", op, domain.ErrAlreadyExists)
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAlreadyExists) || errors.Is(err, domain.ErrVersionConflict) ||
		errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrStoreFailure) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreFailure, err)
}

// versionMiss decides what a conditional update that touched no rows means:
// the row is either gone or was changed by someone else.
func versionMiss(db *gorm.DB, model interface{}, id string) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrVersionConflict
}
