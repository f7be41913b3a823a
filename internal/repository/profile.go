package repository

import (
	"context"
	"errors"
	"time"

	"github.com/SeakMengs/WorkshopHub/internal/apperror"
	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	*baseRepository
}

func (pr *ProfileRepository) Create(ctx context.Context, tx *gorm.DB, profile *model.Profile) error {
	pr.logger.Debugf("Create profile for user: %s \n", profile.UserID)

	if profile.State == "" {
		profile.State = constant.DefaultState
	}
	if !constant.ValidState(profile.State) {
		return apperror.NewValidationError("state", "unknown state code")
	}

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Profile{}).Create(profile).Error; err != nil {
		return err
	}

	return nil
}

func (pr ProfileRepository) GetByUserId(ctx context.Context, tx *gorm.DB, userId string) (*model.Profile, error) {
	pr.logger.Debugf("Get profile by user id: %s \n", userId)

	db := pr.getDB(tx)
	var profile *model.Profile

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Profile{}).Where(&model.Profile{UserID: userId}).First(&profile).Error; err != nil {
		return profile, err
	}

	return profile, nil
}

// ActivateByKey marks the profile as email-verified if the activation key is
// known and not expired, then clears the key.
func (pr *ProfileRepository) ActivateByKey(ctx context.Context, tx *gorm.DB, activationKey string) (*model.Profile, error) {
	pr.logger.Debugf("Activate profile by key \n")

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var profile *model.Profile
	txErr := pr.withTx(db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Model(&model.Profile{}).Where(&model.Profile{ActivationKey: activationKey}).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrNotFound
			}
			return err
		}

		if profile.KeyExpiryTime != nil && profile.KeyExpiryTime.Before(time.Now()) {
			return apperror.NewValidationError("activationKey", "activation key has expired")
		}

		return tx.WithContext(ctx).Model(profile).Updates(map[string]any{
			"is_email_verified": true,
			"activation_key":    "",
			"key_expiry_time":   nil,
		}).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return profile, nil
}

func (pr ProfileRepository) CountByPosition(ctx context.Context, tx *gorm.DB, position constant.Position) (int64, error) {
	pr.logger.Debugf("Count profiles by position: %s \n", position)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Profile{}).Where("position = ?", position).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (pr ProfileRepository) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	pr.logger.Debugf("Count profiles \n")

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Profile{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
