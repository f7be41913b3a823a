package repository

import (
	"context"
	"errors"

	"github.com/SeakMengs/WorkshopHub/internal/apperror"
	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"gorm.io/gorm"
)

type RatingRepository struct {
	*baseRepository
}

func validateRatingScore(score int) error {
	if score < 1 || score > 5 {
		return apperror.NewValidationError("rating", "rating must be between 1 and 5")
	}
	return nil
}

// Rate records a user's score for a workshop. A rating is immutable once
// created; a second rating for the same (workshop, user) pair fails with
// ErrDuplicateRating. The composite unique index is the real guard, so a
// concurrent duplicate insert fails the same way instead of silently
// succeeding.
func (rr *RatingRepository) Rate(ctx context.Context, tx *gorm.DB, rating *model.WorkshopRating) (*model.WorkshopRating, error) {
	rr.logger.Debugf("Rate workshop %s by user %s with score %d \n", rating.WorkshopID, rating.UserID, rating.Rating)

	if err := validateRatingScore(rating.Rating); err != nil {
		return nil, err
	}

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.WorkshopRating{}).Create(rating).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.ErrDuplicateRating
		}
		return nil, err
	}

	return rating, nil
}

func (rr RatingRepository) ListForWorkshop(ctx context.Context, tx *gorm.DB, workshopId string) ([]model.WorkshopRating, error) {
	rr.logger.Debugf("List ratings for workshop: %s \n", workshopId)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var ratings []model.WorkshopRating
	err := db.WithContext(ctx).Model(&model.WorkshopRating{}).
		Preload("User").
		Where("workshop_id = ?", workshopId).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}

	return ratings, nil
}

// AverageForWorkshop returns the mean score, or 0 when the workshop has no
// ratings yet.
func (rr RatingRepository) AverageForWorkshop(ctx context.Context, tx *gorm.DB, workshopId string) (float64, error) {
	rr.logger.Debugf("Average rating for workshop: %s \n", workshopId)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var avg *float64
	err := db.WithContext(ctx).Model(&model.WorkshopRating{}).
		Select("AVG(rating)").
		Where("workshop_id = ?", workshopId).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}

	if avg == nil {
		return 0, nil
	}

	return *avg, nil
}
