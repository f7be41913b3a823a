package repository

import (
	"context"
	"errors"

	"github.com/SeakMengs/WorkshopHub/internal/apperror"
	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"gorm.io/gorm"
)

type ScheduleRepository struct {
	*baseRepository
}

// Upsert creates or replaces the single schedule attached to a workshop.
func (sr *ScheduleRepository) Upsert(ctx context.Context, tx *gorm.DB, schedule *model.WorkshopSchedule) (*model.WorkshopSchedule, error) {
	sr.logger.Debugf("Upsert schedule for workshop: %s \n", schedule.WorkshopID)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	txErr := sr.withTx(db, func(tx *gorm.DB) error {
		var existing model.WorkshopSchedule
		err := tx.WithContext(ctx).Model(&model.WorkshopSchedule{}).
			Where("workshop_id = ?", schedule.WorkshopID).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.WithContext(ctx).Model(&model.WorkshopSchedule{}).Create(schedule).Error
			}
			return err
		}

		schedule.ID = existing.ID
		return tx.WithContext(ctx).Model(&model.WorkshopSchedule{}).Where("id = ?", existing.ID).Updates(schedule).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return schedule, nil
}

func (sr ScheduleRepository) GetForWorkshop(ctx context.Context, tx *gorm.DB, workshopId string) (*model.WorkshopSchedule, error) {
	sr.logger.Debugf("Get schedule for workshop: %s \n", workshopId)

	db := sr.getDB(tx)
	var schedule *model.WorkshopSchedule

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := db.WithContext(ctx).Model(&model.WorkshopSchedule{}).
		Where("workshop_id = ?", workshopId).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return schedule, nil
}
