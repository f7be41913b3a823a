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

type WorkshopRepository struct {
	*baseRepository
}

// validateNewWorkshop holds the creation rules: the coordinator must accept
// the terms and the date must be a real calendar date.
func validateNewWorkshop(date time.Time, tncAccepted bool) error {
	if !tncAccepted {
		return apperror.NewValidationError("tncAccepted", "terms and conditions must be accepted")
	}
	if date.IsZero() {
		return apperror.NewValidationError("date", "a valid workshop date is required")
	}
	return nil
}

// Create books a workshop for a coordinator. New workshops always start in
// Pending status with no instructor assigned; a fresh uuid is assigned by the
// model hook.
func (wr *WorkshopRepository) Create(ctx context.Context, tx *gorm.DB, workshop *model.Workshop) (*model.Workshop, error) {
	wr.logger.Debugf("Create workshop for coordinator: %s, type: %s \n", workshop.CoordinatorID, workshop.WorkshopTypeID)

	if err := validateNewWorkshop(workshop.Date, workshop.TncAccepted); err != nil {
		return nil, err
	}

	workshop.Status = constant.WorkshopStatusPending
	workshop.InstructorID = nil

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Workshop{}).Create(workshop).Error; err != nil {
		return nil, err
	}

	return workshop, nil
}

func (wr WorkshopRepository) GetById(ctx context.Context, tx *gorm.DB, workshopId string) (*model.Workshop, error) {
	wr.logger.Debugf("Get workshop by id: %s \n", workshopId)

	db := wr.getDB(tx)
	var workshop *model.Workshop

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := db.WithContext(ctx).Model(&model.Workshop{}).
		Preload("Coordinator.Profile").
		Preload("Instructor.Profile").
		Preload("WorkshopType").
		Preload("Schedule").
		Where(&model.Workshop{BaseModel: model.BaseModel{ID: workshopId}}).
		First(&workshop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return workshop, nil
}

// AssignInstructor sets the instructor on a workshop. Assignment to a
// deleted workshop is rejected.
func (wr *WorkshopRepository) AssignInstructor(ctx context.Context, tx *gorm.DB, workshopId string, instructorId string) (*model.Workshop, error) {
	wr.logger.Debugf("Assign instructor %s to workshop %s \n", instructorId, workshopId)

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var workshop *model.Workshop
	txErr := wr.withTx(db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Model(&model.Workshop{}).Where(&model.Workshop{BaseModel: model.BaseModel{ID: workshopId}}).First(&workshop).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrNotFound
			}
			return err
		}

		if workshop.Status == constant.WorkshopStatusDeleted {
			return apperror.ErrInvalidTransition
		}

		workshop.InstructorID = &instructorId
		return tx.WithContext(ctx).Model(workshop).Update("instructor_id", instructorId).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return workshop, nil
}

// SetStatus transitions a workshop through its lifecycle. Allowed moves are
// Pending->Accepted, Pending->Deleted and Accepted->Deleted; writing the
// current status again is a no-op. Anything else fails with
// ErrInvalidTransition. The prior status is returned alongside the row so the
// caller can tell a real transition from a no-op and only emit notifications
// for the former.
func (wr *WorkshopRepository) SetStatus(ctx context.Context, tx *gorm.DB, workshopId string, newStatus constant.WorkshopStatus) (*model.Workshop, constant.WorkshopStatus, error) {
	wr.logger.Debugf("Set workshop %s status to %d \n", workshopId, newStatus)

	if !newStatus.Valid() {
		return nil, 0, apperror.NewValidationError("status", "status must be 0 (Pending), 1 (Accepted) or 2 (Deleted)")
	}

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var workshop *model.Workshop
	var previous constant.WorkshopStatus
	txErr := wr.withTx(db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Model(&model.Workshop{}).Preload("Coordinator").Preload("WorkshopType").Where(&model.Workshop{BaseModel: model.BaseModel{ID: workshopId}}).First(&workshop).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrNotFound
			}
			return err
		}

		previous = workshop.Status

		if !constant.CanTransition(workshop.Status, newStatus) {
			return apperror.ErrInvalidTransition
		}

		if workshop.Status == newStatus {
			return nil
		}

		workshop.Status = newStatus
		return tx.WithContext(ctx).Model(&model.Workshop{}).Where("id = ?", workshopId).Update("status", newStatus).Error
	})
	if txErr != nil {
		return nil, 0, txErr
	}

	return workshop, previous, nil
}

// List returns a page of workshops with relations loaded, optionally
// filtered by status and a search over the workshop type name.
func (wr WorkshopRepository) List(ctx context.Context, tx *gorm.DB, status []constant.WorkshopStatus, search string, page, pageSize uint) ([]model.Workshop, int64, error) {
	wr.logger.Debugf("List workshops status: %v, search: %q, page: %d \n", status, search, page)

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Workshop{}).
		Preload("Coordinator.Profile").
		Preload("Instructor.Profile").
		Preload("WorkshopType")

	if len(status) > 0 {
		query = query.Where("workshops.status IN (?)", status)
	}

	if search != "" {
		query = query.Joins("JOIN workshop_types ON workshop_types.id = workshops.workshop_type_id").
			Where("workshop_types.name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var workshops []model.Workshop
	if err := query.Order("workshops.date DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&workshops).Error; err != nil {
		return nil, 0, err
	}

	return workshops, total, nil
}

// ListForCoordinator returns all workshops booked by one coordinator.
func (wr WorkshopRepository) ListForCoordinator(ctx context.Context, tx *gorm.DB, coordinatorId string) ([]model.Workshop, error) {
	wr.logger.Debugf("List workshops for coordinator: %s \n", coordinatorId)

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var workshops []model.Workshop
	err := db.WithContext(ctx).Model(&model.Workshop{}).
		Preload("WorkshopType").
		Preload("Instructor.Profile").
		Where("coordinator_id = ?", coordinatorId).
		Order("date DESC").
		Find(&workshops).Error
	if err != nil {
		return nil, err
	}

	return workshops, nil
}

// ListAccepted returns accepted workshops with the relations the reporting
// tallies read (coordinator profile state, workshop type name).
func (wr WorkshopRepository) ListAccepted(ctx context.Context, tx *gorm.DB) ([]model.Workshop, error) {
	wr.logger.Debugf("List accepted workshops for reporting \n")

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var workshops []model.Workshop
	err := db.WithContext(ctx).Model(&model.Workshop{}).
		Preload("Coordinator.Profile").
		Preload("WorkshopType").
		Where("status = ?", constant.WorkshopStatusAccepted).
		Find(&workshops).Error
	if err != nil {
		return nil, err
	}

	return workshops, nil
}

func (wr WorkshopRepository) CountByStatus(ctx context.Context, tx *gorm.DB, status constant.WorkshopStatus) (int64, error) {
	wr.logger.Debugf("Count workshops with status: %d \n", status)

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Workshop{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (wr WorkshopRepository) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	wr.logger.Debugf("Count workshops \n")

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Workshop{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Recent returns the latest workshops by date for the dashboard.
func (wr WorkshopRepository) Recent(ctx context.Context, tx *gorm.DB, limit int) ([]model.Workshop, error) {
	wr.logger.Debugf("Get %d recent workshops \n", limit)

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var workshops []model.Workshop
	err := db.WithContext(ctx).Model(&model.Workshop{}).
		Preload("WorkshopType").
		Preload("Coordinator.Profile").
		Preload("Instructor.Profile").
		Order("date DESC").
		Limit(limit).
		Find(&workshops).Error
	if err != nil {
		return nil, err
	}

	return workshops, nil
}
