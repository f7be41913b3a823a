package repository

import (
	"context"

	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"gorm.io/gorm"
)

type TestimonialRepository struct {
	*baseRepository
}

func (tr *TestimonialRepository) Create(ctx context.Context, tx *gorm.DB, testimonial *model.Testimonial) (*model.Testimonial, error) {
	tr.logger.Debugf("Create testimonial by: %s \n", testimonial.Name)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Testimonial{}).Create(testimonial).Error; err != nil {
		return nil, err
	}

	return testimonial, nil
}

func (tr TestimonialRepository) List(ctx context.Context, tx *gorm.DB) ([]model.Testimonial, error) {
	tr.logger.Debugf("List testimonials \n")

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var testimonials []model.Testimonial
	if err := db.WithContext(ctx).Model(&model.Testimonial{}).Order("created_at DESC").Find(&testimonials).Error; err != nil {
		return nil, err
	}

	return testimonials, nil
}

func (tr *TestimonialRepository) Delete(ctx context.Context, tx *gorm.DB, testimonialId string) error {
	tr.logger.Debugf("Delete testimonial: %s \n", testimonialId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Delete(&model.Testimonial{}, "id = ?", testimonialId).Error
}
