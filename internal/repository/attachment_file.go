package repository

import (
	"context"
	"errors"
	"io"

	"github.com/SeakMengs/WorkshopHub/internal/apperror"
	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

type AttachmentFileRepository struct {
	*baseRepository
}

// Upload streams a workshop document to the object store and records it.
// The object key follows the `<Type_Name>/<filename>` convention.
func (ar *AttachmentFileRepository) Upload(ctx context.Context, tx *gorm.DB, bucket string, workshopType *model.WorkshopType, fileName string, reader io.Reader, size int64, contentType string) (*model.AttachmentFile, error) {
	ar.logger.Debugf("Upload attachment %s for workshop type %s \n", fileName, workshopType.Name)

	objectKey := util.AttachmentObjectKey(workshopType.Name, fileName)

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if _, err := ar.s3.PutObject(ctx, bucket, objectKey, reader, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return nil, err
	}

	attachment := &model.AttachmentFile{
		FileName:       fileName,
		ObjectKey:      objectKey,
		BucketName:     bucket,
		Size:           size,
		WorkshopTypeID: workshopType.ID,
	}

	db := ar.getDB(tx)
	if err := db.WithContext(ctx).Model(&model.AttachmentFile{}).Create(attachment).Error; err != nil {
		// keep the store consistent with the table
		_ = ar.s3.RemoveObject(ctx, bucket, objectKey, minio.RemoveObjectOptions{})
		return nil, err
	}

	return attachment, nil
}

func (ar AttachmentFileRepository) GetById(ctx context.Context, tx *gorm.DB, attachmentId string) (*model.AttachmentFile, error) {
	ar.logger.Debugf("Get attachment by id: %s \n", attachmentId)

	db := ar.getDB(tx)
	var attachment *model.AttachmentFile

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := db.WithContext(ctx).Model(&model.AttachmentFile{}).
		Where(&model.AttachmentFile{BaseModel: model.BaseModel{ID: attachmentId}}).
		First(&attachment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return attachment, nil
}

func (ar AttachmentFileRepository) ListForType(ctx context.Context, tx *gorm.DB, workshopTypeId string) ([]model.AttachmentFile, error) {
	ar.logger.Debugf("List attachments for workshop type: %s \n", workshopTypeId)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var attachments []model.AttachmentFile
	err := db.WithContext(ctx).Model(&model.AttachmentFile{}).
		Where("workshop_type_id = ?", workshopTypeId).
		Order("created_at ASC").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}

	return attachments, nil
}

// Delete removes the stored object first, then the row.
func (ar *AttachmentFileRepository) Delete(ctx context.Context, tx *gorm.DB, attachmentId string) error {
	ar.logger.Debugf("Delete attachment: %s \n", attachmentId)

	attachment, err := ar.GetById(ctx, tx, attachmentId)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := attachment.Delete(ctx, ar.s3); err != nil {
		return err
	}

	db := ar.getDB(tx)
	return db.WithContext(ctx).Delete(&model.AttachmentFile{}, "id = ?", attachmentId).Error
}
