package model

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
)

// AttachmentFile is a workshop document (schedule, instructions, ...) stored
// in the object store under a key namespaced by the workshop type name.
type AttachmentFile struct {
	BaseModel
	FileName   string `gorm:"type:text;not null" json:"fileName" form:"fileName" binding:"required"`
	ObjectKey  string `gorm:"type:text;not null;uniqueIndex" json:"objectKey"`
	BucketName string `gorm:"type:text;not null" json:"bucketName"`
	Size       int64  `gorm:"type:bigint;not null" json:"size"`

	WorkshopTypeID string       `gorm:"type:text;not null" json:"workshopTypeId" form:"workshopTypeId"`
	WorkshopType   WorkshopType `gorm:"constraint:OnDelete:CASCADE" json:"workshopType,omitempty"`
}

func (af AttachmentFile) TableName() string {
	return "attachment_files"
}

func (af AttachmentFile) ToPresignedUrl(ctx context.Context, s3 *minio.Client) (string, error) {
	if af.BucketName == "" || af.ObjectKey == "" {
		return "", errors.New("bucket name and object key cannot be empty")
	}

	// 60min expiration time
	presignedURL, err := s3.PresignedGetObject(ctx, af.BucketName, af.ObjectKey, time.Minute*60, nil)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}

func (af AttachmentFile) Delete(ctx context.Context, s3 *minio.Client) error {
	if af.BucketName == "" || af.ObjectKey == "" {
		return errors.New("bucket name and object key cannot be empty")
	}

	return s3.RemoveObject(ctx, af.BucketName, af.ObjectKey, minio.RemoveObjectOptions{})
}

func (af AttachmentFile) ToBaseFilename() string {
	return filepath.Base(af.FileName)
}
