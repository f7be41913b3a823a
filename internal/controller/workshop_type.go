package controller

import (
	"net/http"

	"github.com/SeakMengs/WorkshopHub/internal/model"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

type WorkshopTypeController struct {
	baseController
}

func (wtc WorkshopTypeController) Create(ctx *gin.Context) {
	var body model.WorkshopType
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid workshop type data", err, nil)
		return
	}

	workshopType, err := wtc.app.Repository.WorkshopType.Create(ctx, nil, &body)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to create workshop type", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"workshopType": workshopType,
	})
}

func (wtc WorkshopTypeController) Update(ctx *gin.Context) {
	workshopTypeId := ctx.Param("workshopTypeId")

	var body model.WorkshopType
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid workshop type data", err, nil)
		return
	}

	body.ID = workshopTypeId
	if err := wtc.app.Repository.WorkshopType.Update(ctx, nil, &body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to update workshop type", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"workshopType": body,
	})
}

func (wtc WorkshopTypeController) List(ctx *gin.Context) {
	workshopTypes, err := wtc.app.Repository.WorkshopType.List(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list workshop types", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"workshopTypes": workshopTypes,
	})
}

func (wtc WorkshopTypeController) GetById(ctx *gin.Context) {
	workshopTypeId := ctx.Param("workshopTypeId")

	workshopType, err := wtc.app.Repository.WorkshopType.GetById(ctx, nil, workshopTypeId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Workshop type not found", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"workshopType": workshopType,
	})
}

// UploadAttachment stores a document for a workshop type. The object key is
// derived from the type name, so the type must exist first.
func (wtc WorkshopTypeController) UploadAttachment(ctx *gin.Context) {
	workshopTypeId := ctx.Param("workshopTypeId")

	workshopType, err := wtc.app.Repository.WorkshopType.GetById(ctx, nil, workshopTypeId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Workshop type not found", err, nil)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "A file is required", err, nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to read uploaded file", err, nil)
		return
	}
	defer file.Close()

	attachment, err := wtc.app.Repository.AttachmentFile.Upload(
		ctx, nil,
		wtc.app.Config.Minio.ATTACHMENT_BUCKET,
		workshopType,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload attachment", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"attachment": attachment,
	})
}

// ListAttachments returns the type's documents with presigned download urls.
func (wtc WorkshopTypeController) ListAttachments(ctx *gin.Context) {
	workshopTypeId := ctx.Param("workshopTypeId")

	attachments, err := wtc.app.Repository.AttachmentFile.ListForType(ctx, nil, workshopTypeId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list attachments", err, nil)
		return
	}

	type attachmentWithUrl struct {
		model.AttachmentFile
		Url string `json:"url"`
	}

	result := make([]attachmentWithUrl, 0, len(attachments))
	for _, attachment := range attachments {
		url, err := attachment.ToPresignedUrl(ctx, wtc.app.S3)
		if err != nil {
			wtc.app.Logger.Errorf("Failed to presign attachment %s: %v", attachment.ID, err)
		}
		result = append(result, attachmentWithUrl{AttachmentFile: attachment, Url: url})
	}

	util.ResponseSuccess(ctx, gin.H{
		"attachments": result,
	})
}

func (wtc WorkshopTypeController) DeleteAttachment(ctx *gin.Context) {
	attachmentId := ctx.Param("attachmentId")

	if err := wtc.app.Repository.AttachmentFile.Delete(ctx, nil, attachmentId); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Failed to delete attachment", err, nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
