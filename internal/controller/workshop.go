package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/SeakMengs/WorkshopHub/internal/apperror"
	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/mailer"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"github.com/SeakMengs/WorkshopHub/internal/queue"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

type WorkshopController struct {
	baseController
}

type createWorkshopRequest struct {
	Date           string `json:"date" form:"date" binding:"required,datetime=2006-01-02"`
	WorkshopTypeID string `json:"workshopTypeId" form:"workshopTypeId" binding:"required"`
	TncAccepted    bool   `json:"tncAccepted" form:"tncAccepted"`
}

// Create books a workshop for the authenticated coordinator. The workshop
// starts Pending; admins move it through the lifecycle with SetStatus.
func (wc WorkshopController) Create(ctx *gin.Context) {
	authUser, err := wc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	var body createWorkshopRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid workshop data", err, nil)
		return
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid workshop date", err, nil)
		return
	}

	workshop, err := wc.app.Repository.Workshop.Create(ctx, nil, &model.Workshop{
		Date:           date,
		TncAccepted:    body.TncAccepted,
		CoordinatorID:  authUser.ID,
		WorkshopTypeID: body.WorkshopTypeID,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to create workshop", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"workshop": workshop,
	})
}

// List returns a page of workshops. Admins see everything; query params
// filter by status and search workshop type names.
func (wc WorkshopController) List(ctx *gin.Context) {
	page, pageSize := readPagination(ctx)

	var status []constant.WorkshopStatus
	if raw := ctx.Query("status"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || !constant.WorkshopStatus(parsed).Valid() {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid status filter", nil, nil)
			return
		}
		status = append(status, constant.WorkshopStatus(parsed))
	}

	workshops, total, err := wc.app.Repository.Workshop.List(ctx, nil, status, ctx.Query("search"), page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list workshops", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"workshops": workshops,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	})
}

// Mine returns the authenticated coordinator's own bookings.
func (wc WorkshopController) Mine(ctx *gin.Context) {
	authUser, err := wc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	workshops, err := wc.app.Repository.Workshop.ListForCoordinator(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list workshops", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"workshops": workshops,
	})
}

func (wc WorkshopController) GetById(ctx *gin.Context) {
	workshopId := ctx.Param("workshopId")

	workshop, err := wc.app.Repository.Workshop.GetById(ctx, nil, workshopId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Workshop not found", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"workshop": workshop,
	})
}

type assignInstructorRequest struct {
	InstructorID string `json:"instructorId" form:"instructorId" binding:"required"`
}

func (wc WorkshopController) AssignInstructor(ctx *gin.Context) {
	workshopId := ctx.Param("workshopId")

	var body assignInstructorRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Instructor id is required", err, nil)
		return
	}

	workshop, err := wc.app.Repository.Workshop.AssignInstructor(ctx, nil, workshopId, body.InstructorID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Workshop not found", err, nil)
			return
		}
		if errors.Is(err, apperror.ErrInvalidTransition) {
			util.ResponseFailed(ctx, http.StatusConflict, "Cannot assign an instructor to a deleted workshop", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to assign instructor", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"workshop": workshop,
	})
}

type setStatusRequest struct {
	Status int `json:"status" form:"status" binding:"gte=0,lte=2"`
}

// SetStatus moves a workshop through its lifecycle and tells the coordinator
// what happened, both in-app and by email.
func (wc WorkshopController) SetStatus(ctx *gin.Context) {
	workshopId := ctx.Param("workshopId")

	var body setStatusRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid status", err, nil)
		return
	}

	newStatus := constant.WorkshopStatus(body.Status)
	workshop, previous, err := wc.app.Repository.Workshop.SetStatus(ctx, nil, workshopId, newStatus)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Workshop not found", err, nil)
			return
		}
		if errors.Is(err, apperror.ErrInvalidTransition) {
			util.ResponseFailed(ctx, http.StatusConflict, "Status transition not allowed", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to update status", err, nil)
		return
	}

	if notificationType, ok := statusNotification(previous, newStatus); ok {
		wc.notifyStatusChange(ctx, workshop, newStatus, notificationType)
	}

	util.ResponseSuccess(ctx, gin.H{
		"workshop": workshop,
	})
}

// statusNotification maps a committed transition to the notification the
// coordinator should receive. A same-state write is a no-op and must stay
// silent; a repeated re-submit of status=1 on an Accepted workshop must not
// pile up "Workshop Accepted" rows or emails.
func statusNotification(previous, next constant.WorkshopStatus) (constant.NotificationType, bool) {
	if previous == next {
		return "", false
	}

	switch next {
	case constant.WorkshopStatusAccepted:
		return constant.NotificationWorkshopAccepted, true
	case constant.WorkshopStatusDeleted:
		return constant.NotificationWorkshopRejected, true
	default:
		return "", false
	}
}

// notifyStatusChange records an in-app notification and queues the status
// email. Failures here are logged, not returned: the transition itself has
// already committed.
func (wc WorkshopController) notifyStatusChange(ctx *gin.Context, workshop *model.Workshop, newStatus constant.WorkshopStatus, notificationType constant.NotificationType) {
	title := notificationType.Label()
	message := workshop.WorkshopType.Name + " on " + workshop.Date.Format("2006-01-02") + " is now " + newStatus.Label()
	if _, err := wc.app.Repository.Notification.Notify(ctx, nil, workshop.CoordinatorID, notificationType, title, message, &workshop.ID); err != nil {
		wc.app.Logger.Errorf("Failed to notify coordinator %s about workshop %s: %v", workshop.CoordinatorID, workshop.ID, err)
	}

	job, err := queue.NewWorkshopStatusMailJob(workshop.Coordinator.Email, mailer.WorkshopStatusData{
		FirstName:    workshop.Coordinator.FirstName,
		WorkshopName: workshop.WorkshopType.Name,
		Date:         workshop.Date.Format("2006-01-02"),
		StatusLabel:  newStatus.Label(),
	})
	if err != nil {
		wc.app.Logger.Errorf("Failed to build status mail job for workshop %s: %v", workshop.ID, err)
		return
	}

	if err := wc.app.Queue.PublishMailJob(job); err != nil {
		wc.app.Logger.Errorf("Failed to queue status mail for workshop %s: %v", workshop.ID, err)
	}
}

// UpsertSchedule attaches or replaces the schedule on a workshop.
func (wc WorkshopController) UpsertSchedule(ctx *gin.Context) {
	workshopId := ctx.Param("workshopId")

	var body model.WorkshopSchedule
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid schedule data", err, nil)
		return
	}

	if _, err := wc.app.Repository.Workshop.GetById(ctx, nil, workshopId); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Workshop not found", err, nil)
		return
	}

	body.WorkshopID = workshopId
	schedule, err := wc.app.Repository.Schedule.Upsert(ctx, nil, &body)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to save schedule", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"schedule": schedule,
	})
}

func (wc WorkshopController) GetSchedule(ctx *gin.Context) {
	workshopId := ctx.Param("workshopId")

	schedule, err := wc.app.Repository.Schedule.GetForWorkshop(ctx, nil, workshopId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Schedule not found", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"schedule": schedule,
	})
}

// readPagination pulls page and pageSize query params with defaults.
func readPagination(ctx *gin.Context) (uint, uint) {
	page, _ := strconv.ParseUint(ctx.DefaultQuery("page", "1"), 10, 32)
	pageSize, _ := strconv.ParseUint(ctx.DefaultQuery("pageSize", "25"), 10, 32)
	return util.NormalizePagination(uint(page), uint(pageSize))
}
