package controller

import (
	"net/http"

	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/report"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	baseController
}

const (
	RECENT_WORKSHOP_LIMIT = 10
	TOP_TYPE_LIMIT        = 5
)

// Stats returns the headline numbers for the admin dashboard.
func (dc DashboardController) Stats(ctx *gin.Context) {
	repo := dc.app.Repository

	totalWorkshops, err := repo.Workshop.Count(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load dashboard stats", err, nil)
		return
	}

	pending, err := repo.Workshop.CountByStatus(ctx, nil, constant.WorkshopStatusPending)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load dashboard stats", err, nil)
		return
	}

	accepted, err := repo.Workshop.CountByStatus(ctx, nil, constant.WorkshopStatusAccepted)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load dashboard stats", err, nil)
		return
	}

	coordinators, err := repo.Profile.CountByPosition(ctx, nil, constant.PositionCoordinator)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load dashboard stats", err, nil)
		return
	}

	instructors, err := repo.Profile.CountByPosition(ctx, nil, constant.PositionInstructor)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load dashboard stats", err, nil)
		return
	}

	recent, err := repo.Workshop.Recent(ctx, nil, RECENT_WORKSHOP_LIMIT)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load dashboard stats", err, nil)
		return
	}

	topTypes, err := repo.WorkshopType.TopByUsage(ctx, nil, TOP_TYPE_LIMIT)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load dashboard stats", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"totalWorkshops":    totalWorkshops,
		"pendingWorkshops":  pending,
		"acceptedWorkshops": accepted,
		"coordinators":      coordinators,
		"instructors":       instructors,
		"recentWorkshops":   recent,
		"topWorkshopTypes":  topTypes,
	})
}

// Tallies returns the chart series: accepted workshops grouped by coordinator
// state and by workshop type.
func (dc DashboardController) Tallies(ctx *gin.Context) {
	accepted, err := dc.app.Repository.Workshop.ListAccepted(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load tallies", err, nil)
		return
	}

	stateLabels, stateCounts := report.TallyByCoordinatorState(accepted)
	typeLabels, typeCounts := report.TallyByWorkshopType(accepted)

	util.ResponseSuccess(ctx, gin.H{
		"byState": gin.H{
			"labels": stateLabels,
			"counts": stateCounts,
		},
		"byWorkshopType": gin.H{
			"labels": typeLabels,
			"counts": typeCounts,
		},
	})
}

// Entities exposes the admin presentation registry so the frontend can render
// list pages without hardcoding columns.
func (dc DashboardController) Entities(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"entities": dc.app.Admin.All(),
	})
}

// Entity returns one entity's presentation config by name.
func (dc DashboardController) Entity(ctx *gin.Context) {
	name := ctx.Param("name")

	cfg, ok := dc.app.Admin.Get(name)
	if !ok {
		util.ResponseFailed(ctx, http.StatusNotFound, "Unknown admin entity", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"entity": cfg,
	})
}
