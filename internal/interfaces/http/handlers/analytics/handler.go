// Package analytics serves the maintenance dashboards.
package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/application/analytics/usecases"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

type Handler struct {
	dashboardUC usecases.GetDashboardExecutor
	sectionUC   usecases.GetSectionExecutor
	userStatsUC usecases.GetUserStatisticsExecutor
	logger      logger.Interface
}

func NewHandler(
	dashboardUC usecases.GetDashboardExecutor,
	sectionUC usecases.GetSectionExecutor,
	userStatsUC usecases.GetUserStatisticsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		dashboardUC: dashboardUC,
		sectionUC:   sectionUC,
		userStatsUC: userStatsUC,
		logger:      logger,
	}
}

func dashboardQuery(c *gin.Context) (usecases.DashboardQuery, error) {
	actor, err := utils.GetActor(c)
	if err != nil {
		return usecases.DashboardQuery{}, err
	}
	return usecases.DashboardQuery{
		TenantID:    actor.TenantID,
		Actor:       report.Actor{UserID: actor.UserID, Staff: actor.IsStaff()},
		Period:      c.DefaultQuery("period", "30d"),
		Granularity: c.Query("granularity"),
	}, nil
}

// Dashboard handles GET /analytics/dashboard
// @Summary Full maintenance dashboard
// @Description Non-staff callers only see reports they authored or are assigned to.
// @Tags analytics
// @Produce json
// @Security Bearer
// @Param period query string false "7d, 30d, 90d or 365d" default(30d)
// @Param granularity query string false "day, week, month or year"
// @Success 200 {object} utils.APIResponse{data=analytics.Dashboard}
// @Failure 400 {object} utils.APIResponse
// @Router /analytics/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	query, err := dashboardQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.dashboardUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Section handles GET /analytics/:section
// @Summary One dashboard section
// @Tags analytics
// @Produce json
// @Security Bearer
// @Param section path string true "overview, priority, locations, users, timeline, equipment, response-time, trends or productivity"
// @Param period query string false "7d, 30d, 90d or 365d" default(30d)
// @Param granularity query string false "day, week, month or year"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /analytics/{section} [get]
func (h *Handler) Section(c *gin.Context) {
	query, err := dashboardQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.sectionUC.Execute(c.Request.Context(), usecases.SectionQuery{
		DashboardQuery: query,
		Section:        c.Param("section"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MyStatistics handles GET /analytics/me
// @Summary The caller's own report statistics
// @Tags analytics
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=usecases.UserStatistics}
// @Router /analytics/me [get]
func (h *Handler) MyStatistics(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.userStatsUC.Execute(c.Request.Context(), usecases.UserStatisticsQuery{
		TenantID: actor.TenantID,
		UserID:   actor.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
