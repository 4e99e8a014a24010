// Package report serves maintenance reports, their progress history and attachments.
package report

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/application/report/usecases"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
	"github.com/relatorio-inc/relatorio/internal/shared/constants"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

type Handler struct {
	createUC     usecases.CreateReportExecutor
	bulkCreateUC usecases.BulkCreateReportsExecutor
	updateUC     usecases.UpdateReportExecutor
	deleteUC     usecases.DeleteReportExecutor
	getUC        usecases.GetReportExecutor
	listUC       usecases.ListReportsExecutor
	exportUC     usecases.ExportReportsExecutor
	logger       logger.Interface
}

func NewHandler(
	createUC usecases.CreateReportExecutor,
	bulkCreateUC usecases.BulkCreateReportsExecutor,
	updateUC usecases.UpdateReportExecutor,
	deleteUC usecases.DeleteReportExecutor,
	getUC usecases.GetReportExecutor,
	listUC usecases.ListReportsExecutor,
	exportUC usecases.ExportReportsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:     createUC,
		bulkCreateUC: bulkCreateUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		getUC:        getUC,
		listUC:       listUC,
		exportUC:     exportUC,
		logger:       logger,
	}
}

// reportActor maps the authenticated caller onto the report permission model.
func reportActor(c *gin.Context) (utils.Actor, report.Actor, error) {
	actor, err := utils.GetActor(c)
	if err != nil {
		return utils.Actor{}, report.Actor{}, err
	}
	return actor, report.Actor{UserID: actor.UserID, Staff: actor.IsStaff()}, nil
}

// reportTarget also reads the report ID path parameter.
func reportTarget(c *gin.Context) (utils.Actor, report.Actor, uint, error) {
	actor, ra, err := reportActor(c)
	if err != nil {
		return actor, ra, 0, err
	}
	id, err := utils.ParseUintParam(c, "id", "report")
	if err != nil {
		return actor, ra, 0, err
	}
	return actor, ra, id, nil
}

// Create handles POST /reports
// @Summary Create a report
// @Description Status is derived from progress: 0 pending, 1-99 in progress, 100 resolved.
// @Tags reports
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateReportRequest true "Report"
// @Success 201 {object} utils.APIResponse{data=dto.ReportDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /reports [post]
func (h *Handler) Create(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	input, err := req.ToInput()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateReportCommand{
		TenantID:    actor.TenantID,
		AuthorID:    actor.UserID,
		ReportInput: input,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Report created successfully")
}

// BulkCreate handles POST /reports/bulk
// @Summary Create several reports atomically
// @Description Either every report is created or none is.
// @Tags reports
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body BulkCreateReportsRequest true "Reports"
// @Success 201 {object} utils.APIResponse{data=usecases.BulkCreateReportsResult}
// @Failure 400 {object} utils.APIResponse
// @Router /reports/bulk [post]
func (h *Handler) BulkCreate(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req BulkCreateReportsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	if len(req.Reports) > constants.MaxBulkReports {
		utils.ErrorResponseWithError(c, errors.NewValidationError(
			fmt.Sprintf("at most %d reports per request", constants.MaxBulkReports)))
		return
	}

	items := make([]usecases.ReportInput, 0, len(req.Reports))
	for i := range req.Reports {
		input, err := req.Reports[i].ToInput()
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError(
				fmt.Sprintf("report %d: invalid occurred_at", i)))
			return
		}
		items = append(items, input)
	}

	result, err := h.bulkCreateUC.Execute(c.Request.Context(), usecases.BulkCreateReportsCommand{
		TenantID: actor.TenantID,
		AuthorID: actor.UserID,
		Items:    items,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, fmt.Sprintf("%d reports created", result.Created))
}

// List handles GET /reports
// @Summary List reports
// @Description Non-staff callers only see reports they authored or are assigned to.
// @Tags reports
// @Produce json
// @Security Bearer
// @Param status query string false "pending, in_progress or resolved"
// @Param priority query string false "low, medium, high or critical"
// @Param assignee_id query int false "Assignee"
// @Param author_id query int false "Author"
// @Param local_id query int false "Local"
// @Param equipamento_id query int false "Equipamento"
// @Param category_id query int false "Category"
// @Param search query string false "Title or description"
// @Param from query string false "Created on or after (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "Created on or before (YYYY-MM-DD or RFC 3339)"
// @Param sort_by query string false "created_at, updated_at, priority or progress"
// @Param sort_order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /reports [get]
func (h *Handler) List(c *gin.Context) {
	actor, ra, err := reportActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query, err := parseListQuery(c, actor.TenantID, ra)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Reports, result.Total, result.Page, result.PageSize)
}

// Export handles GET /reports/export
// @Summary Export reports as CSV
// @Description Accepts the same filters as the listing; pagination is ignored.
// @Tags reports
// @Produce text/csv
// @Security Bearer
// @Success 200 {file} file
// @Router /reports/export [get]
func (h *Handler) Export(c *gin.Context) {
	actor, ra, err := reportActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query, err := parseListQuery(c, actor.TenantID, ra)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var buf bytes.Buffer
	rows, err := h.exportUC.Execute(c.Request.Context(), query, &buf)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("reports exported", "user_id", actor.UserID, "rows", rows)
	filename := fmt.Sprintf("reports-%s.csv", biztime.NowUTC().In(biztime.Location()).Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, constants.ContentTypeCSV, buf.Bytes())
}

// Get handles GET /reports/:id
// @Summary Get a report with its history, gallery and custom data
// @Tags reports
// @Produce json
// @Security Bearer
// @Param id path int true "Report ID"
// @Success 200 {object} utils.APIResponse{data=dto.ReportDetailDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /reports/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	actor, ra, id, err := reportTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetReportQuery{
		TenantID: actor.TenantID,
		ReportID: id,
		Actor:    ra,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PUT /reports/:id
// @Summary Edit a report
// @Description Progress is changed through the progress endpoint only.
// @Tags reports
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Report ID"
// @Param request body UpdateReportRequest true "Report"
// @Success 200 {object} utils.APIResponse{data=dto.ReportDTO}
// @Failure 403 {object} utils.APIResponse "Not allowed or report locked"
// @Router /reports/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	actor, ra, id, err := reportTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	cmd, err := req.ToCommand(actor.TenantID, id, ra)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report updated successfully", result)
}

// Delete handles DELETE /reports/:id
// @Summary Delete a report
// @Tags reports
// @Security Bearer
// @Param id path int true "Report ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Router /reports/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	actor, ra, id, err := reportTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteReportCommand{
		TenantID: actor.TenantID,
		ReportID: id,
		Actor:    ra,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
