package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/application/report/usecases"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

// WorkflowHandler serves progress updates, assignment, locking and attachments.
type WorkflowHandler struct {
	updateProgressUC usecases.UpdateProgressExecutor
	listUpdatesUC    usecases.ListReportUpdatesExecutor
	assignUC         usecases.AssignReportExecutor
	setLockUC        usecases.SetReportLockExecutor
	uploadImageUC    usecases.UploadReportImageExecutor
	setDataUC        usecases.SetReportDataExecutor
	deleteDataUC     usecases.DeleteReportDataExecutor
	logger           logger.Interface
}

func NewWorkflowHandler(
	updateProgressUC usecases.UpdateProgressExecutor,
	listUpdatesUC usecases.ListReportUpdatesExecutor,
	assignUC usecases.AssignReportExecutor,
	setLockUC usecases.SetReportLockExecutor,
	uploadImageUC usecases.UploadReportImageExecutor,
	setDataUC usecases.SetReportDataExecutor,
	deleteDataUC usecases.DeleteReportDataExecutor,
	logger logger.Interface,
) *WorkflowHandler {
	return &WorkflowHandler{
		updateProgressUC: updateProgressUC,
		listUpdatesUC:    listUpdatesUC,
		assignUC:         assignUC,
		setLockUC:        setLockUC,
		uploadImageUC:    uploadImageUC,
		setDataUC:        setDataUC,
		deleteDataUC:     deleteDataUC,
		logger:           logger,
	}
}

// UpdateProgress handles POST /reports/:id/progress
// @Summary Record a progress update
// @Description Appends a history entry and recomputes the report status. Only the author, the assignee or staff may update progress.
// @Tags reports
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Report ID"
// @Param request body UpdateProgressRequest true "Progress"
// @Success 201 {object} utils.APIResponse{data=usecases.UpdateProgressResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /reports/{id}/progress [post]
func (h *WorkflowHandler) UpdateProgress(c *gin.Context) {
	actor, ra, id, err := reportTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateProgressUC.Execute(c.Request.Context(), req.ToCommand(actor.TenantID, id, ra))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Progress updated successfully")
}

// ListUpdates handles GET /reports/:id/updates
// @Summary List the progress history of a report
// @Tags reports
// @Produce json
// @Security Bearer
// @Param id path int true "Report ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.UpdateDTO}
// @Router /reports/{id}/updates [get]
func (h *WorkflowHandler) ListUpdates(c *gin.Context) {
	actor, ra, id, err := reportTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUpdatesUC.Execute(c.Request.Context(), usecases.ListReportUpdatesQuery{
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

// Assign handles POST /reports/:id/assign
// @Summary Assign a report
// @Tags reports
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Report ID"
// @Param request body AssignReportRequest true "Assignee"
// @Success 200 {object} utils.APIResponse{data=dto.ReportDTO}
// @Failure 403 {object} utils.APIResponse
// @Router /reports/{id}/assign [post]
func (h *WorkflowHandler) Assign(c *gin.Context) {
	actor, ra, id, err := reportTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignReportCommand{
		TenantID:   actor.TenantID,
		ReportID:   id,
		Actor:      ra,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report assigned successfully", result)
}

// Lock handles POST /reports/:id/lock
// @Summary Lock a report against edits
// @Tags reports
// @Produce json
// @Security Bearer
// @Param id path int true "Report ID"
// @Success 200 {object} utils.APIResponse{data=dto.ReportDTO}
// @Failure 403 {object} utils.APIResponse
// @Router /reports/{id}/lock [post]
func (h *WorkflowHandler) Lock(c *gin.Context) {
	h.setLock(c, true)
}

// Unlock handles POST /reports/:id/unlock
// @Summary Unlock a report
// @Tags reports
// @Produce json
// @Security Bearer
// @Param id path int true "Report ID"
// @Success 200 {object} utils.APIResponse{data=dto.ReportDTO}
// @Failure 403 {object} utils.APIResponse
// @Router /reports/{id}/unlock [post]
func (h *WorkflowHandler) Unlock(c *gin.Context) {
	h.setLock(c, false)
}

func (h *WorkflowHandler) setLock(c *gin.Context, locked bool) {
	actor, ra, id, err := reportTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setLockUC.Execute(c.Request.Context(), usecases.SetReportLockCommand{
		TenantID: actor.TenantID,
		ReportID: id,
		Actor:    ra,
		Locked:   locked,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UploadImage handles POST /reports/:id/images
// @Summary Add an image to the report gallery
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param id path int true "Report ID"
// @Param image formData file true "Image file (jpeg, png, gif or webp)"
// @Param caption formData string false "Caption"
// @Success 201 {object} utils.APIResponse{data=dto.ImageDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /reports/{id}/images [post]
func (h *WorkflowHandler) UploadImage(c *gin.Context) {
	actor, ra, id, err := reportTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("image file is required"))
		return
	}
	file, err := header.Open()
	if err != nil {
		h.logger.Warnw("failed to open uploaded image", "report_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("unreadable upload"))
		return
	}
	defer file.Close()

	result, err := h.uploadImageUC.Execute(c.Request.Context(), usecases.UploadReportImageCommand{
		TenantID: actor.TenantID,
		ReportID: id,
		Actor:    ra,
		FileName: header.Filename,
		Content:  file,
		Size:     header.Size,
		Caption:  c.PostForm("caption"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Image uploaded successfully")
}

// SetData handles PUT /reports/:id/data/:name
// @Summary Create or replace a custom field
// @Tags reports
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Report ID"
// @Param name path string true "Field name"
// @Param request body SetReportDataRequest true "Value"
// @Success 200 {object} utils.APIResponse{data=dto.DataDTO}
// @Router /reports/{id}/data/{name} [put]
func (h *WorkflowHandler) SetData(c *gin.Context) {
	actor, ra, id, err := reportTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetReportDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.setDataUC.Execute(c.Request.Context(), usecases.SetReportDataCommand{
		TenantID: actor.TenantID,
		ReportID: id,
		Actor:    ra,
		Name:     c.Param("name"),
		Value:    req.Value,
		DataType: req.DataType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteData handles DELETE /reports/:id/data/:name
// @Summary Remove a custom field
// @Tags reports
// @Security Bearer
// @Param id path int true "Report ID"
// @Param name path string true "Field name"
// @Success 204
// @Router /reports/{id}/data/{name} [delete]
func (h *WorkflowHandler) DeleteData(c *gin.Context) {
	actor, ra, id, err := reportTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteDataUC.Execute(c.Request.Context(), usecases.DeleteReportDataCommand{
		TenantID: actor.TenantID,
		ReportID: id,
		Actor:    ra,
		Name:     c.Param("name"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
