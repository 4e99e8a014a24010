package location

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/application/location/usecases"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

type MotorHandler struct {
	createUC usecases.CreateMotorExecutor
	updateUC usecases.UpdateMotorExecutor
	deleteUC usecases.DeleteExecutor
	getUC    usecases.GetMotorExecutor
	listUC   usecases.ListMotorsExecutor
	logger   logger.Interface
}

func NewMotorHandler(
	createUC usecases.CreateMotorExecutor,
	updateUC usecases.UpdateMotorExecutor,
	deleteUC usecases.DeleteExecutor,
	getUC usecases.GetMotorExecutor,
	listUC usecases.ListMotorsExecutor,
	logger logger.Interface,
) *MotorHandler {
	return &MotorHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// Create handles POST /motors
// @Summary Register a motor
// @Tags motors
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body MotorRequest true "Motor"
// @Success 201 {object} utils.APIResponse{data=dto.MotorDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /motors [post]
func (h *MotorHandler) Create(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MotorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	data, err := req.ToData()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateMotorCommand{
		TenantID: actor.TenantID,
		Data:     data,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Motor created successfully")
}

// List handles GET /motors
// @Summary List motors
// @Tags motors
// @Produce json
// @Security Bearer
// @Param local_id query int false "Local ID"
// @Param type query string false "Motor type"
// @Param status query string false "Operational status"
// @Param search query string false "Name, code or serial number"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /motors [get]
func (h *MotorHandler) List(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query, err := parseListQuery(c, actor.TenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get handles GET /motors/:id
// @Summary Get a motor
// @Tags motors
// @Produce json
// @Security Bearer
// @Param id path int true "Motor ID"
// @Success 200 {object} utils.APIResponse{data=dto.MotorDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /motors/{id} [get]
func (h *MotorHandler) Get(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseUintParam(c, "id", "motor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetQuery{TenantID: actor.TenantID, ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PUT /motors/:id
// @Summary Replace a motor
// @Tags motors
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Motor ID"
// @Param request body MotorRequest true "Motor"
// @Success 200 {object} utils.APIResponse{data=dto.MotorDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /motors/{id} [put]
func (h *MotorHandler) Update(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseUintParam(c, "id", "motor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MotorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	data, err := req.ToData()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateMotorCommand{
		TenantID: actor.TenantID,
		ID:       id,
		Data:     data,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Motor updated successfully", result)
}

// Delete handles DELETE /motors/:id
// @Summary Delete a motor
// @Tags motors
// @Security Bearer
// @Param id path int true "Motor ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /motors/{id} [delete]
func (h *MotorHandler) Delete(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseUintParam(c, "id", "motor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCommand{TenantID: actor.TenantID, ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
