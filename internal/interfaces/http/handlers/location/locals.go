// Package location serves the Local, Equipamento and Motor endpoints.
package location

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/application/location/usecases"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

type LocalHandler struct {
	createUC usecases.CreateLocalExecutor
	updateUC usecases.UpdateLocalExecutor
	deleteUC usecases.DeleteExecutor
	getUC    usecases.GetLocalExecutor
	listUC   usecases.ListLocalsExecutor
	logger   logger.Interface
}

func NewLocalHandler(
	createUC usecases.CreateLocalExecutor,
	updateUC usecases.UpdateLocalExecutor,
	deleteUC usecases.DeleteExecutor,
	getUC usecases.GetLocalExecutor,
	listUC usecases.ListLocalsExecutor,
	logger logger.Interface,
) *LocalHandler {
	return &LocalHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// Create handles POST /locals
// @Summary Create a local
// @Tags locals
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body LocalRequest true "Local"
// @Success 201 {object} utils.APIResponse{data=dto.LocalDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /locals [post]
func (h *LocalHandler) Create(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req LocalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateLocalCommand{
		TenantID: actor.TenantID,
		Data:     req.ToData(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Local created successfully")
}

// List handles GET /locals
// @Summary List locals
// @Tags locals
// @Produce json
// @Security Bearer
// @Param type query string false "Local type"
// @Param status query string false "Local status"
// @Param search query string false "Name, code or city"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /locals [get]
func (h *LocalHandler) List(c *gin.Context) {
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

// Get handles GET /locals/:id
// @Summary Get a local with its equipment summary
// @Tags locals
// @Produce json
// @Security Bearer
// @Param id path int true "Local ID"
// @Success 200 {object} utils.APIResponse{data=dto.LocalDetailDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /locals/{id} [get]
func (h *LocalHandler) Get(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseUintParam(c, "id", "local")
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

// Update handles PUT /locals/:id
// @Summary Replace a local
// @Tags locals
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Local ID"
// @Param request body LocalRequest true "Local"
// @Success 200 {object} utils.APIResponse{data=dto.LocalDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /locals/{id} [put]
func (h *LocalHandler) Update(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseUintParam(c, "id", "local")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req LocalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateLocalCommand{
		TenantID: actor.TenantID,
		ID:       id,
		Data:     req.ToData(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Local updated successfully", result)
}

// Delete handles DELETE /locals/:id
// @Summary Delete a local with its equipment and motors
// @Tags locals
// @Security Bearer
// @Param id path int true "Local ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /locals/{id} [delete]
func (h *LocalHandler) Delete(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseUintParam(c, "id", "local")
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
