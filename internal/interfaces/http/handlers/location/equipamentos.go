package location

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/application/location/usecases"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

type EquipamentoHandler struct {
	createUC usecases.CreateEquipamentoExecutor
	updateUC usecases.UpdateEquipamentoExecutor
	deleteUC usecases.DeleteExecutor
	getUC    usecases.GetEquipamentoExecutor
	listUC   usecases.ListEquipamentosExecutor
	logger   logger.Interface
}

func NewEquipamentoHandler(
	createUC usecases.CreateEquipamentoExecutor,
	updateUC usecases.UpdateEquipamentoExecutor,
	deleteUC usecases.DeleteExecutor,
	getUC usecases.GetEquipamentoExecutor,
	listUC usecases.ListEquipamentosExecutor,
	logger logger.Interface,
) *EquipamentoHandler {
	return &EquipamentoHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// Create handles POST /equipamentos
// @Summary Register equipment
// @Tags equipamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body EquipamentoRequest true "Equipamento"
// @Success 201 {object} utils.APIResponse{data=dto.EquipamentoDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /equipamentos [post]
func (h *EquipamentoHandler) Create(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EquipamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	data, err := req.ToData()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateEquipamentoCommand{
		TenantID: actor.TenantID,
		Data:     data,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Equipamento created successfully")
}

// List handles GET /equipamentos
// @Summary List equipment
// @Tags equipamentos
// @Produce json
// @Security Bearer
// @Param local_id query int false "Local ID"
// @Param type query string false "Equipment type"
// @Param status query string false "Operational status"
// @Param search query string false "Name, code or serial number"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /equipamentos [get]
func (h *EquipamentoHandler) List(c *gin.Context) {
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

// Get handles GET /equipamentos/:id
// @Summary Get an equipamento
// @Tags equipamentos
// @Produce json
// @Security Bearer
// @Param id path int true "Equipamento ID"
// @Success 200 {object} utils.APIResponse{data=dto.EquipamentoDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /equipamentos/{id} [get]
func (h *EquipamentoHandler) Get(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseUintParam(c, "id", "equipamento")
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

// Update handles PUT /equipamentos/:id
// @Summary Replace an equipamento
// @Tags equipamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Equipamento ID"
// @Param request body EquipamentoRequest true "Equipamento"
// @Success 200 {object} utils.APIResponse{data=dto.EquipamentoDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /equipamentos/{id} [put]
func (h *EquipamentoHandler) Update(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseUintParam(c, "id", "equipamento")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EquipamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	data, err := req.ToData()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateEquipamentoCommand{
		TenantID: actor.TenantID,
		ID:       id,
		Data:     data,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Equipamento updated successfully", result)
}

// Delete handles DELETE /equipamentos/:id
// @Summary Delete an equipamento
// @Tags equipamentos
// @Security Bearer
// @Param id path int true "Equipamento ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /equipamentos/{id} [delete]
func (h *EquipamentoHandler) Delete(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseUintParam(c, "id", "equipamento")
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
