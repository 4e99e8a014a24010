package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/application/user/usecases"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

// OrganizationHandler serves units and sectors.
type OrganizationHandler struct {
	createUnitUC   usecases.CreateUnitExecutor
	listUnitsUC    usecases.ListUnitsExecutor
	createSectorUC usecases.CreateSectorExecutor
	listSectorsUC  usecases.ListSectorsExecutor
	logger         logger.Interface
}

func NewOrganizationHandler(
	createUnitUC usecases.CreateUnitExecutor,
	listUnitsUC usecases.ListUnitsExecutor,
	createSectorUC usecases.CreateSectorExecutor,
	listSectorsUC usecases.ListSectorsExecutor,
	logger logger.Interface,
) *OrganizationHandler {
	return &OrganizationHandler{
		createUnitUC:   createUnitUC,
		listUnitsUC:    listUnitsUC,
		createSectorUC: createSectorUC,
		listSectorsUC:  listSectorsUC,
		logger:         logger,
	}
}

// CreateUnit handles POST /organization/units
// @Summary Create a unit
// @Tags organization
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateUnitRequest true "Unit"
// @Success 201 {object} utils.APIResponse{data=dto.UnitDTO}
// @Failure 409 {object} utils.APIResponse
// @Router /organization/units [post]
func (h *OrganizationHandler) CreateUnit(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUnitUC.Execute(c.Request.Context(), usecases.CreateUnitCommand{
		TenantID:    actor.TenantID,
		ActorRole:   actor.Role,
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Unit created successfully")
}

// ListUnits handles GET /organization/units
// @Summary List units
// @Tags organization
// @Produce json
// @Security Bearer
// @Param active query bool false "Only active units"
// @Success 200 {object} utils.APIResponse{data=[]dto.UnitDTO}
// @Router /organization/units [get]
func (h *OrganizationHandler) ListUnits(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	active, err := utils.ParseBoolQuery(c, "active")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUnitsUC.Execute(c.Request.Context(), actor.TenantID, active != nil && *active)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateSector handles POST /organization/sectors
// @Summary Create a sector
// @Tags organization
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateSectorRequest true "Sector"
// @Success 201 {object} utils.APIResponse{data=dto.SectorDTO}
// @Router /organization/sectors [post]
func (h *OrganizationHandler) CreateSector(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateSectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createSectorUC.Execute(c.Request.Context(), usecases.CreateSectorCommand{
		TenantID:  actor.TenantID,
		ActorRole: actor.Role,
		Code:      req.Code,
		Name:      req.Name,
		UnitID:    req.UnitID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Sector created successfully")
}

// ListSectors handles GET /organization/sectors
// @Summary List sectors
// @Tags organization
// @Produce json
// @Security Bearer
// @Param unit_id query int false "Unit"
// @Success 200 {object} utils.APIResponse{data=[]dto.SectorDTO}
// @Router /organization/sectors [get]
func (h *OrganizationHandler) ListSectors(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	unitID, err := utils.ParseUintQuery(c, "unit_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listSectorsUC.Execute(c.Request.Context(), actor.TenantID, unitID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
