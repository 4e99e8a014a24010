package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/application/report/usecases"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

type CategoryHandler struct {
	createUC usecases.CreateCategoryExecutor
	listUC   usecases.ListCategoriesExecutor
	logger   logger.Interface
}

func NewCategoryHandler(createUC usecases.CreateCategoryExecutor, listUC usecases.ListCategoriesExecutor, logger logger.Interface) *CategoryHandler {
	return &CategoryHandler{createUC: createUC, listUC: listUC, logger: logger}
}

// Create handles POST /categories
// @Summary Create a report category
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateCategoryRequest true "Category"
// @Success 201 {object} utils.APIResponse{data=dto.CategoryDTO}
// @Failure 403 {object} utils.APIResponse
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCategoryCommand{
		TenantID:    actor.TenantID,
		Staff:       actor.IsStaff(),
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// List handles GET /categories
// @Summary List report categories
// @Tags categories
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]dto.CategoryDTO}
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), actor.TenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
