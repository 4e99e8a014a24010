package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/application/user/usecases"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

type Handler struct {
	createUserUC     usecases.CreateUserExecutor
	updateUserUC     usecases.UpdateUserExecutor
	getUserUC        usecases.GetUserExecutor
	listUsersUC      usecases.ListUsersExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	logger           logger.Interface
}

func NewHandler(
	createUserUC usecases.CreateUserExecutor,
	updateUserUC usecases.UpdateUserExecutor,
	getUserUC usecases.GetUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUserUC:     createUserUC,
		updateUserUC:     updateUserUC,
		getUserUC:        getUserUC,
		listUsersUC:      listUsersUC,
		changePasswordUC: changePasswordUC,
		logger:           logger,
	}
}

// Create handles POST /users
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateUserRequest true "User data"
// @Success 201 {object} utils.APIResponse{data=dto.UserDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /users [post]
func (h *Handler) Create(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// List handles GET /users
// @Summary List users
// @Tags users
// @Produce json
// @Security Bearer
// @Param role query string false "Role"
// @Param is_active query bool false "Active flag"
// @Param is_manager query bool false "Manager flag"
// @Param search query string false "Search over username, e-mail and name"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	isActive, err := utils.ParseBoolQuery(c, "is_active")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	isManager, err := utils.ParseBoolQuery(c, "is_manager")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		TenantID:  actor.TenantID,
		Role:      c.Query("role"),
		IsActive:  isActive,
		IsManager: isManager,
		Search:    c.Query("search"),
		Page:      p.Page,
		PageSize:  p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

// Get handles GET /users/:id
// @Summary Get a user
// @Tags users
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse{data=dto.UserDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{TenantID: actor.TenantID, UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PATCH /users/:id
// @Summary Update a user
// @Description Admins may change any field. Other callers may only change their own profile fields.
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.UserDTO}
// @Failure 403 {object} utils.APIResponse
// @Router /users/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), req.ToCommand(actor, userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// UpdateProfile handles PATCH /profile
// @Summary Update the caller's own profile
// @Tags profile
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.UserDTO}
// @Router /profile [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), req.ToCommand(actor, actor.UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}

// ChangePassword handles POST /profile/password
// @Summary Change the caller's password
// @Tags profile
// @Accept json
// @Security Bearer
// @Param request body ChangePasswordRequest true "Old and new password"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /profile/password [post]
func (h *Handler) ChangePassword(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	err = h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		TenantID:    actor.TenantID,
		UserID:      actor.UserID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
