package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/application/user/usecases"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

type Handler struct {
	loginUC          usecases.LoginExecutor
	refreshTokenUC   usecases.RefreshTokenExecutor
	getUserUC        usecases.GetUserExecutor
	googleLoginUC    usecases.InitiateGoogleLoginExecutor
	googleCallbackUC usecases.HandleGoogleCallbackExecutor
	logger           logger.Interface
}

// NewHandler builds the auth handler. The Google executors may be nil when
// OAuth is not configured.
func NewHandler(
	loginUC usecases.LoginExecutor,
	refreshTokenUC usecases.RefreshTokenExecutor,
	getUserUC usecases.GetUserExecutor,
	googleLoginUC usecases.InitiateGoogleLoginExecutor,
	googleCallbackUC usecases.HandleGoogleCallbackExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		loginUC:          loginUC,
		refreshTokenUC:   refreshTokenUC,
		getUserUC:        getUserUC,
		googleLoginUC:    googleLoginUC,
		googleCallbackUC: googleCallbackUC,
		logger:           logger,
	}
}

// GoogleEnabled reports whether the Google sign-in routes can be served.
func (h *Handler) GoogleEnabled() bool {
	return h.googleLoginUC != nil && h.googleCallbackUC != nil
}

// Login handles POST /auth/login
// @Summary Sign in with username or e-mail
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=dto.AuthResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.logger.Warnw("login failed", "error", err, "ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

// RefreshToken handles POST /auth/refresh
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} utils.APIResponse{data=dto.AuthResult}
// @Failure 401 {object} utils.APIResponse
// @Router /auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.refreshTokenUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{RefreshToken: req.RefreshToken})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", result)
}

// Me handles GET /auth/me
// @Summary Current user
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=dto.UserDTO}
// @Failure 401 {object} utils.APIResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{TenantID: actor.TenantID, UserID: actor.UserID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GoogleLogin handles GET /auth/google
// @Summary Start Google sign-in
// @Tags auth
// @Produce json
// @Param redirect query bool false "Redirect to Google instead of returning the URL"
// @Success 200 {object} utils.APIResponse{data=GoogleLoginResponse}
// @Success 307
// @Router /auth/google [get]
func (h *Handler) GoogleLogin(c *gin.Context) {
	if h.googleLoginUC == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("google sign-in is not configured"))
		return
	}

	authURL, err := h.googleLoginUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("google sign-in initiation failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if c.Query("redirect") == "true" {
		c.Redirect(http.StatusTemporaryRedirect, authURL)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", GoogleLoginResponse{AuthURL: authURL})
}

// GoogleCallback handles GET /auth/google/callback
// @Summary Finish Google sign-in
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State"
// @Success 200 {object} utils.APIResponse{data=dto.AuthResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/google/callback [get]
func (h *Handler) GoogleCallback(c *gin.Context) {
	if h.googleCallbackUC == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("google sign-in is not configured"))
		return
	}

	if providerErr := c.Query("error"); providerErr != "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("google sign-in was cancelled", providerErr))
		return
	}

	code, state := c.Query("code"), c.Query("state")
	if code == "" || state == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("code and state are required"))
		return
	}

	result, err := h.googleCallbackUC.Execute(c.Request.Context(), usecases.GoogleCallbackCommand{Code: code, State: state})
	if err != nil {
		h.logger.Warnw("google sign-in failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}
