package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inkdesk/internal/domain"
)

// @Summary Sign in
// @Description Signs in against the studio API and opens a session holding its api key
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.Tokens
// @Failure 400 {object} errorResponseBody
// @Failure 401 {object} errorResponseBody
// @Failure 422 {object} errorResponseBody
// @Failure 502 {object} errorResponseBody
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input domain.LoginRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid login body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	tokens, err := h.services.Auth.Login(c.Request.Context(), input, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body domain.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} domain.Tokens
// @Failure 400 {object} errorResponseBody
// @Failure 401 {object} errorResponseBody
// @Router /auth/refresh [post]
func (h *Handler) refreshTokens(c *gin.Context) {
	var input domain.RefreshTokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid refresh body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	tokens, err := h.services.Auth.RefreshTokens(c.Request.Context(), input.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Sign out
// @Description Ends the session and forgets the stored api key
// @Tags Auth
// @Accept json
// @Param input body domain.RefreshTokenRequest true "Refresh token"
// @Success 204
// @Failure 400 {object} errorResponseBody
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	var input domain.RefreshTokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid logout body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Auth.Logout(c.Request.Context(), input.RefreshToken); err != nil {
		h.handleError(c, err)
		return
	}

	noContentResponse(c)
}

// @Summary Sign out everywhere
// @Tags Auth
// @Security ApiKeyAuth
// @Success 204
// @Failure 401 {object} errorResponseBody
// @Router /auth/logout-all [post]
func (h *Handler) logoutAll(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	if err := h.services.Auth.LogoutAll(c.Request.Context(), p.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	noContentResponse(c)
}
