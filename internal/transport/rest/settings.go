package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inkdesk/internal/domain"
)

// @Summary General settings
// @Tags Settings
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} domain.OrganisationSettings
// @Failure 409 {object} errorResponseBody
// @Router /settings/organisation [get]
func (h *Handler) getOrganisationSettings(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	form, err := h.services.Settings.Current(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, form)
}

// @Summary Save general settings
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body domain.OrganisationSettings true "Settings form"
// @Success 200 {object} successResponseBody
// @Failure 400 {object} errorResponseBody
// @Failure 422 {object} errorResponseBody
// @Router /settings/organisation [patch]
func (h *Handler) updateOrganisationSettings(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var form domain.OrganisationSettings
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid settings form", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Settings.Update(c.Request.Context(), p, form); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponseBody{Status: "success", Message: "settings saved"})
}
