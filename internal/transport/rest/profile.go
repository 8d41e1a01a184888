package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Current user
// @Tags Profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} domain.UserProfile
// @Failure 401 {object} errorResponseBody
// @Failure 502 {object} errorResponseBody
// @Router /me [get]
func (h *Handler) getMe(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	profile, err := h.services.Profile.Me(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, profile)
}

// @Summary Studio locations
// @Tags Profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} domain.Location
// @Failure 401 {object} errorResponseBody
// @Router /locations [get]
func (h *Handler) getLocations(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	locations, err := h.services.Profile.Locations(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, locations)
}
