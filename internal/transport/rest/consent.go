package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Archived consent forms
// @Tags Consent
// @Produce json
// @Security ApiKeyAuth
// @Param customer_id query int true "Customer ID"
// @Param project_id query int true "Project ID"
// @Success 200 {array} domain.ConsentDocument
// @Failure 400 {object} errorResponseBody
// @Router /consent/documents [get]
func (h *Handler) getConsentDocuments(c *gin.Context) {
	if _, err := getPrincipal(c); err != nil {
		unauthorizedResponse(c)
		return
	}

	customerID, err := strconv.ParseInt(c.Query("customer_id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid customer_id")
		return
	}
	projectID, err := strconv.ParseInt(c.Query("project_id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid project_id")
		return
	}

	docs, err := h.services.Consent.List(c.Request.Context(), customerID, projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, docs)
}
