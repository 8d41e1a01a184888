package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inkdesk/internal/domain"
)

// @Summary Start an appointment wizard
// @Description Opens a draft on step 1 with artist and default location filled in
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} service.WizardState
// @Failure 401 {object} errorResponseBody
// @Router /wizards [post]
func (h *Handler) startWizard(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	state, err := h.services.Wizard.Start(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	createdResponse(c, state)
}

// @Summary Get a wizard
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} service.WizardState
// @Failure 404 {object} errorResponseBody
// @Router /wizards/{id} [get]
func (h *Handler) getWizard(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	state, err := h.services.Wizard.Get(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, state)
}

// @Summary Change draft fields
// @Description Only the fields present in the body change
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Param input body domain.DraftPatch true "Changed fields"
// @Success 200 {object} service.WizardState
// @Failure 404 {object} errorResponseBody
// @Failure 422 {object} errorResponseBody
// @Router /wizards/{id} [patch]
func (h *Handler) updateWizard(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var patch domain.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("invalid draft patch", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	state, err := h.services.Wizard.Update(c.Request.Context(), p, c.Param("id"), patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, state)
}

// @Summary Next step
// @Description Validates the current step. On the last step the appointment is created.
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} service.WizardState
// @Failure 422 {object} errorResponseBody
// @Failure 502 {object} errorResponseBody
// @Router /wizards/{id}/next [post]
func (h *Handler) nextStep(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	state, err := h.services.Wizard.Next(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusOK
	if state.Submitted {
		status = http.StatusCreated
	}
	successResponse(c, status, state)
}

// @Summary Previous step
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} service.WizardState
// @Router /wizards/{id}/back [post]
func (h *Handler) previousStep(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	state, err := h.services.Wizard.Back(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, state)
}

// @Summary Jump to a step
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Param step path int true "Step, 1-based"
// @Success 200 {object} service.WizardState
// @Failure 422 {object} errorResponseBody
// @Router /wizards/{id}/steps/{step} [post]
func (h *Handler) jumpToStep(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		badRequestResponse(c, "invalid step")
		return
	}

	state, err := h.services.Wizard.JumpTo(c.Request.Context(), p, c.Param("id"), step)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, state)
}

// @Summary Send a consent signature
// @Description Saves the signed consent form for the selected project
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Param input body domain.SignatureRequest true "Signature image as data URL"
// @Success 200 {object} service.WizardState
// @Failure 422 {object} errorResponseBody
// @Router /wizards/{id}/signature [post]
func (h *Handler) sendSignature(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.SignatureRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "signature is required")
		return
	}

	state, err := h.services.Wizard.SendSignature(c.Request.Context(), p, c.Param("id"), input.Signature)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, state)
}

// @Summary Discard a wizard
// @Tags Wizard
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Success 204
// @Failure 404 {object} errorResponseBody
// @Router /wizards/{id} [delete]
func (h *Handler) cancelWizard(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	if err := h.services.Wizard.Cancel(c.Request.Context(), p, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	noContentResponse(c)
}
