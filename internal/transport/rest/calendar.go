package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inkdesk/internal/calendar"
	"inkdesk/internal/service"
)

// @Summary Month calendar
// @Description Appointments of the month grid around month, with per-day markers
// @Tags Calendar
// @Produce json
// @Security ApiKeyAuth
// @Param month query string false "Any day of the month, YYYY-MM-DD. Defaults to today."
// @Param focused query string false "Day to highlight, YYYY-MM-DD"
// @Param theme query string false "light or dark"
// @Param refresh query bool false "Fetch again even when the grid did not move"
// @Success 200 {object} domain.CalendarMonth
// @Failure 400 {object} errorResponseBody
// @Router /calendar [get]
func (h *Handler) getCalendar(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	loc, err := time.LoadLocation(h.config.Studio.TimeZone)
	if err != nil {
		loc = time.UTC
	}

	anchor := time.Now().In(loc)
	if month := c.Query("month"); month != "" {
		anchor, err = calendar.ParseDay(month, loc)
		if err != nil {
			badRequestResponse(c, "month must be YYYY-MM-DD")
			return
		}
	}

	focused := c.Query("focused")
	if focused != "" {
		if _, err := calendar.ParseDay(focused, loc); err != nil {
			badRequestResponse(c, "focused must be YYYY-MM-DD")
			return
		}
	}

	refresh := c.Query("refresh")

	month, err := h.services.Calendar.Month(c.Request.Context(), p, service.MonthQuery{
		Anchor:  anchor,
		Focused: focused,
		Theme:   c.DefaultQuery("theme", calendar.Light.Name),
		Refresh: refresh == "1" || refresh == "true",
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, month)
}
