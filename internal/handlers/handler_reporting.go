package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tablestack/resto_ledger_app/internal/core/ports/services"
	"github.com/tablestack/resto_ledger_app/internal/dto"
)

type reportingHandler struct {
	reportingSvc portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingSvc portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingSvc: reportingSvc}
}

// getTrialBalance godoc
// @Summary      Trial balance report
// @Description  Per-account debit and credit totals for the outlet. Totals are equal whenever every posted entry balanced.
// @Tags         reports
// @Produce      json
// @Param        outlet_id  path      string  true   "Outlet ID"
// @Param        asOf       query     string  false  "Report cutoff (RFC 3339), defaults to now"
// @Success      200        {object}  dto.TrialBalanceResponse
// @Failure      400        {object}  handlers.ErrorResponse
// @Failure      404        {object}  handlers.ErrorResponse
// @Router       /outlets/{outlet_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	outletID := c.Param("outlet_id")

	asOf := time.Now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "asOf must be RFC 3339"})
			return
		}
		asOf = parsed.UTC()
	}

	rows, err := h.reportingSvc.GetTrialBalance(c.Request.Context(), outletID, asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(outletID, asOf, rows))
}
