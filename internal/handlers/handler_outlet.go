package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tablestack/resto_ledger_app/internal/core/ports/services"
	"github.com/tablestack/resto_ledger_app/internal/dto"
)

type outletHandler struct {
	outletSvc portssvc.OutletSvcFacade
}

func newOutletHandler(outletSvc portssvc.OutletSvcFacade) *outletHandler {
	return &outletHandler{outletSvc: outletSvc}
}

// createOutlet godoc
// @Summary      Register an outlet
// @Description  Creates the outlet and seeds its default chart of accounts.
// @Tags         outlets
// @Accept       json
// @Produce      json
// @Param        outlet  body      dto.CreateOutletRequest  true  "Outlet to create"
// @Success      201     {object}  dto.OutletResponse
// @Failure      400     {object}  handlers.ErrorResponse
// @Router       /outlets [post]
func (h *outletHandler) createOutlet(c *gin.Context) {
	var req dto.CreateOutletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	outlet, err := h.outletSvc.CreateOutlet(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOutletResponse(outlet))
}

// getOutlet godoc
// @Summary      Get an outlet
// @Tags         outlets
// @Produce      json
// @Param        outlet_id  path      string  true  "Outlet ID"
// @Success      200        {object}  dto.OutletResponse
// @Failure      404        {object}  handlers.ErrorResponse
// @Router       /outlets/{outlet_id} [get]
func (h *outletHandler) getOutlet(c *gin.Context) {
	outlet, err := h.outletSvc.GetOutlet(c.Request.Context(), c.Param("outlet_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOutletResponse(outlet))
}

// listOutlets godoc
// @Summary      List outlets
// @Tags         outlets
// @Produce      json
// @Param        limit   query     int  false  "Page size"
// @Param        offset  query     int  false  "Page offset"
// @Success      200     {object}  dto.ListOutletsResponse
// @Router       /outlets [get]
func (h *outletHandler) listOutlets(c *gin.Context) {
	var params dto.ListOutletsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	outlets, err := h.outletSvc.ListOutlets(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListOutletsResponse{Outlets: dto.ToOutletResponses(outlets)})
}

// deactivateOutlet godoc
// @Summary      Deactivate an outlet
// @Description  Marks the outlet inactive. Outlets are never hard deleted.
// @Tags         outlets
// @Param        outlet_id  path  string  true  "Outlet ID"
// @Success      204
// @Failure      404  {object}  handlers.ErrorResponse
// @Router       /outlets/{outlet_id} [delete]
func (h *outletHandler) deactivateOutlet(c *gin.Context) {
	if err := h.outletSvc.DeactivateOutlet(c.Request.Context(), c.Param("outlet_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
