package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	portssvc "github.com/tablestack/resto_ledger_app/internal/core/ports/services"
	"github.com/tablestack/resto_ledger_app/internal/dto"
)

var entriesPostedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_entries_posted_total",
		Help: "Total number of journal entries posted, by result.",
	},
	[]string{"result"},
)

type journalHandler struct {
	ledgerSvc portssvc.LedgerSvcFacade
}

func newJournalHandler(ledgerSvc portssvc.LedgerSvcFacade) *journalHandler {
	return &journalHandler{ledgerSvc: ledgerSvc}
}

// postEntry godoc
// @Summary      Post a journal entry
// @Description  Validates and atomically persists a balanced journal entry, updating every referenced account balance.
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        outlet_id  path      string               true  "Outlet ID"
// @Param        entry      body      dto.PostEntryRequest true  "Entry to post"
// @Success      201        {object}  dto.EntryResponse
// @Failure      400        {object}  handlers.ErrorResponse
// @Failure      404        {object}  handlers.ErrorResponse
// @Failure      500        {object}  handlers.ErrorResponse
// @Router       /outlets/{outlet_id}/entries [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	outletID := c.Param("outlet_id")

	var req dto.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entry, err := h.ledgerSvc.PostEntry(c.Request.Context(), outletID, req)
	if err != nil {
		entriesPostedTotal.WithLabelValues("rejected").Inc()
		respondError(c, err)
		return
	}
	entriesPostedTotal.WithLabelValues("posted").Inc()
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary      Get a journal entry
// @Description  Fetches a single entry with its lines.
// @Tags         entries
// @Produce      json
// @Param        outlet_id  path      string  true  "Outlet ID"
// @Param        entry_id   path      string  true  "Entry ID"
// @Success      200        {object}  dto.EntryResponse
// @Failure      404        {object}  handlers.ErrorResponse
// @Router       /outlets/{outlet_id}/entries/{entry_id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	outletID := c.Param("outlet_id")
	entryID := c.Param("entry_id")

	entry, err := h.ledgerSvc.GetEntry(c.Request.Context(), outletID, entryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary      List journal entries
// @Description  Returns one page of entries for the outlet, newest first.
// @Tags         entries
// @Produce      json
// @Param        outlet_id  path      string  true   "Outlet ID"
// @Param        limit      query     int     false  "Page size"
// @Param        nextToken  query     string  false  "Pagination token"
// @Success      200        {object}  dto.ListEntriesResponse
// @Failure      400        {object}  handlers.ErrorResponse
// @Router       /outlets/{outlet_id}/entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	outletID := c.Param("outlet_id")

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entries, nextToken, err := h.ledgerSvc.ListEntries(c.Request.Context(), outletID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListEntriesResponse{
		Entries:   make([]dto.EntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i, entry := range entries {
		resp.Entries[i] = dto.ToEntryResponse(entry)
	}
	c.JSON(http.StatusOK, resp)
}

// listAccountLines godoc
// @Summary      List journal lines for an account
// @Description  Returns one page of lines touching the account, newest first, with running balances.
// @Tags         entries
// @Produce      json
// @Param        outlet_id   path      string  true   "Outlet ID"
// @Param        account_id  path      string  true   "Account ID"
// @Param        limit       query     int     false  "Page size"
// @Param        nextToken   query     string  false  "Pagination token"
// @Success      200         {object}  dto.ListAccountLinesResponse
// @Failure      404         {object}  handlers.ErrorResponse
// @Router       /outlets/{outlet_id}/accounts/{account_id}/lines [get]
func (h *journalHandler) listAccountLines(c *gin.Context) {
	outletID := c.Param("outlet_id")
	accountID := c.Param("account_id")

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	lines, nextToken, err := h.ledgerSvc.ListLinesByAccount(c.Request.Context(), outletID, accountID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountLinesResponse{
		AccountID: accountID,
		Lines:     dto.ToEntryLineResponses(lines),
		NextToken: nextToken,
	})
}

// reverseEntry godoc
// @Summary      Reverse a journal entry
// @Description  Posts a compensating entry that negates the original. The original entry is left untouched.
// @Tags         entries
// @Produce      json
// @Param        outlet_id  path      string  true  "Outlet ID"
// @Param        entry_id   path      string  true  "Entry ID"
// @Success      201        {object}  dto.EntryResponse
// @Failure      404        {object}  handlers.ErrorResponse
// @Router       /outlets/{outlet_id}/entries/{entry_id}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	outletID := c.Param("outlet_id")
	entryID := c.Param("entry_id")

	entry, err := h.ledgerSvc.ReverseEntry(c.Request.Context(), outletID, entryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}
