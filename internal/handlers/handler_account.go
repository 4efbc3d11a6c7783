package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tablestack/resto_ledger_app/internal/core/ports/services"
	"github.com/tablestack/resto_ledger_app/internal/dto"
)

type accountHandler struct {
	accountSvc portssvc.AccountSvcFacade
}

func newAccountHandler(accountSvc portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountSvc: accountSvc}
}

// createAccount godoc
// @Summary      Create a ledger account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        outlet_id  path      string                   true  "Outlet ID"
// @Param        account    body      dto.CreateAccountRequest true  "Account to create"
// @Success      201        {object}  dto.AccountResponse
// @Failure      400        {object}  handlers.ErrorResponse
// @Failure      409        {object}  handlers.ErrorResponse
// @Router       /outlets/{outlet_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	outletID := c.Param("outlet_id")

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	account, err := h.accountSvc.CreateAccount(c.Request.Context(), outletID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary      Get a ledger account
// @Tags         accounts
// @Produce      json
// @Param        outlet_id   path      string  true  "Outlet ID"
// @Param        account_id  path      string  true  "Account ID"
// @Success      200         {object}  dto.AccountResponse
// @Failure      404         {object}  handlers.ErrorResponse
// @Router       /outlets/{outlet_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	outletID := c.Param("outlet_id")
	accountID := c.Param("account_id")

	account, err := h.accountSvc.GetAccount(c.Request.Context(), outletID, accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary      List ledger accounts
// @Tags         accounts
// @Produce      json
// @Param        outlet_id  path      string  true   "Outlet ID"
// @Param        limit      query     int     false  "Page size"
// @Param        offset     query     int     false  "Page offset"
// @Success      200        {object}  dto.ListAccountsResponse
// @Router       /outlets/{outlet_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	outletID := c.Param("outlet_id")

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	accounts, err := h.accountSvc.ListAccounts(c.Request.Context(), outletID, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToAccountResponses(accounts)})
}

// updateAccount godoc
// @Summary      Update a ledger account
// @Description  Updates name, code and description. Balances and account types never change through this endpoint.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        outlet_id   path      string                   true  "Outlet ID"
// @Param        account_id  path      string                   true  "Account ID"
// @Param        account     body      dto.UpdateAccountRequest true  "Fields to update"
// @Success      200         {object}  dto.AccountResponse
// @Failure      404         {object}  handlers.ErrorResponse
// @Router       /outlets/{outlet_id}/accounts/{account_id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	outletID := c.Param("outlet_id")
	accountID := c.Param("account_id")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	account, err := h.accountSvc.UpdateAccount(c.Request.Context(), outletID, accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary      Deactivate a ledger account
// @Description  Marks the account inactive. Accounts are never hard deleted and system accounts cannot be deactivated.
// @Tags         accounts
// @Param        outlet_id   path  string  true  "Outlet ID"
// @Param        account_id  path  string  true  "Account ID"
// @Success      204
// @Failure      400  {object}  handlers.ErrorResponse
// @Failure      404  {object}  handlers.ErrorResponse
// @Router       /outlets/{outlet_id}/accounts/{account_id} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	outletID := c.Param("outlet_id")
	accountID := c.Param("account_id")

	if err := h.accountSvc.DeactivateAccount(c.Request.Context(), outletID, accountID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
