package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
)

// CreateAccountRequest is the payload for creating a ledger account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	Code        string             `json:"code" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Description string             `json:"description"`
}

// UpdateAccountRequest is the payload for updating mutable account attributes.
// Balances and account types are never updated directly.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
}

// ListAccountsParams carries query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// AccountResponse is a ledger account as returned by the API.
type AccountResponse struct {
	AccountID   string             `json:"accountId"`
	OutletID    string             `json:"outletId"`
	Name        string             `json:"name"`
	Code        string             `json:"code"`
	AccountType domain.AccountType `json:"accountType"`
	Description string             `json:"description,omitempty"`
	IsSystem    bool               `json:"isSystem"`
	IsActive    bool               `json:"isActive"`
	Balance     decimal.Decimal    `json:"balance"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ListAccountsResponse is one page of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain account.
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		OutletID:    a.OutletID,
		Name:        a.Name,
		Code:        a.Code,
		AccountType: a.AccountType,
		Description: a.Description,
		IsSystem:    a.IsSystem,
		IsActive:    a.IsActive,
		Balance:     a.Balance,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(as []domain.Account) []AccountResponse {
	rs := make([]AccountResponse, len(as))
	for i, a := range as {
		rs[i] = ToAccountResponse(a)
	}
	return rs
}
