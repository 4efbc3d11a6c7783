package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType at the storage layer.
type AccountType string

// Account is the database representation of a ledger account.
type Account struct {
	AccountID   string          `db:"account_id"`
	OutletID    string          `db:"outlet_id"`
	Name        string          `db:"name"`
	Code        string          `db:"code"`
	AccountType AccountType     `db:"account_type"`
	Description string          `db:"description"`
	IsSystem    bool            `db:"is_system"`
	IsActive    bool            `db:"is_active"`
	Balance     decimal.Decimal `db:"balance"`
	AuditFields
}
