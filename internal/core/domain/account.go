package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents a financial account within an outlet's ledger.
// Balance is the running sum of all posted line effects; it is only ever
// mutated by the posting path.
type Account struct {
	AccountID   string          `json:"accountID"`   // Primary Key (UUID)
	OutletID    string          `json:"outletID"`    // FK -> outlets.outlet_id (NON-NULL)
	Name        string          `json:"name"`        // Unique per outlet
	Code        string          `json:"code"`        // Optional chart-of-accounts code
	AccountType AccountType     `json:"accountType"` // ASSET, LIABILITY, etc.
	Description string          `json:"description"`
	IsSystem    bool            `json:"isSystem"` // Seeded default account, cannot be deactivated
	IsActive    bool            `json:"isActive"`
	Balance     decimal.Decimal `json:"balance"`
	AuditFields
}

// AccountRef identifies an account either by its id or by its exact name
// within an outlet. Exactly one of the two is set; refs are resolved into a
// concrete account id before any persistence happens.
type AccountRef struct {
	id   string
	name string
}

// AccountByID builds a reference to an account by its id.
func AccountByID(id string) AccountRef {
	return AccountRef{id: id}
}

// AccountByName builds a reference to an account by its exact name.
func AccountByName(name string) AccountRef {
	return AccountRef{name: name}
}

// ID returns the referenced account id, if this is an id reference.
func (r AccountRef) ID() (string, bool) {
	return r.id, r.id != ""
}

// Name returns the referenced account name, if this is a name reference.
func (r AccountRef) Name() (string, bool) {
	return r.name, r.id == "" && r.name != ""
}

// IsZero reports whether the reference carries neither an id nor a name.
func (r AccountRef) IsZero() bool {
	return r.id == "" && r.name == ""
}

// String renders the reference for error messages.
func (r AccountRef) String() string {
	if r.id != "" {
		return "id:" + r.id
	}
	return "name:" + r.name
}
