package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceTypeReversal marks entries that compensate a previously posted entry.
const ReferenceTypeReversal = "reversal"

// JournalEntry is an immutable record of one balanced financial event,
// composed of at least two lines. Once created there is no update or delete
// path; corrections are posted as compensating entries.
type JournalEntry struct {
	EntryID       string        `json:"entryID"`  // Primary Key (UUID)
	OutletID      string        `json:"outletID"` // FK -> outlets.outlet_id (NON-NULL)
	EntryDate     time.Time     `json:"entryDate"`
	Description   string        `json:"description"`
	ReferenceID   string        `json:"referenceID,omitempty"`   // Originating business object, e.g. an order id
	ReferenceType string        `json:"referenceType,omitempty"` // e.g. "order", "payment", "reversal"
	CreatedAt     time.Time     `json:"createdAt"`
	Lines         []JournalLine `json:"lines,omitempty"` // Loaded on demand
}

// JournalLine is one debit/credit component of a journal entry, tied to one
// account. Both sides are non-negative; the posting algorithm enforces only
// the aggregate debit/credit balance, not per-line exclusivity.
type JournalLine struct {
	LineID         string          `json:"lineID"`  // Primary Key (UUID)
	EntryID        string          `json:"entryID"` // FK -> journal_entries.entry_id (Not Null)
	AccountID      string          `json:"accountID"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Description    string          `json:"description"`    // Inherits the entry description unless overridden
	RunningBalance decimal.Decimal `json:"runningBalance"` // Account balance after this line
	CreatedAt      time.Time       `json:"createdAt"`
}
