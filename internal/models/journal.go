package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database representation of an immutable journal entry.
// There is deliberately no update path for this table.
type JournalEntry struct {
	EntryID       string    `db:"entry_id"`
	OutletID      string    `db:"outlet_id"`
	EntryDate     time.Time `db:"entry_date"`
	Description   string    `db:"description"`
	ReferenceID   string    `db:"reference_id"`
	ReferenceType string    `db:"reference_type"`
	CreatedAt     time.Time `db:"created_at"`
}

// JournalLine is the database representation of one line of a journal entry.
type JournalLine struct {
	LineID         string          `db:"line_id"`
	EntryID        string          `db:"entry_id"`
	AccountID      string          `db:"account_id"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	Description    string          `db:"description"`
	RunningBalance decimal.Decimal `db:"running_balance"`
	CreatedAt      time.Time       `db:"created_at"`
}
