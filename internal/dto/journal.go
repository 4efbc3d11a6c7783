package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
)

// EntryLineRequest is one line of a posting request. The account is referenced
// either by AccountID or by exact AccountName within the outlet, not both.
type EntryLineRequest struct {
	AccountID   string          `json:"accountId"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// AccountRef builds the domain account reference for this line. The id takes
// precedence when both fields are set.
func (r EntryLineRequest) AccountRef() domain.AccountRef {
	if r.AccountID != "" {
		return domain.AccountByID(r.AccountID)
	}
	if r.AccountName != "" {
		return domain.AccountByName(r.AccountName)
	}
	return domain.AccountRef{}
}

// PostEntryRequest is the payload for posting a journal entry.
type PostEntryRequest struct {
	Description   string             `json:"description" binding:"required"`
	Date          *time.Time         `json:"date"`
	ReferenceID   string             `json:"referenceId"`
	ReferenceType string             `json:"referenceType"`
	Lines         []EntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// EntryLineResponse is one persisted journal line.
type EntryLineResponse struct {
	LineID         string          `json:"lineId"`
	EntryID        string          `json:"entryId"`
	AccountID      string          `json:"accountId"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Description    string          `json:"description"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// EntryResponse is a persisted journal entry with its lines.
type EntryResponse struct {
	EntryID       string              `json:"entryId"`
	OutletID      string              `json:"outletId"`
	Date          time.Time           `json:"date"`
	Description   string              `json:"description"`
	ReferenceID   string              `json:"referenceId,omitempty"`
	ReferenceType string              `json:"referenceType,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	Lines         []EntryLineResponse `json:"lines,omitempty"`
}

// ListEntriesParams carries query parameters for listing entries.
type ListEntriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse is one page of journal entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ListAccountLinesResponse is one page of journal lines for a single account.
type ListAccountLinesResponse struct {
	AccountID string              `json:"accountId"`
	Lines     []EntryLineResponse `json:"lines"`
	NextToken *string             `json:"nextToken,omitempty"`
}

// ToEntryLineResponse converts a domain line.
func ToEntryLineResponse(l domain.JournalLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:         l.LineID,
		EntryID:        l.EntryID,
		AccountID:      l.AccountID,
		Debit:          l.Debit,
		Credit:         l.Credit,
		Description:    l.Description,
		RunningBalance: l.RunningBalance,
		CreatedAt:      l.CreatedAt,
	}
}

// ToEntryLineResponses converts a slice of domain lines.
func ToEntryLineResponses(ls []domain.JournalLine) []EntryLineResponse {
	rs := make([]EntryLineResponse, len(ls))
	for i, l := range ls {
		rs[i] = ToEntryLineResponse(l)
	}
	return rs
}

// ToEntryResponse converts a domain entry together with its lines.
func ToEntryResponse(e domain.JournalEntry) EntryResponse {
	return EntryResponse{
		EntryID:       e.EntryID,
		OutletID:      e.OutletID,
		Date:          e.EntryDate,
		Description:   e.Description,
		ReferenceID:   e.ReferenceID,
		ReferenceType: e.ReferenceType,
		CreatedAt:     e.CreatedAt,
		Lines:         ToEntryLineResponses(e.Lines),
	}
}
