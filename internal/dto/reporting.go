package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
)

// TrialBalanceRowResponse is one account row of a trial balance report.
type TrialBalanceRowResponse struct {
	AccountID   string             `json:"accountId"`
	AccountName string             `json:"accountName"`
	AccountCode string             `json:"accountCode"`
	AccountType domain.AccountType `json:"accountType"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
}

// TrialBalanceResponse is a full trial balance report. TotalDebit and
// TotalCredit are equal whenever every posted entry balanced.
type TrialBalanceResponse struct {
	OutletID    string                    `json:"outletId"`
	AsOf        time.Time                 `json:"asOf"`
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"totalDebit"`
	TotalCredit decimal.Decimal           `json:"totalCredit"`
}

// ToTrialBalanceResponse converts the per-account totals and computes the
// report-level sums.
func ToTrialBalanceResponse(outletID string, asOf time.Time, rows []domain.TrialBalanceRow) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		OutletID:    outletID,
		AsOf:        asOf,
		Rows:        make([]TrialBalanceRowResponse, len(rows)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for i, row := range rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountName: row.AccountName,
			AccountCode: row.AccountCode,
			AccountType: row.AccountType,
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
		resp.TotalDebit = resp.TotalDebit.Add(row.Debit)
		resp.TotalCredit = resp.TotalCredit.Add(row.Credit)
	}
	return resp
}
