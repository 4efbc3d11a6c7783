package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
)

// SignedDelta computes the net effect of a journal line on its account's
// stored balance, following the accounting equation convention:
//
//	DEBIT to ASSET/EXPENSE        -> balance increases
//	CREDIT to ASSET/EXPENSE       -> balance decreases
//	DEBIT to LIABILITY/EQUITY/REVENUE  -> balance decreases
//	CREDIT to LIABILITY/EQUITY/REVENUE -> balance increases
//
// Lines may carry both a debit and a credit side; the delta is their net.
func SignedDelta(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return line.Debit.Sub(line.Credit), nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return line.Credit.Sub(line.Debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type %q for account %s", accountType, line.AccountID)
	}
}
