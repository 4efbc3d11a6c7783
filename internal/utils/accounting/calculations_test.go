package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	"github.com/tablestack/resto_ledger_app/internal/utils/accounting"
)

func TestSignedDelta(t *testing.T) {
	testCases := []struct {
		name        string
		accountType domain.AccountType
		debit       decimal.Decimal
		credit      decimal.Decimal
		expected    decimal.Decimal
	}{
		{"debit asset increases", domain.Asset, decimal.NewFromInt(100), decimal.Zero, decimal.NewFromInt(100)},
		{"credit asset decreases", domain.Asset, decimal.Zero, decimal.NewFromInt(100), decimal.NewFromInt(-100)},
		{"debit expense increases", domain.Expense, decimal.NewFromInt(40), decimal.Zero, decimal.NewFromInt(40)},
		{"credit expense decreases", domain.Expense, decimal.Zero, decimal.NewFromInt(40), decimal.NewFromInt(-40)},
		{"credit liability increases", domain.Liability, decimal.Zero, decimal.NewFromInt(75), decimal.NewFromInt(75)},
		{"debit liability decreases", domain.Liability, decimal.NewFromInt(75), decimal.Zero, decimal.NewFromInt(-75)},
		{"credit equity increases", domain.Equity, decimal.Zero, decimal.NewFromInt(500), decimal.NewFromInt(500)},
		{"debit equity decreases", domain.Equity, decimal.NewFromInt(500), decimal.Zero, decimal.NewFromInt(-500)},
		{"credit revenue increases", domain.Revenue, decimal.Zero, decimal.NewFromInt(60), decimal.NewFromInt(60)},
		{"debit revenue decreases", domain.Revenue, decimal.NewFromInt(60), decimal.Zero, decimal.NewFromInt(-60)},
		{"mixed line nets out", domain.Asset, decimal.NewFromInt(100), decimal.NewFromInt(30), decimal.NewFromInt(70)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line := domain.JournalLine{
				AccountID: "acc-1",
				Debit:     tc.debit,
				Credit:    tc.credit,
			}
			delta, err := accounting.SignedDelta(line, tc.accountType)
			require.NoError(t, err)
			assert.True(t, delta.Equal(tc.expected), "expected %s, got %s", tc.expected, delta)
		})
	}
}

func TestSignedDelta_UnknownAccountType(t *testing.T) {
	line := domain.JournalLine{AccountID: "acc-1", Debit: decimal.NewFromInt(10)}
	_, err := accounting.SignedDelta(line, domain.AccountType("SUSPENSE"))
	require.Error(t, err)
}
