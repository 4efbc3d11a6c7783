package mapping

import (
	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	"github.com/tablestack/resto_ledger_app/internal/models"
)

// ToModelAccount converts a domain.Account for DB storage.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		OutletID:    d.OutletID,
		Name:        d.Name,
		Code:        d.Code,
		AccountType: models.AccountType(d.AccountType),
		Description: d.Description,
		IsSystem:    d.IsSystem,
		IsActive:    d.IsActive,
		Balance:     d.Balance,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a models.Account from the DB.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		OutletID:    m.OutletID,
		Name:        m.Name,
		Code:        m.Code,
		AccountType: domain.AccountType(m.AccountType),
		Description: m.Description,
		IsSystem:    m.IsSystem,
		IsActive:    m.IsActive,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of models.Account.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
