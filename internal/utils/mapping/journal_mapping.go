package mapping

import (
	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	"github.com/tablestack/resto_ledger_app/internal/models"
)

// ToModelEntry converts a domain.JournalEntry for DB storage.
func ToModelEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:       d.EntryID,
		OutletID:      d.OutletID,
		EntryDate:     d.EntryDate,
		Description:   d.Description,
		ReferenceID:   d.ReferenceID,
		ReferenceType: d.ReferenceType,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainEntry converts a models.JournalEntry from the DB.
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:       m.EntryID,
		OutletID:      m.OutletID,
		EntryDate:     m.EntryDate,
		Description:   m.Description,
		ReferenceID:   m.ReferenceID,
		ReferenceType: m.ReferenceType,
		CreatedAt:     m.CreatedAt,
	}
}

// ToModelLine converts a domain.JournalLine for DB storage.
func ToModelLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:         d.LineID,
		EntryID:        d.EntryID,
		AccountID:      d.AccountID,
		Debit:          d.Debit,
		Credit:         d.Credit,
		Description:    d.Description,
		RunningBalance: d.RunningBalance,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainLine converts a models.JournalLine from the DB.
func ToDomainLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:         m.LineID,
		EntryID:        m.EntryID,
		AccountID:      m.AccountID,
		Debit:          m.Debit,
		Credit:         m.Credit,
		Description:    m.Description,
		RunningBalance: m.RunningBalance,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainLineSlice converts a slice of models.JournalLine.
func ToDomainLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLine(m)
	}
	return ds
}
