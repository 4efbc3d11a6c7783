package mapping

import (
	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	"github.com/tablestack/resto_ledger_app/internal/models"
)

// ToModelOutlet converts a domain.Outlet for DB storage.
func ToModelOutlet(d domain.Outlet) models.Outlet {
	return models.Outlet{
		OutletID:  d.OutletID,
		BrandName: d.BrandName,
		Name:      d.Name,
		IsActive:  d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainOutlet converts a models.Outlet from the DB.
func ToDomainOutlet(m models.Outlet) domain.Outlet {
	return domain.Outlet{
		OutletID:    m.OutletID,
		BrandName:   m.BrandName,
		Name:        m.Name,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
