package models

// Outlet is the database representation of a restaurant location.
type Outlet struct {
	OutletID  string `db:"outlet_id"`
	BrandName string `db:"brand_name"`
	Name      string `db:"name"`
	IsActive  bool   `db:"is_active"`
	AuditFields
}
