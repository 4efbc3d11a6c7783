package domain

// Outlet represents a single restaurant location. It is the scoping unit for
// all ledger accounts and journal entries.
type Outlet struct {
	OutletID  string `json:"outletID"`  // Primary Key (UUID)
	BrandName string `json:"brandName"` // Owning brand, free text
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}
