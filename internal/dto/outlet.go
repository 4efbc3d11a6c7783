package dto

import (
	"time"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
)

// CreateOutletRequest is the payload for registering an outlet.
type CreateOutletRequest struct {
	BrandName string `json:"brandName" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

// ListOutletsParams carries query parameters for listing outlets.
type ListOutletsParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// OutletResponse is an outlet as returned by the API.
type OutletResponse struct {
	OutletID  string    `json:"outletId"`
	BrandName string    `json:"brandName"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListOutletsResponse is one page of outlets.
type ListOutletsResponse struct {
	Outlets []OutletResponse `json:"outlets"`
}

// ToOutletResponse converts a domain outlet.
func ToOutletResponse(o domain.Outlet) OutletResponse {
	return OutletResponse{
		OutletID:  o.OutletID,
		BrandName: o.BrandName,
		Name:      o.Name,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.LastUpdatedAt,
	}
}

// ToOutletResponses converts a slice of domain outlets.
func ToOutletResponses(os []domain.Outlet) []OutletResponse {
	rs := make([]OutletResponse, len(os))
	for i, o := range os {
		rs[i] = ToOutletResponse(o)
	}
	return rs
}
