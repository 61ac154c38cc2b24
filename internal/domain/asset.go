package domain

import "time"

type AssetType string

const (
	AssetTypeReturnable    AssetType = "RETURNABLE"
	AssetTypeNonReturnable AssetType = "NON_RETURNABLE"
)

// Asset is a pool of identical units owned by one organization.
// Invariant: 0 <= AvailableQuantity <= TotalQuantity.
type Asset struct {
	ID                int32     `json:"id"`
	OrgID             int32     `json:"org_id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Type              AssetType `json:"type"`
	TotalQuantity     int32     `json:"total_quantity"`
	AvailableQuantity int32     `json:"available_quantity"`
	CreatedOn         time.Time `json:"created_on"`
	UpdatedOn         time.Time `json:"updated_on"`
}

func (t AssetType) Valid() bool {
	return t == AssetTypeReturnable || t == AssetTypeNonReturnable
}
