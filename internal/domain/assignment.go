package domain

import "time"

type AssignmentStatus string

const (
	AssignmentStatusHeld     AssignmentStatus = "HELD"
	AssignmentStatusReturned AssignmentStatus = "RETURNED"
)

// Assignment records one unit of an asset checked out to an employee under
// an approved request. Created exactly once per approval. Units of a
// NON_RETURNABLE asset stay HELD forever.
type Assignment struct {
	ID         int32            `json:"id"`
	RequestID  int32            `json:"request_id"`
	AssetID    int32            `json:"asset_id"`
	EmployeeID int32            `json:"employee_id"`
	OrgID      int32            `json:"org_id"`
	UnitType   AssetType        `json:"unit_type"`
	Status     AssignmentStatus `json:"status"`
	AssignedOn time.Time        `json:"assigned_on"`
	ReturnedOn *time.Time       `json:"returned_on,omitempty"`
}
