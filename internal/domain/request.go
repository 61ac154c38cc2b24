package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
	RequestStatusReturned RequestStatus = "RETURNED"
)

// Request is an employee's ask for one unit of an asset.
// REJECTED and RETURNED are terminal.
type Request struct {
	ID          int32         `json:"id"`
	AssetID     int32         `json:"asset_id"`
	RequesterID int32         `json:"requester_id"`
	// OrgID is the requester's sponsoring organization at submission time,
	// nil for a first-time requester with no active affiliation yet.
	OrgID *int32 `json:"org_id,omitempty"`
	// Snapshot fields — captured from the asset at submission time so the
	// request stays readable after the asset is edited or removed.
	AssetName  string        `json:"asset_name"`
	AssetType  AssetType     `json:"asset_type"`
	Status     RequestStatus `json:"status"`
	Note       string        `json:"note"`
	SubmittedOn time.Time    `json:"submitted_on"`
	ResolvedOn  *time.Time   `json:"resolved_on,omitempty"`
	ResolvedBy  *int32       `json:"resolved_by,omitempty"`
}
