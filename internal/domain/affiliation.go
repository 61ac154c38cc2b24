package domain

import "time"

type AffiliationStatus string

const (
	AffiliationStatusActive   AffiliationStatus = "ACTIVE"
	AffiliationStatusInactive AffiliationStatus = "INACTIVE"
)

// Affiliation is the sponsorship link between an employee and an
// organization. At most one ACTIVE row may exist per (employee, org) pair;
// deactivation keeps the row as history.
type Affiliation struct {
	ID            int32             `json:"id"`
	EmployeeID    int32             `json:"employee_id"`
	OrgID         int32             `json:"org_id"`
	Status        AffiliationStatus `json:"status"`
	JoinedOn      time.Time         `json:"joined_on"`
	DeactivatedOn *time.Time        `json:"deactivated_on,omitempty"`
}
