package domain

import "time"

// Organization owns assets and sponsors employees. EmployeeLimit is raised
// by subscription payments; CurrentEmployeeCount moves only with affiliation
// creation/deactivation. Invariant: CurrentEmployeeCount <= EmployeeLimit.
type Organization struct {
	ID                   int32     `json:"id"`
	Name                 string    `json:"name"`
	AdminEmail           string    `json:"admin_email"`
	EmployeeLimit        int32     `json:"employee_limit"`
	CurrentEmployeeCount int32     `json:"current_employee_count"`
	SubscriptionTier     string    `json:"subscription_tier"`
	CreatedOn            time.Time `json:"created_on"`
}
