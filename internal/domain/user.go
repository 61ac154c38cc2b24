package domain

import "time"

// User is the public employee profile. Credentials live with the external
// identity provider and are never stored or returned here.
type User struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"created_on"`
}
