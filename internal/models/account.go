// Package models defines the account and job-application record types shared
// by the directory, session, repository, and query layers.
package models

import "time"

// Account is the public view of a registered account: the shape every layer
// outside the account directory works with. It never carries the password.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
