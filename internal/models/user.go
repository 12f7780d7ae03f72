package models

import "time"

// User is an admin-panel account. Only the bcrypt hash of the password is
// stored; there is no self-service signup, accounts are seeded via adminctl.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
