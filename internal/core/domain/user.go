package domain

import "time"

// User is a row of the users table. EncryptedPassword holds the bcrypt hash
// and never leaves the service in a response.
type User struct {
	ID                string    `db:"id"`
	Name              string    `db:"name"`
	Email             string    `db:"email"`
	EncryptedPassword string    `db:"password"`
	CreatedAt         time.Time `db:"created_at"`
}
