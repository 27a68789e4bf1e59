package models

// User is the local operator account. The store seeds exactly one on
// first open; there is no registration flow.
type User struct {
	// ID is the row identifier assigned by the store.
	ID int64

	// Username is the unique login name.
	Username string

	// PasswordHash is the bcrypt hash of the password. The column is
	// named "password" for compatibility with existing data files.
	PasswordHash string
}
