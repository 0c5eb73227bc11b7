package entities

import "time"

// User is an account in the user directory.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	// IsApproved gates event creation for organizers; it has no meaning for
	// other roles.
	IsApproved bool
	CreatedAt  time.Time
}

// FullName returns the display name used on tickets and event views.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Ref returns the weak display reference to this user.
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

// UserRef is a resolved display identity (id + lookup fields), never an
// owning reference.
type UserRef struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

// FullName returns first and last name joined for display.
func (r UserRef) FullName() string {
	return r.FirstName + " " + r.LastName
}
