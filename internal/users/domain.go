package users

import "time"

// User represents a stored user record. ID and CreatedAt are assigned at
// creation and never change afterwards.
type User struct {
	ID        string
	Name      string
	Email     string
	Age       *int
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// clone returns a deep copy so callers can never mutate stored state
// through shared pointers.
func (u User) clone() User {
	out := u
	if u.Age != nil {
		age := *u.Age
		out.Age = &age
	}
	if u.Phone != nil {
		phone := *u.Phone
		out.Phone = &phone
	}
	return out
}
