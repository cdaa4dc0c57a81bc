package model

// User is an application account.
//
// Username and AccountName are unique among persisted users. ID is
// assigned by the store and never changes. Password is omitted from JSON
// once redacted.
type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	AccountName string `json:"accountName"`
}

// RemovePassword returns a copy of user without its password. Users that
// carry no password come back unchanged.
func RemovePassword(user User) User {
	if user.Password == "" {
		return user
	}
	redacted := user
	redacted.Password = ""
	return redacted
}

// RemovePasswords redacts every user of a slice into a new slice.
func RemovePasswords(users []User) []User {
	redacted := make([]User, 0, len(users))
	for _, u := range users {
		redacted = append(redacted, RemovePassword(u))
	}
	return redacted
}

// Principal is the identity stored in a login session.
type Principal struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	AccountName string `json:"accountName"`
}

// NewPrincipal builds the session identity of an authenticated user.
func NewPrincipal(u User) Principal {
	return Principal{
		ID:          u.ID,
		Username:    u.Username,
		AccountName: u.AccountName,
	}
}
