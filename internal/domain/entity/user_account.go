package entity

// UserAccount is the login record created for a natural person during graph
// creation. The login derives from the person's code; FirstAccess stays true
// until the out-of-scope auth service flips it on the first password change.
type UserAccount struct {
	ID              int64
	NaturalPersonID int64
	Login           string
	Email           string
	PasswordHash    string
	FirstAccess     bool
	Lifecycle
}
