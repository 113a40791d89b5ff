package entity

import "time"

// NaturalPerson is a registered individual, typically the responsible party
// of a legal entity. The CPF is stored digits-only and is unique among active
// rows across the whole registry.
type NaturalPerson struct {
	ID              int64
	PersonID        int64
	CPF             string // Digits only.
	Name            string // Registered full name.
	GenderID        int64
	MaritalStatusID int64
	BirthDate       *time.Time
	DocumentDate    *time.Time
	Lifecycle

	Person      *Person
	Addresses   []*Address
	Contacts    []*Contact
	Extras      []*ExtraRecord
	UserAccount *UserAccount
}
