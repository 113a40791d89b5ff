package entity

// Lookup records resolved before any write. A reference that is missing or
// inactive is treated as absent.

// CompanyType classifies a legal entity (cartório, fornecedor, matriz...).
type CompanyType struct {
	ID   int64
	Name string
	Lifecycle
}

// Category is a descriptive classification scoped to a company (or global
// when LegalEntityID is nil). Its description is unique, case-insensitively,
// among the scope's active rows.
type Category struct {
	ID            int64
	LegalEntityID *int64
	Global        bool
	Description   string
	Lifecycle
}

// Gender is a lookup row for natural persons.
type Gender struct {
	ID   int64
	Name string
	Lifecycle
}

// MaritalStatus is a lookup row for natural persons.
type MaritalStatus struct {
	ID   int64
	Name string
	Lifecycle
}

// AddressType discriminates address records (residential, commercial...).
type AddressType struct {
	ID   int64
	Name string
	Lifecycle
}

// ContactType discriminates contact records (phone, e-mail...).
type ContactType struct {
	ID   int64
	Name string
	Lifecycle
}
