package entity

// LegalEntity is a registered company: a notary office (cartório), a supplier
// or a base company. The CNPJ is stored digits-only and is unique among
// active rows. ResponsibleID stays nil during graph creation and is
// back-filled once the responsible natural person exists; it is only
// guaranteed consistent after the creation transaction commits.
type LegalEntity struct {
	ID            int64
	PersonID      int64
	CNPJ          string // Digits only; formatted at the response boundary.
	TradeName     string // Nome fantasia.
	LegalName     string // Razão social.
	CompanyTypeID int64
	CategoryID    *int64
	ResponsibleID *int64 // NaturalPerson id of the principal responsible party.
	Branch        bool   // Filial flag.
	ParentID      *int64 // Parent company of the active link, filled on reads.
	Lifecycle

	Person      *Person
	Responsible *NaturalPerson
	Addresses   []*Address
	Contacts    []*Contact
	Extras      []*ExtraRecord
}
