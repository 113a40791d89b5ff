package entity

// PersonKind discriminates the two flavors of root identity.
type PersonKind string

const (
	// PersonKindLegal marks a person backing a legal entity (pessoa jurídica).
	PersonKindLegal PersonKind = "J"
	// PersonKindNatural marks a person backing a natural person (pessoa física).
	PersonKindNatural PersonKind = "F"
)

// Person is the root identity record. Every other entity in the registry
// attaches to a Person by foreign key; legal entities and natural persons are
// 1:1 extensions of it.
type Person struct {
	ID     int64
	Kind   PersonKind
	Origin string // Which upstream system registered this person.
	Code   string // External code; back-filled from the numeric id when absent.
	Lifecycle
}
