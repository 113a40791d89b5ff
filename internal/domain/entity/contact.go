package entity

// Contact is a dependent record keyed by the owning Person: a phone number,
// an e-mail address or similar, discriminated by TypeID.
type Contact struct {
	ID       int64
	PersonID int64
	TypeID   int64
	Global   bool
	Value    string
	Note     string
	Lifecycle
}

// Removable reports whether normal flows may deactivate this contact.
func (c *Contact) Removable() bool {
	return !c.Global
}
