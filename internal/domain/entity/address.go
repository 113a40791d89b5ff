package entity

// Address is a dependent record keyed by the owning Person. Global addresses
// are shared defaults owned by the system and never pass through normal
// deactivation flows.
type Address struct {
	ID       int64
	PersonID int64
	TypeID   int64
	Global   bool
	Street   string
	Number   string
	District string
	City     string
	State    string
	ZipCode  string
	Lifecycle
}

// Removable reports whether normal flows may deactivate this address.
func (a *Address) Removable() bool {
	return !a.Global
}
