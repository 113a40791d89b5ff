package entity

// ExtraRecord is a free-form complementary datum attached to a Person
// (registro complementar), e.g. a state registration number.
type ExtraRecord struct {
	ID       int64
	PersonID int64
	Global   bool
	Name     string
	Value    string
	Lifecycle
}

// Removable reports whether normal flows may deactivate this record.
func (r *ExtraRecord) Removable() bool {
	return !r.Global
}
