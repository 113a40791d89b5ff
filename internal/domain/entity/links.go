package entity

// ResponsibleLink associates a natural person to a legal entity as a
// responsible party, carrying the profile granted for that company. Unique
// per (legal entity, natural person) pair while active.
type ResponsibleLink struct {
	ID              int64
	LegalEntityID   int64
	NaturalPersonID int64
	ProfileID       int64
	Principal       bool
	Lifecycle
}

// CompanyLink is the parent/child relationship between two legal entities:
// base company to branch, or base company to supplier. One row per pair.
type CompanyLink struct {
	ID       int64
	ParentID int64
	ChildID  int64
	Lifecycle
}

// SystemGrant entitles a legal entity to use a system. Permission resolution
// requires an active grant before any module is considered.
type SystemGrant struct {
	ID            int64
	LegalEntityID int64
	SystemID      int64
	Lifecycle
}
