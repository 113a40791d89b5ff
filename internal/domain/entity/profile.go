package entity

// Profile groups module permissions. A profile either belongs to one legal
// entity or is a system-owned global profile shared by every company.
type Profile struct {
	ID            int64
	LegalEntityID *int64 // nil when Global.
	Global        bool
	Name          string
	Lifecycle
}

// BelongsTo reports whether the profile is usable by the given company.
func (p *Profile) BelongsTo(legalEntityID int64) bool {
	if p.Global {
		return true
	}

	return p.LegalEntityID != nil && *p.LegalEntityID == legalEntityID
}

// ActionSet carries the five action flags a permission row grants on a module.
type ActionSet struct {
	Insert bool `json:"inserir"`
	Update bool `json:"alterar"`
	Search bool `json:"consultar"`
	Delete bool `json:"excluir"`
	Print  bool `json:"imprimir"`
}

// Permission links a profile to a module with its action flags.
type Permission struct {
	ID        int64
	ProfileID int64
	ModuleID  int64
	Actions   ActionSet
	Lifecycle
}
