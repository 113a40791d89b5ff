package model

import "time"

// ResponsibleLinkModel mirrors the 'vinculos_responsaveis' table. A partial
// unique index on (pessoa_juridica_id, pessoa_fisica_id) WHERE situacao
// backs the one-active-link-per-pair invariant.
type ResponsibleLinkModel struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	PessoaJuridicaID int64 `gorm:"not null;index"`
	PessoaFisicaID   int64 `gorm:"not null;index"`
	PerfilID         int64 `gorm:"not null"`
	Principal        bool  `gorm:"not null;default:false"`
	Situacao         bool  `gorm:"not null;default:true"`
	Motivo           string `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResponsibleLinkModel) TableName() string {
	return "vinculos_responsaveis"
}

// CompanyLinkModel mirrors the 'vinculos_empresas' table (base company to
// branch or supplier, one row per pair).
type CompanyLinkModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	MatrizID  int64  `gorm:"not null;index"`
	FilialID  int64  `gorm:"not null;index"`
	Situacao  bool   `gorm:"not null;default:true"`
	Motivo    string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyLinkModel) TableName() string {
	return "vinculos_empresas"
}

// SystemGrantModel mirrors the 'habilitacoes_sistemas' table.
type SystemGrantModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	PessoaJuridicaID int64 `gorm:"not null;index"`
	SistemaID        int64 `gorm:"not null;index"`
	Situacao         bool  `gorm:"not null;default:true"`
	Motivo           string `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (SystemGrantModel) TableName() string {
	return "habilitacoes_sistemas"
}
