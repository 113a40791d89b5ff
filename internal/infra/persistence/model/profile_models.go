package model

import "time"

// SystemModel mirrors the 'sistemas' table.
type SystemModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(100);not null"`
	Situacao  bool   `gorm:"not null;default:true"`
	Motivo    string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SystemModel) TableName() string {
	return "sistemas"
}

// ModuleModel mirrors the 'modulos' table. PaiID is nil for top-level
// modules.
type ModuleModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	SistemaID int64 `gorm:"not null;index"`
	PaiID     *int64 `gorm:"index"`
	Nome      string `gorm:"type:varchar(100);not null"`
	Indice    int    `gorm:"not null;default:0"`
	Visivel   bool   `gorm:"not null;default:true"`
	Situacao  bool   `gorm:"not null;default:true"`
	Motivo    string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ModuleModel) TableName() string {
	return "modulos"
}

// ProfileModel mirrors the 'perfis' table. Global profiles have a nil
// company and the global flag set.
type ProfileModel struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	PessoaJuridicaID *int64 `gorm:"index"`
	Global           bool   `gorm:"not null;default:false"`
	Nome             string `gorm:"type:varchar(100);not null"`
	Situacao         bool   `gorm:"not null;default:true"`
	Motivo           string `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "perfis"
}

// PermissionModel mirrors the 'permissoes' table with the five action flags.
type PermissionModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	PerfilID  int64 `gorm:"not null;index"`
	ModuloID  int64 `gorm:"not null;index"`
	Inserir   bool  `gorm:"not null;default:false"`
	Alterar   bool  `gorm:"not null;default:false"`
	Consultar bool  `gorm:"not null;default:false"`
	Excluir   bool  `gorm:"not null;default:false"`
	Imprimir  bool  `gorm:"not null;default:false"`
	Situacao  bool  `gorm:"not null;default:true"`
	Motivo    string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PermissionModel) TableName() string {
	return "permissoes"
}
