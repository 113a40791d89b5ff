package model

import "time"

// Lookup tables resolved by the reference repository before any write.

// CompanyTypeModel mirrors the 'tipos_empresa' table.
type CompanyTypeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(100);not null"`
	Situacao  bool   `gorm:"not null;default:true"`
	Motivo    string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyTypeModel) TableName() string {
	return "tipos_empresa"
}

// CategoryModel mirrors the 'categorias' table, scoped to a company or
// global.
type CategoryModel struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	PessoaJuridicaID *int64 `gorm:"index"`
	Global           bool   `gorm:"not null;default:false"`
	Descricao        string `gorm:"type:varchar(150);not null"`
	Situacao         bool   `gorm:"not null;default:true"`
	Motivo           string `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categorias"
}

// GenderModel mirrors the 'generos' table.
type GenderModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(50);not null"`
	Situacao  bool   `gorm:"not null;default:true"`
	Motivo    string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GenderModel) TableName() string {
	return "generos"
}

// MaritalStatusModel mirrors the 'estados_civis' table.
type MaritalStatusModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(50);not null"`
	Situacao  bool   `gorm:"not null;default:true"`
	Motivo    string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MaritalStatusModel) TableName() string {
	return "estados_civis"
}

// AddressTypeModel mirrors the 'tipos_endereco' table.
type AddressTypeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(50);not null"`
	Situacao  bool   `gorm:"not null;default:true"`
	Motivo    string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressTypeModel) TableName() string {
	return "tipos_endereco"
}

// ContactTypeModel mirrors the 'tipos_contato' table.
type ContactTypeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(50);not null"`
	Situacao  bool   `gorm:"not null;default:true"`
	Motivo    string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactTypeModel) TableName() string {
	return "tipos_contato"
}
