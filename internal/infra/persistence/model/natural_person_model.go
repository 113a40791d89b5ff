package model

import "time"

// NaturalPersonModel mirrors the 'pessoas_fisicas' table. CPF is stored
// digits-only with a partial unique index on (cpf) WHERE situacao.
type NaturalPersonModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	PessoaID      int64  `gorm:"not null;uniqueIndex"`
	CPF           string `gorm:"type:varchar(11);not null;index"`
	Nome          string `gorm:"type:varchar(150);not null"`
	GeneroID      int64  `gorm:"not null"`
	EstadoCivilID int64  `gorm:"not null"`
	DataNascimento *time.Time
	DataDocumento  *time.Time
	Situacao      bool   `gorm:"not null;default:true"`
	Motivo        string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Pessoa    *PersonModel        `gorm:"foreignKey:PessoaID"`
	Enderecos []*AddressModel     `gorm:"foreignKey:PessoaID;references:PessoaID"`
	Contatos  []*ContactModel     `gorm:"foreignKey:PessoaID;references:PessoaID"`
	Registros []*ExtraRecordModel `gorm:"foreignKey:PessoaID;references:PessoaID"`
	Usuarios  []*UserAccountModel `gorm:"foreignKey:PessoaFisicaID"`
}

// TableName explicitly sets the table name for GORM.
func (NaturalPersonModel) TableName() string {
	return "pessoas_fisicas"
}
