package model

import "time"

// LegalEntityModel mirrors the 'pessoas_juridicas' table. CNPJ is stored
// digits-only; the schema carries a partial unique index on (cnpj) WHERE
// situacao, which backs the application-level uniqueness guard under
// concurrency.
type LegalEntityModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	PessoaID      int64  `gorm:"not null;uniqueIndex"`
	CNPJ          string `gorm:"type:varchar(14);not null;index"`
	NomeFantasia  string `gorm:"type:varchar(150);not null"`
	RazaoSocial   string `gorm:"type:varchar(150);not null"`
	TipoEmpresaID int64  `gorm:"not null"`
	CategoriaID   *int64
	ResponsavelID *int64 `gorm:"index"`
	Filial        bool   `gorm:"not null;default:false"`
	Situacao      bool   `gorm:"not null;default:true"`
	Motivo        string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Pessoa      *PersonModel        `gorm:"foreignKey:PessoaID"`
	Responsavel *NaturalPersonModel `gorm:"foreignKey:ResponsavelID"`
	Enderecos   []*AddressModel     `gorm:"foreignKey:PessoaID;references:PessoaID"`
	Contatos    []*ContactModel     `gorm:"foreignKey:PessoaID;references:PessoaID"`
	Registros   []*ExtraRecordModel `gorm:"foreignKey:PessoaID;references:PessoaID"`
}

// TableName explicitly sets the table name for GORM.
func (LegalEntityModel) TableName() string {
	return "pessoas_juridicas"
}
