package model

import "time"

// AddressModel mirrors the 'enderecos' table, keyed by the owning person.
type AddressModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	PessoaID int64  `gorm:"not null;index"`
	TipoID   int64  `gorm:"not null"`
	Global   bool   `gorm:"not null;default:false"`
	Rua      string `gorm:"type:varchar(150)"`
	Numero   string `gorm:"type:varchar(20)"`
	Bairro   string `gorm:"type:varchar(100)"`
	Cidade   string `gorm:"type:varchar(100)"`
	UF       string `gorm:"type:char(2)"`
	CEP      string `gorm:"type:varchar(8)"`
	Situacao bool   `gorm:"not null;default:true"`
	Motivo   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "enderecos"
}

// ContactModel mirrors the 'contatos' table, keyed by the owning person.
type ContactModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	PessoaID  int64  `gorm:"not null;index"`
	TipoID    int64  `gorm:"not null"`
	Global    bool   `gorm:"not null;default:false"`
	Valor     string `gorm:"type:varchar(150);not null"`
	Observacao string `gorm:"type:text"`
	Situacao  bool   `gorm:"not null;default:true"`
	Motivo    string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contatos"
}

// ExtraRecordModel mirrors the 'registros_complementares' table.
type ExtraRecordModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	PessoaID  int64  `gorm:"not null;index"`
	Global    bool   `gorm:"not null;default:false"`
	Nome      string `gorm:"type:varchar(100);not null"`
	Valor     string `gorm:"type:varchar(255)"`
	Situacao  bool   `gorm:"not null;default:true"`
	Motivo    string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExtraRecordModel) TableName() string {
	return "registros_complementares"
}
