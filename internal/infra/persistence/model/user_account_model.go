package model

import "time"

// UserAccountModel mirrors the 'usuarios' table. Login carries a partial
// unique index WHERE situacao.
type UserAccountModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	PessoaFisicaID int64  `gorm:"not null;index"`
	Login          string `gorm:"type:varchar(100);not null;index"`
	Email          string `gorm:"type:varchar(150)"`
	SenhaHash      string `gorm:"type:varchar(100);not null"`
	PrimeiroAcesso bool   `gorm:"not null;default:true"`
	Situacao       bool   `gorm:"not null;default:true"`
	Motivo         string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserAccountModel) TableName() string {
	return "usuarios"
}
