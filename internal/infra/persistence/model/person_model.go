// Package model holds the GORM-specific structs mirroring the registry tables.
package model

import "time"

// PersonModel mirrors the 'pessoas' table, the root identity every other
// record attaches to.
type PersonModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Tipo      string `gorm:"type:char(1);not null;index"`
	Origem    string `gorm:"type:varchar(50)"`
	Codigo    string `gorm:"type:varchar(50);index"`
	Situacao  bool   `gorm:"not null;default:true"`
	Motivo    string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "pessoas"
}
