package usecase

import "context"

// CreatePersonInput defines the registration payload of a standalone natural
// person: core fields, nested collections and the login account created with
// the graph.
type CreatePersonInput struct {
	CPF             string  `json:"cpf" validate:"required"`
	Name            string  `json:"nome" validate:"required"`
	GenderID        int64   `json:"genero_id" validate:"required"`
	MaritalStatusID int64   `json:"estado_civil_id" validate:"required"`
	BirthDate       *string `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	DocumentDate    *string `json:"data_documento" validate:"omitempty,datetime=2006-01-02"`
	Origin          string  `json:"origem"`
	Code            string  `json:"codigo"`
	Email           string  `json:"email" validate:"omitempty,email"`

	Addresses []AddressInput     `json:"enderecos" validate:"omitempty,dive"`
	Contacts  []ContactInput     `json:"contatos" validate:"omitempty,dive"`
	Extras    []ExtraRecordInput `json:"registros_complementares" validate:"omitempty,dive"`
}

// PersonPatch defines a partial update of a natural person. Nil fields are
// left untouched; for collections a nil pointer means keep, a pointer to an
// empty slice means remove all active rows.
type PersonPatch struct {
	CPF             *string `json:"cpf"`
	Name            *string `json:"nome"`
	GenderID        *int64  `json:"genero_id"`
	MaritalStatusID *int64  `json:"estado_civil_id"`
	BirthDate       *string `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	DocumentDate    *string `json:"data_documento" validate:"omitempty,datetime=2006-01-02"`

	Addresses *[]AddressInput     `json:"enderecos" validate:"omitempty,dive"`
	Contacts  *[]ContactInput     `json:"contatos" validate:"omitempty,dive"`
	Extras    *[]ExtraRecordInput `json:"registros_complementares" validate:"omitempty,dive"`
}

// ListPersonInput narrows natural-person listings.
type ListPersonInput struct {
	CPF    string `query:"cpf"`
	Name   string `query:"nome"`
	Code   string `query:"codigo"`
	Active *bool  `query:"situacao"`
}

// PersonOutput is the read shape of a natural person. The CPF is formatted
// for display; dates use the wire layout.
type PersonOutput struct {
	ID           int64   `json:"id"`
	Code         string  `json:"codigo"`
	CPF          string  `json:"cpf"` // Formatted for display.
	Name         string  `json:"nome"`
	GenderID     int64   `json:"genero_id"`
	MaritalStatusID int64 `json:"estado_civil_id"`
	BirthDate    *string `json:"data_nascimento,omitempty"`
	DocumentDate *string `json:"data_documento,omitempty"`
	Active       bool    `json:"situacao"`
	Motivo       string  `json:"motivo,omitempty"`
	Login        string  `json:"login,omitempty"`

	Addresses []AddressOutput     `json:"enderecos,omitempty"`
	Contacts  []ContactOutput     `json:"contatos,omitempty"`
	Extras    []ExtraRecordOutput `json:"registros_complementares,omitempty"`
}

// PersonUsecase defines the business operations of the natural-person
// registry.
type PersonUsecase interface {
	Create(ctx context.Context, input *CreatePersonInput) (*PersonOutput, error)
	Get(ctx context.Context, id int64) (*PersonOutput, error)
	List(ctx context.Context, input *ListPersonInput) ([]*PersonOutput, error)
	Update(ctx context.Context, id int64, patch *PersonPatch) (*PersonOutput, error)
	Deactivate(ctx context.Context, id int64, motivo string) error
	Reactivate(ctx context.Context, id int64, motivo string) error
}
