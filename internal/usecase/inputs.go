// Package usecase contains the application-specific business rules.
package usecase

// DateLayout is the wire format for birth and document dates.
const DateLayout = "2006-01-02"

// --- Nested Input DTOs (shared by the legal-entity and person graphs) ---

// AddressInput defines one address of a registration payload.
type AddressInput struct {
	TypeID   int64  `json:"tipo_id" validate:"required"`
	Street   string `json:"rua"`
	Number   string `json:"numero"`
	District string `json:"bairro"`
	City     string `json:"cidade"`
	State    string `json:"uf" validate:"omitempty,len=2"`
	ZipCode  string `json:"cep"`
}

// ContactInput defines one contact of a registration payload.
type ContactInput struct {
	TypeID int64  `json:"tipo_id" validate:"required"`
	Value  string `json:"valor" validate:"required"`
	Note   string `json:"observacao"`
}

// ExtraRecordInput defines one complementary record of a registration payload.
type ExtraRecordInput struct {
	Name  string `json:"nome" validate:"required"`
	Value string `json:"valor"`
}

// ResponsibleInput defines the inline responsible natural person of a
// legal-entity registration, with its own nested collections.
type ResponsibleInput struct {
	CPF             string  `json:"cpf" validate:"required"`
	Name            string  `json:"nome" validate:"required"`
	GenderID        int64   `json:"genero_id" validate:"required"`
	MaritalStatusID int64   `json:"estado_civil_id" validate:"required"`
	BirthDate       *string `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	DocumentDate    *string `json:"data_documento" validate:"omitempty,datetime=2006-01-02"`
	ProfileID       int64   `json:"perfil_id" validate:"required"`
	Email           string  `json:"email" validate:"omitempty,email"`

	Addresses []AddressInput     `json:"enderecos" validate:"omitempty,dive"`
	Contacts  []ContactInput     `json:"contatos" validate:"omitempty,dive"`
	Extras    []ExtraRecordInput `json:"registros_complementares" validate:"omitempty,dive"`
}

// --- Legal Entity DTOs (notary offices and suppliers share the graph shape) ---

// CreateLegalEntityInput defines the full registration payload of a legal
// entity: core fields plus nested collections and the inline responsible
// party. ParentCompanyID and SystemID fall back to the configured base
// company and default system when absent.
type CreateLegalEntityInput struct {
	CNPJ          string `json:"cnpj" validate:"required"`
	TradeName     string `json:"nome_fantasia" validate:"required"`
	LegalName     string `json:"razao_social" validate:"required"`
	CompanyTypeID int64  `json:"tipo_empresa_id" validate:"required"`
	CategoryID    *int64 `json:"categoria_id"`
	// CategoryDescription selects the category by its description when no
	// id is given, matched case-insensitively within the parent company's
	// active categories.
	CategoryDescription string `json:"categoria_descricao"`
	Branch              bool   `json:"filial"`
	Origin        string `json:"origem"`
	Code          string `json:"codigo"`

	ParentCompanyID *int64 `json:"matriz_id"`
	SystemID        *int64 `json:"sistema_id"`

	Responsible *ResponsibleInput  `json:"responsavel" validate:"omitempty"`
	Addresses   []AddressInput     `json:"enderecos" validate:"omitempty,dive"`
	Contacts    []ContactInput     `json:"contatos" validate:"omitempty,dive"`
	Extras      []ExtraRecordInput `json:"registros_complementares" validate:"omitempty,dive"`
}

// LegalEntityPatch defines a partial update. Nil fields are left untouched.
// For nested collections a nil pointer means keep, a pointer to an empty
// slice means remove all active rows.
type LegalEntityPatch struct {
	CNPJ          *string `json:"cnpj"`
	TradeName     *string `json:"nome_fantasia"`
	LegalName     *string `json:"razao_social"`
	CompanyTypeID *int64  `json:"tipo_empresa_id"`
	CategoryID    *int64  `json:"categoria_id"`
	Branch        *bool   `json:"filial"`

	Addresses *[]AddressInput     `json:"enderecos" validate:"omitempty,dive"`
	Contacts  *[]ContactInput     `json:"contatos" validate:"omitempty,dive"`
	Extras    *[]ExtraRecordInput `json:"registros_complementares" validate:"omitempty,dive"`
}

// ListLegalEntityInput narrows legal-entity listings. Documents accept
// formatted or bare form.
type ListLegalEntityInput struct {
	CNPJ          string `query:"cnpj"`
	Name          string `query:"nome"`
	Code          string `query:"codigo"`
	CompanyTypeID *int64 `query:"tipo_empresa_id"`
	Active        *bool  `query:"situacao"`
}

// LifecycleInput carries the mandatory reason of a deactivation or
// reactivation request.
type LifecycleInput struct {
	Motivo string `json:"motivo" validate:"required"`
}

// --- Output DTOs ---

// AddressOutput is one address of a registration read.
type AddressOutput struct {
	ID       int64  `json:"id"`
	TypeID   int64  `json:"tipo_id"`
	Street   string `json:"rua"`
	Number   string `json:"numero"`
	District string `json:"bairro"`
	City     string `json:"cidade"`
	State    string `json:"uf"`
	ZipCode  string `json:"cep"`
}

// ContactOutput is one contact of a registration read.
type ContactOutput struct {
	ID     int64  `json:"id"`
	TypeID int64  `json:"tipo_id"`
	Value  string `json:"valor"`
	Note   string `json:"observacao"`
}

// ExtraRecordOutput is one complementary record of a registration read.
type ExtraRecordOutput struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Value string `json:"valor"`
}

// ResponsibleOutput is the identifying summary of a responsible party.
type ResponsibleOutput struct {
	ID   int64  `json:"id"`
	CPF  string `json:"cpf"` // Formatted for display.
	Name string `json:"nome"`
}

// LegalEntityOutput is the read shape of a notary office or supplier. The
// CNPJ is formatted for display; internal foreign keys the caller should not
// depend on are not exposed.
type LegalEntityOutput struct {
	ID            int64  `json:"id"`
	Code          string `json:"codigo"`
	CNPJ          string `json:"cnpj"` // Formatted for display.
	TradeName     string `json:"nome_fantasia"`
	LegalName     string `json:"razao_social"`
	CompanyTypeID int64  `json:"tipo_empresa_id"`
	CategoryID    *int64 `json:"categoria_id,omitempty"`
	Branch        bool   `json:"filial"`
	MatrizID      *int64 `json:"matriz_id,omitempty"` // Parent company of the active link.
	Active        bool   `json:"situacao"`
	Motivo        string `json:"motivo,omitempty"`

	Responsible *ResponsibleOutput  `json:"responsavel,omitempty"`
	Addresses   []AddressOutput     `json:"enderecos,omitempty"`
	Contacts    []ContactOutput     `json:"contatos,omitempty"`
	Extras      []ExtraRecordOutput `json:"registros_complementares,omitempty"`
}

// --- Batch DTOs ---

// BatchItemError describes one failed item of a batch request.
type BatchItemError struct {
	Index   int    `json:"indice"`
	CNPJ    string `json:"cnpj,omitempty"`
	Name    string `json:"nome,omitempty"`
	Code    string `json:"codigo_erro"`
	Message string `json:"mensagem"`
}

// BatchResult is the partial-failure result of a batch creation: items are
// processed independently, each inside its own transaction, and callers must
// inspect the body rather than the HTTP status alone.
type BatchResult struct {
	Successes []*LegalEntityOutput `json:"sucessos"`
	Errors    []*BatchItemError    `json:"erros"`
}
