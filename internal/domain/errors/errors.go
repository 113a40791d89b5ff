// Package errors defines the application error taxonomy surfaced to callers.
package errors

import (
	"net/http"

	"registro/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// Is matches detail-carrying copies back to their sentinel, so callers can
// test with errors.Is against the predefined errors below.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WithDetails returns a copy of the error carrying detailed information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Messages are user-facing and therefore localized.
var (
	// Lookup / read errors
	ErrNotaryNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTARY_NOT_FOUND",
		"Cartório não encontrado",
		"",
	)

	ErrSupplierNotFound = NewBaseError(
		http.StatusNotFound,
		"SUPPLIER_NOT_FOUND",
		"Fornecedor não encontrado",
		"",
	)

	ErrPersonNotFound = NewBaseError(
		http.StatusNotFound,
		"PERSON_NOT_FOUND",
		"Pessoa não encontrada",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Perfil não encontrado ou inativo",
		"",
	)

	ErrReferenceNotFound = NewBaseError(
		http.StatusNotFound,
		"REFERENCE_NOT_FOUND",
		"Registro referenciado inexistente ou inativo",
		"",
	)

	// Uniqueness violations
	ErrCNPJConflict = NewBaseError(
		http.StatusConflict,
		"CNPJ_ALREADY_REGISTERED",
		"CNPJ já cadastrado",
		"",
	)

	ErrCPFConflict = NewBaseError(
		http.StatusConflict,
		"CPF_ALREADY_REGISTERED",
		"CPF já cadastrado",
		"",
	)

	ErrLoginConflict = NewBaseError(
		http.StatusConflict,
		"LOGIN_ALREADY_REGISTERED",
		"Login já cadastrado",
		"",
	)

	ErrLinkConflict = NewBaseError(
		http.StatusConflict,
		"RESPONSIBLE_ALREADY_LINKED",
		"Responsável já vinculado à empresa",
		"",
	)

	ErrDescriptionConflict = NewBaseError(
		http.StatusConflict,
		"DESCRIPTION_ALREADY_REGISTERED",
		"Descrição já cadastrada para a empresa",
		"",
	)

	// Validation / lifecycle errors
	ErrInvalidDocument = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DOCUMENT",
		"Documento (CNPJ/CPF) em formato inválido",
		"",
	)

	ErrMotivoRequired = NewBaseError(
		http.StatusBadRequest,
		"MOTIVO_REQUIRED",
		"Motivo é obrigatório",
		"",
	)

	ErrAlreadyInactive = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_INACTIVE",
		"Registro já está inativo",
		"",
	)

	ErrAlreadyActive = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_ACTIVE",
		"Registro já está ativo",
		"",
	)

	ErrGlobalRecord = NewBaseError(
		http.StatusBadRequest,
		"GLOBAL_RECORD",
		"Registro global não pode ser alterado",
		"",
	)

	ErrNoSystemAccess = NewBaseError(
		http.StatusBadRequest,
		"NO_SYSTEM_ACCESS",
		"Empresa não possui acesso ao sistema",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	// General errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falha na transação de banco de dados",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Registro não encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflito de dados",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Falha na execução do banco de dados"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
