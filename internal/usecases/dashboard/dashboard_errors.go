package dashboard

import (
	"errors"
	"fmt"
)

var (
	ErrRequired      = errors.New("campo obrigatório")
	ErrNegativeValue = errors.New("valor não pode ser negativo")
	ErrInvalidValue  = errors.New("valor inválido")
	ErrDuplicateName = errors.New("já existe um produto com esse nome")
	ErrGenerateID    = errors.New("erro ao gerar ID")
)

// ValidationError indica um comando rejeitado antes de chegar ao store
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}
