package domain

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable é a causa comum de todo StoreUnavailableError
var ErrStoreUnavailable = errors.New("store unavailable")

// StoreUnavailableError indica que o store externo não completou uma leitura
// ou escrita. É fatal para a operação e deve chegar ao chamador sem alteração.
type StoreUnavailableError struct {
	Op     string // fetch, insert, upsert
	Entity Entity
	Err    error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrStoreUnavailable)
func (e *StoreUnavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

func NewStoreUnavailableError(op string, entity Entity, err error) *StoreUnavailableError {
	return &StoreUnavailableError{Op: op, Entity: entity, Err: err}
}
