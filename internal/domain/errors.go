package domain

import (
	"errors"
	"fmt"
)

// ErrSchema indica que o dataset não possui uma coluna obrigatória
var ErrSchema = errors.New("dataset schema error")

type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing column %q", ErrSchema, e.Column)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}
