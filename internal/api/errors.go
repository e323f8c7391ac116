package api

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSession: se intentó una operación autenticada sin login previo.
	ErrNoSession = errors.New("api: no active session")
)

// ValidationError: faltan campos requeridos ANTES de llamar al gateway.
// Se resuelve local; el request nunca sale.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// validationError junta los campos faltantes; nil si no falta nada.
func validationError(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
