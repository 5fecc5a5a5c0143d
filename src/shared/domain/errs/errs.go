package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrTransient marca fallos de infraestructura que pueden resolverse
	// reintentando (timeout, contención). Los errores de negocio nunca lo envuelven
	ErrTransient = errors.New("transient persistence failure")

	// ErrVersionConflict indica que el lock optimista falló al momento del
	// commit: otra transacción modificó el registro entre la lectura y la
	// escritura. Es transitorio: el reintento vuelve a leer y validar
	ErrVersionConflict = fmt.Errorf("row modified concurrently: %w", ErrTransient)
)

// IsTransient indica si un error pertenece al canal transitorio (reintentable)
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
