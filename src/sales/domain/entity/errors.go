package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyBasket = errors.New("at least one item is required")

// ProductNotFoundError indica que una línea referencia un producto inexistente
type ProductNotFoundError struct {
	ProductID uuid.UUID
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("el producto con ID %s no existe", e.ProductID)
}

// Shortfall describe una línea cuya cantidad solicitada excede el stock disponible
type Shortfall struct {
	ProductName string
	Available   int
	Requested   int
}

// Message retorna la descripción legible del faltante
func (s Shortfall) Message() string {
	return fmt.Sprintf("Stock insuficiente para '%s': disponible %d, solicitado %d.",
		s.ProductName, s.Available, s.Requested)
}

// InsufficientStockError agrega todos los faltantes de la canasta para que el
// caller pueda mostrar todos los problemas de una sola vez
type InsufficientStockError struct {
	Shortfalls []Shortfall
}

func (e *InsufficientStockError) Error() string {
	messages := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		messages = append(messages, s.Message())
	}
	return strings.Join(messages, " ")
}
