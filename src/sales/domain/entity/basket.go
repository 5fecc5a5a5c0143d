package entity

import "github.com/google/uuid"

// BasketLine representa una línea solicitada (producto, cantidad) de una
// venta antes de ser resuelta contra el catálogo. Se permiten líneas
// duplicadas para el mismo producto
type BasketLine struct {
	ProductID uuid.UUID
	Quantity  int
}
