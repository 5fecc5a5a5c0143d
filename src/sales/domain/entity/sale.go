package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada (Aggregate Root)
// El total siempre es la suma exacta de los subtotales de sus items;
// nunca se asigna directamente
type Sale struct {
	ID    uuid.UUID       `json:"id"`
	Date  time.Time       `json:"date"` // Fecha de negocio, no necesariamente UTC
	Total decimal.Decimal `json:"total"`
	Items []SaleItem      `json:"items"`
}

// NewSale crea una venta vacía con el timestamp de negocio recibido
func NewSale(id uuid.UUID, date time.Time) *Sale {
	return &Sale{
		ID:    id,
		Date:  date,
		Total: decimal.Zero,
	}
}

// AddItem agrega una línea capturando el precio unitario en este momento
// y recalcula el total de la venta
func (s *Sale) AddItem(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) {
	item := NewSaleItem(s.ID, productID, quantity, unitPrice)
	s.Items = append(s.Items, item)
	s.recalculateTotal()
}

func (s *Sale) recalculateTotal() {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Subtotal())
	}
	s.Total = total
}

// TotalItems retorna el número de líneas de la venta
func (s *Sale) TotalItems() int {
	return len(s.Items)
}
