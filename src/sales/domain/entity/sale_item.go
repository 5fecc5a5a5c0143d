package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem representa una línea dentro de una venta (Entity del Aggregate)
// UnitPrice es el precio capturado al momento de la venta, independiente
// de cambios posteriores del producto
type SaleItem struct {
	ID        uuid.UUID       `json:"id"`
	SaleID    uuid.UUID       `json:"sale_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// NewSaleItem crea una nueva línea de venta
func NewSaleItem(saleID, productID uuid.UUID, quantity int, unitPrice decimal.Decimal) SaleItem {
	return SaleItem{
		ID:        uuid.New(),
		SaleID:    saleID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
}

// Subtotal retorna cantidad × precio unitario (derivado, nunca almacenado aparte)
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
